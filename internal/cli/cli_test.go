package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/techstack/pkg/buildinfo"
	"github.com/matzehuels/techstack/pkg/errors"
)

func newTestCLI(t *testing.T, root string) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := New(&out, &errOut, LogWarn)
	c.Root = func() (string, error) { return root, nil }
	return c, &out, &errOut
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

type document struct {
	TechStack    []string           `json:"tech_stack" yaml:"tech_stack"`
	Languages    map[string]float64 `json:"languages" yaml:"languages"`
	Dependencies []map[string]any   `json:"dependencies" yaml:"dependencies"`
}

func TestRootCommandWritesJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", "django==5.0\n")
	writeFile(t, root, "app.py", "print('hi')\n")

	c, out, _ := newTestCLI(t, root)
	cmd := c.RootCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var doc document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, []string{"Django", "Python"}, doc.TechStack)
	assert.Equal(t, map[string]float64{"Python": 100}, doc.Languages)
	assert.Equal(t, []map[string]any{{"name": "django", "version": "5.0", "license": "Check PyPI"}}, doc.Dependencies)
}

func TestRootCommandYAMLFromConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".techstack.yaml", "output:\n  format: yaml\n")
	writeFile(t, root, "main.go", "package main\n")

	c, out, _ := newTestCLI(t, root)
	cmd := c.RootCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var doc document
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, []string{"Go", "YAML"}, doc.TechStack)
	assert.Contains(t, doc.Languages, "Go")
	assert.Empty(t, doc.Dependencies)
}

func TestRootCommandBadConfigWarns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".techstack.yaml", "output:\n  format: xml\n")

	c, out, errOut := newTestCLI(t, root)
	cmd := c.RootCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, errOut.String(), "ignoring project config")
	assert.True(t, json.Valid(out.Bytes()), "report should fall back to JSON")
}

func TestRootCommandDebugLogging(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".techstack.yaml", "log:\n  level: debug\n")
	writeFile(t, root, "pom.xml", "<project>")

	c, _, errOut := newTestCLI(t, root)
	cmd := c.RootCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, errOut.String(), "skipping malformed manifest")
	assert.Contains(t, errOut.String(), "analyzed project")
}

func TestRootCommandMissingRoot(t *testing.T) {
	c, out, _ := newTestCLI(t, filepath.Join(t.TempDir(), "gone"))
	cmd := c.RootCommand()
	cmd.SetArgs([]string{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
	assert.Empty(t, out.String())
}

func TestRootCommandRejectsArgs(t *testing.T) {
	c, _, _ := newTestCLI(t, t.TempDir())
	cmd := c.RootCommand()
	cmd.SetArgs([]string{"some/dir"})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestRootCommandVersion(t *testing.T) {
	c, _, _ := newTestCLI(t, t.TempDir())
	cmd := c.RootCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "techstack version "+buildinfo.Version)
}
