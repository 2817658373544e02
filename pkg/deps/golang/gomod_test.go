package golang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/techstack/pkg/deps"
)

func TestGoModRead(t *testing.T) {
	dir := t.TempDir()
	content := `module example.com/demo

go 1.22

require github.com/spf13/cobra v1.8.0

require (
	github.com/gin-gonic/gin v1.9.1
	// a full-line comment
	golang.org/x/text v0.14.0 // indirect
)

replace (
	github.com/old/mod v1.0.0 => ../local
)

exclude github.com/bad/mod v0.1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o644))

	res := (&GoMod{}).Read(dir)
	require.NoError(t, res.Err)
	assert.Equal(t, []deps.Dependency{
		{Name: "github.com/spf13/cobra", Version: "v1.8.0", License: LicenseHint},
		{Name: "github.com/gin-gonic/gin", Version: "v1.9.1", License: LicenseHint},
		{Name: "golang.org/x/text", Version: "v0.14.0", License: LicenseHint},
	}, res.Dependencies)
}

func TestGoModNoRequirements(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n\ngo 1.22\n"), 0o644))

	res := (&GoMod{}).Read(dir)
	assert.True(t, res.Present)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Dependencies)
}

func TestGoModAbsent(t *testing.T) {
	res := (&GoMod{}).Read(t.TempDir())
	assert.False(t, res.Present)
	assert.Empty(t, res.Dependencies)
}

func TestGoModType(t *testing.T) {
	assert.Equal(t, "go.mod", (&GoMod{}).Type())
}
