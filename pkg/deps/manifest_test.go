package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	techerrors "github.com/matzehuels/techstack/pkg/errors"
)

type stubReader struct {
	name string
	res  Result
}

func (s *stubReader) Type() string            { return s.name }
func (s *stubReader) Read(root string) Result { return s.res }

func TestCollect(t *testing.T) {
	a := &stubReader{name: "a", res: Result{Manifest: "a", Present: true, Dependencies: []Dependency{
		{Name: "react", Version: "^18.0.0", License: LicenseUnknown},
		{Name: "vite", Version: "^5.0.0", License: LicenseUnknown},
	}}}
	broken := &stubReader{name: "broken", res: Result{Manifest: "broken", Present: true, Err: errors.New("boom")}}
	absent := &stubReader{name: "absent", res: Result{Manifest: "absent"}}
	b := &stubReader{name: "b", res: Result{Manifest: "b", Present: true, Dependencies: []Dependency{
		{Name: "react", Version: "18.2.0", License: "Check PyPI"},
	}}}

	var failed []string
	got := Collect("/project", []Reader{a, broken, absent, b}, func(r Result) {
		failed = append(failed, r.Manifest)
	})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"react", "vite", "react"}, Names(got))
	assert.Equal(t, "18.2.0", got[2].Version)
	assert.Equal(t, []string{"broken"}, failed)
}

func TestCollectNoReaders(t *testing.T) {
	got := Collect(t.TempDir(), nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	parse := func(root string, data []byte) ([]Dependency, error) {
		if string(data) == "bad" {
			return nil, errors.New("syntax error")
		}
		return []Dependency{{Name: string(data), Version: VersionLatest}}, nil
	}

	t.Run("absent", func(t *testing.T) {
		res := ReadManifest(dir, "missing.txt", parse)
		assert.False(t, res.Present)
		assert.False(t, res.Failed())
		assert.Empty(t, res.Dependencies)
		assert.Equal(t, "missing.txt", res.Manifest)
	})

	t.Run("directory with manifest name", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "pkg.txt"), 0o755))
		res := ReadManifest(dir, "pkg.txt", parse)
		assert.False(t, res.Present)
		assert.False(t, res.Failed())
	})

	t.Run("parsed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "good.txt"), []byte("flask"), 0o644))
		res := ReadManifest(dir, "good.txt", parse)
		assert.True(t, res.Present)
		require.NoError(t, res.Err)
		assert.Equal(t, []Dependency{{Name: "flask", Version: VersionLatest}}, res.Dependencies)
	})

	t.Run("malformed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("bad"), 0o644))
		res := ReadManifest(dir, "bad.txt", parse)
		assert.True(t, res.Present)
		require.Error(t, res.Err)
		assert.True(t, techerrors.Is(res.Err, techerrors.ErrCodeInvalidManifest))
		assert.Empty(t, res.Dependencies)
	})
}
