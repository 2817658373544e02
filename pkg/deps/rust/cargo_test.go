package rust

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

func writeCargo(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0o644))
	return dir
}

func TestCargoRead(t *testing.T) {
	dir := writeCargo(t, `[package]
name = "demo"
version = "0.1.0"

[dependencies]
# web
actix-web = "4.4"
serde = { version = "1.0", features = ["derive"] }
local = { path = "../local" }
tokio = '1'

[dev-dependencies]
criterion = "0.5"

[profile.release]
lto = true

[dependencies.axum]
version = "0.7"
features = ["ws"]
`)

	res := (&CargoToml{}).Read(dir)
	require.NoError(t, res.Err)
	assert.Equal(t, []deps.Dependency{
		{Name: "actix-web", Version: "4.4", License: LicenseHint},
		{Name: "serde", Version: "1.0", License: LicenseHint},
		{Name: "local", Version: deps.VersionLatest, License: LicenseHint},
		{Name: "tokio", Version: "1", License: LicenseHint},
		{Name: "criterion", Version: "0.5", License: LicenseHint},
		{Name: "axum", Version: "0.7", License: LicenseHint},
	}, res.Dependencies)
}

func TestCargoNoDependencySection(t *testing.T) {
	dir := writeCargo(t, "[package]\nname = \"demo\"\n")

	res := (&CargoToml{}).Read(dir)
	assert.True(t, res.Present)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Dependencies)
}

func TestCargoEmptyDependencySection(t *testing.T) {
	dir := writeCargo(t, "[dependencies]\n\n[dev-dependencies]\n")

	res := (&CargoToml{}).Read(dir)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Dependencies)
}

func TestCargoMalformed(t *testing.T) {
	dir := writeCargo(t, "[dependencies\nserde = ")

	res := (&CargoToml{}).Read(dir)
	require.Error(t, res.Err)
	assert.True(t, errors.Is(res.Err, errors.ErrCodeInvalidManifest))
	assert.Empty(t, res.Dependencies)
}
