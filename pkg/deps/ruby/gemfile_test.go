package ruby

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/techstack/pkg/deps"
)

func TestGemfileRead(t *testing.T) {
	dir := t.TempDir()
	content := `source "https://rubygems.org"

ruby "3.3.0"

gem "rails", "~> 7.1.0"
gem 'pg', '>= 0.18', '< 2.0'
gem "puma"
# gem "unused"

group :development, :test do
  gem "rspec-rails"
  gem "puma"
end
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Gemfile"), []byte(content), 0o644))

	res := (&Gemfile{}).Read(dir)
	require.NoError(t, res.Err)
	assert.Equal(t, []deps.Dependency{
		{Name: "rails", Version: "~> 7.1.0", License: LicenseHint},
		{Name: "pg", Version: ">= 0.18", License: LicenseHint},
		{Name: "puma", Version: deps.VersionLatest, License: LicenseHint},
		{Name: "rspec-rails", Version: deps.VersionLatest, License: LicenseHint},
	}, res.Dependencies)
}

func TestGemfileEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Gemfile"), []byte("source 'https://rubygems.org'\n"), 0o644))

	res := (&Gemfile{}).Read(dir)
	assert.True(t, res.Present)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Dependencies)
}
