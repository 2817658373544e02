// Package languages provides the complete, ordered list of manifest readers.
//
// This package exists to break import cycles: the individual ecosystem
// packages (python, rust, etc.) import pkg/deps, so pkg/deps cannot import
// them back. Consumers that need the full reader list import this package.
//
// Usage:
//
//	import "github.com/matzehuels/techstack/pkg/deps/languages"
//
//	found := deps.Collect(root, languages.Readers(), nil)
package languages

import (
	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/deps/cpp"
	"github.com/matzehuels/techstack/pkg/deps/golang"
	"github.com/matzehuels/techstack/pkg/deps/java"
	"github.com/matzehuels/techstack/pkg/deps/javascript"
	"github.com/matzehuels/techstack/pkg/deps/php"
	"github.com/matzehuels/techstack/pkg/deps/python"
	"github.com/matzehuels/techstack/pkg/deps/ruby"
	"github.com/matzehuels/techstack/pkg/deps/rust"
)

// Readers returns every supported reader in report order. The order is
// part of the output contract: dependency records are concatenated in
// exactly this sequence.
func Readers() []deps.Reader {
	return []deps.Reader{
		&javascript.PackageJSON{},
		&python.Requirements{},
		&golang.GoMod{},
		&rust.CargoToml{},
		&java.POM{},
		&cpp.CMakeLists{},
		&cpp.Vcpkg{},
		&python.Pyproject{},
		&ruby.Gemfile{},
		&php.ComposerJSON{},
	}
}

// Find returns the reader for the given manifest filename, or nil if none
// is registered.
func Find(manifest string) deps.Reader {
	for _, r := range Readers() {
		if r.Type() == manifest {
			return r
		}
	}
	return nil
}
