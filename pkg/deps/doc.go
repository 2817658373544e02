// Package deps extracts declared dependencies from ecosystem manifest files.
//
// # Overview
//
// Each supported ecosystem has a subpackage with a [Reader] implementation
// that knows one manifest grammar:
//
//   - [javascript]: package.json (with node_modules license lookup)
//   - [python]: requirements.txt, pyproject.toml
//   - [golang]: go.mod
//   - [rust]: Cargo.toml
//   - [java]: pom.xml
//   - [cpp]: CMakeLists.txt, vcpkg.json
//   - [ruby]: Gemfile
//   - [php]: composer.json
//
// Every reader reduces its manifest to the same [Dependency] shape: a name,
// the literal version string (or a sentinel such as [VersionLatest]), and a
// license hint. Only the package.json reader ever reports a real license,
// and only when a locally installed package descriptor exists; every other
// reader reports a fixed "check this registry" placeholder.
//
// # Failure Isolation
//
// Readers never abort an analysis. [ReadManifest] turns a missing file into
// an empty [Result] and captures parse failures in [Result.Err]. [Collect]
// runs readers in a fixed order, hands failed results to an optional
// callback for logging, and concatenates the rest:
//
//	found := deps.Collect(root, languages.Readers, func(r deps.Result) {
//	    logger.Debug("reader failed", "manifest", r.Manifest, "err", r.Err)
//	})
//
// The canonical reader order lives in [languages] to avoid an import cycle.
//
// [javascript]: github.com/matzehuels/techstack/pkg/deps/javascript
// [python]: github.com/matzehuels/techstack/pkg/deps/python
// [golang]: github.com/matzehuels/techstack/pkg/deps/golang
// [rust]: github.com/matzehuels/techstack/pkg/deps/rust
// [java]: github.com/matzehuels/techstack/pkg/deps/java
// [cpp]: github.com/matzehuels/techstack/pkg/deps/cpp
// [ruby]: github.com/matzehuels/techstack/pkg/deps/ruby
// [php]: github.com/matzehuels/techstack/pkg/deps/php
// [languages]: github.com/matzehuels/techstack/pkg/deps/languages
package deps
