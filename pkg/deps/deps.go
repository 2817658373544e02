package deps

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/techstack/pkg/errors"
)

// Version sentinels used when a manifest does not pin an explicit version.
const (
	VersionLatest  = "latest"  // Unpinned requirement
	VersionManaged = "Managed" // Version inherited from a parent/BOM
	VersionNone    = "N/A"     // Build-script discovery carries no version
	VersionVcpkg   = "vcpkg"   // Version resolved by the vcpkg baseline
)

// LicenseUnknown is reported when a license lookup finds nothing.
const LicenseUnknown = "Unknown"

// NameUnknown is used when a manifest entry has no usable identifier.
const NameUnknown = "Unknown"

// Dependency is one declared dependency, normalized across ecosystems.
type Dependency struct {
	Name    string `json:"name" yaml:"name"`       // Ecosystem-native identifier
	Version string `json:"version" yaml:"version"` // Literal version or a Version* sentinel
	License string `json:"license" yaml:"license"` // Discovered license or registry placeholder
}

// Result is the outcome of running one Reader against a project root.
//
// A Result with a nil Err and no Dependencies means the manifest was absent
// or declared nothing. A non-nil Err means the manifest was present but could
// not be parsed; Dependencies is always empty in that case.
type Result struct {
	Manifest     string       // Manifest filename the reader looked for
	Present      bool         // Whether the manifest existed in the root
	Dependencies []Dependency // Records in manifest order
	Err          error        // Captured parse failure, never propagated
}

// Failed reports whether the reader hit a parse failure.
func (r Result) Failed() bool { return r.Err != nil }

// ParseFunc turns raw manifest bytes into dependency records. root is the
// project root, for readers that consult files next to the manifest.
type ParseFunc func(root string, data []byte) ([]Dependency, error)

// ReadManifest loads root/name and hands its contents to parse. A missing
// file yields an empty Result; any read or parse failure is captured in
// Result.Err and the records are dropped.
func ReadManifest(root, name string, parse ParseFunc) Result {
	res := Result{Manifest: name}

	path := filepath.Join(root, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return res
	}
	res.Present = true

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", name)
		return res
	}

	found, err := parse(root, data)
	if err != nil {
		res.Err = errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", name)
		return res
	}
	res.Dependencies = found
	return res
}
