package cpp

import (
	"regexp"

	"github.com/matzehuels/techstack/pkg/deps"
)

var findPackageRE = regexp.MustCompile(`(?i)find_package\s*\(\s*([^\s)]+)`)

// CMakeLists reads CMakeLists.txt build scripts. Every find_package call in
// the file yields one record named after its first argument; commented-out
// calls are matched too. CMake does not pin versions, so each record
// reports [deps.VersionNone].
type CMakeLists struct{}

func (c *CMakeLists) Type() string { return "CMakeLists.txt" }

func (c *CMakeLists) Read(root string) deps.Result {
	return deps.ReadManifest(root, c.Type(), parseCMake)
}

func parseCMake(_ string, data []byte) ([]deps.Dependency, error) {
	matches := findPackageRE.FindAllSubmatch(data, -1)
	out := make([]deps.Dependency, 0, len(matches))
	for _, m := range matches {
		out = append(out, deps.Dependency{
			Name:    string(m[1]),
			Version: deps.VersionNone,
			License: CMakeLicenseHint,
		})
	}
	return out, nil
}
