package python

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/matzehuels/techstack/pkg/deps"
)

// Requirements reads pip requirements.txt files. Each non-blank,
// non-comment line is one entry, split on the first "==". Lines without a
// pin are reported as [deps.VersionLatest]; other specifiers are kept as
// part of the name, exactly as written.
type Requirements struct{}

func (r *Requirements) Type() string { return "requirements.txt" }

func (r *Requirements) Read(root string) deps.Result {
	return deps.ReadManifest(root, r.Type(), parseRequirements)
}

func parseRequirements(_ string, data []byte) ([]deps.Dependency, error) {
	var out []deps.Dependency

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, version, pinned := strings.Cut(line, "==")
		if !pinned {
			version = deps.VersionLatest
		}
		out = append(out, deps.Dependency{
			Name:    strings.TrimSpace(name),
			Version: strings.TrimSpace(version),
			License: LicenseHint,
		})
	}

	return out, scanner.Err()
}
