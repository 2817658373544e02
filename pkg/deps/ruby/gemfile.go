package ruby

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/matzehuels/techstack/pkg/deps"
)

// gem 'name'[, 'constraint']
var gemPattern = regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)

// Gemfile reads Gemfile manifests. Duplicate declarations (for example the
// same gem in two groups) are reported once, at their first position.
type Gemfile struct{}

func (g *Gemfile) Type() string { return "Gemfile" }

func (g *Gemfile) Read(root string) deps.Result {
	return deps.ReadManifest(root, g.Type(), parseGemfile)
}

func parseGemfile(_ string, data []byte) ([]deps.Dependency, error) {
	var out []deps.Dependency
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		match := gemPattern.FindStringSubmatch(line)
		if match == nil || seen[match[1]] {
			continue
		}
		seen[match[1]] = true

		version := match[2]
		if version == "" {
			version = deps.VersionLatest
		}
		out = append(out, deps.Dependency{Name: match[1], Version: version, License: LicenseHint})
	}

	return out, scanner.Err()
}
