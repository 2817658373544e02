package python

import (
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/techstack/pkg/deps"
)

var depNameRE = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)`)

// Pyproject reads pyproject.toml files. PEP 621 [project].dependencies come
// first, followed by [tool.poetry.dependencies] and every
// [tool.poetry.group.<name>.dependencies] table in document order. The
// "python" interpreter constraint is not a dependency and is skipped.
type Pyproject struct{}

func (p *Pyproject) Type() string { return "pyproject.toml" }

func (p *Pyproject) Read(root string) deps.Result {
	return deps.ReadManifest(root, p.Type(), parsePyproject)
}

func parsePyproject(_ string, data []byte) ([]deps.Dependency, error) {
	var doc map[string]any
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}

	var out []deps.Dependency

	if reqs, ok := lookup(doc, "project", "dependencies").([]any); ok {
		for _, r := range reqs {
			s, ok := r.(string)
			if !ok {
				continue
			}
			if d, ok := parseRequirementString(s); ok {
				out = append(out, d)
			}
		}
	}

	for _, key := range meta.Keys() {
		poetry := len(key) == 4 && key[0] == "tool" && key[1] == "poetry" && key[2] == "dependencies"
		group := len(key) == 6 && key[0] == "tool" && key[1] == "poetry" && key[2] == "group" && key[4] == "dependencies"
		if !poetry && !group {
			continue
		}
		name := key[len(key)-1]
		if strings.EqualFold(name, "python") {
			continue
		}
		out = append(out, deps.Dependency{
			Name:    name,
			Version: poetryVersion(lookup(doc, key...)),
			License: LicenseHint,
		})
	}

	return out, nil
}

// parseRequirementString splits a PEP 508 string such as
// "requests[socks]>=2.28; python_version<'3.11'" into name and specifier.
func parseRequirementString(s string) (deps.Dependency, bool) {
	s = strings.TrimSpace(s)
	m := depNameRE.FindString(s)
	if m == "" {
		return deps.Dependency{}, false
	}
	rest := s[len(m):]
	if before, _, ok := strings.Cut(rest, ";"); ok {
		rest = before
	}
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "[") {
		if i := strings.Index(rest, "]"); i >= 0 {
			rest = strings.TrimSpace(rest[i+1:])
		}
	}
	version := rest
	if version == "" {
		version = deps.VersionLatest
	}
	return deps.Dependency{Name: m, Version: version, License: LicenseHint}, true
}

func poetryVersion(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["version"].(string); ok {
			return s
		}
	}
	return deps.VersionLatest
}

func lookup(m map[string]any, path ...string) any {
	var cur any = m
	for _, p := range path {
		tbl, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = tbl[p]
	}
	return cur
}
