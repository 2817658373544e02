package rust

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/techstack/pkg/deps"
)

var sections = map[string]bool{
	"dependencies":     true,
	"dev-dependencies": true,
}

// CargoToml reads Cargo.toml files.
//
// Each "name = value" line below a [dependencies] or [dev-dependencies]
// heading, up to the next bracketed heading, is one record; the version is
// the value with surrounding quotes removed. Inline tables such as
// `serde = { version = "1.0", features = ["derive"] }` report their version
// key, or [deps.VersionLatest] when they have none (path and git crates).
// Expanded tables like [dependencies.serde] are reported the same way.
type CargoToml struct{}

func (c *CargoToml) Type() string { return "Cargo.toml" }

func (c *CargoToml) Read(root string) deps.Result {
	return deps.ReadManifest(root, c.Type(), parseCargo)
}

func parseCargo(_ string, data []byte) ([]deps.Dependency, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}

	var out []deps.Dependency
	section := ""

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			section = heading(line)
			if table, name, ok := strings.Cut(section, "."); ok && sections[table] {
				out = append(out, crate(name, version(doc, table, name)))
			}
			continue
		}
		if !sections[section] {
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if strings.HasPrefix(value, "{") {
			value = version(doc, section, name)
		}
		out = append(out, crate(name, value))
	}

	return out, scanner.Err()
}

// heading returns the table name of a "[name]" line with any trailing
// comment removed.
func heading(line string) string {
	if idx := strings.Index(line, "#"); idx != -1 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "[")
	line = strings.TrimSuffix(line, "]")
	return strings.TrimSpace(line)
}

// version looks up the "version" key of the table doc[section][name].
func version(doc map[string]any, section, name string) string {
	tbl, _ := doc[section].(map[string]any)
	spec, _ := tbl[strings.Trim(name, `"'`)].(map[string]any)
	if v, ok := spec["version"].(string); ok {
		return v
	}
	return deps.VersionLatest
}

func crate(name, version string) deps.Dependency {
	return deps.Dependency{Name: name, Version: version, License: LicenseHint}
}
