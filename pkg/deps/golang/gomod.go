package golang

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/matzehuels/techstack/pkg/deps"
)

// directives that never name a required module when seen inside a block or
// as an indented line.
var reserved = map[string]bool{
	"module":  true,
	"go":      true,
	"replace": true,
	"exclude": true,
	")":       true,
}

// GoMod reads go.mod files. Requirements are taken from "require (...)"
// blocks and single-line "require path version" directives. Lines inside
// other blocks (replace, exclude, retract) are ignored.
type GoMod struct{}

func (p *GoMod) Type() string { return "go.mod" }

func (p *GoMod) Read(root string) deps.Result {
	return deps.ReadManifest(root, p.Type(), parseGoMod)
}

func parseGoMod(_ string, data []byte) ([]deps.Dependency, error) {
	var out []deps.Dependency
	inRequire, inOther := false, false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		raw := scanner.Text()
		line := raw
		if idx := strings.Index(line, "//"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case line == "require (" || line == "require(":
			inRequire = true
			continue
		case line == ")":
			inRequire, inOther = false, false
			continue
		case strings.HasSuffix(line, "(") && !inRequire:
			inOther = true
			continue
		case fields[0] == "require" && len(fields) >= 3:
			out = append(out, module(fields[1], fields[2]))
			continue
		}

		if inOther {
			continue
		}
		indented := raw != "" && (raw[0] == ' ' || raw[0] == '\t')
		if (inRequire || indented) && len(fields) >= 2 && !reserved[fields[0]] {
			out = append(out, module(fields[0], fields[1]))
		}
	}

	return out, scanner.Err()
}

func module(path, version string) deps.Dependency {
	return deps.Dependency{Name: path, Version: version, License: LicenseHint}
}
