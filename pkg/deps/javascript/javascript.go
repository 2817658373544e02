package javascript

import (
	"os"
	"path/filepath"

	"github.com/valyala/fastjson"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

// InstalledLicense returns the license declared by the installed copy of
// name at root/node_modules/<name>/package.json. The descriptor's "license"
// field may be a string or a legacy {"type": ...} object. Anything else,
// including a missing or unreadable descriptor, yields [deps.LicenseUnknown].
func InstalledLicense(root, name string) string {
	if errors.ValidatePackageName(name) != nil {
		return deps.LicenseUnknown
	}

	data, err := os.ReadFile(filepath.Join(root, "node_modules", filepath.FromSlash(name), "package.json"))
	if err != nil {
		return deps.LicenseUnknown
	}
	doc, err := fastjson.ParseBytes(data)
	if err != nil {
		return deps.LicenseUnknown
	}

	lic := doc.Get("license")
	if lic == nil {
		return deps.LicenseUnknown
	}
	switch lic.Type() {
	case fastjson.TypeString:
		if s := string(lic.GetStringBytes()); s != "" {
			return s
		}
	case fastjson.TypeObject:
		if s := string(lic.GetStringBytes("type")); s != "" {
			return s
		}
	}
	return deps.LicenseUnknown
}
