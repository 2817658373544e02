package cpp

import (
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/matzehuels/techstack/pkg/deps"
)

// Vcpkg reads vcpkg.json manifests. Entries of the "dependencies" array are
// either port names or objects with a "name" field. Versions come from the
// vcpkg baseline, so each record reports [deps.VersionVcpkg].
type Vcpkg struct{}

func (v *Vcpkg) Type() string { return "vcpkg.json" }

func (v *Vcpkg) Read(root string) deps.Result {
	return deps.ReadManifest(root, v.Type(), parseVcpkg)
}

func parseVcpkg(_ string, data []byte) ([]deps.Dependency, error) {
	doc, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	if doc.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("top-level value is %s, want object", doc.Type())
	}

	list := doc.Get("dependencies")
	if list == nil {
		return nil, nil
	}
	entries, err := list.Array()
	if err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}

	out := make([]deps.Dependency, 0, len(entries))
	for _, e := range entries {
		out = append(out, deps.Dependency{
			Name:    portName(e),
			Version: deps.VersionVcpkg,
			License: VcpkgLicenseHint,
		})
	}
	return out, nil
}

func portName(e *fastjson.Value) string {
	switch e.Type() {
	case fastjson.TypeString:
		return string(e.GetStringBytes())
	case fastjson.TypeObject:
		if name := e.Get("name"); name != nil {
			return deps.StringValue(name)
		}
	}
	return deps.NameUnknown
}
