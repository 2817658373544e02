package javascript

import (
	"github.com/valyala/fastjson"

	"github.com/matzehuels/techstack/pkg/deps"
)

// PackageJSON reads package.json files. It merges dependencies and
// devDependencies (devDependencies win on collision) and resolves each
// license from the locally installed copy under node_modules.
type PackageJSON struct{}

func (p *PackageJSON) Type() string { return "package.json" }

func (p *PackageJSON) Read(root string) deps.Result {
	return deps.ReadManifest(root, p.Type(), parsePackageJSON)
}

func parsePackageJSON(root string, data []byte) ([]deps.Dependency, error) {
	doc, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	entries, err := deps.MergeObjects(doc, "dependencies", "devDependencies")
	if err != nil {
		return nil, err
	}

	out := make([]deps.Dependency, 0, len(entries))
	for _, e := range entries {
		out = append(out, deps.Dependency{
			Name:    e.Key,
			Version: deps.StringValue(e.Value),
			License: InstalledLicense(root, e.Key),
		})
	}
	return out, nil
}
