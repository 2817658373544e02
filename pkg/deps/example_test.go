package deps_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/deps/languages"
)

func ExampleCollect() {
	root, _ := os.MkdirTemp("", "techstack-example")
	defer os.RemoveAll(root)

	_ = os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("flask==3.0.0\nrequests\n"), 0o644)
	_ = os.WriteFile(filepath.Join(root, "pom.xml"), []byte("<project><dependencies>"), 0o644)

	found := deps.Collect(root, languages.Readers(), func(r deps.Result) {
		fmt.Println("skipped:", r.Manifest)
	})
	for _, d := range found {
		fmt.Printf("%s %s (%s)\n", d.Name, d.Version, d.License)
	}
	// Output:
	// skipped: pom.xml
	// flask 3.0.0 (Check PyPI)
	// requests latest (Check PyPI)
}

func ExampleReadManifest() {
	root, _ := os.MkdirTemp("", "techstack-example")
	defer os.RemoveAll(root)

	_ = os.WriteFile(filepath.Join(root, "tools.txt"), []byte("ignored"), 0o644)

	res := deps.ReadManifest(root, "tools.txt", func(_ string, data []byte) ([]deps.Dependency, error) {
		return []deps.Dependency{{Name: "tool", Version: deps.VersionLatest, License: deps.LicenseUnknown}}, nil
	})
	fmt.Println(res.Present, res.Failed(), len(res.Dependencies))
	// Output:
	// true false 1
}
