package php

import (
	"strings"

	"github.com/valyala/fastjson"

	"github.com/matzehuels/techstack/pkg/deps"
)

// ComposerJSON reads composer.json files.
type ComposerJSON struct{}

func (c *ComposerJSON) Type() string { return "composer.json" }

func (c *ComposerJSON) Read(root string) deps.Result {
	return deps.ReadManifest(root, c.Type(), parseComposer)
}

func parseComposer(_ string, data []byte) ([]deps.Dependency, error) {
	doc, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	entries, err := deps.MergeObjects(doc, "require", "require-dev")
	if err != nil {
		return nil, err
	}

	out := make([]deps.Dependency, 0, len(entries))
	for _, e := range entries {
		if isPlatform(e.Key) {
			continue
		}
		out = append(out, deps.Dependency{
			Name:    e.Key,
			Version: deps.StringValue(e.Value),
			License: LicenseHint,
		})
	}
	return out, nil
}

func isPlatform(name string) bool {
	return name == "php" || strings.HasPrefix(name, "php-") || strings.HasPrefix(name, "ext-")
}
