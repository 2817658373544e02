package java

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/techstack/pkg/deps"
)

// Namespace is the XML namespace of Maven POM 4.0.0 descriptors.
const Namespace = "http://maven.apache.org/POM/4.0.0"

var (
	namespacedPath = etree.MustCompilePath("//dependency[namespace-uri()='" + Namespace + "']")
	anyPath        = etree.MustCompilePath("//dependency")
)

// POM reads pom.xml files.
type POM struct{}

func (p *POM) Type() string { return "pom.xml" }

func (p *POM) Read(root string) deps.Result {
	return deps.ReadManifest(root, p.Type(), parsePOM)
}

func parsePOM(_ string, data []byte) ([]deps.Dependency, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	elems := doc.FindElementsPath(namespacedPath)
	if len(elems) == 0 {
		elems = doc.FindElementsPath(anyPath)
	}

	out := make([]deps.Dependency, 0, len(elems))
	for _, e := range elems {
		out = append(out, dependency(e))
	}
	return out, nil
}

func dependency(e *etree.Element) deps.Dependency {
	name := deps.NameUnknown
	group, artifact := e.SelectElement("groupId"), e.SelectElement("artifactId")
	if group != nil && artifact != nil {
		name = text(group) + ":" + text(artifact)
	}

	version := deps.VersionManaged
	if v := e.SelectElement("version"); v != nil {
		version = text(v)
	}

	return deps.Dependency{Name: name, Version: version, License: LicenseHint}
}

func text(e *etree.Element) string {
	return strings.TrimSpace(e.Text())
}
