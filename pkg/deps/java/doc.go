// Package java reads Maven project descriptors (pom.xml).
//
// # Overview
//
// Every <dependency> element in the document is reported, including those
// under <dependencyManagement> and plugin declarations. Names use Maven
// coordinates, "groupId:artifactId".
//
// # Namespaces
//
// Most descriptors declare the POM 4.0.0 namespace on <project>. The reader
// first selects dependencies in that namespace; when that selection is
// empty (hand-written files, or files that mix namespaced and bare
// elements) it falls back to matching <dependency> in any namespace.
//
// # Versions and Licenses
//
// A dependency without a <version> inherits it from a parent POM or BOM and
// is reported as [deps.VersionManaged]. Licenses live on Maven Central,
// which is never contacted, so every record carries [LicenseHint].
package java

// LicenseHint is the placeholder license for Maven artifacts.
const LicenseHint = "Check Maven Central"
