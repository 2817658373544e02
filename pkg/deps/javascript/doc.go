// Package javascript reads npm package.json manifests.
//
// # Overview
//
// [PackageJSON] merges the "dependencies" and "devDependencies" objects in
// document order. When a name appears in both, the devDependencies version
// wins but the entry keeps its original position.
//
// # Licenses
//
// This is the only reader that reports real license values. For each
// dependency it looks for an installed copy at
// node_modules/<name>/package.json and reads its "license" field, accepting
// both the SPDX string form and the legacy {"type": "MIT"} object form:
//
//	lic := javascript.InstalledLicense(root, "react") // "MIT" or "Unknown"
//
// No registry is contacted; a package that is not installed reports
// [deps.LicenseUnknown].
//
// [deps.LicenseUnknown]: github.com/matzehuels/techstack/pkg/deps.LicenseUnknown
package javascript
