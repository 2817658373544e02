// Package golang reads Go module manifests (go.mod).
//
// Both direct and "// indirect" requirements are reported. Module licenses
// are published on pkg.go.dev, which is never contacted, so every record
// carries the [LicenseHint] placeholder.
package golang

// LicenseHint is the placeholder license for Go modules.
const LicenseHint = "Check pkg.go.dev"
