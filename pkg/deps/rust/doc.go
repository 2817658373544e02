// Package rust reads Cargo manifests (Cargo.toml).
//
// Dependencies are taken from the [dependencies] and [dev-dependencies]
// tables. Crate licenses live on crates.io, which is never contacted, so
// every record carries the [LicenseHint] placeholder.
package rust

// LicenseHint is the placeholder license for Rust crates.
const LicenseHint = "Check crates.io"
