// Package php reads Composer manifests (composer.json).
//
// Packages from "require" and "require-dev" are merged in document order,
// with require-dev winning on collision. Platform requirements (php itself
// and ext-* extensions) are not packages and are skipped. Licenses live on
// Packagist, which is never contacted, so every record carries the
// [LicenseHint] placeholder.
package php

// LicenseHint is the placeholder license for Composer packages.
const LicenseHint = "Check Packagist"
