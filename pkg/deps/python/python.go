// Package python reads Python dependency manifests: requirements.txt and
// pyproject.toml (PEP 621 and Poetry layouts).
//
// Python package licenses live on PyPI, which is never contacted, so every
// record carries the [LicenseHint] placeholder.
package python

// LicenseHint is the placeholder license for Python dependencies.
const LicenseHint = "Check PyPI"
