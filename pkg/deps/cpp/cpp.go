// Package cpp reads C and C++ dependency declarations: find_package calls
// in CMakeLists.txt and the vcpkg.json manifest.
//
// Neither source carries licensing information, so records use the
// [CMakeLicenseHint] and [VcpkgLicenseHint] placeholders.
package cpp

const (
	// CMakeLicenseHint is the placeholder license for find_package results.
	CMakeLicenseHint = "Check system package"
	// VcpkgLicenseHint is the placeholder license for vcpkg ports.
	VcpkgLicenseHint = "Check vcpkg registry"
)
