// Package version exposes the build-time version of the relver binary.
package version

// version is overridden at build time via
// -ldflags "-X github.com/calebzulawski/relver/internal/version.version=...".
var version = "0.1.0"

// GetVersion returns the current relver version.
func GetVersion() string {
	return version
}
