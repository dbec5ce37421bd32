// Package version exposes the build version string.
package version

// version is overridden at build time via
// -ldflags "-X github.com/classdeck/classdeck/pkg/version.version=v1.2.3".
var version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return version
}
