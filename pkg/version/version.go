// Package version exposes the build version of the footprint binary.
package version

// version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/carboncentrik/footprint/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Build-time injection target.
var version = "dev"

// GetVersion returns the version string embedded at build time, or "dev"
// for local builds.
func GetVersion() string {
	return version
}
