// Package version exposes the build version of the footprint binary.
package version

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/rshade/footprint/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = "dev"

// GetVersion returns the version string baked into the binary, or "dev".
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}
