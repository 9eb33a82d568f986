// Package build holds build-time information.
package build

// These default to "dev"/"unknown" and are overwritten by linker flags.
var (
	// Version is the application version.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
