// Package build holds build-time information.
package build

// Version information. Overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
