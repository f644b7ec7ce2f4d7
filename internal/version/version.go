// Package version provides version information for errorprone-sl.
package version

import (
	"fmt"
	"runtime"
)

// Build information set by ldflags during build.
// These are set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// ErrorProneVersion is the Error Prone compiler release projects are pinned to.
const ErrorProneVersion = "2.3.1"

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("errorprone-sl %s (commit: %s, built: %s, %s, error prone %s)",
		Version, Commit, Date, GoVersion, ErrorProneVersion)
}

// Short returns just the version string.
func Short() string {
	return Version
}
