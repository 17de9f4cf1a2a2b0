// Package version reports the build version embedded by the Go toolchain.
package version

import "runtime/debug"

// Get returns the module version from build info, or a placeholder for
// builds without it (e.g. go run).
func Get() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(unknown version)"
}
