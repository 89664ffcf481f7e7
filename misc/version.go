// Package misc keeps small helpers needed across the program.
package misc

import (
	"runtime/debug"
)

var (
	appName = "grt"
	// LastGitCommit is used during build to inject git hash, see Taskfile.
	LastGitCommit string
)

// GetAppName returns application name to be used in logs, reports and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version from build info.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns git hash of the commit program was built from.
func GetGitHash() string {
	if len(LastGitCommit) > 0 {
		return LastGitCommit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
