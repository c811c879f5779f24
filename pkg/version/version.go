// Package version exposes the application version derived from build metadata.
package version

import "runtime/debug"

// AppName is the application name used in version strings and user agents.
const AppName = "vigil"

// gitCommitOverride is set via -ldflags at build time for container builds
// where .git is unavailable.
var gitCommitOverride string

// GitCommit is the short git commit hash, or "dev" when no VCS info is
// available (go test, non-git builds).
var GitCommit = resolveCommit()

// Full returns "vigil/<commit>" for use in user-agent strings and logging.
func Full() string {
	return AppName + "/" + GitCommit
}

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
