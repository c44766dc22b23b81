// Package version stamps log lines and user agents with the build identity.
package version

import "runtime/debug"

// AppName is the service name as it appears in version strings.
const AppName = "stanley"

// commitOverride is injected with -ldflags for container builds that
// compile outside a git checkout.
var commitOverride string

// Commit is the short VCS revision, or "dev" when the binary was built
// without version control metadata (go test, stripped builds).
var Commit = resolveCommit()

// Full returns "stanley/<commit>", the canonical identity string for
// startup logs and outbound user agents.
func Full() string {
	return AppName + "/" + Commit
}

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
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
