package cli

import "github.com/rileyhilliard/nvh/internal/engine"

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func buildInfo() engine.BuildInfo {
	return engine.BuildInfo{Version: version, Commit: commit, Date: date}
}
