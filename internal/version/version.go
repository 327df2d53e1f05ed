// Package version carries build metadata, stamped at link time with e.g.
//
//	go build -ldflags "-X eggpaint/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String formats the metadata for the startup log line.
func String() string {
	return fmt.Sprintf("v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
