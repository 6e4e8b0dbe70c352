// Package cmd contains build-time variables injected via ldflags.
package cmd

// Build-time variables set via ldflags, for example:
//
//	go build -ldflags "-X github.com/thoreinstein/wdbin/cmd.Version=v0.3.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
