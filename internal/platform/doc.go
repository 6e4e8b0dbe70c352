// Package platform identifies the host operating system and architecture as
// a closed set of platform codes used to select driver file names.
//
// # Platform Detection
//
// Use [Current] to get the code for the running process:
//
//	code := platform.Current()
//	if code == platform.Unknown {
//	    fmt.Println("no driver builds exist for this host")
//	}
//
// [Detect] is the pure mapping from GOOS/GOARCH pairs and is what tests use.
// Unrecognised combinations map to [Unknown] rather than an error so that
// callers can report "no support" without special casing.
//
// # Candidate Paths
//
// [Candidates] expands a resolved binary path into the list of paths the
// version poller should try. The expansion is table driven per code: Windows
// codes add a variant with doubled backslashes for argument contexts that
// unescape once, every other code returns the path unchanged.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
package platform
