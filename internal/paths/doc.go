// Package paths provides the directory layout of wdbin and the path helpers
// used when locating driver binaries.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance:
//
//	paths.ConfigDir()        // <ConfigHome>/wdbin, or $WDBIN_CONFIG_DIR
//	paths.DefaultBinaryDir() // <DataHome>/wdbin/bin
//	paths.CacheDir()         // <CacheHome>/wdbin
//
// # Driver Paths
//
// [Compose] joins a binary directory and an executable name, expanding a
// leading "~". [Canonical] turns the result into an absolute path with
// symlinks resolved; a path that does not exist yet is still returned in
// absolute form so that later polling fails gracefully instead of the
// resolution aborting.
package paths
