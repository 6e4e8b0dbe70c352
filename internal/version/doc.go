// Package version holds the version string helpers shared by the driver and
// browser resolvers: extraction from noisy tool output, major version tokens,
// constraint validation and the ordered browser-to-driver version map.
//
// Version strings are plain strings. The empty string means "unresolved";
// any other value returned by this package is trimmed.
package version
