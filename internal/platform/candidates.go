package platform

import "strings"

// PathStrategy expands a resolved binary path into the candidate paths to
// query for a version. The first element is always the path itself.
type PathStrategy func(path string) []string

// strategies holds the per-code path expansion. Codes without an entry use
// identityPaths.
var strategies = map[Code]PathStrategy{
	Win32: escapedBackslashPaths,
	Win64: escapedBackslashPaths,
}

// Candidates returns the candidate binary paths for code.
func Candidates(code Code, path string) []string {
	if s, ok := strategies[code]; ok {
		return s(path)
	}
	return identityPaths(path)
}

func identityPaths(path string) []string {
	return []string{path}
}

// escapedBackslashPaths adds a variant with every backslash doubled for shells
// and argument parsers that consume one level of escaping.
func escapedBackslashPaths(path string) []string {
	escaped := strings.ReplaceAll(path, `\`, `\\`)
	if escaped == path {
		return []string{path}
	}
	return []string{path, escaped}
}
