package platform

import "strings"

// Code identifies an operating system and architecture combination.
type Code string

// Supported platform codes.
const (
	Unknown    Code = ""
	Win32      Code = "win32"
	Win64      Code = "win64"
	Linux32    Code = "linux32"
	Linux64    Code = "linux64"
	LinuxArm64 Code = "linux-arm64"
	Mac64      Code = "mac64"
	MacArm64   Code = "mac-arm64"
)

// Codes returns every supported platform code in a stable order.
func Codes() []Code {
	return []Code{
		Win32,
		Win64,
		Linux32,
		Linux64,
		LinuxArm64,
		Mac64,
		MacArm64,
	}
}

// Parse returns the Code for s. Matching is case-insensitive and ignores
// surrounding whitespace. The second return value is false for unknown codes.
func Parse(s string) (Code, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Codes() {
		if string(c) == s {
			return c, true
		}
	}
	return Unknown, false
}

// String returns the code as written in configuration files.
func (c Code) String() string {
	if c == Unknown {
		return "unknown"
	}
	return string(c)
}

// IsWindows reports whether c is a Windows platform code.
func (c Code) IsWindows() bool {
	return c == Win32 || c == Win64
}

// IsMac reports whether c is a macOS platform code.
func (c Code) IsMac() bool {
	return c == Mac64 || c == MacArm64
}

// IsLinux reports whether c is a Linux platform code.
func (c Code) IsLinux() bool {
	return c == Linux32 || c == Linux64 || c == LinuxArm64
}
