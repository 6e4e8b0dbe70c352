package platform

import (
	"runtime"
	"strings"
)

// hostKey is a normalised GOOS/GOARCH pair.
type hostKey struct {
	os   string
	arch string
}

var hostCodes = map[hostKey]Code{
	{"windows", "386"}:   Win32,
	{"windows", "amd64"}: Win64,
	{"windows", "arm64"}: Win64, // x64 emulation
	{"linux", "386"}:     Linux32,
	{"linux", "arm"}:     Linux32,
	{"linux", "amd64"}:   Linux64,
	{"linux", "arm64"}:   LinuxArm64,
	{"darwin", "amd64"}:  Mac64,
	{"darwin", "arm64"}:  MacArm64,
}

// Detect maps an operating system and architecture pair, as reported by
// runtime.GOOS and runtime.GOARCH or common aliases of them, to a Code.
// Combinations without driver builds map to Unknown.
func Detect(goos, goarch string) Code {
	key := hostKey{os: normalizeOS(goos), arch: normalizeArch(goarch)}
	if code, ok := hostCodes[key]; ok {
		return code
	}
	return Unknown
}

// Current returns the Code for the running process.
func Current() Code {
	return Detect(runtime.GOOS, runtime.GOARCH)
}

func normalizeOS(goos string) string {
	switch s := strings.ToLower(strings.TrimSpace(goos)); s {
	case "win", "win32", "windows":
		return "windows"
	case "macos", "osx", "darwin":
		return "darwin"
	default:
		return s
	}
}

func normalizeArch(goarch string) string {
	switch s := strings.ToLower(strings.TrimSpace(goarch)); s {
	case "x86_64", "x64":
		return "amd64"
	case "i386", "i486", "i586", "i686", "x86":
		return "386"
	case "aarch64":
		return "arm64"
	case "armv6l", "armv7l":
		return "arm"
	default:
		return s
	}
}
