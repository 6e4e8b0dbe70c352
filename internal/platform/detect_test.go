package platform

import (
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   Code
	}{
		{"windows", "386", Win32},
		{"windows", "amd64", Win64},
		{"windows", "arm64", Win64},
		{"linux", "386", Linux32},
		{"linux", "arm", Linux32},
		{"linux", "amd64", Linux64},
		{"linux", "arm64", LinuxArm64},
		{"darwin", "amd64", Mac64},
		{"darwin", "arm64", MacArm64},

		// Aliases
		{"Linux", "x86_64", Linux64},
		{"macos", "aarch64", MacArm64},
		{"win", "x64", Win64},
		{" linux ", "i686", Linux32},

		// No driver builds
		{"freebsd", "amd64", Unknown},
		{"linux", "riscv64", Unknown},
		{"plan9", "386", Unknown},
		{"", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			if got := Detect(tt.goos, tt.goarch); got != tt.want {
				t.Errorf("Detect(%q, %q) = %q, want %q", tt.goos, tt.goarch, got, tt.want)
			}
		})
	}
}

func TestCurrent_MatchesDetect(t *testing.T) {
	if got, want := Current(), Detect(runtime.GOOS, runtime.GOARCH); got != want {
		t.Errorf("Current() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	for _, c := range Codes() {
		got, ok := Parse(string(c))
		if !ok || got != c {
			t.Errorf("Parse(%q) = %q, %v; want %q, true", c, got, ok, c)
		}
	}

	if got, ok := Parse(" WIN64 "); !ok || got != Win64 {
		t.Errorf("Parse(\" WIN64 \") = %q, %v; want win64, true", got, ok)
	}

	for _, s := range []string{"", "mac", "linux", "windows", "../etc"} {
		if _, ok := Parse(s); ok {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestCode_Families(t *testing.T) {
	for _, c := range Codes() {
		n := 0
		if c.IsWindows() {
			n++
		}
		if c.IsMac() {
			n++
		}
		if c.IsLinux() {
			n++
		}
		if n != 1 {
			t.Errorf("code %q belongs to %d families, want exactly 1", c, n)
		}
	}
	if Unknown.IsWindows() || Unknown.IsMac() || Unknown.IsLinux() {
		t.Error("Unknown should not belong to any family")
	}
	if Unknown.String() != "unknown" {
		t.Errorf("Unknown.String() = %q, want %q", Unknown.String(), "unknown")
	}
}
