package platform

import (
	"slices"
	"testing"
)

func TestCandidates_Windows(t *testing.T) {
	path := `C:\drivers\chromedriver.exe`
	for _, code := range []Code{Win32, Win64} {
		got := Candidates(code, path)
		want := []string{path, `C:\\drivers\\chromedriver.exe`}
		if !slices.Equal(got, want) {
			t.Errorf("Candidates(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestCandidates_WindowsWithoutBackslashes(t *testing.T) {
	got := Candidates(Win64, "C:/drivers/chromedriver.exe")
	if len(got) != 1 {
		t.Errorf("Candidates() = %q, want a single unescaped path", got)
	}
}

func TestCandidates_NeverEscapesOutsideWindows(t *testing.T) {
	path := `/opt/drivers/odd\name/chromedriver`
	codes := append(slices.DeleteFunc(Codes(), Code.IsWindows), Unknown)
	for _, code := range codes {
		got := Candidates(code, path)
		if len(got) != 1 || got[0] != path {
			t.Errorf("Candidates(%q) = %q, want [%q]", code, got, path)
		}
	}
}
