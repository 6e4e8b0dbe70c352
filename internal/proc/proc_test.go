package proc

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

// TestHelperProcess is not a real test. It is the child process for the
// tests below, selected through WDBIN_HELPER_PROCESS.
func TestHelperProcess(t *testing.T) {
	mode := os.Getenv("WDBIN_HELPER_PROCESS")
	if mode == "" {
		return
	}
	switch mode {
	case "version":
		fmt.Fprintln(os.Stdout, "FakeDriver 114.0.5735.90 (deadbeef)")
		os.Exit(0)
	case "stderr":
		fmt.Fprintln(os.Stderr, "FakeDriver 2.46")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "locked")
		os.Exit(3)
	case "sleep":
		time.Sleep(5 * time.Second)
		os.Exit(0)
	}
	os.Exit(0)
}

func helperRunner(mode string) *ExecRunner {
	env := append(os.Environ(), "WDBIN_HELPER_PROCESS="+mode)
	return &ExecRunner{Env: env}
}

func helperArgs() []string {
	return []string{"-test.run=TestHelperProcess"}
}

func TestExecRunner_Stdout(t *testing.T) {
	res, err := helperRunner("version").Run(context.Background(), 0, os.Args[0], helperArgs()...)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Output(), "114.0.5735.90") {
		t.Errorf("Output() = %q, want version banner", res.Output())
	}
}

func TestExecRunner_Stderr(t *testing.T) {
	res, err := helperRunner("stderr").Run(context.Background(), 0, os.Args[0], helperArgs()...)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(res.Output(), "2.46") {
		t.Errorf("Output() = %q, want stderr banner", res.Output())
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	res, err := helperRunner("fail").Run(context.Background(), 0, os.Args[0], helperArgs()...)
	if err == nil {
		t.Fatal("Run() error = nil, want exit error")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "locked") {
		t.Errorf("Stderr = %q, want captured output", res.Stderr)
	}
}

func TestExecRunner_Timeout(t *testing.T) {
	start := time.Now()
	_, err := helperRunner("sleep").Run(context.Background(), 200*time.Millisecond, os.Args[0], helperArgs()...)
	if err == nil {
		t.Fatal("Run() error = nil, want timeout")
	}
	if elapsed := time.Since(start); elapsed > 4*time.Second {
		t.Errorf("Run() took %v, want it bounded by the timeout", elapsed)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	res, err := NewExecRunner().Run(context.Background(), time.Second, "/nonexistent/wdbin-test-binary", "--version")
	if err == nil {
		t.Fatal("Run() error = nil, want start failure")
	}
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1 for a process that never started", res.ExitCode)
	}
}

func TestResult_Output(t *testing.T) {
	tests := []struct {
		res  Result
		want string
	}{
		{Result{Stdout: "a"}, "a"},
		{Result{Stderr: "b"}, "b"},
		{Result{Stdout: "a", Stderr: "b"}, "a\nb"},
		{Result{}, ""},
	}
	for _, tt := range tests {
		if got := tt.res.Output(); got != tt.want {
			t.Errorf("Output() = %q, want %q", got, tt.want)
		}
	}
}
