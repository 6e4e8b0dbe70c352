// Package editor launches the user's preferred text editor on a config file.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/wdbin/internal/errors"
)

// Editor runs an interactive editor attached to the given streams.
type Editor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv and LookPath default to the process environment and
	// exec.LookPath.
	Getenv   func(string) string
	LookPath func(string) (string, error)
}

// New returns an Editor attached to the process's standard streams.
func New() *Editor {
	return &Editor{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
	}
}

// Command returns the editor invocation for path. $EDITOR wins over
// $VISUAL; both may carry arguments, as in "code --wait". Without either,
// nano is used when installed and vi otherwise.
func (e *Editor) Command(path string) []string {
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(e.getenv(key)); len(fields) > 0 {
			return append(fields, path)
		}
	}
	if _, err := e.lookPath("nano"); err == nil {
		return []string{"nano", path}
	}
	return []string{"vi", path}
}

// Open edits path and waits for the editor to exit.
func (e *Editor) Open(ctx context.Context, path string) error {
	argv := e.Command(path)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

func (e *Editor) getenv(key string) string {
	if e.Getenv == nil {
		return os.Getenv(key)
	}
	return e.Getenv(key)
}

func (e *Editor) lookPath(file string) (string, error) {
	if e.LookPath == nil {
		return exec.LookPath(file)
	}
	return e.LookPath(file)
}
