package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/preset"
)

// Output colours. fatih/color disables them when stdout is not a terminal
// or NO_COLOR is set.
var (
	colorOK    = color.New(color.FgGreen)
	colorInfo  = color.New(color.FgCyan)
	colorWarn  = color.New(color.FgYellow)
	colorError = color.New(color.FgRed, color.Bold)
	colorLabel = color.New(color.Bold)
	colorMuted = color.New(color.FgHiBlack)
)

func presetList() string {
	return strings.Join(preset.Names(), ", ")
}

// Report prints err with its suggestion to w and returns the process exit
// code for it. Doctor outcomes have already been printed and only set the
// exit code.
func Report(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	switch {
	case errors.Is(err, errDoctorErrors):
		return errors.ExitSystem
	case errors.Is(err, errDoctorWarnings):
		return errors.ExitUser
	}

	exitErr := errors.Classify(err)
	if exitErr.Err != nil {
		fmt.Fprintf(w, "%s %v\n", colorError.Sprint("Error:"), exitErr.Err)
	}
	if exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", colorMuted.Sprint("hint:"), exitErr.Suggestion)
	}
	return exitErr.Code
}

// valueOr returns v, or a muted placeholder when v is empty.
func valueOr(v, placeholder string) string {
	if v == "" {
		return colorMuted.Sprint(placeholder)
	}
	return v
}
