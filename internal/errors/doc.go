// Package errors provides error handling conventions for the wdbin CLI.
//
// This package defines sentinel errors for the terminal failure conditions of
// version resolution, an ExitError type for CLI exit code handling, and thin
// re-exports of github.com/cockroachdb/errors so callers can wrap, mark and
// annotate errors without importing two packages named errors.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrPlatformUnsupported) {
//	    // instruct the user to download the driver manually
//	}
//
// Only three resolution failures are terminal: [ErrPlatformUnsupported],
// [ErrPackageNotFound] and [ErrInvalidVersion]. Failed process polls and
// failed remote fetches never surface as errors.
//
// # Hints
//
// Terminal errors carry an operator hint attached with [WithHint]. Use
// [GetAllHints] to print them:
//
//	for _, h := range errors.GetAllHints(err) {
//	    fmt.Fprintln(os.Stderr, "hint:", h)
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, network, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check your config file")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
