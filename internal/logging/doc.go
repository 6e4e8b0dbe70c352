// Package logging provides structured logging for the wdbin CLI using slog.
//
// Text output goes through a TTY-aware colour handler, JSON output through
// the standard library handler. A logger travels with the request context so
// that resolution code deep in the call stack logs with the settings chosen
// on the command line:
//
//	ctx = logging.NewContext(ctx, logger)
//	...
//	logging.FromContext(ctx).Debug("polling driver", "path", p)
//
// Values under secret-looking keys, values with known token prefixes and
// passwords embedded in URLs are masked before they are written.
//
// For tests, use [ForTest] to route log output through testing.T.
package logging
