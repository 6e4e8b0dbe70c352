// Package resolver queries installed driver binaries for their version.
package resolver

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/logging"
	"github.com/thoreinstein/wdbin/internal/proc"
	"github.com/thoreinstein/wdbin/internal/version"
)

// DefaultArgs are passed to a driver binary when polling does not set any.
var DefaultArgs = []string{"--version"}

var errNoVersion = errors.New("no candidate reported a version")

// Poller runs candidate binaries until one reports a version.
type Poller struct {
	Runner proc.Runner
}

// NewPoller returns a Poller backed by runner.
func NewPoller(runner proc.Runner) *Poller {
	return &Poller{Runner: runner}
}

// PollForVersion runs each candidate in order, up to polling.MaxAttempts
// rounds separated by polling.Delay. The first candidate that exits zero with
// output matching polling.Pattern wins and its match is returned.
//
// Failure is reported as "", never as an error: a missing or broken binary
// simply has no installed version.
func (p *Poller) PollForVersion(ctx context.Context, candidates []string, polling config.Polling) string {
	if len(candidates) == 0 {
		return ""
	}
	logger := logging.FromContext(ctx)

	re, err := version.CompilePattern(polling.Pattern)
	if err != nil {
		logger.Debug("invalid polling pattern", "pattern", polling.Pattern, "error", err)
		return ""
	}
	args := polling.Args
	if len(args) == 0 {
		args = DefaultArgs
	}
	attempts := max(polling.MaxAttempts, 1)
	delay := max(polling.Delay, 0)

	var (
		found string
		round int
	)
	op := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		round++
		for _, candidate := range candidates {
			if v := p.probe(ctx, logger, candidate, args, polling.Timeout, re, round); v != "" {
				found = v
				return nil
			}
		}
		return errNoVersion
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(attempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, b); err != nil {
		logger.Debug("driver version not found", "candidates", candidates, "attempts", round, "error", err)
	}
	return found
}

func (p *Poller) probe(ctx context.Context, logger *slog.Logger, candidate string, args []string, timeout time.Duration, re *regexp.Regexp, round int) string {
	res, err := p.Runner.Run(ctx, timeout, candidate, args...)
	if err != nil {
		logger.Debug("driver poll failed", "path", candidate, "attempt", round, "error", err)
		return ""
	}
	if res.ExitCode != 0 {
		logger.Debug("driver exited non-zero", "path", candidate, "attempt", round, "exit_code", res.ExitCode)
		return ""
	}
	v := version.Extract(re, res.Output())
	if v == "" {
		logger.Debug("driver output has no version", "path", candidate, "attempt", round)
	}
	return v
}
