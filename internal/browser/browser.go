// Package browser detects the version of the installed browser.
package browser

import (
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/logging"
	"github.com/thoreinstein/wdbin/internal/platform"
	"github.com/thoreinstein/wdbin/internal/proc"
	"github.com/thoreinstein/wdbin/internal/version"
)

// LookupFunc looks up an environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Detector runs the configured browser probes for one platform.
type Detector struct {
	Code     platform.Code
	Commands []config.Command
	Pattern  string
	Timeout  time.Duration

	Runner   proc.Runner
	LookPath func(file string) (string, error)
	Env      LookupFunc
}

// NewDetector returns a Detector for code using the process environment
// and exec.LookPath.
func NewDetector(code platform.Code, cfg config.Browser, runner proc.Runner) *Detector {
	return &Detector{
		Code:     code,
		Commands: cfg.Commands[code],
		Pattern:  cfg.Pattern,
		Timeout:  cfg.Timeout,
		Runner:   runner,
		LookPath: exec.LookPath,
		Env:      os.LookupEnv,
	}
}

// DetectVersion returns the version reported by the first probe that runs
// and prints something matching the version pattern. Missing browsers,
// failing probes and unparseable output all yield "".
func (d *Detector) DetectVersion(ctx context.Context) string {
	logger := logging.FromContext(ctx)

	re, err := version.CompilePattern(d.Pattern)
	if err != nil {
		logger.Debug("invalid browser pattern", "pattern", d.Pattern, "error", err)
		return ""
	}

	for _, c := range d.Commands {
		if err := ctx.Err(); err != nil {
			return ""
		}
		path, ok := expand(c.Path, d.lookupEnv)
		if !ok || strings.TrimSpace(path) == "" {
			logger.Debug("browser probe skipped, unset variable", "path", c.Path)
			continue
		}
		args, ok := expandAll(c.Args, d.lookupEnv)
		if !ok {
			logger.Debug("browser probe skipped, unset variable", "path", c.Path, "args", c.Args)
			continue
		}

		resolved, err := d.lookPath(path)
		if err != nil {
			logger.Debug("browser not found", "path", path)
			continue
		}

		res, err := d.Runner.Run(ctx, d.Timeout, resolved, args...)
		if err != nil || res.ExitCode != 0 {
			logger.Debug("browser probe failed", "path", resolved, "exit_code", res.ExitCode, "error", err)
			continue
		}
		if v := version.Extract(re, res.Output()); v != "" {
			logger.Debug("browser version detected", "path", resolved, "version", v)
			return v
		}
		logger.Debug("browser probe output has no version", "path", resolved)
	}
	return ""
}

func (d *Detector) lookPath(file string) (string, error) {
	if d.LookPath == nil {
		return exec.LookPath(file)
	}
	return d.LookPath(file)
}

func (d *Detector) lookupEnv(key string) (string, bool) {
	if d.Env == nil {
		return os.LookupEnv(key)
	}
	return d.Env(key)
}

var windowsVar = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%`)

// expand substitutes $VAR, ${VAR} and %VAR% references. The second result
// is false when a referenced variable is unset.
func expand(s string, env LookupFunc) (string, bool) {
	ok := true
	s = windowsVar.ReplaceAllStringFunc(s, func(m string) string {
		v, found := env(m[1 : len(m)-1])
		if !found {
			ok = false
		}
		return v
	})
	s = os.Expand(s, func(key string) string {
		v, found := env(key)
		if !found {
			ok = false
		}
		return v
	})
	return s, ok
}

func expandAll(in []string, env LookupFunc) ([]string, bool) {
	out := make([]string, len(in))
	for i, s := range in {
		v, ok := expand(s, env)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
