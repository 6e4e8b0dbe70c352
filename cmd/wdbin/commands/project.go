package commands

import (
	"github.com/thoreinstein/wdbin/internal/analyser"
	"github.com/thoreinstein/wdbin/internal/browser"
	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/fetch"
	"github.com/thoreinstein/wdbin/internal/paths"
	"github.com/thoreinstein/wdbin/internal/platform"
	"github.com/thoreinstein/wdbin/internal/preset"
	"github.com/thoreinstein/wdbin/internal/proc"
	"github.com/thoreinstein/wdbin/internal/resolver"
)

// Process and platform seams, replaced in tests.
var (
	newRunner       = func() proc.Runner { return proc.NewExecRunner() }
	currentPlatform = platform.Current
)

// effectiveConfig returns the loaded configuration with its preset merged
// in. It does not validate.
func effectiveConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, errors.NewConfigError(configLoadErr)
	}
	if loadedConfig == nil {
		return nil, errors.NewConfigError(errors.Wrap(errors.ErrInvalidConfig, "config not loaded"))
	}
	cfg := loadedConfig
	if err := preset.Apply(cfg); err != nil {
		return nil, errors.NewConfigError(err)
	}
	cfg.BinaryDir = paths.ExpandHome(cfg.BinaryDir)
	return cfg, nil
}

// validConfig is effectiveConfig followed by validation.
func validConfig() (*config.Config, error) {
	cfg, err := effectiveConfig()
	if err != nil {
		return nil, err
	}
	if err := config.Check(cfg); err != nil {
		return nil, errors.NewConfigError(err)
	}
	return cfg, nil
}

// newProject wires the analyser to real processes, the network and the
// host platform.
func newProject(cfg *config.Config) *analyser.Project {
	runner := newRunner()
	code := currentPlatform()
	return analyser.NewProject(
		code,
		cfg,
		browser.NewDetector(code, cfg.Browser, runner),
		resolver.NewPoller(runner),
		fetch.New(cfg.Driver.Requests.Timeout),
	)
}

// loadProject loads and validates the configuration and builds a project
// from it.
func loadProject() (*config.Config, *analyser.Project, error) {
	cfg, err := validConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, newProject(cfg), nil
}
