package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/paths"
)

// ConfigCheck validates the effective configuration.
type ConfigCheck struct {
	cfg  *config.Config
	file string
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a config check. file is the config file that was
// read, or "" when only defaults are in effect.
func NewConfigCheck(cfg *config.Config, file string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, file: file}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run validates the configuration.
func (c *ConfigCheck) Run(context.Context) *CheckResult {
	errs := config.Validate(c.cfg)
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("%d configuration error(s)", len(errs)),
			Details:  map[string]any{"errors": msgs, "file": c.file},
			FixHint:  "edit " + c.configFile(),
		}
	}

	if c.file == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no config file found; using preset " + c.cfg.Preset,
			FixHint:  "run: wdbin init",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  c.file + " is valid",
		Details:  map[string]any{"file": c.file, "preset": c.cfg.Preset},
	}
}

func (c *ConfigCheck) configFile() string {
	if c.file != "" {
		return c.file
	}
	return paths.ConfigFile()
}

// BinaryDirCheck verifies the driver directory exists. A missing directory
// can be created with Fix.
type BinaryDirCheck struct {
	fs      afero.Fs
	dir     string
	missing bool
}

var (
	_ Check = (*BinaryDirCheck)(nil)
	_ Fixer = (*BinaryDirCheck)(nil)
)

// NewBinaryDirCheck creates a check for dir on fs.
func NewBinaryDirCheck(fs afero.Fs, dir string) *BinaryDirCheck {
	return &BinaryDirCheck{fs: fs, dir: dir}
}

// Name returns the unique identifier for this check.
func (c *BinaryDirCheck) Name() string {
	return "binary-dir"
}

// Category returns the grouping for this check.
func (c *BinaryDirCheck) Category() string {
	return "filesystem"
}

// Run stats the binary directory.
func (c *BinaryDirCheck) Run(context.Context) *CheckResult {
	c.missing = false
	details := map[string]any{"path": c.dir}

	info, err := c.fs.Stat(c.dir)
	switch {
	case os.IsNotExist(err):
		c.missing = true
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "binary directory does not exist",
			Details:  details,
			Fixable:  true,
			FixHint:  "run: wdbin doctor --fix",
		}
	case err != nil:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot stat binary directory: %v", err),
			Details:  details,
		}
	case !info.IsDir():
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "binary directory path is not a directory",
			Details:  details,
			FixHint:  "set binary_dir to a directory",
		}
	}

	details["permissions"] = fmt.Sprintf("%04o", info.Mode().Perm())
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  c.dir,
		Details:  details,
	}
}

// CanFix reports whether the last Run found the directory missing.
func (c *BinaryDirCheck) CanFix() bool {
	return c.missing
}

// Fix creates the missing directory.
func (c *BinaryDirCheck) Fix() []FixResult {
	if !c.missing {
		return nil
	}
	result := FixResult{Path: c.dir}
	if err := c.fs.MkdirAll(c.dir, paths.DefaultDirPerm); err != nil {
		result.Description = fmt.Sprintf("failed to create directory: %v", err)
		result.Error = err
		return []FixResult{result}
	}
	c.missing = false
	result.Fixed = true
	result.Description = fmt.Sprintf("created with mode %04o", paths.DefaultDirPerm)
	return []FixResult{result}
}
