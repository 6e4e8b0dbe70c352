package doctor

import (
	"context"

	"github.com/thoreinstein/wdbin/internal/platform"
)

// PlatformCheck reports whether a driver binary exists for the host platform.
type PlatformCheck struct {
	code      platform.Code
	supported bool
	driver    string
}

var _ Check = (*PlatformCheck)(nil)

// NewPlatformCheck creates a new platform support check.
func NewPlatformCheck(code platform.Code, supported bool, driver string) *PlatformCheck {
	return &PlatformCheck{code: code, supported: supported, driver: driver}
}

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string {
	return "platform-support"
}

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string {
	return "platform"
}

// Run executes the platform support check and returns its result.
func (c *PlatformCheck) Run(context.Context) *CheckResult {
	details := map[string]any{"platform": c.code.String(), "driver": c.driver}

	switch {
	case c.code == platform.Unknown:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "host platform is not recognised",
			Details:  details,
			FixHint:  "download the driver manually",
		}
	case !c.supported:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "no " + c.driver + " build for " + c.code.String(),
			Details:  details,
			FixHint:  "download the driver manually or add driver.executables." + c.code.String(),
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  c.driver + " supports " + c.code.String(),
			Details:  details,
		}
	}
}
