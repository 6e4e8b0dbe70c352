package doctor

import (
	"context"
	"sync"

	"github.com/thoreinstein/wdbin/internal/analyser"
)

// StatusSource resolves an analyser report once and shares it between the
// browser, driver and drift checks.
type StatusSource struct {
	resolve func(ctx context.Context) analyser.Report

	once   sync.Once
	report analyser.Report
}

// NewStatusSource wraps resolve, which is called at most once.
func NewStatusSource(resolve func(ctx context.Context) analyser.Report) *StatusSource {
	return &StatusSource{resolve: resolve}
}

// Report returns the resolved report.
func (s *StatusSource) Report(ctx context.Context) analyser.Report {
	s.once.Do(func() {
		s.report = s.resolve(ctx)
	})
	return s.report
}

// BrowserCheck reports the detected browser version.
type BrowserCheck struct {
	status  *StatusSource
	browser string
}

var _ Check = (*BrowserCheck)(nil)

// NewBrowserCheck creates a browser detection check.
func NewBrowserCheck(status *StatusSource, browser string) *BrowserCheck {
	return &BrowserCheck{status: status, browser: browser}
}

// Name returns the unique identifier for this check.
func (c *BrowserCheck) Name() string {
	return "browser"
}

// Category returns the grouping for this check.
func (c *BrowserCheck) Category() string {
	return "browser"
}

// Run reads the browser version from the shared report.
func (c *BrowserCheck) Run(ctx context.Context) *CheckResult {
	r := c.status.Report(ctx)
	if r.BrowserVersion == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  c.browser + " not detected; the required version falls back to the version map",
			FixHint:  "install " + c.browser + " or set driver.preferences.version",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  c.browser + " " + r.BrowserVersion,
		Details:  map[string]any{"version": r.BrowserVersion},
	}
}

// DriverCheck reports the installed driver version.
type DriverCheck struct {
	status *StatusSource
}

var _ Check = (*DriverCheck)(nil)

// NewDriverCheck creates an installed driver check.
func NewDriverCheck(status *StatusSource) *DriverCheck {
	return &DriverCheck{status: status}
}

// Name returns the unique identifier for this check.
func (c *DriverCheck) Name() string {
	return "driver-installed"
}

// Category returns the grouping for this check.
func (c *DriverCheck) Category() string {
	return "driver"
}

// Run reads the installed version from the shared report.
func (c *DriverCheck) Run(ctx context.Context) *CheckResult {
	r := c.status.Report(ctx)
	details := map[string]any{"binary_dir": r.BinaryDir}

	switch {
	case r.InstalledError != "":
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  r.InstalledError,
			Details:  details,
		}
	case r.Installed == "":
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no working " + r.Driver + " binary found",
			Details:  details,
			FixHint:  "install " + r.Driver + " into " + r.BinaryDir,
		}
	}
	details["version"] = r.Installed
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  r.Driver + " " + r.Installed,
		Details:  details,
	}
}

// DriftCheck compares the installed and required driver versions.
type DriftCheck struct {
	status *StatusSource
}

var _ Check = (*DriftCheck)(nil)

// NewDriftCheck creates a version drift check.
func NewDriftCheck(status *StatusSource) *DriftCheck {
	return &DriftCheck{status: status}
}

// Name returns the unique identifier for this check.
func (c *DriftCheck) Name() string {
	return "driver-drift"
}

// Category returns the grouping for this check.
func (c *DriftCheck) Category() string {
	return "driver"
}

// Run compares the versions in the shared report.
func (c *DriftCheck) Run(ctx context.Context) *CheckResult {
	r := c.status.Report(ctx)
	details := map[string]any{"installed": r.Installed, "required": r.Required}

	switch {
	case r.RequiredError != "":
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  r.RequiredError,
			Details:  details,
			FixHint:  "set driver.preferences.version to a valid version",
		}
	case r.Installed == "":
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "required " + r.Required + "; nothing installed to compare",
			Details:  details,
		}
	case r.UpToDate:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "installed driver matches " + r.Required,
			Details:  details,
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "installed " + r.Installed + ", required " + r.Required,
			Details:  details,
			FixHint:  "install " + r.Driver + " " + r.Required,
		}
	}
}
