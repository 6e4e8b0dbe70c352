package analyser

import (
	"context"
	"strings"
	"sync"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/logging"
	"github.com/thoreinstein/wdbin/internal/paths"
	"github.com/thoreinstein/wdbin/internal/pkgmeta"
	"github.com/thoreinstein/wdbin/internal/platform"
	"github.com/thoreinstein/wdbin/internal/version"
)

// BrowserDetector reports the installed browser version, or "".
type BrowserDetector interface {
	DetectVersion(ctx context.Context) string
}

// VersionPoller reports the version printed by the first working candidate
// binary, or "".
type VersionPoller interface {
	PollForVersion(ctx context.Context, candidates []string, polling config.Polling) string
}

// Fetcher reads a small text resource. Failures are reported as ("", false).
type Fetcher interface {
	Fetch(ctx context.Context, target string) (string, bool)
}

// Project resolves driver versions for one driver configuration on one
// platform.
type Project struct {
	Platform platform.Code
	Driver   config.Driver
	Packages pkgmeta.Analyser

	Browser BrowserDetector
	Poller  VersionPoller
	Fetcher Fetcher

	mu    sync.Mutex
	owner *pkgmeta.Package
}

// NewProject returns a Project for the host platform code.
func NewProject(code platform.Code, cfg *config.Config, browser BrowserDetector, poller VersionPoller, fetcher Fetcher) *Project {
	return &Project{
		Platform: code,
		Driver:   cfg.Driver,
		Packages: pkgmeta.Analyser{PluginType: cfg.Packages.PluginType},
		Browser:  browser,
		Poller:   poller,
		Fetcher:  fetcher,
	}
}

// ResolvePlatformSupport reports whether an executable is configured for
// the current platform.
func (p *Project) ResolvePlatformSupport() bool {
	_, ok := p.Driver.Executable(p.Platform)
	return ok
}

// ResolveInstalledDriverVersion polls the driver binary in binaryDir for its
// version. An empty result with a nil error means no working binary was
// found. The result is normalised to the preferred spelling of its version
// map group.
func (p *Project) ResolveInstalledDriverVersion(ctx context.Context, binaryDir string) (string, error) {
	executable, ok := p.Driver.Executable(p.Platform)
	if !ok || p.Driver.RemoteFiles[p.Platform] == "" {
		return "", errors.WithHintf(
			errors.Wrapf(errors.ErrPlatformUnsupported, "no %s file for platform %s", p.driverName(), p.Platform),
			"Download the driver manually and place it in %s", binaryDir,
		)
	}

	path, err := paths.Compose(binaryDir, executable)
	if err != nil {
		return "", errors.Wrap(err, "composing driver path")
	}
	path, err = paths.Canonical(path)
	if err != nil {
		return "", err
	}

	candidates := platform.Candidates(p.Platform, path)
	logging.FromContext(ctx).Debug("polling driver", "candidates", candidates)

	installed := p.Poller.PollForVersion(ctx, candidates, p.Driver.Polling)
	return p.Driver.VersionMap.Canonical(installed), nil
}

// ResolveRequiredDriverVersion negotiates the driver version the project
// needs. It fails with ErrInvalidVersion when the result is not a valid
// version string.
func (p *Project) ResolveRequiredDriverVersion(ctx context.Context) (string, error) {
	browserVersion := ""
	if p.Driver.Preferences.Version == "" {
		browserVersion = p.detectBrowser(ctx)
	}
	return p.resolveRequired(ctx, browserVersion)
}

// detectBrowser returns the installed browser version, or "" without a
// detector.
func (p *Project) detectBrowser(ctx context.Context) string {
	if p.Browser == nil {
		return ""
	}
	return p.Browser.DetectVersion(ctx)
}

// resolveRequired negotiates the required version from an already detected
// browser version.
func (p *Project) resolveRequired(ctx context.Context, browserVersion string) (string, error) {
	if pref := p.Driver.Preferences.Version; pref != "" {
		if err := version.Validate(pref); err != nil {
			return "", errors.WithHint(err, "Fix driver.preferences.version or unset WDBIN_DRIVER_PREFERENCES_VERSION")
		}
		return pref, nil
	}

	logger := logging.FromContext(ctx)

	required := ""
	if browserVersion != "" {
		required = p.Driver.VersionMap.Lookup(version.Major(browserVersion))
	}
	logger.Debug("browser lookup", "browser_version", browserVersion, "guess", required)

	if required != "" {
		required = p.refine(ctx, browserVersion, required)
	}

	if required == "" {
		required = p.Driver.VersionMap.Default()
		logger.Debug("using version map fallback", "version", required)
	}

	if err := version.Validate(required); err != nil {
		return "", errors.WithHint(err, "Set driver.preferences.version to pin a driver version")
	}
	return required, nil
}

// refine asks the configured version URLs in order. The first non-empty
// answer replaces guess.
func (p *Project) refine(ctx context.Context, browserVersion, guess string) string {
	if p.Fetcher == nil {
		return guess
	}
	r := strings.NewReplacer(
		"{major}", version.Major(browserVersion),
		"{version}", browserVersion,
	)
	for _, raw := range p.Driver.Requests.Version {
		if err := ctx.Err(); err != nil {
			break
		}
		target := r.Replace(raw)
		if v, ok := p.Fetcher.Fetch(ctx, target); ok {
			if v = strings.TrimSpace(v); v != "" {
				logging.FromContext(ctx).Debug("remote version", "url", logging.MaskURL(target), "version", v)
				return v
			}
		}
	}
	return guess
}

// ResolvePackageForNamespace returns the first plugin package that owns
// namespace. The result of the first successful scan is remembered and
// returned for every later call, whatever its arguments.
func (p *Project) ResolvePackageForNamespace(packages []pkgmeta.Package, namespace string) (*pkgmeta.Package, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.owner == nil {
		for i := range packages {
			pkg := packages[i]
			if !p.Packages.IsPluginPackage(pkg) || !p.Packages.OwnsNamespace(pkg, namespace) {
				continue
			}
			p.owner = &pkg
			break
		}
	}

	if p.owner == nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrPackageNotFound, "namespace %q", namespace),
			"Check that the plugin package is installed and declares the namespace in its autoload section",
		)
	}
	owner := *p.owner
	return &owner, nil
}

func (p *Project) driverName() string {
	if p.Driver.Name != "" {
		return p.Driver.Name
	}
	return "driver"
}
