package config

import (
	stderrors "errors"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/platform"
	"github.com/thoreinstein/wdbin/internal/version"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPlatform indicates an unrecognized platform code.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidPattern indicates a version pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidPolling indicates polling bounds are out of range.
	ErrInvalidPolling = errors.New("invalid polling settings")

	// ErrInvalidVersionMap indicates a malformed version map entry.
	ErrInvalidVersionMap = errors.New("invalid version map entry")

	// ErrInvalidURL indicates a version request URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid url")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if err := validatePath(cfg.BinaryDir); err != nil {
		errs = append(errs, &FieldError{Field: "binary_dir", Value: cfg.BinaryDir, Err: err})
	}

	errs = append(errs, validatePlatformKeys("driver.executables", cfg.Driver.Executables)...)
	errs = append(errs, validatePlatformKeys("driver.remote_files", cfg.Driver.RemoteFiles)...)
	for code, name := range cfg.Driver.Executables {
		if name == "" || strings.ContainsAny(name, "/\\\x00") {
			errs = append(errs, &FieldError{Field: "driver.executables." + string(code), Value: name, Err: ErrInvalidPath})
		}
	}
	for i, r := range cfg.Driver.Renames {
		if r.From == "" || r.To == "" {
			errs = append(errs, &FieldError{Field: "driver.renames[" + strconv.Itoa(i) + "]", Value: r.From + " -> " + r.To, Err: ErrInvalidPath})
		}
	}

	errs = append(errs, validatePolling(cfg.Driver.Polling)...)
	errs = append(errs, validateVersionMap(cfg.Driver.VersionMap)...)

	for i, raw := range cfg.Driver.Requests.Version {
		if err := validateURL(raw); err != nil {
			errs = append(errs, &FieldError{Field: "driver.requests.version[" + strconv.Itoa(i) + "]", Value: raw, Err: err})
		}
	}
	if cfg.Driver.Requests.Timeout < 0 {
		errs = append(errs, &FieldError{Field: "driver.requests.timeout", Value: cfg.Driver.Requests.Timeout.String(), Err: ErrInvalidPolling})
	}

	for code := range cfg.Browser.Commands {
		if _, ok := platform.Parse(string(code)); !ok {
			errs = append(errs, &FieldError{Field: "browser.commands", Value: string(code), Err: ErrInvalidPlatform})
		}
	}
	if _, err := version.CompilePattern(cfg.Browser.Pattern); err != nil {
		errs = append(errs, &FieldError{Field: "browser.pattern", Value: cfg.Browser.Pattern, Err: ErrInvalidPattern})
	}
	if cfg.Browser.Timeout < 0 {
		errs = append(errs, &FieldError{Field: "browser.timeout", Value: cfg.Browser.Timeout.String(), Err: ErrInvalidPolling})
	}

	return errs
}

// Check runs Validate and folds the result into a single error marked as
// [errors.ErrInvalidConfig].
func Check(cfg *Config) error {
	errs := Validate(cfg)
	if len(errs) == 0 {
		return nil
	}
	err := errors.Mark(stderrors.Join(errs...), errors.ErrInvalidConfig)
	return errors.WithHint(errors.Wrap(err, "validating config"), "Run: wdbin config to inspect the effective configuration")
}

func validatePlatformKeys[V any](field string, m map[platform.Code]V) []error {
	var errs []error
	for code := range m {
		if _, ok := platform.Parse(string(code)); !ok {
			errs = append(errs, &FieldError{Field: field, Value: string(code), Err: ErrInvalidPlatform})
		}
	}
	return errs
}

func validatePolling(p Polling) []error {
	var errs []error
	if p.MaxAttempts < 1 {
		errs = append(errs, &FieldError{Field: "driver.polling.max_attempts", Value: strconv.Itoa(p.MaxAttempts), Err: ErrInvalidPolling})
	}
	if p.Delay < 0 {
		errs = append(errs, &FieldError{Field: "driver.polling.delay", Value: p.Delay.String(), Err: ErrInvalidPolling})
	}
	if p.Timeout < 0 {
		errs = append(errs, &FieldError{Field: "driver.polling.timeout", Value: p.Timeout.String(), Err: ErrInvalidPolling})
	}
	if _, err := version.CompilePattern(p.Pattern); err != nil {
		errs = append(errs, &FieldError{Field: "driver.polling.pattern", Value: p.Pattern, Err: ErrInvalidPattern})
	}
	return errs
}

func validateVersionMap(m version.Map) []error {
	var errs []error
	for i, e := range m {
		field := "driver.version_map[" + strconv.Itoa(i) + "]"
		if e.Browser != version.DefaultKey {
			if _, err := strconv.Atoi(e.Browser); err != nil {
				errs = append(errs, &FieldError{Field: field + ".browser", Value: e.Browser, Err: ErrInvalidVersionMap})
			}
		}
		if e.First() == "" {
			errs = append(errs, &FieldError{Field: field + ".drivers", Value: strings.Join(e.Drivers, ","), Err: ErrInvalidVersionMap})
		}
	}
	return errs
}

// validateURL accepts http(s) and file URLs as well as bare paths.
func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrInvalidURL
	}
	probe := strings.NewReplacer("{major}", "0", "{version}", "0.0").Replace(raw)
	u, err := url.Parse(probe)
	if err != nil {
		return ErrInvalidURL
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return ErrInvalidURL
		}
	case "file", "":
	default:
		// Single-letter schemes are Windows drive letters.
		if len(u.Scheme) != 1 {
			return ErrInvalidURL
		}
	}
	return nil
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific configuration field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
