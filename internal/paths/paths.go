package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used below the XDG base directories.
const AppName = "wdbin"

// ConfigDirEnv overrides the configuration directory.
const ConfigDirEnv = "WDBIN_CONFIG_DIR"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used. It returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultBinaryDir returns the directory drivers are installed into when no
// binary_dir is configured.
func DefaultBinaryDir() string {
	return filepath.Join(DataHome(), AppName, "bin")
}

// CacheDir returns the wdbin cache directory.
func CacheDir() string {
	return filepath.Join(CacheHome(), AppName)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, and paths for which the home directory is unknown, are
// returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := ResolveHome()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Compose joins dir and name into a driver path.
func Compose(dir, name string) (string, error) {
	if strings.ContainsRune(dir, 0) || strings.ContainsRune(name, 0) {
		return "", errors.Wrapf(ErrInvalidPath, "%q", dir+string(filepath.Separator)+name)
	}
	if strings.TrimSpace(name) == "" {
		return "", errors.Wrap(ErrInvalidPath, "empty executable name")
	}
	return filepath.Join(ExpandHome(dir), name), nil
}

// Canonical returns path as an absolute path with symlinks resolved. When
// the path, or part of it, does not exist the absolute, cleaned path is
// returned instead of an error.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, nil
	}
	return resolved, nil
}
