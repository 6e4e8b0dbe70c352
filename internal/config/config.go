package config

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/paths"
	"github.com/thoreinstein/wdbin/internal/platform"
	"github.com/thoreinstein/wdbin/internal/version"
	"github.com/thoreinstein/wdbin/pkg/fileutil"
)

// maxConfigSize bounds the second read of the config file.
const maxConfigSize = 1 << 20

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "WDBIN"

// Defaults applied by Init.
const (
	DefaultPreset         = "chromedriver"
	DefaultMaxAttempts    = 3
	DefaultPollDelay      = 250 * time.Millisecond
	DefaultProcessTimeout = 10 * time.Second
	DefaultRequestTimeout = 5 * time.Second
	DefaultPluginType     = "composer-plugin"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version   int      `mapstructure:"version" yaml:"version" toml:"version" json:"version"`
	Preset    string   `mapstructure:"preset" yaml:"preset" toml:"preset" json:"preset"`
	BinaryDir string   `mapstructure:"binary_dir" yaml:"binary_dir" toml:"binary_dir" json:"binary_dir"`
	Driver    Driver   `mapstructure:"driver" yaml:"driver" toml:"driver" json:"driver"`
	Browser   Browser  `mapstructure:"browser" yaml:"browser" toml:"browser" json:"browser"`
	Packages  Packages `mapstructure:"packages" yaml:"packages" toml:"packages" json:"packages"`
}

// Driver describes the WebDriver binary being managed.
type Driver struct {
	Name        string                   `mapstructure:"name" yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Namespace   string                   `mapstructure:"namespace" yaml:"namespace,omitempty" toml:"namespace,omitempty" json:"namespace,omitempty"`
	Executables map[platform.Code]string `mapstructure:"executables" yaml:"executables,omitempty" toml:"executables,omitempty" json:"executables,omitempty"`
	RemoteFiles map[platform.Code]string `mapstructure:"remote_files" yaml:"remote_files,omitempty" toml:"remote_files,omitempty" json:"remote_files,omitempty"`
	Renames     []Rename                 `mapstructure:"renames" yaml:"renames,omitempty" toml:"renames,omitempty" json:"renames,omitempty"`
	Polling     Polling                  `mapstructure:"polling" yaml:"polling" toml:"polling" json:"polling"`
	VersionMap  version.Map              `mapstructure:"version_map" yaml:"version_map,omitempty" toml:"version_map,omitempty" json:"version_map,omitempty"`
	Preferences Preferences              `mapstructure:"preferences" yaml:"preferences" toml:"preferences" json:"preferences"`
	Requests    Requests                 `mapstructure:"requests" yaml:"requests" toml:"requests" json:"requests"`
}

// Rename maps a downloaded file name to the name it is installed under.
type Rename struct {
	From string `mapstructure:"from" yaml:"from" toml:"from" json:"from"`
	To   string `mapstructure:"to" yaml:"to" toml:"to" json:"to"`
}

// Polling configures how the installed driver is queried for its version.
type Polling struct {
	MaxAttempts int           `mapstructure:"max_attempts" yaml:"max_attempts" toml:"max_attempts" json:"max_attempts"`
	Delay       time.Duration `mapstructure:"delay" yaml:"delay" toml:"delay" json:"delay"`
	Args        []string      `mapstructure:"args" yaml:"args,omitempty" toml:"args,omitempty" json:"args,omitempty"`
	Pattern     string        `mapstructure:"pattern" yaml:"pattern,omitempty" toml:"pattern,omitempty" json:"pattern,omitempty"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout" toml:"timeout" json:"timeout"`
}

// Preferences holds user overrides for version negotiation.
type Preferences struct {
	Version string `mapstructure:"version" yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
}

// Requests configures remote version lookups. Each URL may contain the
// {major} and {version} placeholders.
type Requests struct {
	Version []string      `mapstructure:"version" yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" toml:"timeout" json:"timeout"`
}

// Browser describes how to find the installed browser version.
type Browser struct {
	Name     string                      `mapstructure:"name" yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Commands map[platform.Code][]Command `mapstructure:"commands" yaml:"commands,omitempty" toml:"commands,omitempty" json:"commands,omitempty"`
	Pattern  string                      `mapstructure:"pattern" yaml:"pattern,omitempty" toml:"pattern,omitempty" json:"pattern,omitempty"`
	Timeout  time.Duration               `mapstructure:"timeout" yaml:"timeout" toml:"timeout" json:"timeout"`
}

// Command is a single browser version probe.
type Command struct {
	Path string   `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	Args []string `mapstructure:"args" yaml:"args,omitempty" toml:"args,omitempty" json:"args,omitempty"`
}

// Packages locates the package list used for owner detection.
type Packages struct {
	Path       string `mapstructure:"path" yaml:"path,omitempty" toml:"path,omitempty" json:"path,omitempty"`
	PluginType string `mapstructure:"plugin_type" yaml:"plugin_type,omitempty" toml:"plugin_type,omitempty" json:"plugin_type,omitempty"`
}

// Executable returns the installed executable name for code, after renames.
// The second result is false when no executable is configured.
func (d Driver) Executable(code platform.Code) (string, bool) {
	name := d.Executables[code]
	if name == "" {
		return "", false
	}
	for _, r := range d.Renames {
		if r.From == name {
			return r.To, true
		}
	}
	return name, true
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// AutomaticEnv only applies to keys Viper already knows about.
	_ = viper.BindEnv("binary_dir")
	_ = viper.BindEnv("preset")
	_ = viper.BindEnv("driver.preferences.version")

	viper.SetDefault("version", 1)
	viper.SetDefault("preset", DefaultPreset)
	viper.SetDefault("binary_dir", paths.DefaultBinaryDir())
	viper.SetDefault("driver.polling.max_attempts", DefaultMaxAttempts)
	viper.SetDefault("driver.polling.delay", DefaultPollDelay)
	viper.SetDefault("driver.polling.args", []string{"--version"})
	viper.SetDefault("driver.polling.pattern", version.DefaultPattern)
	viper.SetDefault("driver.polling.timeout", DefaultProcessTimeout)
	viper.SetDefault("driver.requests.timeout", DefaultRequestTimeout)
	viper.SetDefault("browser.pattern", version.DefaultPattern)
	viper.SetDefault("browser.timeout", DefaultProcessTimeout)
	viper.SetDefault("packages.path", "vendor/composer/installed.json")
	viper.SetDefault("packages.plugin_type", DefaultPluginType)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			if path != "" {
				return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
			}
		} else {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrInvalidConfig), "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrInvalidConfig), "unmarshaling config")
	}

	if used := viper.ConfigFileUsed(); isYAMLFile(used) {
		vm, err := readVersionMap(afero.NewOsFs(), used)
		if err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrInvalidConfig), "decoding driver.version_map")
		}
		cfg.Driver.VersionMap = vm
	}

	return &cfg, nil
}

// readVersionMap decodes driver.version_map from a YAML config file with
// yaml.v3. Viper turns mappings into unordered Go maps, and Lookup needs the
// declared order.
func readVersionMap(fsys afero.Fs, path string) (version.Map, error) {
	data, err := fileutil.ReadBounded(fsys, path, maxConfigSize)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Driver struct {
			VersionMap version.Map `yaml:"version_map"`
		} `yaml:"driver"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Driver.VersionMap, nil
}

// isYAMLFile reports whether Viper parses path as YAML. Files without an
// extension use the configured type.
func isYAMLFile(path string) bool {
	if path == "" {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", "":
		return true
	}
	return false
}

// UsedFile returns the config file Viper read, or "" when none was found.
func UsedFile() string {
	return viper.ConfigFileUsed()
}
