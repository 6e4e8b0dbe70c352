package preset

import (
	"embed"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/errors"
)

//go:embed presets/*.yaml
var files embed.FS

// Preset is a named default configuration for one driver.
type Preset struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Driver      config.Driver   `yaml:"driver"`
	Browser     config.Browser  `yaml:"browser"`
	Packages    config.Packages `yaml:"packages"`
}

// Names returns the names of the embedded presets in sorted order.
func Names() []string {
	entries, err := files.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// Get returns the preset called name.
func Get(name string) (*Preset, error) {
	data, err := files.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrNotFound, "preset %q", name),
			"Available presets: %s", strings.Join(Names(), ", "),
		)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "decoding preset %s", name)
	}
	return &p, nil
}

// All returns every embedded preset, ordered by name.
func All() ([]*Preset, error) {
	var out []*Preset
	for _, name := range Names() {
		p, err := Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Apply fills the empty fields of cfg from the preset named by cfg.Preset.
// An empty preset name leaves cfg untouched.
func Apply(cfg *config.Config) error {
	if cfg == nil || cfg.Preset == "" {
		return nil
	}
	p, err := Get(cfg.Preset)
	if err != nil {
		return errors.Mark(err, errors.ErrInvalidConfig)
	}
	p.Merge(cfg)
	return nil
}

// Merge copies preset values into cfg wherever cfg has none. Map keys the
// user already set are kept.
func (p *Preset) Merge(cfg *config.Config) {
	d := &cfg.Driver
	setString(&d.Name, p.Driver.Name)
	setString(&d.Namespace, p.Driver.Namespace)
	d.Executables = mergeMap(d.Executables, p.Driver.Executables)
	d.RemoteFiles = mergeMap(d.RemoteFiles, p.Driver.RemoteFiles)
	if len(d.Renames) == 0 {
		d.Renames = slices.Clone(p.Driver.Renames)
	}
	if len(d.VersionMap) == 0 {
		d.VersionMap = slices.Clone(p.Driver.VersionMap)
	}
	if len(d.Requests.Version) == 0 {
		d.Requests.Version = slices.Clone(p.Driver.Requests.Version)
	}
	if len(d.Polling.Args) == 0 {
		d.Polling.Args = slices.Clone(p.Driver.Polling.Args)
	}
	setString(&d.Polling.Pattern, p.Driver.Polling.Pattern)

	b := &cfg.Browser
	setString(&b.Name, p.Browser.Name)
	setString(&b.Pattern, p.Browser.Pattern)
	b.Commands = mergeMap(b.Commands, p.Browser.Commands)

	setString(&cfg.Packages.PluginType, p.Packages.PluginType)
	setString(&cfg.Packages.Path, p.Packages.Path)
}

func setString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func mergeMap[K comparable, V any](dst, src map[K]V) map[K]V {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[K]V, len(src))
	}
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
	return dst
}
