package version

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/wdbin/internal/errors"
)

// DefaultKey is the map key for entries that never match a browser version
// but still take part in canonicalisation and the static fallback.
const DefaultKey = "default"

// Entry maps a browser major version to one or more equivalent driver
// versions. The first driver is the preferred spelling.
type Entry struct {
	Browser string   `mapstructure:"browser" yaml:"browser" toml:"browser" json:"browser"`
	Drivers []string `mapstructure:"drivers" yaml:"drivers" toml:"drivers" json:"drivers"`
}

// Map is an ordered browser-to-driver version table. Lookups honour
// declaration order, not numeric order.
type Map []Entry

// First returns the preferred driver version of the entry, or "".
func (e Entry) First() string {
	for _, d := range e.Drivers {
		if d = strings.TrimSpace(d); d != "" {
			return d
		}
	}
	return ""
}

// Lookup returns the preferred driver version of the first entry, in
// declaration order, whose numeric browser key is less than or equal to
// major. Non-numeric keys and non-numeric majors never match.
func (m Map) Lookup(major string) string {
	want, err := strconv.Atoi(strings.TrimSpace(major))
	if err != nil {
		return ""
	}
	for _, e := range m {
		key, err := strconv.Atoi(strings.TrimSpace(e.Browser))
		if err != nil {
			continue
		}
		if want < key {
			continue
		}
		return e.First()
	}
	return ""
}

// Canonical replaces v with the preferred spelling of the first entry that
// lists it. Versions not listed anywhere are returned unchanged.
func (m Map) Canonical(v string) string {
	if v == "" {
		return v
	}
	for _, e := range m {
		for _, d := range e.Drivers {
			if strings.TrimSpace(d) == v {
				if first := e.First(); first != "" {
					return first
				}
				return v
			}
		}
	}
	return v
}

// Default returns the preferred driver version of the first non-empty entry.
func (m Map) Default() string {
	for _, e := range m {
		if first := e.First(); first != "" {
			return first
		}
	}
	return ""
}

// UnmarshalYAML decodes an entry whose drivers may be a single version or
// a list of versions.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Browser string    `yaml:"browser"`
		Drivers yaml.Node `yaml:"drivers"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	e.Browser = raw.Browser
	e.Drivers = nil
	if raw.Drivers.Kind == 0 {
		return nil
	}
	drivers, err := decodeDrivers(&raw.Drivers)
	if err != nil {
		return errors.Wrapf(err, "version map key %q", raw.Browser)
	}
	e.Drivers = drivers
	return nil
}

// UnmarshalYAML accepts either a sequence of entries or a mapping from
// browser key to a driver version or list of versions. Mapping order is
// preserved.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var entries []Entry
		if err := node.Decode(&entries); err != nil {
			return errors.Wrap(err, "decoding version map entries")
		}
		*m = entries
		return nil
	case yaml.MappingNode:
		entries := make(Map, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			drivers, err := decodeDrivers(val)
			if err != nil {
				return errors.Wrapf(err, "version map key %q", key.Value)
			}
			entries = append(entries, Entry{Browser: key.Value, Drivers: drivers})
		}
		*m = entries
		return nil
	default:
		return errors.Newf("version map: line %d: expected a mapping or a sequence", node.Line)
	}
}

func decodeDrivers(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		var drivers []string
		if err := node.Decode(&drivers); err != nil {
			return nil, err
		}
		return drivers, nil
	default:
		return nil, errors.Newf("line %d: expected a version or a list of versions", node.Line)
	}
}

// MarshalYAML writes the map as a sequence so that order survives formats
// without ordered mappings.
func (m Map) MarshalYAML() (any, error) {
	return []Entry(m), nil
}
