// Package pkgmeta reads composer package metadata and identifies the plugin
// package that owns a namespace.
package pkgmeta

import (
	"path"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/pkg/fileutil"
)

// DefaultPluginType is the composer package type of installer plugins.
const DefaultPluginType = "composer-plugin"

// maxMetadataSize bounds installed.json and composer.lock reads.
const maxMetadataSize = 32 << 20

// Package describes one installed package.
type Package struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Version    string   `json:"version,omitempty"`
	Namespaces []string `json:"namespaces,omitempty"`
}

// Analyser answers questions about package descriptors.
type Analyser struct {
	// PluginType is the package type treated as a plugin. Empty means
	// DefaultPluginType.
	PluginType string
}

// IsPluginPackage reports whether p is of the plugin type.
func (a Analyser) IsPluginPackage(p Package) bool {
	want := a.PluginType
	if want == "" {
		want = DefaultPluginType
	}
	return p.Type == want
}

// OwnsNamespace reports whether p declares namespace. Trailing namespace
// separators are ignored on both sides.
func (a Analyser) OwnsNamespace(p Package, namespace string) bool {
	want := trimNamespace(namespace)
	if want == "" {
		return false
	}
	for _, ns := range p.Namespaces {
		if trimNamespace(ns) == want {
			return true
		}
	}
	return false
}

func trimNamespace(ns string) string {
	return strings.TrimRight(strings.TrimSpace(ns), `\`)
}

// Load reads the package list at file. It understands composer
// installed.json in both the v1 (array) and v2 ({"packages": [...]}) layouts
// as well as composer.lock, whose packages and packages-dev are concatenated.
func Load(fs afero.Fs, file string) ([]Package, error) {
	data, err := fileutil.ReadBounded(fs, file, maxMetadataSize)
	if err != nil {
		return nil, errors.Wrapf(err, "reading package list %s", file)
	}
	return Parse(data, path.Base(file))
}

// Parse decodes package metadata. name is used for error messages only.
func Parse(data []byte, name string) ([]Package, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Newf("%s: invalid JSON", name)
	}
	doc := gjson.ParseBytes(data)

	var lists []gjson.Result
	switch {
	case doc.IsArray():
		lists = append(lists, doc)
	case doc.Get("packages").IsArray():
		lists = append(lists, doc.Get("packages"))
		if dev := doc.Get("packages-dev"); dev.IsArray() {
			lists = append(lists, dev)
		}
	default:
		return nil, errors.Newf("%s: no package list found", name)
	}

	var out []Package
	for _, list := range lists {
		for _, entry := range list.Array() {
			if p, ok := parsePackage(entry); ok {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func parsePackage(entry gjson.Result) (Package, bool) {
	name := entry.Get("name").String()
	if name == "" {
		return Package{}, false
	}
	p := Package{
		Name:    name,
		Type:    entry.Get("type").String(),
		Version: entry.Get("version").String(),
	}
	if p.Type == "" {
		p.Type = "library"
	}
	for _, kind := range []string{"psr-4", "psr-0"} {
		entry.Get("autoload").Get(kind).ForEach(func(key, _ gjson.Result) bool {
			p.Namespaces = append(p.Namespaces, key.String())
			return true
		})
	}
	return p, true
}
