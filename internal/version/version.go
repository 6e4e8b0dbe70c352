package version

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/thoreinstein/wdbin/internal/errors"
)

// DefaultPattern matches the first dotted numeric token in tool output, e.g.
// "114.0.5735.90" in "ChromeDriver 114.0.5735.90 (386bc09e...)".
const DefaultPattern = `\d+(?:\.\d+)+`

var defaultRe = regexp.MustCompile(DefaultPattern)

// fourPart matches browser-style versions with a fourth numeric component.
var fourPart = regexp.MustCompile(`(^|[^\d.])(\d+\.\d+\.\d+)\.(\d+)`)

// CompilePattern compiles pattern, falling back to DefaultPattern when it is
// empty.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return defaultRe, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling version pattern %q", pattern)
	}
	return re, nil
}

// Extract returns the first match of re in output, trimmed. If re has a
// capturing group the first group is returned instead of the whole match.
// It returns "" when nothing matches.
func Extract(re *regexp.Regexp, output string) string {
	if re == nil {
		re = defaultRe
	}
	m := re.FindStringSubmatch(output)
	if m == nil {
		return ""
	}
	if len(m) > 1 && m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[0])
}

// Major returns the text before the first '.', trimmed.
// Major("114.0.5735.90") is "114".
func Major(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, '.'); i >= 0 {
		return v[:i]
	}
	return v
}

// Validate reports whether v parses as a version constraint. Browser-style
// versions with four numeric components are accepted by reading the fourth
// component as build metadata.
func Validate(v string) error {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" || trimmed != v {
		return errors.Wrapf(errors.ErrInvalidVersion, "incorrect version string %q", v)
	}
	if _, err := semver.NewConstraint(normalizeFourPart(trimmed)); err != nil {
		return errors.Wrapf(errors.ErrInvalidVersion, "incorrect version string %q", v)
	}
	return nil
}

func normalizeFourPart(v string) string {
	return fourPart.ReplaceAllString(v, "${1}${2}+${3}")
}
