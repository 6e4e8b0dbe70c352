package logging

import (
	"net/url"
	"strings"
)

// secretKeyPatterns are substrings that mark a key as sensitive.
// Keys are matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"API_KEY",
	"PRIVATE",
}

// tokenPrefixes are value prefixes of well-known API tokens.
var tokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghs_",
	"github_pat_",
	"AKIA",
	"xoxb-",
	"xoxp-",
}

// MaskValue masks a sensitive string, keeping the last four characters of
// values longer than four.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskURL redacts a password embedded in rawURL. Unparseable URLs and URLs
// without a password are returned unchanged.
func MaskURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}
	password, ok := parsed.User.Password()
	if !ok || password == "" {
		return rawURL
	}
	parsed.User = url.UserPassword(parsed.User.Username(), MaskValue(password))
	return parsed.String()
}

// ShouldMask reports whether key names sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// redactValue applies key, token and URL masking to a log value.
func redactValue(key string, value any) any {
	if ShouldMask(key) {
		return MaskValue(toString(value))
	}
	s, ok := value.(string)
	if !ok {
		return value
	}
	if ContainsTokenPrefix(s) {
		return MaskValue(s)
	}
	if strings.Contains(s, "://") && strings.Contains(s, "@") {
		return MaskURL(s)
	}
	return s
}
