// Package url normalizes addresses typed by the user before a tab loads them.
package url

import (
	"net/url"
	"path/filepath"
	"strings"
)

var passthroughSchemes = []string{"http://", "https://", "file://", "about:", "data:"}

// Normalize turns user input into a loadable address. Absolute paths become
// file:// URLs, host-like input gets https://, and anything else is returned
// trimmed but otherwise unchanged.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if hasScheme(input) {
		return input
	}
	if filepath.IsAbs(input) {
		return (&url.URL{Scheme: "file", Path: filepath.Clean(input)}).String()
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL reports whether input is an address rather than free text.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	if strings.HasPrefix(input, "localhost") {
		return true
	}
	return strings.Contains(input, ".") && !strings.ContainsAny(input, " \t")
}

// ExtractDomain returns the host of rawURL without a leading "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

func hasScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, scheme := range passthroughSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}
