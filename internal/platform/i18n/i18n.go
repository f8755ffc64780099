// Package i18n defines the fixed locale set for the dashboard and helpers
// to parse locale codes against it.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultCode is the locale substituted when a request locale is unknown.
const DefaultCode = "en"

// supportedCodes is the fixed set of locale path prefixes, in display order.
var supportedCodes = []string{"en", "zh", "th", "id", "de", "es", "fr", "ja", "ko", "vi"}

var supportedTags = func() []language.Tag {
	tags := make([]language.Tag, 0, len(supportedCodes))
	for _, code := range supportedCodes {
		tags = append(tags, language.MustParse(code))
	}
	return tags
}()

// Codes returns the supported locale codes in display order.
func Codes() []string {
	out := make([]string, len(supportedCodes))
	copy(out, supportedCodes)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// IsSupported reports whether code is exactly one of the supported locales.
func IsSupported(code string) bool {
	code = strings.TrimSpace(code)
	for _, supported := range supportedCodes {
		if code == supported {
			return true
		}
	}
	return false
}

// Parse returns the supported tag for a locale code.
func Parse(code string) (language.Tag, bool) {
	code = strings.TrimSpace(code)
	for i, supported := range supportedCodes {
		if code == supported {
			return supportedTags[i], true
		}
	}
	return language.Tag{}, false
}

// Language describes one switcher entry for a supported locale.
type Language struct {
	Code string
	Flag string
}

// languages mirrors the switcher metadata of the dashboard UI.
var languages = []Language{
	{Code: "en", Flag: "\U0001F1FA\U0001F1F8"},
	{Code: "zh", Flag: "\U0001F1E8\U0001F1F3"},
	{Code: "th", Flag: "\U0001F1F9\U0001F1ED"},
	{Code: "id", Flag: "\U0001F1EE\U0001F1E9"},
	{Code: "de", Flag: "\U0001F1E9\U0001F1EA"},
	{Code: "es", Flag: "\U0001F1EA\U0001F1F8"},
	{Code: "fr", Flag: "\U0001F1EB\U0001F1F7"},
	{Code: "ja", Flag: "\U0001F1EF\U0001F1F5"},
	{Code: "ko", Flag: "\U0001F1F0\U0001F1F7"},
	{Code: "vi", Flag: "\U0001F1FB\U0001F1F3"},
}

// Languages returns switcher metadata for all supported locales.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}
