package constants

import "strings"

// Supported instruction locales for the extraction prompt.
const (
	LocaleEN = "en"
	LocaleES = "es"

	DefaultLocale = LocaleEN
)

// NormalizeLocale maps a caller-supplied locale tag onto one of the two
// supported instruction templates, falling back to English.
func NormalizeLocale(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case LocaleES, "es-es", "es-mx", "es-co":
		return LocaleES
	default:
		return LocaleEN
	}
}

// IsSupportedLocale reports whether tag is one of the locales we accept on
// the wire (empty means "use default").
func IsSupportedLocale(tag string) bool {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", LocaleEN, LocaleES:
		return true
	}
	return false
}
