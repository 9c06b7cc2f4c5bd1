// Package i18n holds the localized message catalog for validation errors and
// the request-language resolution policy.
//
// There is no settable process-wide default language: the effective language
// is resolved per request and threaded explicitly through every call, so
// concurrent requests in different languages are safe by construction.
package i18n

import "strings"

// Language is a supported two-letter language tag.
type Language string

const (
	// Japanese is the system default.
	Japanese Language = "ja"

	// English.
	English Language = "en"
)

// DefaultLanguage is returned when no request signal names a supported
// language.
const DefaultLanguage = Japanese

// supported is the closed set of languages the catalog is total over.
var supported = map[Language]bool{
	Japanese: true,
	English:  true,
}

// SupportedLanguages lists every supported tag, default first. Tests range
// over this slice to prove catalog totality.
var SupportedLanguages = []Language{Japanese, English}

// IsSupported reports whether tag names a supported language.
func IsSupported(tag string) bool {
	return supported[Language(tag)]
}

// Resolve derives the effective response language for a request.
//
// Priority, highest first: the explicit lang query parameter, the X-Language
// custom header, the first supported entry of the Accept-Language
// negotiation header, then the system default. An unsupported value at any
// level is treated as absent at that level and resolution falls through.
// Resolve never fails and always returns exactly one tag.
func Resolve(param, header, acceptLanguage string) Language {
	if IsSupported(param) {
		return Language(param)
	}
	if IsSupported(header) {
		return Language(header)
	}
	for _, entry := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(entry)
		// Strip the quality weight ("ja;q=0.8") and region subtag
		// ("en-US").
		if i := strings.Index(tag, ";"); i >= 0 {
			tag = tag[:i]
		}
		if i := strings.Index(tag, "-"); i >= 0 {
			tag = tag[:i]
		}
		tag = strings.TrimSpace(tag)
		if IsSupported(tag) {
			return Language(tag)
		}
	}
	return DefaultLanguage
}
