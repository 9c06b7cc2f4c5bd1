// Package validation defines the closed taxonomy of URL validation errors,
// their severity classification, and the HTTP status each kind maps to.
package validation

import "net/http"

// Kind identifies one member of the closed validation error taxonomy.
// Every Kind has exactly one severity and one message catalog entry per
// supported language; both mappings are exercised exhaustively in tests.
type Kind int

const (
	// KindUnknown is the zero value. It is never produced by this package;
	// it exists so that errors of unexpected origin (e.g. decoded from an
	// external collaborator) degrade gracefully instead of crashing the
	// response path.
	KindUnknown Kind = iota

	// InvalidFormat: the input is empty or not recognizable as a URL or
	// video ID at all.
	InvalidFormat

	// NotTargetDomain: the input is URL-shaped but does not point at
	// youtube.com or youtu.be.
	NotTargetDomain

	// MissingIdentifier: the input is a YouTube URL but carries no
	// extractable 11-character video ID (channel page, search page, bare
	// /watch with no query, ...).
	MissingIdentifier

	// PrivateResource: the video exists but is private.
	PrivateResource

	// ResourceNotFound: no video exists for the identifier.
	ResourceNotFound

	// NetworkError: the metadata fetch failed at the transport level.
	NetworkError

	// DuplicateResource: a video with the same identifier is already
	// registered.
	DuplicateResource
)

// AllKinds lists every real taxonomy member, in declaration order. Tests
// range over this slice to prove the severity map and message catalog are
// total.
var AllKinds = []Kind{
	InvalidFormat,
	NotTargetDomain,
	MissingIdentifier,
	PrivateResource,
	ResourceNotFound,
	NetworkError,
	DuplicateResource,
}

var kindNames = map[Kind]string{
	InvalidFormat:     "INVALID_FORMAT",
	NotTargetDomain:   "NOT_TARGET_DOMAIN",
	MissingIdentifier: "MISSING_IDENTIFIER",
	PrivateResource:   "PRIVATE_RESOURCE",
	ResourceNotFound:  "RESOURCE_NOT_FOUND",
	NetworkError:      "NETWORK_ERROR",
	DuplicateResource: "DUPLICATE_RESOURCE",
}

// String returns the wire name of the kind, e.g. "INVALID_FORMAT".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// KindFromString maps a wire name back to a Kind. Unrecognized names map to
// KindUnknown rather than failing.
func KindFromString(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return KindUnknown
}

// Severity classifies how actionable a validation error is for the end user.
type Severity int

const (
	// SeverityLow: the user can self-correct the input by retyping it.
	SeverityLow Severity = iota + 1

	// SeverityMedium: the user needs a different resource or a decision,
	// not just a corrected string.
	SeverityMedium

	// SeverityHigh: a system or environment issue outside the user's
	// control.
	SeverityHigh
)

// String returns the log-friendly name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// SeverityOf returns the severity for a kind. Unknown kinds default to
// SeverityMedium so that classifying an error of unexpected origin never
// crashes the caller.
func SeverityOf(k Kind) Severity {
	switch k {
	case InvalidFormat, NotTargetDomain, MissingIdentifier:
		return SeverityLow
	case PrivateResource, ResourceNotFound, DuplicateResource:
		return SeverityMedium
	case NetworkError:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

// HTTPStatus returns the response status code for a kind. Unknown kinds map
// to 500.
func HTTPStatus(k Kind) int {
	switch k {
	case InvalidFormat, NotTargetDomain, MissingIdentifier:
		return http.StatusBadRequest
	case PrivateResource:
		return http.StatusForbidden
	case ResourceNotFound:
		return http.StatusNotFound
	case DuplicateResource:
		return http.StatusConflict
	case NetworkError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
