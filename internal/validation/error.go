package validation

import (
	"errors"
	"fmt"
)

// Error is a typed validation failure. The message carried here is the
// internal (English, log-oriented) description; user-facing wording always
// comes from the i18n message catalog keyed by Kind.
type Error struct {
	Kind       Kind
	Message    string
	Suggestion string
	Example    string
}

// NewError creates a validation error for a kind with an internal message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the Kind from err if it is (or wraps) a validation Error.
// Any other error is classified as KindUnknown.
func KindOf(err error) Kind {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}
