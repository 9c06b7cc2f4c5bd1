package api

import (
	"encoding/json"
	"net/http"

	"github.com/videval/videval/internal/i18n"
	"github.com/videval/videval/internal/metrics"
	"github.com/videval/videval/internal/validation"
)

// errorBody is the failure half of the response envelope. Wording always
// comes from the i18n catalog; raw internal error text is never surfaced.
type errorBody struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Language   string `json:"language"`
	Suggestion string `json:"suggestion,omitempty"`
	Example    string `json:"example,omitempty"`
	UserAction string `json:"user_action,omitempty"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeSuccess writes data inside the success envelope.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Success: true, Data: data})
}

// writeKindError writes the localized error envelope for a validation error
// kind, with the HTTP status and severity derived from the taxonomy.
func writeKindError(w http.ResponseWriter, kind validation.Kind, lang i18n.Language) {
	metrics.ValidationErrorsTotal.WithLabelValues(kind.String(), validation.SeverityOf(kind).String()).Inc()

	msg := i18n.Lookup(kind, lang)
	writeJSON(w, validation.HTTPStatus(kind), errorEnvelope{
		Error: errorBody{
			Kind:       kind.String(),
			Message:    msg.Message,
			Language:   string(lang),
			Suggestion: msg.Suggestion,
			Example:    msg.Example,
			UserAction: msg.UserAction,
		},
	})
}

// writeInternalError degrades an unexpected failure to the generic unknown
// kind record. Never leaks internal error text to the client.
func writeInternalError(w http.ResponseWriter, lang i18n.Language) {
	msg := i18n.Lookup(validation.KindUnknown, lang)
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Error: errorBody{
			Kind:       validation.KindUnknown.String(),
			Message:    msg.Message,
			Language:   string(lang),
			Suggestion: msg.Suggestion,
			UserAction: msg.UserAction,
		},
	})
}
