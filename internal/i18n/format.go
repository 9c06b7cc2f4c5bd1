package i18n

import (
	"strings"

	"github.com/videval/videval/internal/validation"
)

// FormatMessage assembles the human-readable text for a validation error:
// the message, then the suggestion on its own line when the catalog defines
// one, then, only when includeExample is set and an example exists, a
// localized "Example:" line.
func FormatMessage(kind validation.Kind, lang Language, includeExample bool) string {
	if !supported[lang] {
		lang = DefaultLanguage
	}
	msg := Lookup(kind, lang)

	var b strings.Builder
	b.WriteString(msg.Message)
	if msg.Suggestion != "" {
		b.WriteString("\n")
		b.WriteString(msg.Suggestion)
	}
	if includeExample && msg.Example != "" {
		b.WriteString("\n")
		b.WriteString(exampleLabels[lang])
		b.WriteString(" ")
		b.WriteString(msg.Example)
	}
	return b.String()
}

// Help is the structured bundle rendered for UI-side error dialogs.
type Help struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Example    string `json:"example,omitempty"`
	UserAction string `json:"user_action,omitempty"`
}

// HelpMessage returns the structured help bundle for (kind, lang) with the
// localized fixed title.
func HelpMessage(kind validation.Kind, lang Language) Help {
	if !supported[lang] {
		lang = DefaultLanguage
	}
	msg := Lookup(kind, lang)
	return Help{
		Title:      helpTitles[lang],
		Message:    msg.Message,
		Suggestion: msg.Suggestion,
		Example:    msg.Example,
		UserAction: msg.UserAction,
	}
}
