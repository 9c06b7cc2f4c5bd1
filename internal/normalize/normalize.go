package normalize

import (
	"strings"

	"github.com/videval/videval/internal/validation"
)

// CanonicalPrefix is the templated form every valid input normalizes to.
const CanonicalPrefix = "https://www.youtube.com/watch?v="

// Result is the outcome of a successful normalization. It is produced fresh
// per call and never mutated afterwards.
type Result struct {
	// Original is the input exactly as the caller supplied it.
	Original string

	// Canonical is always rebuilt from the extracted ID, never from the
	// input string: CanonicalPrefix + VideoID.
	Canonical string

	// VideoID is the extracted 11-character identifier.
	VideoID string

	// Valid is true on every Result returned without error. Failures are
	// signaled exclusively through the error channel, never through a
	// false Valid.
	Valid bool

	// Metadata holds best-effort playback hints from the input URL, or
	// nil when none were present or the input was not a parseable URL.
	Metadata *Metadata
}

// Normalize classifies input and returns its canonical form, or a
// *validation.Error describing exactly why it was rejected.
//
// Pure and deterministic: no I/O, no shared state, safe to call from any
// number of goroutines concurrently.
func Normalize(input string) (*Result, error) {
	if input == "" {
		return nil, validation.NewError(validation.InvalidFormat, "empty input")
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, validation.NewError(validation.InvalidFormat, "blank input")
	}

	// Scheme completion is purely a matching aid. The canonical output is
	// rebuilt from the ID below, so the prefix never leaks into it. Scheme
	// matching is case-insensitive, like the pattern table.
	completed := trimmed
	lowerTrimmed := strings.ToLower(trimmed)
	if !strings.HasPrefix(lowerTrimmed, "http://") && !strings.HasPrefix(lowerTrimmed, "https://") {
		completed = "https://" + trimmed
	}

	videoID := extractVideoID(completed)

	// Direct-ID fallback: tried only after every URL pattern has failed,
	// and only against the original trimmed string, never the completed
	// one. An 11-character token accidentally prefixable into a malformed
	// URL must still classify as a bare ID.
	if videoID == "" && IsVideoID(trimmed) {
		return &Result{
			Original:  input,
			Canonical: CanonicalPrefix + trimmed,
			VideoID:   trimmed,
			Valid:     true,
		}, nil
	}

	if videoID == "" {
		lower := strings.ToLower(trimmed)
		if !strings.Contains(lower, "youtube.com") && !strings.Contains(lower, "youtu.be") {
			return nil, validation.NewError(validation.NotTargetDomain, "host is not youtube.com or youtu.be")
		}
		return nil, validation.NewError(validation.MissingIdentifier, "no video ID found in YouTube URL")
	}

	return &Result{
		Original:  input,
		Canonical: CanonicalPrefix + videoID,
		VideoID:   videoID,
		Valid:     true,
		Metadata:  ExtractMetadata(completed),
	}, nil
}
