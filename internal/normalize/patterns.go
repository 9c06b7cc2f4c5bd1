// Package normalize classifies arbitrary user-supplied strings claiming to
// identify a YouTube video, canonicalizes the ones it recognizes, and rejects
// the rest with a typed validation error.
package normalize

import "regexp"

// videoIDRe is the identifier rule: exactly 11 characters from the YouTube
// video ID alphabet. Not longer, not shorter, nothing else.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// pattern recognizes one URL shape and extracts the video ID from it.
type pattern struct {
	re          *regexp.Regexp
	description string
}

// patternTable is the ordered list of recognized URL shapes. Matchers are
// mutually exclusive in practice (each targets a distinct shape), so the
// order matters only for documentation and debugging. Host and scheme match
// case-insensitively; the captured ID is case-sensitive.
//
// The bare 11-character ID is deliberately NOT in this table: it is a
// fallback applied by Normalize against the original trimmed input only
// after every URL pattern has failed.
var patternTable = []pattern{
	{
		re:          regexp.MustCompile(`(?i)^https?://(?:www\.)?youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})(?:[&#]|$)`),
		description: "standard watch URL (youtube.com/watch?v=...)",
	},
	{
		re:          regexp.MustCompile(`(?i)^https?://m\.youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})(?:[&#]|$)`),
		description: "mobile watch URL (m.youtube.com/watch?v=...)",
	},
	{
		re:          regexp.MustCompile(`(?i)^https?://youtu\.be/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
		description: "short link (youtu.be/...)",
	},
	{
		re:          regexp.MustCompile(`(?i)^https?://(?:www\.|m\.)?youtube\.com/embed/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
		description: "embed URL (youtube.com/embed/...)",
	},
}

// extractVideoID runs the pattern table against the protocol-completed
// string. It returns the first captured ID, or "" when no pattern matches.
func extractVideoID(s string) string {
	for _, p := range patternTable {
		if m := p.re.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return ""
}

// IsVideoID reports whether s is exactly an 11-character video ID.
func IsVideoID(s string) bool {
	return videoIDRe.MatchString(s)
}

// Shapes returns the description of every pattern table entry, in order.
// Debugging aid; the table itself is not exported.
func Shapes() []string {
	out := make([]string, 0, len(patternTable))
	for _, p := range patternTable {
		out = append(out, p.description)
	}
	return out
}
