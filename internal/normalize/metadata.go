package normalize

import (
	"net/url"
	"regexp"
	"strconv"
)

// Metadata holds optional playback hints carried in the query string of a
// recognized URL. Every field is independent and best-effort; a missing or
// malformed parameter never fails normalization.
type Metadata struct {
	// TimestampSeconds is the start offset from the t parameter, in
	// seconds. 0 when absent or unparseable.
	TimestampSeconds int

	// PlaylistID is the list parameter, copied verbatim. No length cap.
	PlaylistID string

	// PlaylistIndex is the index parameter, or nil when absent or not an
	// integer.
	PlaylistIndex *int
}

// timestampRe matches the compound duration grammar [Hh][Mm][Ss] with fixed
// component order and any component optional.
var timestampRe = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

// ExtractMetadata pulls playback hints from rawURL's query string. It
// returns nil when rawURL is not a parseable URL or carries none of the
// recognized parameters. It never fails.
func ExtractMetadata(rawURL string) *Metadata {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	q := u.Query()

	md := &Metadata{}
	found := false

	if t := q.Get("t"); t != "" {
		md.TimestampSeconds = parseTimestamp(t)
		found = true
	}
	if list := q.Get("list"); list != "" {
		md.PlaylistID = list
		found = true
	}
	if idx := q.Get("index"); idx != "" {
		if n, err := strconv.Atoi(idx); err == nil {
			md.PlaylistIndex = &n
			found = true
		}
	}

	if !found {
		return nil
	}
	return md
}

// parseTimestamp converts a t parameter value to total seconds. Accepted
// forms: pure digits ("90"), or a compound duration ("1h30m45s", "30m",
// "45s"). Anything else yields 0.
func parseTimestamp(value string) int {
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return n
	}

	m := timestampRe.FindStringSubmatch(value)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return 0
	}

	total := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		total += h * 3600
	}
	if m[2] != "" {
		min, _ := strconv.Atoi(m[2])
		total += min * 60
	}
	if m[3] != "" {
		s, _ := strconv.Atoi(m[3])
		total += s
	}
	return total
}
