package normalize_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/videval/videval/internal/normalize"
	"github.com/videval/videval/internal/validation"
)

const testID = "dQw4w9WgXcQ"

func wantKind(t *testing.T, err error, kind validation.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *validation.Error, got %T: %v", err, err)
	}
	if ve.Kind != kind {
		t.Errorf("kind = %s, want %s", ve.Kind, kind)
	}
}

func TestNormalize_RecognizedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"standard watch URL", "https://www.youtube.com/watch?v=" + testID},
		{"no www", "https://youtube.com/watch?v=" + testID},
		{"http scheme", "http://www.youtube.com/watch?v=" + testID},
		{"no scheme", "www.youtube.com/watch?v=" + testID},
		{"no scheme no www", "youtube.com/watch?v=" + testID},
		{"uppercase host", "HTTPS://WWW.YOUTUBE.COM/watch?v=" + testID},
		{"mobile host", "https://m.youtube.com/watch?v=" + testID},
		{"extra params before v", "https://www.youtube.com/watch?feature=shared&v=" + testID},
		{"extra params after v", "https://www.youtube.com/watch?v=" + testID + "&feature=shared"},
		{"short link", "https://youtu.be/" + testID},
		{"short link no scheme", "youtu.be/" + testID},
		{"short link with share param", "youtu.be/" + testID + "?si=abc123"},
		{"embed URL", "https://www.youtube.com/embed/" + testID},
		{"embed URL with params", "https://www.youtube.com/embed/" + testID + "?autoplay=1"},
		{"surrounding whitespace", "  https://www.youtube.com/watch?v=" + testID + "  "},
		{"bare video ID", testID},
		{"bare video ID padded", "  " + testID + "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := normalize.Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.input, err)
			}
			if res.VideoID != testID {
				t.Errorf("video ID = %q, want %q", res.VideoID, testID)
			}
			if want := normalize.CanonicalPrefix + testID; res.Canonical != want {
				t.Errorf("canonical = %q, want %q", res.Canonical, want)
			}
			if res.Original != tt.input {
				t.Errorf("original = %q, want %q", res.Original, tt.input)
			}
			if !res.Valid {
				t.Error("expected Valid = true")
			}
		})
	}
}

func TestNormalize_NotTargetDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"vimeo URL", "https://vimeo.com/123456"},
		{"random domain", "https://example.com/watch?v=" + testID},
		{"plain word", "notavideo"},
		{"too-short token", "abc123"},
		{"twelve-char token", "dQw4w9WgXcQ2"},
		{"invalid character in token", "dQw4w9WgXc!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize.Normalize(tt.input)
			wantKind(t, err, validation.NotTargetDomain)
		})
	}
}

func TestNormalize_MissingIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"channel page", "https://www.youtube.com/channel/UCabc"},
		{"search page", "https://www.youtube.com/results?search_query=test"},
		{"bare watch", "https://www.youtube.com/watch"},
		{"watch with empty v", "https://www.youtube.com/watch?v="},
		{"watch with short ID", "https://www.youtube.com/watch?v=abc"},
		{"homepage", "https://www.youtube.com"},
		{"short link root", "https://youtu.be/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize.Normalize(tt.input)
			wantKind(t, err, validation.MissingIdentifier)
		})
	}
}

func TestNormalize_InvalidFormat(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := normalize.Normalize(input)
		wantKind(t, err, validation.InvalidFormat)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=" + testID,
		"youtu.be/" + testID,
		testID,
	}
	for _, input := range inputs {
		first, err := normalize.Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", input, err)
		}
		second, err := normalize.Normalize(first.Canonical)
		if err != nil {
			t.Fatalf("Normalize(canonical %q): %v", first.Canonical, err)
		}
		if second.VideoID != first.VideoID {
			t.Errorf("idempotence broken: %q -> %q", first.VideoID, second.VideoID)
		}
		if second.Canonical != first.Canonical {
			t.Errorf("canonical changed on re-normalize: %q -> %q", first.Canonical, second.Canonical)
		}
	}
}

func TestNormalize_MetadataEndToEnd(t *testing.T) {
	res, err := normalize.Normalize("https://www.youtube.com/watch?v=" + testID + "&list=PLabc&index=5&t=90s")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.VideoID != testID {
		t.Errorf("video ID = %q, want %q", res.VideoID, testID)
	}
	if res.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if res.Metadata.TimestampSeconds != 90 {
		t.Errorf("timestamp = %d, want 90", res.Metadata.TimestampSeconds)
	}
	if res.Metadata.PlaylistID != "PLabc" {
		t.Errorf("playlist ID = %q, want %q", res.Metadata.PlaylistID, "PLabc")
	}
	if res.Metadata.PlaylistIndex == nil || *res.Metadata.PlaylistIndex != 5 {
		t.Errorf("playlist index = %v, want 5", res.Metadata.PlaylistIndex)
	}
}

func TestNormalize_ShortLinkNoMetadata(t *testing.T) {
	res, err := normalize.Normalize("youtu.be/" + testID + "?si=abc123")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.VideoID != testID {
		t.Errorf("video ID = %q, want %q", res.VideoID, testID)
	}
	if res.Metadata != nil {
		t.Errorf("expected no metadata, got %+v", res.Metadata)
	}
}

// A valid 11-character token must classify as a bare ID even though scheme
// completion would turn it into a URL with no recognizable host.
func TestNormalize_DirectIDFallbackOrder(t *testing.T) {
	id := "abcdefghijk"
	res, err := normalize.Normalize(id)
	if err != nil {
		t.Fatalf("Normalize(%q): %v", id, err)
	}
	if res.VideoID != id {
		t.Errorf("video ID = %q, want %q", res.VideoID, id)
	}
}

func TestShapes(t *testing.T) {
	shapes := normalize.Shapes()
	if len(shapes) == 0 {
		t.Fatal("empty pattern table")
	}
	for i, s := range shapes {
		if s == "" {
			t.Errorf("pattern %d has no description", i)
		}
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=" + testID,
		"youtu.be/" + testID,
		"https://vimeo.com/123",
		"",
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := inputs[i%len(inputs)]
			res, err := normalize.Normalize(input)
			if err == nil && !strings.HasPrefix(res.Canonical, normalize.CanonicalPrefix) {
				t.Errorf("canonical %q missing prefix", res.Canonical)
			}
		}(i)
	}
	wg.Wait()
}
