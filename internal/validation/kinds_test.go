package validation_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/videval/videval/internal/validation"
)

// The severity map must be total over the taxonomy.
func TestSeverityOf_Total(t *testing.T) {
	want := map[validation.Kind]validation.Severity{
		validation.InvalidFormat:     validation.SeverityLow,
		validation.NotTargetDomain:   validation.SeverityLow,
		validation.MissingIdentifier: validation.SeverityLow,
		validation.PrivateResource:   validation.SeverityMedium,
		validation.ResourceNotFound:  validation.SeverityMedium,
		validation.DuplicateResource: validation.SeverityMedium,
		validation.NetworkError:      validation.SeverityHigh,
	}

	if len(want) != len(validation.AllKinds) {
		t.Fatalf("test table covers %d kinds, taxonomy has %d", len(want), len(validation.AllKinds))
	}
	for _, k := range validation.AllKinds {
		sev, ok := want[k]
		if !ok {
			t.Errorf("no expected severity for %s", k)
			continue
		}
		if got := validation.SeverityOf(k); got != sev {
			t.Errorf("SeverityOf(%s) = %s, want %s", k, got, sev)
		}
	}
}

func TestSeverityOf_UnknownDefaultsToMedium(t *testing.T) {
	if got := validation.SeverityOf(validation.KindUnknown); got != validation.SeverityMedium {
		t.Errorf("SeverityOf(unknown) = %s, want medium", got)
	}
	if got := validation.SeverityOf(validation.Kind(999)); got != validation.SeverityMedium {
		t.Errorf("SeverityOf(999) = %s, want medium", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind validation.Kind
		want int
	}{
		{validation.InvalidFormat, http.StatusBadRequest},
		{validation.NotTargetDomain, http.StatusBadRequest},
		{validation.MissingIdentifier, http.StatusBadRequest},
		{validation.PrivateResource, http.StatusForbidden},
		{validation.ResourceNotFound, http.StatusNotFound},
		{validation.DuplicateResource, http.StatusConflict},
		{validation.NetworkError, http.StatusInternalServerError},
		{validation.KindUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := validation.HTTPStatus(tt.kind); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range validation.AllKinds {
		name := k.String()
		if name == "" || name == "UNKNOWN" {
			t.Errorf("kind %d has no wire name", k)
		}
		if back := validation.KindFromString(name); back != k {
			t.Errorf("KindFromString(%q) = %s, want %s", name, back, k)
		}
	}
	if validation.KindFromString("SOMETHING_ELSE") != validation.KindUnknown {
		t.Error("unrecognized name must map to KindUnknown")
	}
}

func TestError_ErrorsAs(t *testing.T) {
	err := validation.NewError(validation.MissingIdentifier, "no ID in URL")
	wrapped := fmt.Errorf("register video: %w", err)

	var ve *validation.Error
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As failed through wrapping")
	}
	if ve.Kind != validation.MissingIdentifier {
		t.Errorf("kind = %s, want MISSING_IDENTIFIER", ve.Kind)
	}
	if validation.KindOf(wrapped) != validation.MissingIdentifier {
		t.Error("KindOf failed through wrapping")
	}
	if validation.KindOf(errors.New("plain")) != validation.KindUnknown {
		t.Error("KindOf of a plain error must be KindUnknown")
	}
}
