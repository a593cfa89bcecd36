package idgen

import (
	"strings"
	"testing"
	"time"
)

func TestNewFormat(t *testing.T) {
	id := New("REQ")

	if !strings.HasPrefix(id, "REQ-") {
		t.Fatalf("expected REQ- prefix, got %q", id)
	}
	body := strings.TrimPrefix(id, "REQ-")
	if len(body) < 8 {
		t.Fatalf("id body too short: %q", id)
	}
	if body != strings.ToUpper(body) {
		t.Fatalf("id body not uppercased: %q", id)
	}
}

// Uniqueness is only guaranteed across distinct milliseconds; the random
// suffix merely disambiguates bursts. Space the generations out accordingly.
func TestNewUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		id := New("TXN")
		if seen[id] {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = true
		time.Sleep(2 * time.Millisecond)
	}
}
