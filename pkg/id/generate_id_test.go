package id

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_Format(t *testing.T) {
	got := NewID32()
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
}

func TestNewID32_IsUUIDv4(t *testing.T) {
	got := NewID32()
	u, err := uuid.Parse(got)
	if err != nil {
		t.Fatalf("uuid.Parse(%q): %v", got, err)
	}
	if u.Version() != 4 || u.Variant() != uuid.RFC4122 {
		t.Fatalf("want RFC4122 v4, got version=%d variant=%v", u.Version(), u.Variant())
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
