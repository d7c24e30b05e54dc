package setonce

import (
	"testing"

	"pgregory.net/rapid"
)

func TestHashString_matchesHashBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		if HashString(s) != HashBytes([]byte(s)) {
			t.Fatalf("HashString and HashBytes disagree on %q", s)
		}
	})
}

func TestHashString_deterministic(t *testing.T) {
	tests := []string{"", "a", "cerberus", "192.168.1.1"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			if HashString(s) != HashString(s) {
				t.Errorf("hash of %q is not stable", s)
			}
		})
	}
	if HashString("a") == HashString("b") {
		t.Error("expected distinct hashes for distinct short keys")
	}
}

func TestHashUint64(t *testing.T) {
	if HashUint64(0) != 0 {
		t.Errorf("expected 0 to hash to 0, got %d", HashUint64(0))
	}
	// High and low halves are folded together before mixing.
	if HashUint64(1) != HashUint64(1<<32) {
		t.Error("expected folded halves to collide")
	}
	if HashUint64(1) == HashUint64(2) {
		t.Error("expected distinct hashes for 1 and 2")
	}
}
