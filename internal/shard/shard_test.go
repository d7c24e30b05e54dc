package shard

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestIndex_inRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1<<16).Draw(t, "n")
		hash := rapid.Uint32().Draw(t, "hash")

		idx := Index(hash, n)
		if idx < 0 || idx >= n {
			t.Fatalf("index %d out of range [0, %d)", idx, n)
		}
	})
}

func TestIndex_bounds(t *testing.T) {
	tests := []struct {
		name     string
		hash     uint32
		n        int
		expected int
	}{
		{name: "zero hash", hash: 0, n: 64, expected: 0},
		{name: "max hash", hash: math.MaxUint32, n: 64, expected: 63},
		{name: "single shard", hash: math.MaxUint32, n: 1, expected: 0},
		{name: "half", hash: 1 << 31, n: 2, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.hash, tt.n); got != tt.expected {
				t.Errorf("expected index %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestDefaultCount(t *testing.T) {
	if n := DefaultCount(); n < 16 || n%16 != 0 {
		t.Errorf("expected a positive multiple of 16, got %d", n)
	}
}
