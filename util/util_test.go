package util

import (
	"testing"

	"github.com/matt-g-everett/animtx/curve"
)

func TestGenerateLut(t *testing.T) {
	lut := GenerateLut(curve.Linear, 10)
	if len(lut) != 10 {
		t.Fatalf("lut length = %d, want 10", len(lut))
	}

	// Symmetric rise and fall.
	for i := 0; i < 5; i++ {
		if lut[i] != lut[9-i] {
			t.Errorf("lut[%d] = %g, lut[%d] = %g, want equal", i, lut[i], 9-i, lut[9-i])
		}
	}
	if lut[0] != 0 {
		t.Errorf("lut starts at %g, want 0", lut[0])
	}
	for i := 1; i < 5; i++ {
		if lut[i] <= lut[i-1] {
			t.Errorf("lut not rising at %d: %g <= %g", i, lut[i], lut[i-1])
		}
	}
}

func TestLutCache(t *testing.T) {
	cache := NewLutCache(curve.Linear)
	a := cache.Get(12)
	b := cache.Get(12)
	if &a[0] != &b[0] {
		t.Error("cache regenerated a table it already had")
	}
	if c := cache.Get(20); len(c) != 20 {
		t.Errorf("lut length = %d, want 20", len(c))
	}
}

func TestRandomiseSaturation(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := RandomiseSaturation(0.7, 1.0)
		if s < 0.7 || s > 1.0 {
			t.Fatalf("saturation %g out of [0.7, 1.0]", s)
		}
	}
}
