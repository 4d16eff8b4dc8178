package util

import (
	"math/rand"

	"github.com/matt-g-everett/animtx/curve"
)

// RandomiseSaturation picks a random saturation between min and max.
func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric rise-and-fall look-up table by sampling the
// given curve over the first half and mirroring it over the second.
func GenerateLut(c curve.Curve, length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := c(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}

// LutCache memoizes look-up tables by length for a single curve.
type LutCache struct {
	curve curve.Curve
	luts  map[int][]float64
}

// NewLutCache creates a LutCache generating tables from the given curve.
func NewLutCache(c curve.Curve) *LutCache {
	l := new(LutCache)
	l.curve = c
	l.luts = make(map[int][]float64)
	return l
}

// Get returns the memoized table of the given length, generating it on first
// use.
func (l *LutCache) Get(length int) []float64 {
	lut, found := l.luts[length]
	if !found {
		lut = GenerateLut(l.curve, length)
		l.luts[length] = lut
	}
	return lut
}
