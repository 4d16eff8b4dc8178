package stream

import (
	"math"

	"github.com/matt-g-everett/animtx/curve"
)

// A GradientTrail is an Animation that cycles a gradient along an led strip.
// The scroll position over each cycle is remapped through a curve, so the
// trail surges and relaxes instead of moving at constant speed.
type GradientTrail struct {
	gradient    GradientTable
	numPixels   int
	trailLength int
	cycleMs     int64
	curve       curve.Curve
	startMs     int64
	saturation  float64
	luminance   float64
}

// NewGradientTrail creates an instance of a GradientTrail object.
func NewGradientTrail(gradient GradientTable, numPixels, trailLength int,
	cycleMs int64, c curve.Curve, startMs int64) *GradientTrail {

	g := new(GradientTrail)
	g.gradient = gradient
	g.numPixels = numPixels
	g.trailLength = trailLength
	g.cycleMs = cycleMs
	g.curve = c
	g.startMs = startMs
	g.saturation = 1.0
	g.luminance = 0.05

	return g
}

// CalculateFrame renders the gradient at its current scroll position.
func (g *GradientTrail) CalculateFrame(runtimeMs int64) *Frame {
	phase := float64((runtimeMs-g.startMs)%g.cycleMs) / float64(g.cycleMs)
	offset := g.curve(phase) * float64(g.trailLength)

	f := NewFrame(g.numPixels)
	for i := 0; i < g.numPixels; i++ {
		t := math.Mod(float64(i)+offset, float64(g.trailLength)) / float64(g.trailLength)
		f.pixels[i] = g.gradient.GetColor(t, g.saturation, g.luminance)
	}

	return f
}
