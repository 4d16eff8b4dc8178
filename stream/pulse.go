package stream

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/curve"
)

const (
	pulseMinLuminance = 0.02
	pulseMaxLuminance = 0.35
)

// A Pulse is an Animation that swells the luminance of the whole strip once
// per period, driven by an anim.Animation. With an overshoot curve the
// luminance springs past its peak and settles, like a heartbeat.
type Pulse struct {
	clock     anim.Clock
	numPixels int
	colour    colorful.Color
	period    time.Duration
	curve     curve.Curve
	gain      float64
	animation *anim.Animation
	stopped   bool
}

// NewPulse creates a Pulse and starts its first swell.
func NewPulse(clock anim.Clock, numPixels int, colour colorful.Color,
	period time.Duration, c curve.Curve) *Pulse {

	p := new(Pulse)
	p.clock = clock
	p.numPixels = numPixels
	p.colour = colour
	p.period = period
	p.curve = c

	p.start()

	return p
}

// start begins one swell; it re-arms itself from the completion callback
// until the Pulse is stopped.
func (p *Pulse) start() {
	if p.stopped {
		return
	}

	p.animation = anim.Start(p.clock, p.period, p.curve,
		func(progress float64) {
			p.gain = progress
		},
		p.start)
}

// Stop ends the swell cycle and releases the underlying animation.
func (p *Pulse) Stop() {
	p.stopped = true
	if p.animation != nil {
		p.animation.Stop()
	}
}

// CalculateFrame renders the strip at the current swell luminance.
func (p *Pulse) CalculateFrame(runtimeMs int64) *Frame {
	h, c, _ := p.colour.Hcl()
	luminance := anim.Lerp(pulseMinLuminance, pulseMaxLuminance, p.gain)
	pixel := colorful.Hcl(h, c, luminance)

	f := NewFrame(p.numPixels)
	for i := 0; i < p.numPixels; i++ {
		f.pixels[i] = pixel
	}

	return f
}
