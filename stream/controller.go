package stream

import (
	"log"
	"time"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/curve"
)

// Controller cycles through animations, crossfading between the outgoing and
// incoming one. The fade factor is driven by an anim.Animation remapped
// through an ease-in-out curve rather than incremented by a fixed amount per
// frame, so the fade speed is independent of the frame rate.
type Controller struct {
	clock     anim.Clock
	config    Config
	animation Animation
	next      Animation
	fade      *anim.Animation
	blend     float64

	builders    []func(runtimeMs int64) Animation
	nextBuilder int
	lastCycleMs int64
	runtimeMs   int64
}

// NewController creates a Controller cycling through the standard animation
// set.
func NewController(config Config, clock anim.Clock) *Controller {
	c := new(Controller)
	c.clock = clock
	c.config = config

	gradient := GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquoise
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}

	pixels := config.Animation.Pixels
	backColour, _ := colorful.Hex("#000005")
	pulseColour, _ := colorful.Hex("#802020")

	c.builders = []func(runtimeMs int64) Animation{
		func(runtimeMs int64) Animation {
			return NewGradientTrail(gradient, pixels, 180, 12000, curve.EaseInOut, runtimeMs)
		},
		func(runtimeMs int64) Animation {
			overshoot := curve.Overshoot(config.Animation.Overshoots, config.Animation.OvershootHalflife)
			return NewPulse(clock, pixels, pulseColour, 3*time.Second, overshoot)
		},
		func(runtimeMs int64) Animation {
			return NewTwinkle(400, pixels, backColour, curve.Curve(ease.InOutQuad))
		},
	}

	c.animation = c.builders[0](0)
	c.nextBuilder = 1

	return c
}

// CalculateFrame renders the current animation, blending in the next one
// while a crossfade is in flight.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.runtimeMs = runtimeMs
	if c.next == nil && runtimeMs-c.lastCycleMs >= int64(c.config.Animation.CycleSecs*1000) {
		c.cycleAnimation()
	}

	var f *Frame
	if c.next != nil {
		f1 := c.animation.CalculateFrame(runtimeMs)
		f2 := c.next.CalculateFrame(runtimeMs)
		f = f1.Blend(f2, c.blend)
	} else {
		f = c.animation.CalculateFrame(runtimeMs)
	}

	return f
}

// cycleAnimation starts a crossfade into the next animation in the rotation.
func (c *Controller) cycleAnimation() {
	log.Printf("cycling to animation %d", c.nextBuilder)

	// Fast-forward any fade still in flight so its callbacks cannot fire
	// into the new crossfade; a finished fade makes this a no-op.
	if c.fade != nil {
		c.fade.Stop()
	}

	c.next = c.builders[c.nextBuilder](c.runtimeMs)
	c.nextBuilder = (c.nextBuilder + 1) % len(c.builders)
	c.lastCycleMs = c.runtimeMs
	c.blend = 0

	transition := time.Duration(c.config.Animation.TransitionSecs * float64(time.Second))
	c.fade = anim.Start(c.clock, transition, curve.EaseInOut,
		func(progress float64) {
			c.blend = progress
		},
		func() {
			if stoppable, ok := c.animation.(interface{ Stop() }); ok {
				stoppable.Stop()
			}
			c.animation = c.next
			c.next = nil
		})
}
