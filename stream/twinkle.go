package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/curve"
	"github.com/matt-g-everett/animtx/util"
)

// A twinkleParticle is a single pixel that occasionally scintillates by
// running its luminance through a rise-and-fall look-up table.
type twinkleParticle struct {
	colour     colorful.Color
	lut        []float64
	saturation float64
	current    int
	running    bool
}

func newTwinkleParticle(colour colorful.Color) *twinkleParticle {
	p := new(twinkleParticle)
	p.colour = colour
	p.saturation = 1.0
	p.current = 0
	p.running = false
	return p
}

func (p *twinkleParticle) scintillate(lut []float64) {
	if p.running {
		return
	}

	p.lut = lut
	p.saturation = util.RandomiseSaturation(0.7, 1.0)
	p.current = 0
	p.running = true
}

func (p *twinkleParticle) increment() {
	if !p.running {
		return
	}

	p.current++
	if p.current >= len(p.lut) {
		p.current = 0
		p.running = false
	}
}

func (p *twinkleParticle) currentColour() colorful.Color {
	if !p.running {
		return p.colour
	}

	gain := p.lut[p.current]
	h, c, l := p.colour.Hcl()

	// Lift towards the max luminance we want.
	lumDiff := 0.6 - l

	return colorful.Hcl(h, c*p.saturation, l+(lumDiff*gain))
}

// A Twinkle is an Animation that scintillates random pixels. The luminance
// envelope of a scintillation is sampled from a curve, with a random length
// picked per scintillation.
type Twinkle struct {
	scintillationChance int32
	numPixels           int
	backColour          colorful.Color
	luts                *util.LutCache
	particles           []*twinkleParticle
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(scintillationChance int32, numPixels int, backColour colorful.Color,
	shape curve.Curve) *Twinkle {

	t := new(Twinkle)
	t.scintillationChance = scintillationChance
	t.numPixels = numPixels
	t.backColour = backColour
	t.luts = util.NewLutCache(shape)
	t.particles = nil

	return t
}

// CalculateFrame advances every particle and renders the strip.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(t.numPixels)

	// Initialise if we need to
	if t.particles == nil {
		t.particles = make([]*twinkleParticle, t.numPixels)
		for i := 0; i < t.numPixels; i++ {
			t.particles[i] = newTwinkleParticle(t.backColour)
		}
	}

	for i := 0; i < t.numPixels; i++ {
		if rand.Int31n(t.scintillationChance) == 0 {
			t.particles[i].scintillate(t.luts.Get((rand.Intn(18) + 6) * 2))
		}

		t.particles[i].increment()
		f.pixels[i] = t.particles[i].currentColour()
	}

	return f
}
