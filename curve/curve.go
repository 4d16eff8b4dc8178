// Package curve provides pure scalar transforms for remapping normalised
// animation progress, plus combinators for building new ones.
package curve

import "math"

// A Curve remaps a normalised progress value to an output value. Curves are
// pure and stateless; they can be stored, passed around and shared between
// animations freely. They are defined over [0,1] with f(0) = 0; f(1) is not
// guaranteed to be 1 (overshooting curves exceed [0,1] before settling).
type Curve func(x float64) float64

// Linear maps progress to itself.
func Linear(x float64) float64 {
	return x
}

// EaseInOut starts slow, speeds up through the middle and ends slow.
func EaseInOut(x float64) float64 {
	return 0.5 * (1 - math.Cos(x*math.Pi))
}

// EaseIn starts slow and ends at full speed.
func EaseIn(x float64) float64 {
	return 1 - math.Cos(x*math.Pi/2)
}

// EaseOut starts at full speed and ends slow.
func EaseOut(x float64) float64 {
	return math.Sin(x * math.Pi / 2)
}

// Accelerate creates a curve that raises progress to the given power,
// starting slow and finishing fast. Strength must be greater than zero.
func Accelerate(strength float64) Curve {
	if strength == 2 {
		return func(x float64) float64 {
			return x * x
		}
	}

	return func(x float64) float64 {
		return math.Pow(x, strength)
	}
}

// Decelerate creates the mirror of Accelerate, starting fast and
// finishing slow.
func Decelerate(strength float64) Curve {
	return Opposite(Accelerate(strength))
}

// Ease creates a curve that accelerates over the first half and decelerates
// over the second.
func Ease(strength float64) Curve {
	return Compose(Accelerate(strength), Opposite(Accelerate(strength)))
}

// Opposite creates the mirrored curve 1 - f(1-x); if f starts slow, the
// result ends slow. Mirroring rather than inverting keeps Compose continuous
// at the midpoint.
func Opposite(f Curve) Curve {
	return func(x float64) float64 {
		return 1 - f(1-x)
	}
}

// Compose creates a curve that follows f rescaled into [0,0.5] and then g
// rescaled into (0.5,1]. The result is continuous at the midpoint whenever
// f(1) = 1.
func Compose(f, g Curve) Curve {
	return func(x float64) float64 {
		if x <= 0.5 {
			return 0.5 * f(2*x)
		}

		return 0.5 + 0.5*g(2*(x-0.5))
	}
}
