package curve

import "math"

// Decay creates an unclamped exponential falloff from 1 towards 0. The value
// halves every halflife units of progress; halflife must be greater than
// zero.
func Decay(halflife float64) Curve {
	return func(x float64) float64 {
		return math.Pow(0.5, x/halflife)
	}
}

// ExponentialDecelerate creates a curve that rises from 0 towards 1 with
// exponentially slowing speed. The remaining distance halves every halflife
// units of progress. The curve only approaches 1 asymptotically, so it
// returns exactly 1 for any input of 1 or more.
func ExponentialDecelerate(halflife float64) Curve {
	return func(x float64) float64 {
		if x >= 1 {
			return 1
		}

		return 1 - math.Pow(0.5, x/halflife)
	}
}

// Overshoot creates a curve that shoots past 1 and oscillates around it with
// exponentially decaying amplitude, like a damped spring but tuned by an
// exact overshoot count and half-life instead of physical constants.
// A count of 0 approaches 1 without crossing it; a count of n crosses 1
// n times before settling. Returns exactly 1 for any input of 1 or more.
func Overshoot(count int, halflife float64) Curve {
	waveCount := 0.25 + 0.5*float64(count)

	return func(x float64) float64 {
		if x >= 1 {
			return 1
		}

		waveValue := -math.Cos(2 * math.Pi * x * waveCount)
		decayValue := math.Pow(0.5, x/halflife)

		return 1 + decayValue*waveValue
	}
}
