package anim

// Interpolatable is the capability needed for interpolation: values that can
// be scaled by a factor and added together.
type Interpolatable[T any] interface {
	Scale(factor float64) T
	Add(other T) T
}

// Interpolate blends two values: from at 0, to at 1. Values of at outside
// [0,1] extrapolate, which is what overshooting curves rely on.
func Interpolate[T Interpolatable[T]](from, to T, at float64) T {
	return from.Scale(1 - at).Add(to.Scale(at))
}

// Lerp is Interpolate for plain scalars.
func Lerp(from, to, at float64) float64 {
	return from*(1-at) + to*at
}

// A Point is a 2D position that can be interpolated.
type Point struct {
	X, Y float64
}

// Scale multiplies both coordinates by factor.
func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// Add sums two points coordinate-wise.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// A Size is a 2D extent that can be interpolated.
type Size struct {
	W, H float64
}

// Scale multiplies both dimensions by factor.
func (s Size) Scale(factor float64) Size {
	return Size{s.W * factor, s.H * factor}
}

// Add sums two sizes dimension-wise.
func (s Size) Add(other Size) Size {
	return Size{s.W + other.W, s.H + other.H}
}
