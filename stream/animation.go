package stream

// An Animation renders one frame of a specific effect at the given stream
// runtime.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
