package anim

import (
	"time"

	"github.com/matt-g-everett/animtx/curve"
)

// A ProgressFunc receives the animation's progress once per frame. The value
// is the curve's output, so it may leave [0,1] for overshooting curves; the
// final call always carries the curve's value at input 1.
type ProgressFunc func(progress float64)

// An Animation is one active timed playback. It owns a subscription to a
// frame clock, samples its progress once per tick, remaps it through an
// optional curve and hands the result to the caller.
//
// All callbacks of one animation are delivered in tick order from the
// clock's callback stream. The terminal progress callback is delivered
// exactly once, last, followed by the completion callback if there is one.
// Animations are not safe for concurrent use; Stop must be called from the
// same goroutine the clock ticks on.
type Animation struct {
	clock     Clock
	duration  time.Duration
	curve     curve.Curve
	progress  ProgressFunc
	completed func()
	startTime time.Time
	sub       Subscription
}

// Start creates an animation and immediately begins playback on the given
// clock. A nil curve means linear progress. The completed callback may be
// nil.
//
// A duration of zero or less performs the terminal update synchronously
// before returning; no clock subscription is created.
func Start(clock Clock, duration time.Duration, c curve.Curve,
	progress ProgressFunc, completed func()) *Animation {

	a := new(Animation)
	a.clock = clock
	a.duration = duration
	a.curve = c
	a.progress = progress
	a.completed = completed
	a.startTime = clock.Now()

	if duration <= 0 {
		a.finish()
		return a
	}

	a.sub = clock.Subscribe(a.tick)
	return a
}

// IsRunning reports whether the animation still has a terminal update to
// deliver.
func (a *Animation) IsRunning() bool {
	return !a.startTime.IsZero()
}

// Stop fast-forwards the animation to its end: the terminal progress
// callback fires immediately with the curve's value at 1, followed by the
// completion callback. There is no pause or resume. Stopping an animation
// that has already finished is a no-op.
func (a *Animation) Stop() {
	if !a.IsRunning() {
		return
	}

	a.finish()
}

func (a *Animation) tick(now time.Time) {
	if !a.IsRunning() {
		// A tick can still be in flight right after cancellation.
		return
	}

	elapsed := now.Sub(a.startTime)
	if elapsed >= a.duration {
		a.finish()
		return
	}

	a.report(float64(elapsed) / float64(a.duration))
}

// finish releases the clock subscription, marks the animation stopped and
// delivers the terminal callbacks. State is reset first so that callbacks
// observing the animation see it as no longer running.
func (a *Animation) finish() {
	if a.sub != nil {
		a.sub.Cancel()
		a.sub = nil
	}
	a.startTime = time.Time{}

	a.report(1)
	if a.completed != nil {
		a.completed()
	}
}

func (a *Animation) report(t float64) {
	if a.curve != nil {
		t = a.curve(t)
	}

	a.progress(t)
}
