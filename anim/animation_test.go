package anim

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matt-g-everett/animtx/curve"
)

// fakeClock is a Clock cranked by hand from the test.
type fakeClock struct {
	now        time.Time
	subscribed int
	subs       []*fakeSubscription
}

func newFakeClock() *fakeClock {
	c := new(fakeClock)
	c.now = time.Unix(1000, 0)
	return c
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Subscribe(tick func(now time.Time)) Subscription {
	c.subscribed++
	s := &fakeSubscription{tick: tick}
	c.subs = append(c.subs, s)
	return s
}

// advance moves the clock forward and delivers one tick to every active
// subscription.
func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
	for _, s := range c.subs {
		if !s.cancelled {
			s.tick(c.now)
		}
	}
}

func (c *fakeClock) activeSubscriptions() int {
	n := 0
	for _, s := range c.subs {
		if !s.cancelled {
			n++
		}
	}
	return n
}

type fakeSubscription struct {
	tick      func(now time.Time)
	cancelled bool
}

func (s *fakeSubscription) Cancel() {
	s.cancelled = true
}

type recorder struct {
	values    []float64
	completed int
}

func (r *recorder) progress(v float64) {
	r.values = append(r.values, v)
}

func (r *recorder) complete() {
	r.completed++
}

func TestZeroDurationCompletesSynchronously(t *testing.T) {
	clock := newFakeClock()
	r := new(recorder)

	a := Start(clock, 0, nil, r.progress, r.complete)

	if diff := cmp.Diff([]float64{1}, r.values); diff != "" {
		t.Errorf("progress values mismatch (-want +got):\n%s", diff)
	}
	if r.completed != 1 {
		t.Errorf("completed %d times, want 1", r.completed)
	}
	if clock.subscribed != 0 {
		t.Errorf("subscribed to the clock %d times, want 0", clock.subscribed)
	}
	if a.IsRunning() {
		t.Error("animation still running after synchronous completion")
	}
}

func TestNegativeDurationBehavesLikeZero(t *testing.T) {
	clock := newFakeClock()
	r := new(recorder)

	a := Start(clock, -time.Second, nil, r.progress, r.complete)

	if diff := cmp.Diff([]float64{1}, r.values); diff != "" {
		t.Errorf("progress values mismatch (-want +got):\n%s", diff)
	}
	if r.completed != 1 || clock.subscribed != 0 || a.IsRunning() {
		t.Errorf("completed=%d subscribed=%d running=%v, want 1, 0, false",
			r.completed, clock.subscribed, a.IsRunning())
	}
}

func TestLinearPlayback(t *testing.T) {
	clock := newFakeClock()
	r := new(recorder)

	a := Start(clock, time.Second, curve.Linear, r.progress, r.complete)
	if !a.IsRunning() {
		t.Fatal("animation not running after Start")
	}

	for i := 0; i < 4; i++ {
		clock.advance(250 * time.Millisecond)
	}

	want := []float64{0.25, 0.5, 0.75, 1}
	if diff := cmp.Diff(want, r.values, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("progress values mismatch (-want +got):\n%s", diff)
	}
	if r.completed != 1 {
		t.Errorf("completed %d times, want 1", r.completed)
	}
	if a.IsRunning() {
		t.Error("animation still running after terminal tick")
	}
	if n := clock.activeSubscriptions(); n != 0 {
		t.Errorf("%d subscriptions still active, want 0", n)
	}
}

func TestCompletionAfterFinalProgress(t *testing.T) {
	clock := newFakeClock()

	var values []float64
	completedAt := -1
	a := Start(clock, time.Second, nil,
		func(v float64) { values = append(values, v) },
		func() { completedAt = len(values) })

	clock.advance(2 * time.Second)

	if completedAt != len(values) {
		t.Errorf("completion fired after %d of %d progress calls", completedAt, len(values))
	}
	if a.IsRunning() {
		t.Error("animation still running")
	}
}

func TestTerminalValueIsCurveAtOne(t *testing.T) {
	clock := newFakeClock()
	r := new(recorder)

	// A curve that does not converge on 1; the terminal value must be its
	// true value at 1, not a hardcoded 1.
	doubler := curve.Curve(func(x float64) float64 { return 2 * x })
	Start(clock, time.Second, doubler, r.progress, r.complete)

	clock.advance(500 * time.Millisecond)
	clock.advance(600 * time.Millisecond)

	want := []float64{1, 2}
	if diff := cmp.Diff(want, r.values, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("progress values mismatch (-want +got):\n%s", diff)
	}
}

func TestCurvedPlayback(t *testing.T) {
	clock := newFakeClock()
	r := new(recorder)

	Start(clock, time.Second, curve.EaseInOut, r.progress, r.complete)
	clock.advance(500 * time.Millisecond)

	if len(r.values) != 1 || math.Abs(r.values[0]-0.5) > 1e-12 {
		t.Errorf("easeInOut progress at midpoint = %v, want [0.5]", r.values)
	}
}

func TestStopFastForwards(t *testing.T) {
	clock := newFakeClock()
	r := new(recorder)

	a := Start(clock, time.Second, curve.Linear, r.progress, r.complete)
	clock.advance(300 * time.Millisecond)

	a.Stop()

	want := []float64{0.3, 1}
	if diff := cmp.Diff(want, r.values, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("progress values mismatch (-want +got):\n%s", diff)
	}
	if r.completed != 1 {
		t.Errorf("completed %d times, want 1", r.completed)
	}
	if n := clock.activeSubscriptions(); n != 0 {
		t.Errorf("%d subscriptions still active after Stop, want 0", n)
	}

	// A second Stop and any stray ticks are no-ops.
	a.Stop()
	clock.advance(time.Second)

	if len(r.values) != 2 || r.completed != 1 {
		t.Errorf("callbacks fired after terminal update: values=%v completed=%d",
			r.values, r.completed)
	}
}

func TestNilCompletionCallback(t *testing.T) {
	clock := newFakeClock()
	r := new(recorder)

	a := Start(clock, time.Second, nil, r.progress, nil)
	clock.advance(time.Second)

	if a.IsRunning() {
		t.Error("animation still running")
	}
	if diff := cmp.Diff([]float64{1}, r.values); diff != "" {
		t.Errorf("progress values mismatch (-want +got):\n%s", diff)
	}
}

func TestIndependentAnimations(t *testing.T) {
	clock := newFakeClock()
	fast := new(recorder)
	slow := new(recorder)

	Start(clock, time.Second, curve.Linear, fast.progress, fast.complete)
	Start(clock, 2*time.Second, curve.Linear, slow.progress, slow.complete)

	clock.advance(time.Second)

	if fast.completed != 1 {
		t.Errorf("fast animation completed %d times, want 1", fast.completed)
	}
	if slow.completed != 0 {
		t.Errorf("slow animation completed %d times, want 0", slow.completed)
	}
	if diff := cmp.Diff([]float64{0.5}, slow.values, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("slow progress mismatch (-want +got):\n%s", diff)
	}

	clock.advance(time.Second)
	if slow.completed != 1 {
		t.Errorf("slow animation completed %d times after full duration, want 1", slow.completed)
	}
}
