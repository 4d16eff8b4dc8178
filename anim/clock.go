// Package anim drives per-frame progress callbacks for timed animations,
// optionally remapped through a curve.
package anim

import (
	"sync"
	"time"
)

// A Clock delivers a callback once per display frame until the subscription
// is cancelled. It is the boundary to the host environment; animations never
// schedule anything themselves.
type Clock interface {
	// Now reports the clock's current time. Animations measure elapsed time
	// against the same clock that delivers their ticks.
	Now() time.Time

	// Subscribe registers a tick handler to be invoked once per frame until
	// the returned subscription is cancelled. All handlers of one clock are
	// invoked from a single callback stream, in subscription order; handlers
	// must not assume more.
	Subscribe(tick func(now time.Time)) Subscription
}

// A Subscription is a handle to an active tick stream.
type Subscription interface {
	// Cancel stops tick delivery. Cancelling more than once is a no-op.
	Cancel()
}

// A TickerClock is a Clock that ticks at a fixed frame rate on the wall
// clock. All subscriptions share one dispatch goroutine, so their handlers
// never run concurrently with each other. Handlers may subscribe and cancel
// from within a tick.
type TickerClock struct {
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
	once     sync.Once

	mu   sync.Mutex
	subs []*tickerSubscription
}

// NewTickerClock creates a Clock ticking frameRate times per second and
// starts its dispatch goroutine.
func NewTickerClock(frameRate float64) *TickerClock {
	c := new(TickerClock)
	c.interval = time.Duration(float64(time.Second) / frameRate)
	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})

	go c.run()

	return c
}

// Now returns the current wall-clock time.
func (c *TickerClock) Now() time.Time {
	return time.Now()
}

// Subscribe adds a tick handler to the clock's dispatch loop. The handler
// first fires on the tick after Subscribe returns.
func (c *TickerClock) Subscribe(tick func(now time.Time)) Subscription {
	s := &tickerSubscription{clock: c, tick: tick}

	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()

	return s
}

// Stop halts the dispatch goroutine and tick delivery for the whole clock.
func (c *TickerClock) Stop() {
	c.once.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}

func (c *TickerClock) run() {
	for {
		select {
		case now := <-c.ticker.C:
			c.dispatch(now)
		case <-c.done:
			return
		}
	}
}

// dispatch delivers one tick to every live subscription. The lock is not
// held while handlers run, so a handler cancelling or subscribing cannot
// deadlock; subscriptions cancelled earlier in the same tick are skipped.
func (c *TickerClock) dispatch(now time.Time) {
	c.mu.Lock()
	kept := c.subs[:0]
	live := make([]*tickerSubscription, 0, len(c.subs))
	for _, s := range c.subs {
		if !s.cancelled {
			kept = append(kept, s)
			live = append(live, s)
		}
	}
	c.subs = kept
	c.mu.Unlock()

	for _, s := range live {
		if !s.isCancelled() {
			s.tick(now)
		}
	}
}

type tickerSubscription struct {
	clock *TickerClock
	tick  func(now time.Time)

	// cancelled is guarded by clock.mu.
	cancelled bool
}

func (s *tickerSubscription) Cancel() {
	s.clock.mu.Lock()
	s.cancelled = true
	s.clock.mu.Unlock()
}

func (s *tickerSubscription) isCancelled() bool {
	s.clock.mu.Lock()
	defer s.clock.mu.Unlock()
	return s.cancelled
}
