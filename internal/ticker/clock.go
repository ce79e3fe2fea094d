package ticker

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/slotgrid/internal/logging/events"
)

// DefaultInterval is the wall-clock length of one tick (20 ticks per second).
const DefaultInterval = 50 * time.Millisecond

// Clock emits a tick notification on a fixed interval until stopped.
type Clock struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	ticks chan time.Time
	wg    sync.WaitGroup
}

// NewClock starts a clock. Non-positive intervals fall back to DefaultInterval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Clock{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		ticks:    make(chan time.Time),
	}
	events.Ticker.ClockStart(interval)
	c.wg.Add(1)
	go c.run()
	go func() {
		c.wg.Wait()
		close(c.ticks)
	}()
	return c
}

// Interval reports the configured tick length.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Ticks returns the notification channel. It is closed once the clock stops.
// Sends are unbuffered, so a slow consumer delays ticks instead of dropping
// them.
func (c *Clock) Ticks() <-chan time.Time {
	return c.ticks
}

// Stop cancels the clock.
func (c *Clock) Stop() {
	c.cancel()
}

// Wait blocks until the clock goroutine has exited.
func (c *Clock) Wait() {
	c.wg.Wait()
}

func (c *Clock) run() {
	defer c.wg.Done()
	defer events.Ticker.ClockStop()

	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case now := <-t.C:
			select {
			case <-c.ctx.Done():
				return
			case c.ticks <- now:
			}
		}
	}
}
