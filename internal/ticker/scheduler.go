// Package ticker advances multi-frame labels and per-surface tick callbacks.
//
// A single Scheduler is shared by every open surface. Entries are keyed by the
// owning surface and must be dropped with Removed when that surface closes.
package ticker

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/logging/events"
)

// Target is a surface whose slots the scheduler may update.
type Target interface {
	ID() string
	SetSlot(slot int, img label.Image)
}

// MenuTicker is a per-tick callback bound to a surface. ticksOpen counts the
// ticks since the callback was registered.
type MenuTicker func(t Target, ticksOpen int64)

type animatedEntry struct {
	target Target
	slot   int
	label  label.Label
	start  int64
}

type menuEntry struct {
	target Target
	fn     MenuTicker
	start  int64
}

type frameUpdate struct {
	target Target
	slot   int
	image  label.Image
}

// Scheduler holds the process-wide tick counter and tracking entries. It is
// safe for concurrent use.
type Scheduler struct {
	now *atomic.Int64

	mu       sync.Mutex
	animated []animatedEntry
	tickers  []menuEntry
}

// NewScheduler returns a scheduler at tick zero.
func NewScheduler() *Scheduler {
	return &Scheduler{now: atomic.NewInt64(0)}
}

// Now returns the current tick.
func (s *Scheduler) Now() int64 {
	return s.now.Load()
}

// AddAnimated tracks l in the given slot of t. Labels without images are
// ignored.
func (s *Scheduler) AddAnimated(t Target, slot int, l label.Label) {
	if t == nil || l.Len() == 0 {
		return
	}
	s.mu.Lock()
	s.animated = append(s.animated, animatedEntry{target: t, slot: slot, label: l, start: s.now.Load()})
	s.mu.Unlock()
	events.Ticker.Animated(t.ID(), slot, l.Len(), l.Interval())
}

// AddMenuTicker registers fn to run on every tick until t is removed.
func (s *Scheduler) AddMenuTicker(t Target, fn MenuTicker) {
	if t == nil || fn == nil {
		return
	}
	s.mu.Lock()
	s.tickers = append(s.tickers, menuEntry{target: t, fn: fn, start: s.now.Load()})
	s.mu.Unlock()
	events.Ticker.MenuTicker(t.ID())
}

// Removed drops every entry owned by the target with the given id and returns
// how many entries were dropped.
func (s *Scheduler) Removed(id string) int {
	s.mu.Lock()
	before := len(s.animated) + len(s.tickers)
	s.animated = filterEntries(s.animated, func(e animatedEntry) bool { return e.target.ID() != id })
	s.tickers = filterEntries(s.tickers, func(e menuEntry) bool { return e.target.ID() != id })
	removed := before - len(s.animated) - len(s.tickers)
	s.mu.Unlock()
	events.Ticker.Purge(id, removed)
	return removed
}

// Len returns the number of animation and menu ticker entries.
func (s *Scheduler) Len() (animated, tickers int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.animated), len(s.tickers)
}

// Count returns how many entries are owned by the target with the given id.
func (s *Scheduler) Count(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.animated {
		if e.target.ID() == id {
			n++
		}
	}
	for _, e := range s.tickers {
		if e.target.ID() == id {
			n++
		}
	}
	return n
}

// Tick advances the counter, runs menu tickers and then moves every animated
// label whose frame boundary falls on this tick. Callbacks run without the
// lock held, so a ticker may close its own surface.
func (s *Scheduler) Tick() {
	now := s.now.Inc()

	s.mu.Lock()
	tickers := make([]menuEntry, len(s.tickers))
	copy(tickers, s.tickers)
	s.mu.Unlock()
	for _, e := range tickers {
		e.fn(e.target, now-e.start)
	}

	s.mu.Lock()
	updates := make([]frameUpdate, 0, len(s.animated))
	for _, e := range s.animated {
		if frame, ok := FrameAt(now-e.start, e.label.Interval(), e.label.Len()); ok {
			updates = append(updates, frameUpdate{target: e.target, slot: e.slot, image: e.label.Frame(frame)})
		}
	}
	s.mu.Unlock()
	for _, u := range updates {
		u.target.SetSlot(u.slot, u.image)
	}
}

// FrameAt reports the frame to show after elapsed ticks and whether this tick
// is a frame boundary.
func FrameAt(elapsed int64, interval, frames int) (int, bool) {
	if frames <= 0 || interval <= 0 || elapsed < 0 {
		return 0, false
	}
	cycle := int64(interval) * int64(frames)
	phase := elapsed % cycle
	if phase%int64(interval) != 0 {
		return 0, false
	}
	return int(phase / int64(interval)), true
}

func filterEntries[E any](entries []E, keep func(E) bool) []E {
	out := entries[:0]
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(entries); i++ {
		var zero E
		entries[i] = zero
	}
	return out
}
