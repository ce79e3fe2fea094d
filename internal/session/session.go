// Package session tracks the surface an actor currently has open and routes
// raw interactions to it.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/surface"
)

// Option configures a Session.
type Option func(*Session)

// WithCueSink routes feedback cues to sink.
func WithCueSink(sink CueSink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithInventory uses inv as the actor-owned region.
func WithInventory(inv *surface.Inventory) Option {
	return func(s *Session) {
		s.inventory = inv
	}
}

// Session is one actor's view. At most one surface is open at a time.
type Session struct {
	id        string
	actor     string
	scheduler surface.Scheduler
	inventory *surface.Inventory
	sink      CueSink

	mu      sync.Mutex
	current *surface.Surface
	held    label.Image
}

// New returns a session for actor whose surfaces register with scheduler.
func New(actor string, scheduler surface.Scheduler, opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		actor:     actor,
		scheduler: scheduler,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.inventory == nil {
		s.inventory = surface.NewInventory()
	}
	return s
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Actor() string { return s.actor }

// Scheduler returns the scheduler surfaces of this session register with.
func (s *Session) Scheduler() surface.Scheduler {
	return s.scheduler
}

// Inventory returns the actor-owned region.
func (s *Session) Inventory() *surface.Inventory {
	return s.inventory
}

// NewSurface returns an unsealed surface wired to this session's scheduler and
// inventory. It is not opened.
func (s *Session) NewSurface(title string, kind surface.Kind) *surface.Surface {
	return surface.New(title, kind, s.scheduler, surface.WithInventory(s.inventory))
}

// Current returns the open surface, or nil.
func (s *Session) Current() *surface.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Held returns the image carried on the cursor.
func (s *Session) Held() label.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held.Clone()
}

// Open makes surf current. The previous surface is closed first so its
// scheduler entries are gone before surf becomes interactive.
func (s *Session) Open(surf *surface.Surface) {
	if surf == nil || surf.IsClosed() {
		return
	}
	s.mu.Lock()
	prev := s.current
	if prev == surf {
		s.mu.Unlock()
		return
	}
	s.current = surf
	s.mu.Unlock()

	if prev != nil {
		events.Session.Close(s.id, prev.ID())
		prev.Close()
	}
	surf.OnClose(func() { s.forget(surf) })
	events.Session.Open(s.id, surf.ID(), surf.Title())
}

// Close closes the current surface, if any.
func (s *Session) Close() {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()
	if prev == nil {
		return
	}
	events.Session.Close(s.id, prev.ID())
	prev.Close()
}

func (s *Session) forget(surf *surface.Surface) {
	s.mu.Lock()
	if s.current == surf {
		s.current = nil
	}
	s.mu.Unlock()
}

// Click routes a raw interaction to the current surface. When the surface
// does not suppress it, the default transfer swaps the cursor with the slot;
// an outside click drops whatever is carried.
func (s *Session) Click(slot, button int, kind input.ClickKind) bool {
	surf := s.Current()
	if surf == nil {
		return false
	}
	if surf.HandleClick(slot, button, kind) {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if slot == input.SlotOutside {
		s.held = label.Image{}
		return false
	}
	if prev, ok := surf.Exchange(slot, s.held); ok {
		s.held = prev
		events.Session.Transfer(s.id, slot)
	}
	return false
}

// Rename forwards a text-field edit to the current surface.
func (s *Session) Rename(text string) {
	if surf := s.Current(); surf != nil {
		surf.SetText(text)
	}
}

// Play delivers a cue with its pitch clamped to [MinPitch, MaxPitch].
func (s *Session) Play(sound Sound, pitch float64) {
	cue := Cue{Sound: sound, Pitch: clampPitch(pitch)}
	events.Session.Cue(s.id, cue.String(), cue.Pitch)
	if s.sink != nil {
		s.sink.Play(s.id, cue)
	}
}

// Interact plays the generic button cue at pitch.
func (s *Session) Interact(pitch float64) {
	s.Play(Chime, pitch)
}

// Success plays the cue for a completed action.
func (s *Session) Success() {
	s.Interact(2)
}

// Failure plays the cue for an error, cancellation or close.
func (s *Session) Failure() {
	s.Interact(0.75)
}

// Clear plays the cue for a value reset to its default.
func (s *Session) Clear() {
	s.Play(Bucket, 1)
}
