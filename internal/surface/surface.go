// Package surface implements a grid surface: its managed slots, the
// actor-owned region below them and the button registry that intercepts raw
// interactions once the surface is sealed.
package surface

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/logging"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/ticker"
)

// Button pairs a label with the handler invoked for classified input on its
// slot.
type Button struct {
	Label   label.Label
	Handler func(input.Event)
}

// Scheduler receives the animated labels and per-tick callbacks of sealed
// surfaces and forgets them when the surface closes.
type Scheduler interface {
	AddAnimated(t ticker.Target, slot int, l label.Label)
	AddMenuTicker(t ticker.Target, fn ticker.MenuTicker)
	Removed(id string) int
}

// Option configures a Surface.
type Option func(*Surface)

// WithInventory attaches the actor-owned region shown below the surface.
func WithInventory(inv *Inventory) Option {
	return func(s *Surface) {
		s.inventory = inv
	}
}

// WithID overrides the generated identifier.
func WithID(id string) Option {
	return func(s *Surface) {
		s.id = id
	}
}

// Surface is one open grid. Bindings are fixed at seal time.
type Surface struct {
	id        string
	title     string
	kind      Kind
	scheduler Scheduler
	inventory *Inventory

	mu       sync.Mutex
	slots    []label.Image
	bindings map[int]Button
	sealed   bool
	closed   bool
	text     string
	suggest  []string
	onClose  []func()
	onText   []func(string)
}

// New returns an unsealed surface of the given kind.
func New(title string, kind Kind, scheduler Scheduler, opts ...Option) *Surface {
	s := &Surface{
		id:        uuid.NewString(),
		title:     title,
		kind:      kind,
		scheduler: scheduler,
		slots:     make([]label.Image, kind.Size()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.inventory == nil {
		s.inventory = NewInventory()
	}
	events.Surface.Open(s.id, title, kind.String(), len(s.slots))
	return s
}

func (s *Surface) ID() string    { return s.id }
func (s *Surface) Title() string { return s.title }
func (s *Surface) Kind() Kind    { return s.kind }

// Size returns the number of managed slots.
func (s *Surface) Size() int {
	return len(s.slots)
}

// Inventory returns the attached actor-owned region.
func (s *Surface) Inventory() *Inventory {
	return s.inventory
}

// InPlayerRegion reports whether the raw slot index addresses the
// actor-owned region.
func (s *Surface) InPlayerRegion(slot int) bool {
	return slot >= len(s.slots) && slot < len(s.slots)+PlayerSlots
}

// Slot returns the visible content at a raw slot index.
func (s *Surface) Slot(slot int) label.Image {
	if s.InPlayerRegion(slot) {
		return s.inventory.Get(slot - len(s.slots))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot < 0 || slot >= len(s.slots) {
		return label.Image{}
	}
	return s.slots[slot].Clone()
}

// Slots returns copies of the managed slots.
func (s *Surface) Slots() []label.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]label.Image, len(s.slots))
	for i, img := range s.slots {
		out[i] = img.Clone()
	}
	return out
}

// SetSlot replaces the visible content of a managed slot. It is a no-op once
// the surface is closed.
func (s *Surface) SetSlot(slot int, img label.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || slot < 0 || slot >= len(s.slots) {
		return
	}
	s.slots[slot] = img.Clone()
}

// Exchange applies the default transfer: img goes into the raw slot and the
// previous content is returned. Managed slots only accept this while the
// surface is unsealed.
func (s *Surface) Exchange(slot int, img label.Image) (label.Image, bool) {
	if s.InPlayerRegion(slot) {
		return s.inventory.Exchange(slot-len(s.slots), img), true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed || s.closed || slot < 0 || slot >= len(s.slots) {
		return img, false
	}
	prev := s.slots[slot]
	s.slots[slot] = img.Clone()
	return prev, true
}

// Bound reports whether a button is bound at slot.
func (s *Surface) Bound(slot int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bindings[slot]
	return ok
}

// BoundSlots returns the bound slot indices in ascending order.
func (s *Surface) BoundSlots() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, len(s.bindings))
	for slot := range s.bindings {
		out = append(out, slot)
	}
	sort.Ints(out)
	return out
}

// Seal fixes the bindings, places each button's first image, and hands
// animated labels and tickers to the scheduler. A surface is sealed at most
// once; later calls are rejected with a warning.
func (s *Surface) Seal(bindings map[int]Button, tickers []ticker.MenuTicker) bool {
	s.mu.Lock()
	if s.sealed || s.closed {
		sealed, closed := s.sealed, s.closed
		s.mu.Unlock()
		logging.Warn("surface.seal.rejected", map[string]interface{}{
			"surface": s.id,
			"sealed":  sealed,
			"closed":  closed,
		})
		return false
	}

	s.bindings = make(map[int]Button, len(bindings))
	var animated []int
	labels := make(map[int]label.Label)
	for slot, b := range bindings {
		if slot != input.SlotOutside && (slot < 0 || slot >= len(s.slots)) {
			logging.Warn("surface.bind.out_of_range", map[string]interface{}{
				"surface": s.id,
				"slot":    slot,
				"size":    len(s.slots),
			})
			continue
		}
		s.bindings[slot] = b
		if slot == input.SlotOutside {
			continue
		}
		s.slots[slot] = b.Label.First()
		if b.Label.IsAnimated() {
			animated = append(animated, slot)
			labels[slot] = b.Label
		}
	}
	s.sealed = true
	count := len(s.bindings)
	s.mu.Unlock()

	sort.Ints(animated)
	if s.scheduler != nil {
		for _, slot := range animated {
			s.scheduler.AddAnimated(s, slot, labels[slot])
		}
		for _, fn := range tickers {
			s.scheduler.AddMenuTicker(s, fn)
		}
	}
	events.Surface.Seal(s.id, count, len(animated), len(tickers))
	return true
}

// IsSealed reports whether raw interactions are intercepted.
func (s *Surface) IsSealed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sealed
}

// IsClosed reports whether Close has run.
func (s *Surface) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// HandleClick processes a raw interaction and reports whether its default
// transfer must be suppressed. Player-region slots and an unbound outside
// click pass through; everything else on a sealed surface is intercepted and
// dispatched to the bound button, if any.
func (s *Surface) HandleClick(slot, button int, kind input.ClickKind) bool {
	s.mu.Lock()
	sealed, closed := s.sealed, s.closed
	b, bound := s.bindings[slot]
	s.mu.Unlock()

	switch {
	case closed:
		return true
	case !sealed:
		events.Surface.PassThrough(s.id, slot, "unsealed")
		return false
	case s.InPlayerRegion(slot):
		events.Surface.PassThrough(s.id, slot, "player")
		return false
	case slot == input.SlotOutside && !bound:
		events.Surface.PassThrough(s.id, slot, "outside")
		return false
	}

	ev, ok := input.Classify(slot, button, kind)
	if !ok {
		events.Input.Unclassified(slot, button, kind.String())
		return true
	}
	if !bound {
		events.Surface.Unbound(s.id, slot, ev.String())
		return true
	}
	events.Surface.Dispatch(s.id, slot, ev.String())
	if b.Handler != nil {
		b.Handler(ev)
	}
	return true
}

// Text returns the current text-field content of an anvil surface.
func (s *Surface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText updates the text field and notifies text listeners.
func (s *Surface) SetText(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.text = text
	listeners := append([]func(string){}, s.onText...)
	s.mu.Unlock()

	events.Surface.Text(s.id, text)
	for _, fn := range listeners {
		fn(text)
	}
}

// SetSuggestions records candidate completions for the text field.
func (s *Surface) SetSuggestions(candidates []string) {
	s.mu.Lock()
	s.suggest = append([]string(nil), candidates...)
	s.mu.Unlock()
}

// Suggestions returns the candidate completions for the text field.
func (s *Surface) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.suggest...)
}

// OnText registers fn to run after every text change.
func (s *Surface) OnText(fn func(string)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onText = append(s.onText, fn)
	s.mu.Unlock()
}

// OnClose registers fn to run when the surface closes. Listeners run after
// scheduler entries are purged.
func (s *Surface) OnClose(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onClose = append(s.onClose, fn)
	s.mu.Unlock()
}

// Close purges the surface's scheduler entries and then runs close listeners.
// Only the first call has an effect.
func (s *Surface) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	listeners := s.onClose
	s.onClose = nil
	s.onText = nil
	s.mu.Unlock()

	if s.scheduler != nil {
		s.scheduler.Removed(s.id)
	}
	events.Surface.Close(s.id)
	for _, fn := range listeners {
		fn()
	}
}
