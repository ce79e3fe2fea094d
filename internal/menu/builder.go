package menu

import (
	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/logging"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/surface"
	"github.com/atomicstack/slotgrid/internal/ticker"
)

// Builder collects the buttons and tickers of one surface before it is
// sealed and opened.
type Builder struct {
	title   string
	kind    surface.Kind
	buttons map[int]Button
	tickers []ticker.MenuTicker
}

// NewBuilder returns a builder for a surface of the given kind. An unknown
// kind is replaced by a single chest row with a warning.
func NewBuilder(title string, kind surface.Kind) *Builder {
	if !kind.Valid() {
		logging.Warn("menu.kind.invalid", map[string]interface{}{"title": title, "kind": kind.String()})
		kind = surface.Chest1
	}
	return &Builder{title: title, kind: kind, buttons: make(map[int]Button)}
}

// Hopper returns a builder for a 5x1 surface.
func Hopper(title string) *Builder {
	return NewBuilder(title, surface.Hopper)
}

// Dispenser returns a builder for a 3x3 surface.
func Dispenser(title string) *Builder {
	return NewBuilder(title, surface.Dispenser)
}

// Chest returns a builder for a 9-wide surface. rows is clamped to [1, 6].
func Chest(title string, rows int) *Builder {
	kind, err := surface.Chest(rows)
	if err != nil {
		logging.Warn("menu.chest.rows", map[string]interface{}{"title": title, "rows": rows})
		if rows < 1 {
			kind = surface.Chest1
		} else {
			kind = surface.Chest6
		}
	}
	return NewBuilder(title, kind)
}

// Anvil returns a builder for a text-entry surface.
func Anvil(title string) *Builder {
	return NewBuilder(title, surface.Anvil)
}

func (b *Builder) Title() string      { return b.title }
func (b *Builder) Kind() surface.Kind { return b.kind }
func (b *Builder) Size() int          { return b.kind.Size() }

// AddButton binds btn at slot. Negative slots count back from the end;
// input.SlotOutside binds clicks outside the grid. Slots out of range are
// dropped and a repeated slot replaces the earlier button, both with a
// warning.
func (b *Builder) AddButton(slot int, btn Button) {
	size := b.Size()
	if slot != input.SlotOutside && (slot >= size || slot < -size) {
		logging.Warn("menu.button.out_of_range", map[string]interface{}{
			"title": b.title,
			"slot":  slot,
			"size":  size,
		})
		return
	}
	if slot < 0 && slot != input.SlotOutside {
		slot += size
	}
	if _, ok := b.buttons[slot]; ok {
		logging.Warn("menu.button.overwrite", map[string]interface{}{"title": b.title, "slot": slot})
	}
	b.buttons[slot] = btn
}

// AddTicker runs fn on every tick while the surface is open.
func (b *Builder) AddTicker(fn ticker.MenuTicker) {
	if fn != nil {
		b.tickers = append(b.tickers, fn)
	}
}

// Build constructs and seals a surface for sess without opening it.
func (b *Builder) Build(sess *session.Session) *surface.Surface {
	surf := sess.NewSurface(b.title, b.kind)
	buttons := make(map[int]Button, len(b.buttons))
	for slot, btn := range b.buttons {
		buttons[slot] = btn
	}
	tickers := append([]ticker.MenuTicker(nil), b.tickers...)
	surf.Seal(buttons, tickers)
	return surf
}

// Open builds the surface and makes it current for sess, closing whatever
// was open before.
func (b *Builder) Open(sess *session.Session) *surface.Surface {
	surf := b.Build(sess)
	sess.Open(surf)
	return surf
}
