package menu

import (
	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/surface"
)

// Button is a label bound to an input handler.
type Button = surface.Button

// Menu is anything that can (re)build and open its surface. Open must
// rebuild from current state every time it is called.
type Menu interface {
	Open()
}

// New returns a button whose handler receives every classified input.
func New(l label.Label, handler func(input.Event)) Button {
	return Button{Label: l, Handler: handler}
}

// LeftClick returns a button that runs fn on an unshifted left click only.
func LeftClick(l label.Label, fn func()) Button {
	return Button{Label: l, Handler: func(ev input.Event) {
		if click, ok := ev.(input.LeftClick); ok && !click.Shift && fn != nil {
			fn()
		}
	}}
}

// Display returns a button that ignores input.
func Display(l label.Label) Button {
	return Button{Label: l, Handler: func(input.Event) {}}
}

// Cancel returns the shared cancel control.
func Cancel(fn func()) Button {
	return LeftClick(label.Cancel, fn)
}

// Close returns the shared close control.
func Close(fn func()) Button {
	return LeftClick(label.Close, fn)
}
