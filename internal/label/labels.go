package label

import "github.com/atomicstack/slotgrid/internal/input"

var (
	// Cancel is the shared cancel control.
	Cancel = NewBuilder().Item("barrier").Title("Cancel").KeyHint(input.LeftClick{}).Build()
	// Close is the shared close control.
	Close = NewBuilder().Item("barrier").Title("Close").KeyHint(input.LeftClick{}).Build()
	// Divider separates regions of large surfaces.
	Divider = Item("lime_stained_glass_pane", "")
	// Blank renders an empty slot that can still carry a handler.
	Blank = NewBuilder().Build()
)
