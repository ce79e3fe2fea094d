// Package input turns raw grid interactions into a small set of semantic
// button inputs.
//
// The host protocol was built for moving stacks between slots. Every
// protocol-specific rule lives in Classify; the rest of the module only sees
// Event values.
package input

import "fmt"

// SlotOutside is the slot index reported for clicks outside the grid.
const SlotOutside = -999

// ClickKind is the host's interaction vocabulary.
type ClickKind int

const (
	Pickup ClickKind = iota
	QuickMove
	Swap
	Clone
	Throw
	QuickCraft
	PickupAll
)

var kindNames = map[ClickKind]string{
	Pickup:     "pickup",
	QuickMove:  "quick_move",
	Swap:       "swap",
	Clone:      "clone",
	Throw:      "throw",
	QuickCraft: "quick_craft",
	PickupAll:  "pickup_all",
}

func (k ClickKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is one semantic input. The set of implementations is closed.
type Event interface {
	isEvent()
	String() string
}

// LeftClick is a left mouse click, optionally with shift held.
type LeftClick struct{ Shift bool }

// RightClick is a right mouse click, optionally with shift held.
type RightClick struct{ Shift bool }

// DoubleLeftClick follows two LeftClick events for the same slot. A shifted
// double click arrives as a third shifted LeftClick instead.
type DoubleLeftClick struct{}

// MiddleClick is a middle mouse button press.
type MiddleClick struct{}

// Drop is the drop key, optionally with control held.
type Drop struct{ Control bool }

// Hotbar is a hotbar key press; Index is zero based.
type Hotbar struct{ Index int }

func (LeftClick) isEvent()       {}
func (RightClick) isEvent()      {}
func (DoubleLeftClick) isEvent() {}
func (MiddleClick) isEvent()     {}
func (Drop) isEvent()            {}
func (Hotbar) isEvent()          {}

func (e LeftClick) String() string {
	if e.Shift {
		return "left_click+shift"
	}
	return "left_click"
}

func (e RightClick) String() string {
	if e.Shift {
		return "right_click+shift"
	}
	return "right_click"
}

func (DoubleLeftClick) String() string { return "double_left_click" }
func (MiddleClick) String() string     { return "middle_click" }

func (e Drop) String() string {
	if e.Control {
		return "drop+control"
	}
	return "drop"
}

func (e Hotbar) String() string { return fmt.Sprintf("hotbar_%d", e.Index) }

// HotbarSlots is the number of hotbar keys.
const HotbarSlots = 9

// Classify maps a raw interaction to an Event. It never fails; combinations
// without a rule report ok == false and callers treat them as no-ops.
func Classify(slot, button int, kind ClickKind) (Event, bool) {
	if slot == SlotOutside {
		switch {
		case kind == Throw && button == 0:
			return LeftClick{}, true
		case kind == Throw && button == 1:
			return RightClick{}, true
		case kind == Clone && button == 2:
			return MiddleClick{}, true
		}
		return nil, false
	}
	switch kind {
	case Pickup:
		switch button {
		case 0:
			return LeftClick{}, true
		case 1:
			return RightClick{}, true
		}
	case QuickMove:
		switch button {
		case 0:
			return LeftClick{Shift: true}, true
		case 1:
			return RightClick{Shift: true}, true
		}
	case Clone:
		if button == 2 {
			return MiddleClick{}, true
		}
	case Throw:
		switch button {
		case 0:
			return Drop{}, true
		case 1:
			return Drop{Control: true}, true
		}
	case Swap:
		if button >= 0 && button < HotbarSlots {
			return Hotbar{Index: button}, true
		}
	case PickupAll:
		if button == 0 {
			return DoubleLeftClick{}, true
		}
	}
	return nil, false
}
