package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
)

// Markers prefixed to the option list of an enum switch.
const (
	ActiveMarker   = "● "
	InactiveMarker = "○ "
)

// ErrNoOptions is returned by EnumSwitch for an empty option list.
var ErrNoOptions = errors.New("switch needs at least one option")

// BoolLabels returns the default labels of a boolean switch named name.
func BoolLabels(name string) func(bool) label.Label {
	on := label.NewBuilder().Item("lime_concrete").Title(name).
		Hint("True").
		InputHint("Toggle", input.LeftClick{}).
		Build()
	off := label.NewBuilder().Item("red_concrete").Title(name).
		Hint("False").
		InputHint("Toggle", input.LeftClick{}).
		Build()
	return func(v bool) label.Label {
		if v {
			return on
		}
		return off
	}
}

// BoolSwitch returns a button showing value that reports the negated value
// on left click.
func BoolSwitch(name string, value bool, onChange func(bool)) Button {
	return LeftClick(BoolLabels(name)(value), func() {
		if onChange != nil {
			onChange(!value)
		}
	})
}

// EnumOption is one state of an enum switch.
type EnumOption[E comparable] struct {
	Value E
	Label label.Label
}

// EnumSwitch returns a button showing current's images under name, with every
// option listed as a hint. Left click moves to the next option and right
// click to the previous one, wrapping at both ends.
func EnumSwitch[E comparable](name string, options []EnumOption[E], current E, onChange func(E)) (Button, error) {
	if len(options) == 0 {
		return Button{}, ErrNoOptions
	}
	idx := -1
	for i, opt := range options {
		if opt.Value == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Button{}, fmt.Errorf("switch %q: current value %v is not an option", name, current)
	}

	existing := options[idx].Label
	b := label.NewBuilder().Title(name).Interval(existing.Interval())
	for _, img := range existing.Images() {
		b.Image(img)
	}
	for i, opt := range options {
		title, ok := opt.Label.Title()
		if !ok {
			title = fmt.Sprint(opt.Value)
		}
		if i == idx {
			b.Hint(ActiveMarker + title)
		} else {
			b.Hint(InactiveMarker + title)
		}
	}
	b.InputHint("Next", input.LeftClick{})
	b.InputHint("Previous", input.RightClick{})

	return New(b.Build(), func(ev input.Event) {
		next := idx
		switch ev {
		case input.LeftClick{}:
			next = (idx + 1) % len(options)
		case input.RightClick{}:
			next = (idx - 1 + len(options)) % len(options)
		}
		if onChange != nil {
			onChange(options[next].Value)
		}
	}), nil
}
