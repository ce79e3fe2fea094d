package ui

import (
	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// signal is the raw interaction a key produces.
type signal struct {
	button  int
	kind    input.ClickKind
	outside bool
}

// keySignals binds keys to the raw interactions a pointer-driven client would
// send. Digits are hotbar swaps and are resolved separately.
var keySignals = map[string]signal{
	"enter": {button: 0, kind: input.Pickup},
	" ":     {button: 1, kind: input.Pickup},
	"space": {button: 1, kind: input.Pickup},
	"s":     {button: 0, kind: input.QuickMove},
	"S":     {button: 1, kind: input.QuickMove},
	"d":     {button: 0, kind: input.PickupAll},
	"m":     {button: 2, kind: input.Clone},
	"q":     {button: 0, kind: input.Throw},
	"Q":     {button: 1, kind: input.Throw},
	"o":     {button: 0, kind: input.Throw, outside: true},
	"O":     {button: 1, kind: input.Throw, outside: true},
	"M":     {button: 2, kind: input.Clone, outside: true},
}

func signalForKey(key string) (signal, bool) {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return signal{button: int(key[0] - '1'), kind: input.Swap}, true
	}
	sig, ok := keySignals[key]
	return sig, ok
}

// clickCmd turns a key into a raw interaction on the cursor slot and hands
// it to the bus.
func (m *Model) clickCmd(key string) tea.Cmd {
	sig, ok := signalForKey(key)
	if !ok {
		return nil
	}
	slot := m.cursorSlot()
	if sig.outside {
		slot = input.SlotOutside
	}
	if slot == -1 {
		return nil
	}
	return m.bus.Execute(m.sess, command.Request{
		Key:    key,
		Slot:   slot,
		Button: sig.button,
		Kind:   sig.kind,
	})
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	m.status = ""
	if res.Suppressed && res.Event != nil {
		m.status = input.Hint(res.Event)
	}
	return nil
}
