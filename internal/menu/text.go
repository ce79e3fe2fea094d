package menu

import (
	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/surface"
)

// ResultItem marks an accepted value in the result slot of a text dialog.
const ResultItem = "emerald"

// TextRequest describes a text-entry dialog.
type TextRequest struct {
	Title string
	Start string
	// Additional is shown between the input and result slots; a divider is
	// used when nil.
	Additional *label.Label
	// Predicate gates the result slot. Nil accepts any text.
	Predicate func(string) bool
	// Suggestions are completion candidates offered by the host UI.
	Suggestions []string
}

// TextPrompter opens a text-entry dialog and reports the entered text.
type TextPrompter interface {
	Prompt(sess *session.Session, req TextRequest, cb Callback[string])
}

// AnvilPrompter prompts with a TextMenu.
type AnvilPrompter struct{}

func (AnvilPrompter) Prompt(sess *session.Session, req TextRequest, cb Callback[string]) {
	NewTextMenu(sess, req, cb).Open()
}

// DefaultPrompter is used by the selector filter and the typed dialogs.
var DefaultPrompter TextPrompter = AnvilPrompter{}

var invalidInput = label.Item("barrier", "Invalid Input")

// TextMenu is a three-slot text dialog. The input slot cancels on left click
// and resets the text on right click; the result slot accepts the text while
// it satisfies the predicate.
type TextMenu struct {
	sess *session.Session
	req  TextRequest
	cb   Callback[string]
}

// NewTextMenu returns an unopened text dialog.
func NewTextMenu(sess *session.Session, req TextRequest, cb Callback[string]) *TextMenu {
	return &TextMenu{sess: sess, req: req, cb: cb}
}

func (m *TextMenu) Open() {
	var surf *surface.Surface
	b := Anvil(m.req.Title)

	b.AddButton(surface.AnvilInput, New(label.NewBuilder().
		Item("barrier").
		Title(m.req.Start).
		InputHint("Cancel", input.LeftClick{}).
		InputHint("Reset", input.RightClick{}).
		Build(), func(ev input.Event) {
		switch ev {
		case input.LeftClick{}:
			events.Dialog.Cancel(m.req.Title, events.DialogReasonButton)
			m.cb.Cancel()
		case input.RightClick{}:
			m.sess.Clear()
			surf.SetText(m.req.Start)
		}
	}))

	// The result slot is rewritten on every text change; the handler reads
	// whatever is there when clicked.
	b.AddButton(surface.AnvilResult, New(label.Blank, func(ev input.Event) {
		if ev != (input.LeftClick{}) {
			return
		}
		img := surf.Slot(surface.AnvilResult)
		if img.Item != ResultItem {
			return
		}
		events.Dialog.Submit(m.req.Title, img.Name)
		m.cb.Complete(img.Name)
	}))

	if m.req.Additional != nil {
		b.AddButton(surface.AnvilAdditional, Display(*m.req.Additional))
	} else {
		b.AddButton(surface.AnvilAdditional, Display(label.Divider))
	}

	surf = b.Build(m.sess)
	surf.SetSuggestions(m.req.Suggestions)
	surf.OnText(func(text string) {
		valid := m.req.Predicate == nil || m.req.Predicate(text)
		events.Dialog.Input(m.req.Title, text, valid)
		if valid {
			surf.SetSlot(surface.AnvilResult, label.NewBuilder().
				Item(ResultItem).
				Title(text).
				KeyHint(input.LeftClick{}).
				Build().First())
			return
		}
		surf.SetSlot(surface.AnvilResult, invalidInput.First())
	})
	events.Dialog.Prompt(m.req.Title, m.req.Start)
	m.sess.Open(surf)
	surf.SetText(m.req.Start)
}
