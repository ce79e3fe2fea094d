package command

import (
	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Clicker receives raw interactions. *session.Session satisfies it.
type Clicker interface {
	ID() string
	Click(slot, button int, kind input.ClickKind) bool
}

// Request encapsulates one raw interaction.
type Request struct {
	Key    string
	Slot   int
	Button int
	Kind   input.ClickKind
}

// ResultMsg reports how a request was handled.
type ResultMsg struct {
	Request    Request
	Suppressed bool
	Event      input.Event
}

// Bus coordinates the delivery of raw interactions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute applies req to target before returning. The returned command only
// carries the result.
func (b *Bus) Execute(target Clicker, req Request) tea.Cmd {
	if target == nil {
		return nil
	}
	events.Command.Queue(target.ID(), req.Slot, req.Button, req.Kind.String())
	suppressed := target.Click(req.Slot, req.Button, req.Kind)
	events.Command.Result(target.ID(), req.Slot, suppressed)

	msg := ResultMsg{Request: req, Suppressed: suppressed}
	if ev, ok := input.Classify(req.Slot, req.Button, req.Kind); ok {
		msg.Event = ev
	}
	return func() tea.Msg {
		return msg
	}
}
