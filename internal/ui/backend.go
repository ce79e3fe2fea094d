package ui

import (
	"time"

	"github.com/atomicstack/slotgrid/internal/ticker"
	tea "github.com/charmbracelet/bubbletea"
)

// Ticker advances animations by one tick and reports how many entries a
// surface owns. *ticker.Scheduler satisfies it.
type Ticker interface {
	Tick()
	Count(id string) int
}

func waitForTick(c *ticker.Clock) tea.Cmd {
	return func() tea.Msg {
		at, ok := <-c.Ticks()
		if !ok {
			return clockDoneMsg{}
		}
		return tickMsg{at: at}
	}
}

type tickMsg struct {
	at time.Time
}

type clockDoneMsg struct{}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok {
		return nil
	}
	if m.ticks != nil {
		m.ticks.Tick()
	}
	m.ticksSeen++
	if m.clock != nil {
		return waitForTick(m.clock)
	}
	return nil
}

func (m *Model) handleClockDoneMsg(tea.Msg) tea.Cmd {
	m.clock = nil
	return nil
}
