package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/slotgrid/internal/demo"
	"github.com/atomicstack/slotgrid/internal/logging"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/ticker"
	"github.com/atomicstack/slotgrid/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Root menus selectable at startup.
const (
	RootDemo     = "demo"
	RootSessions = "sessions"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	RootMenu     string
	Actor        string
	TickInterval time.Duration
}

// ValidRootMenu reports whether name selects a known startup menu.
func ValidRootMenu(name string) bool {
	switch name {
	case RootDemo, RootSessions:
		return true
	}
	return false
}

// Runtime is the wired set of components behind one program run.
type Runtime struct {
	Scheduler *ticker.Scheduler
	Clock     *ticker.Clock
	Cues      *ui.CueStatus
	Session   *session.Session
	Root      *demo.Root
	Model     *ui.Model
}

// Build wires the scheduler, clock, session and root menu and opens the
// configured root. The caller owns the clock and must stop it.
func Build(cfg Config, opts ...demo.Option) (*Runtime, error) {
	if !ValidRootMenu(cfg.RootMenu) {
		return nil, fmt.Errorf("unknown root menu %q", cfg.RootMenu)
	}
	rt := &Runtime{
		Scheduler: ticker.NewScheduler(),
		Cues:      ui.NewCueStatus(),
	}
	rt.Session = session.New(cfg.Actor, rt.Scheduler, session.WithCueSink(rt.Cues))
	opts = append([]demo.Option{demo.WithSocket(cfg.SocketPath)}, opts...)
	rt.Root = demo.NewRoot(rt.Session, opts...)
	switch cfg.RootMenu {
	case RootSessions:
		rt.Root.OpenSessions()
	default:
		rt.Root.Open()
	}
	rt.Clock = ticker.NewClock(cfg.TickInterval)
	rt.Model = ui.NewModel(rt.Session, ui.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Clock:      rt.Clock,
		Ticks:      rt.Scheduler,
		Cues:       rt.Cues,
	})
	return rt, nil
}

// Stop halts the clock and closes whatever surface is still open. Entries
// left in the scheduler afterwards belong to surfaces that were never closed
// and are reported.
func (rt *Runtime) Stop() {
	rt.Clock.Stop()
	rt.Clock.Wait()
	rt.Session.Close()
	if animated, tickers := rt.Scheduler.Len(); animated+tickers > 0 {
		logging.Warn("app.scheduler.leftover", map[string]interface{}{
			"animated": animated,
			"tickers":  tickers,
		})
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	rt, err := Build(cfg)
	if err != nil {
		return err
	}
	defer rt.Stop()
	program := tea.NewProgram(rt.Model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
