package ui

import (
	"reflect"

	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/surface"
	"github.com/atomicstack/slotgrid/internal/theme"
	"github.com/atomicstack/slotgrid/internal/ticker"
	"github.com/atomicstack/slotgrid/internal/ui/command"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config carries the model's display options and collaborators.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	// Clock drives tick messages. Nil disables the tick loop.
	Clock *ticker.Clock
	// Ticks is advanced once per clock tick.
	Ticks Ticker
	// Cues is shown on the status line when set.
	Cues *CueStatus
}

// Model implements the Bubble Tea model for a session's open surface.
type Model struct {
	sess  *session.Session
	ticks Ticker
	clock *ticker.Clock
	bus   *command.Bus
	cues  *CueStatus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	surfaceID   string
	grid        grid
	cursor      position
	text        textinput.Model
	textFocused bool

	status    string
	ticksSeen int64
	quitting  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel creates a model rendering sess.
func NewModel(sess *session.Session, cfg Config) *Model {
	m := &Model{
		sess:        sess,
		ticks:       cfg.Ticks,
		clock:       cfg.Clock,
		bus:         command.New(),
		cues:        cfg.Cues,
		width:       cfg.Width,
		height:      cfg.Height,
		fixedWidth:  cfg.Width > 0,
		fixedHeight: cfg.Height > 0,
		showFooter:  cfg.ShowFooter,
		text:        newTextField(),
	}
	m.registerHandlers()
	if sess.Current() != nil {
		m.syncSurface()
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.clock == nil {
		return nil
	}
	return waitForTick(m.clock)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if m.textFocused {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.syncSurface(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(clockDoneMsg{}):      m.handleClockDoneMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// syncSurface follows the session's current surface. A new surface resets the
// cursor; once nothing is open the program quits.
func (m *Model) syncSurface() tea.Cmd {
	surf := m.sess.Current()
	if surf == nil {
		m.surfaceID = ""
		m.blurText()
		if m.quitting {
			return nil
		}
		m.quitting = true
		events.App.Stop("no surface open")
		return tea.Quit
	}
	if surf.ID() == m.surfaceID {
		return nil
	}
	m.surfaceID = surf.ID()
	m.grid = newGrid(surf.Kind())
	m.cursor = position{}
	m.status = ""
	if surf.Kind() == surface.Anvil {
		m.focusText(surf)
	} else {
		m.blurText()
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	events.UI.Key(key, m.cursorSlot())
	if key == "ctrl+c" {
		m.quitting = true
		events.App.Stop("interrupt")
		return tea.Quit
	}
	if m.textFocused {
		_, cmd := m.handleTextKey(keyMsg)
		return cmd
	}
	switch key {
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "/":
		m.focusText(m.sess.Current())
	case "esc":
		m.sess.Close()
	default:
		return m.clickCmd(key)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
