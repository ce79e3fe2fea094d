// Package demo holds the menus the terminal host opens: a tour of every
// surface feature and a tmux session picker.
package demo

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/logging"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/menu"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/ticker"
	"github.com/atomicstack/slotgrid/internal/tmux"
)

// RootTitle is the title of the demo root surface.
const RootTitle = "Slotgrid Test"

// Option configures a Root.
type Option func(*Root)

// WithTmux replaces the tmux session source and switcher.
func WithTmux(list func(socketPath string) ([]tmux.Session, error), switchTo func(socketPath, target string) error) Option {
	return func(r *Root) {
		if list != nil {
			r.listSessions = list
		}
		if switchTo != nil {
			r.switchClient = switchTo
		}
	}
}

// WithSocket sets the tmux socket used by the session picker.
func WithSocket(socketPath string) Option {
	return func(r *Root) {
		r.socketPath = socketPath
	}
}

// Root is the demo menu. It keeps the last value of every dialog and switch
// and rebuilds its surface from them on every Open.
type Root struct {
	sess       *session.Session
	socketPath string

	listSessions func(string) ([]tmux.Session, error)
	switchClient func(string, string) error

	lastInt          int
	lastBoundedInt   int
	lastFloat        float64
	lastBoundedFloat float64
	lastNaNFloat     float64
	boolTest         bool
	enum1            Greek
	enum2            Greek
	enum3            Greek
	tmuxStatus       string
}

// NewRoot returns an unopened demo menu for sess.
func NewRoot(sess *session.Session, opts ...Option) *Root {
	r := &Root{
		sess:         sess,
		listSessions: tmux.ListSessions,
		switchClient: tmux.SwitchClient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Root) reopen() {
	r.sess.Failure()
	r.Open()
}

func (r *Root) Open() {
	b := menu.Chest(RootTitle, 6)

	b.AddButton(0, menu.LeftClick(label.NewBuilder().
		Item("player_head").
		Title("Pagination Test").
		InputHint("Open", input.LeftClick{}).
		Build(), r.openPagination))

	r.addNumberButtons(b)
	b.AddButton(3, menu.LeftClick(label.NewBuilder().
		Item("command_block").
		Title("Switch tmux session").
		Hint(r.tmuxHint()).
		InputHint("Open", input.LeftClick{}).
		Build(), r.OpenSessions))

	b.AddButton(8, menu.BoolSwitch("Boolean test", r.boolTest, func(v bool) {
		r.sess.Interact(1)
		r.boolTest = v
		r.Open()
	}))
	r.addEnumSwitch(b, 9, "Enum Test", r.enum1, func(g Greek) { r.enum1 = g })
	if r.enum1 == Delta {
		r.addEnumSwitch(b, 10, "Enum Test 2", r.enum2, func(g Greek) { r.enum2 = g })
	}
	if r.enum2 == Gamma {
		r.addEnumSwitch(b, 11, "Enum Test 3", r.enum3, func(g Greek) { r.enum3 = g })
	}

	for i, interval := range []int{20, 30, 40} {
		b.AddButton(13+i, menu.Display(label.NewBuilder().
			Item("red_concrete").
			Item("lime_concrete").
			Item("blue_concrete").
			Title(fmt.Sprintf("Animated Test %d", i+1)).
			Hint(fmt.Sprintf("Interval: %d", interval)).
			Interval(interval).
			Build()))
	}
	b.AddButton(16, menu.New(label.NewBuilder().
		Item("white_concrete").
		Item("light_gray_concrete").
		Title("Animated Test 4").
		Hint("Interval: 2").
		Interval(2).
		InputHint("Play Sound", input.Drop{}).
		Build(), func(ev input.Event) {
		if ev == (input.Drop{}) {
			r.sess.Interact(1.5)
		}
	}))

	b.AddButton(17, menu.Display(label.NewBuilder().
		Item("dark_oak_sign").
		Title("Empty Slot Button Test").
		Hint("Press a hotbar button on the slot below.").
		Build()))
	b.AddButton(26, menu.New(label.Blank, func(ev input.Event) {
		if hotbar, ok := ev.(input.Hotbar); ok {
			r.sess.Interact(1 + float64(hotbar.Index)/8)
		}
	}))

	b.AddButton(18, menu.New(label.NewBuilder().
		Item("sculk_sensor").
		Title("Offside Test").
		KeyHint(input.DoubleLeftClick{}).
		Build(), func(ev input.Event) {
		if ev == (input.DoubleLeftClick{}) {
			r.sess.Interact(1)
			newOffside(r.sess, r.reopen).Open()
		}
	}))

	helmet := label.Image{Item: "diamond_helmet", Count: 1, Decoration: []string{"When on Head:", "+3 Armor"}}
	b.AddButton(19, menu.Display(label.NewBuilder().
		Image(helmet).
		Title("Keep Decoration Test").
		KeepDecoration().
		Hint("decoration lines are kept").
		Build()))
	b.AddButton(20, menu.Display(label.NewBuilder().
		Image(helmet).
		Title("Default Decoration Behavior").
		Build()))

	b.AddButton(-1, menu.Close(func() {
		r.sess.Failure()
		r.sess.Close()
	}))

	b.AddTicker(highlightRow)
	b.Open(r.sess)
}

var highlight = label.Item("yellow_concrete", "Ticker Test").First()

// highlightRow walks a highlight along slots 45..52 every 10 ticks.
func highlightRow(t ticker.Target, ticksOpen int64) {
	if ticksOpen%10 != 0 {
		return
	}
	for i := 45; i < 53; i++ {
		if (ticksOpen/10+int64(i))%4 == 0 {
			t.SetSlot(i, highlight)
		} else {
			t.SetSlot(i, label.Image{})
		}
	}
}

func (r *Root) openPagination() {
	r.sess.Interact(1)
	options := make([]menu.Option[int], 500)
	for i := range options {
		options[i] = menu.Option[int]{
			Label: label.Item(paginationItems[i%len(paginationItems)], strconv.Itoa(i)),
			Value: i,
		}
	}
	menu.Select(r.sess, "Pagination Test", options, menu.NewCallback(func(v int) {
		events.Demo.Result("pagination", v)
		r.sess.Success()
		r.Open()
	}, func() {
		events.Demo.Cancel("pagination")
		r.reopen()
	}))
}

func (r *Root) addNumberButtons(b *menu.Builder) {
	numberButton := func(slot int, item string, count int, title, bounds string, last interface{}, open func()) {
		b.AddButton(slot, menu.LeftClick(label.NewBuilder().
			Image(label.Image{Item: item, Count: count}).
			Title(title).
			Hint(bounds).
			Hint(fmt.Sprintf("Last: %v", last)).
			InputHint("Open", input.LeftClick{}).
			Build(), func() {
			r.sess.Interact(1)
			open()
		}))
	}

	numberButton(1, "writable_book", 1, "Integer input test", "No bounds", r.lastInt, func() {
		menu.Integer(r.sess, "Unbounded Integer Test", nil, r.lastInt, menu.NewCallback(func(v int) {
			r.sess.Success()
			r.lastInt = v
			r.Open()
		}, r.reopen))
	})
	numberButton(2, "writable_book", 2, "Integer input test", "Bounded: [0, 30]", r.lastBoundedInt, func() {
		r.check(menu.BoundedInteger(r.sess, "Bounded Integer Test [0, 30]", nil, r.lastBoundedInt, 0, 30, menu.NewCallback(func(v int) {
			r.sess.Success()
			r.lastBoundedInt = v
			r.Open()
		}, r.reopen)))
	})
	numberButton(4, "feather", 1, "Double input test", "Unbounded", r.lastFloat, func() {
		r.check(menu.Float(r.sess, "Unbounded Double Test", nil, r.lastFloat, menu.NewCallback(func(v float64) {
			r.sess.Success()
			r.lastFloat = v
			r.Open()
		}, r.reopen)))
	})
	numberButton(5, "feather", 2, "Double input test", "Unbounded w/ NaN", r.lastNaNFloat, func() {
		menu.FloatAllowingNaN(r.sess, "Double w/ NaN", nil, r.lastNaNFloat, menu.NewCallback(func(v float64) {
			r.sess.Success()
			r.lastNaNFloat = v
			r.Open()
		}, r.reopen))
	})
	numberButton(6, "feather", 3, "Double input test", "Bounded: [-90, 270]", r.lastBoundedFloat, func() {
		r.check(menu.BoundedFloat(r.sess, "Bounded Double Test", nil, r.lastBoundedFloat, -90, 270, menu.NewCallback(func(v float64) {
			r.sess.Success()
			r.lastBoundedFloat = v
			r.Open()
		}, r.reopen)))
	})
}

// check reports a dialog that refused to open and returns to the root.
func (r *Root) check(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	r.reopen()
}

func (r *Root) addEnumSwitch(b *menu.Builder, slot int, name string, current Greek, set func(Greek)) {
	btn, err := menu.EnumSwitch(name, greekOptions, current, func(g Greek) {
		r.sess.Interact(1)
		set(g)
		r.Open()
	})
	if err != nil {
		logging.Error(err)
		return
	}
	b.AddButton(slot, btn)
}

var paginationItems = []string{
	"stone", "granite", "diorite", "andesite", "grass_block", "dirt", "cobblestone",
	"oak_planks", "spruce_planks", "birch_planks", "sand", "gravel", "gold_ore",
	"iron_ore", "coal_ore", "oak_log", "glass", "lapis_block", "sandstone", "white_wool",
}
