package demo

import (
	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/menu"
	"github.com/atomicstack/slotgrid/internal/session"
)

// offside is a 3x3 where every cell but the centre remembers the last click
// and a click outside the grid clears it.
type offside struct {
	sess     *session.Session
	selected int
	done     func()
}

func newOffside(sess *session.Session, done func()) *offside {
	return &offside{sess: sess, selected: -1, done: done}
}

func (m *offside) Open() {
	b := menu.Dispenser("Click a dust or off-screen")
	b.AddButton(4, menu.Close(m.done))
	for i := 0; i < 9; i++ {
		if i == 4 {
			continue
		}
		item := "gunpowder"
		if m.selected == i {
			item = "glowstone_dust"
		}
		slot := i
		b.AddButton(i, menu.LeftClick(label.Item(item, ""), func() {
			m.sess.Interact(1)
			m.selected = slot
			m.Open()
		}))
	}
	b.AddButton(input.SlotOutside, menu.LeftClick(label.Blank, func() {
		m.sess.Clear()
		m.selected = -1
		m.Open()
	}))
	b.Open(m.sess)
}
