package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/surface"
	"github.com/atomicstack/slotgrid/internal/ticker"
)

func newTestSession() (*session.Session, *ticker.Scheduler) {
	sched := ticker.NewScheduler()
	return session.New("tester", sched), sched
}

func leftClick(sess *session.Session, slot int) bool {
	return sess.Click(slot, 0, input.Pickup)
}

func rightClick(sess *session.Session, slot int) bool {
	return sess.Click(slot, 1, input.Pickup)
}

func TestAddButtonWrapsNegativeSlots(t *testing.T) {
	sess, _ := newTestSession()
	b := Hopper("menu")
	b.AddButton(-1, Display(label.Item("stone", "last")))
	b.AddButton(-5, Display(label.Item("stone", "first")))
	surf := b.Build(sess)
	if got := surf.Slot(4).Name; got != "last" {
		t.Fatalf("expected -1 to bind slot 4, got %q", got)
	}
	if got := surf.Slot(0).Name; got != "first" {
		t.Fatalf("expected -5 to bind slot 0, got %q", got)
	}
}

func TestAddButtonDropsOutOfRange(t *testing.T) {
	sess, _ := newTestSession()
	b := Dispenser("menu")
	b.AddButton(9, Display(label.Blank))
	b.AddButton(-10, Display(label.Blank))
	b.AddButton(input.SlotOutside, Display(label.Blank))
	surf := b.Build(sess)
	if diff := cmp.Diff([]int{input.SlotOutside}, surf.BoundSlots()); diff != "" {
		t.Fatalf("expected only the outside binding (-want +got):\n%s", diff)
	}
}

func TestAddButtonOverwrites(t *testing.T) {
	sess, _ := newTestSession()
	b := Hopper("menu")
	b.AddButton(2, Display(label.Item("stone", "first")))
	b.AddButton(2, Display(label.Item("dirt", "second")))
	if got := b.Build(sess).Slot(2).Name; got != "second" {
		t.Fatalf("expected later binding to win, got %q", got)
	}
}

func TestNewBuilderReplacesUnknownKind(t *testing.T) {
	b := NewBuilder("menu", surface.Kind(42))
	if b.Kind() != surface.Chest1 {
		t.Fatalf("expected Chest1 for an unknown kind, got %s", b.Kind())
	}
	if b.Size() != 9 {
		t.Fatalf("expected 9 slots, got %d", b.Size())
	}
}

func TestChestClampsRows(t *testing.T) {
	if k := Chest("menu", 0).Kind(); k != surface.Chest1 {
		t.Fatalf("expected Chest1, got %s", k)
	}
	if k := Chest("menu", 9).Kind(); k != surface.Chest6 {
		t.Fatalf("expected Chest6, got %s", k)
	}
	if size := Chest("menu", 3).Size(); size != 27 {
		t.Fatalf("expected 27 slots, got %d", size)
	}
}

func TestOpenSealsAndRegistersTickers(t *testing.T) {
	sess, sched := newTestSession()
	b := Hopper("menu")
	var ticks []int64
	b.AddTicker(func(_ ticker.Target, ticksOpen int64) { ticks = append(ticks, ticksOpen) })
	b.AddButton(0, Display(label.NewBuilder().Item("a").Item("b").Build()))
	surf := b.Open(sess)

	if !surf.IsSealed() || sess.Current() != surf {
		t.Fatalf("expected sealed current surface")
	}
	if n := sched.Count(surf.ID()); n != 2 {
		t.Fatalf("expected animation and ticker entries, got %d", n)
	}
	sched.Tick()
	if len(ticks) != 1 || ticks[0] != 1 {
		t.Fatalf("expected one tick with ticksOpen 1, got %v", ticks)
	}
}

func TestReopenReplacesSurface(t *testing.T) {
	sess, sched := newTestSession()
	build := func() *surface.Surface {
		b := Hopper("menu")
		b.AddButton(0, Display(label.NewBuilder().Item("a").Item("b").Build()))
		return b.Open(sess)
	}
	first := build()
	second := build()
	if !first.IsClosed() || second.IsClosed() {
		t.Fatalf("expected reopen to close the first surface only")
	}
	if animated, _ := sched.Len(); animated != 1 {
		t.Fatalf("expected exactly one live animation, got %d", animated)
	}
}

func TestButtonConstructors(t *testing.T) {
	calls := 0
	btn := LeftClick(label.Blank, func() { calls++ })
	btn.Handler(input.LeftClick{Shift: true})
	btn.Handler(input.RightClick{})
	btn.Handler(input.LeftClick{})
	if calls != 1 {
		t.Fatalf("expected one unshifted left click, got %d", calls)
	}

	Display(label.Blank).Handler(input.LeftClick{})

	if got := Cancel(nil).Label.TitleText(); got != "Cancel" {
		t.Fatalf("expected Cancel label, got %q", got)
	}
	if got := Close(nil).Label.TitleText(); got != "Close" {
		t.Fatalf("expected Close label, got %q", got)
	}
}
