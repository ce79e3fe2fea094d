package demo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/menu"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/surface"
	"github.com/atomicstack/slotgrid/internal/ticker"
	"github.com/atomicstack/slotgrid/internal/tmux"
)

type harness struct {
	sess  *session.Session
	sched *ticker.Scheduler
	root  *Root
	cues  []session.Cue
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{sched: ticker.NewScheduler()}
	h.sess = session.New("tester", h.sched, session.WithCueSink(session.CueFunc(func(_ string, c session.Cue) {
		h.cues = append(h.cues, c)
	})))
	h.root = NewRoot(h.sess, opts...)
	h.root.Open()
	return h
}

func (h *harness) click(slot, button int, kind input.ClickKind) bool {
	return h.sess.Click(slot, button, kind)
}

func (h *harness) current() *surface.Surface {
	return h.sess.Current()
}

func TestRootLayout(t *testing.T) {
	h := newHarness(t)
	surf := h.current()
	if surf.Title() != RootTitle || surf.Kind() != surface.Chest6 {
		t.Fatalf("expected 9x6 root, got %q %s", surf.Title(), surf.Kind())
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 13, 14, 15, 16, 17, 18, 19, 20, 26, 53}
	if diff := cmp.Diff(want, surf.BoundSlots()); diff != "" {
		t.Fatalf("unexpected bound slots (-want +got):\n%s", diff)
	}
	if n := h.sched.Count(surf.ID()); n != 5 {
		t.Fatalf("expected 4 animations and 1 ticker, got %d", n)
	}
}

func TestDecorationHandling(t *testing.T) {
	h := newHarness(t)
	if got := h.current().Slot(19).Decoration; len(got) != 2 {
		t.Fatalf("expected decoration kept, got %v", got)
	}
	if got := h.current().Slot(20).Decoration; len(got) != 0 {
		t.Fatalf("expected decoration stripped, got %v", got)
	}
}

func TestTickerHighlightsBottomRow(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 10; i++ {
		h.sched.Tick()
	}
	highlighted := 0
	for slot := 45; slot < 53; slot++ {
		if h.current().Slot(slot).Item == "yellow_concrete" {
			highlighted++
		}
	}
	if highlighted != 2 {
		t.Fatalf("expected 2 highlighted slots, got %d", highlighted)
	}
}

func TestBoolSwitchReopens(t *testing.T) {
	h := newHarness(t)
	first := h.current()
	h.click(8, 0, input.Pickup)
	if !h.root.boolTest {
		t.Fatalf("expected boolean toggled")
	}
	if !first.IsClosed() || h.current().Slot(8).Item != "lime_concrete" {
		t.Fatalf("expected rebuilt root showing true")
	}
}

func TestEnumSwitchChain(t *testing.T) {
	h := newHarness(t)
	h.click(9, 0, input.Pickup)
	h.click(9, 0, input.Pickup)
	if h.root.enum1 != Delta {
		t.Fatalf("expected Delta, got %s", h.root.enum1)
	}
	if !h.current().Bound(10) {
		t.Fatalf("expected second switch once the first reaches Delta")
	}
	h.click(10, 1, input.Pickup)
	if h.root.enum2 != Psi {
		t.Fatalf("expected right click to wrap to Psi, got %s", h.root.enum2)
	}
	if h.current().Bound(11) {
		t.Fatalf("expected no third switch")
	}
}

func TestIntegerDialogRoundTrip(t *testing.T) {
	h := newHarness(t)
	h.click(2, 0, input.Pickup)
	if h.current().Kind() != surface.Anvil {
		t.Fatalf("expected text dialog")
	}
	h.sess.Rename("17")
	h.click(surface.AnvilResult, 0, input.Pickup)
	if h.root.lastBoundedInt != 17 {
		t.Fatalf("expected 17 stored, got %d", h.root.lastBoundedInt)
	}
	if h.current().Title() != RootTitle {
		t.Fatalf("expected root reopened")
	}
}

func TestPaginationSelection(t *testing.T) {
	h := newHarness(t)
	h.click(0, 0, input.Pickup)
	h.click(menu.SlotNext, 0, input.Pickup)
	h.click(menu.PagePosition(2), 0, input.Pickup)
	if h.current().Title() != RootTitle {
		t.Fatalf("expected root reopened after selection")
	}
	last := h.cues[len(h.cues)-1]
	if last.Pitch != 2 {
		t.Fatalf("expected success cue, got %+v", last)
	}
}

func TestOffsideMenu(t *testing.T) {
	h := newHarness(t)
	h.click(18, 0, input.PickupAll)
	if h.current().Kind() != surface.Dispenser {
		t.Fatalf("expected offside menu")
	}
	h.click(2, 0, input.Pickup)
	if item := h.current().Slot(2).Item; item != "glowstone_dust" {
		t.Fatalf("expected selection marked, got %q", item)
	}
	h.click(input.SlotOutside, 0, input.Throw)
	if item := h.current().Slot(2).Item; item != "gunpowder" {
		t.Fatalf("expected outside click to clear selection, got %q", item)
	}
	h.click(4, 0, input.Pickup)
	if h.current().Title() != RootTitle {
		t.Fatalf("expected close to return to root")
	}
}

func TestCloseButton(t *testing.T) {
	h := newHarness(t)
	surf := h.current()
	h.click(53, 0, input.Pickup)
	if h.current() != nil || !surf.IsClosed() {
		t.Fatalf("expected root closed")
	}
	if h.sched.Count(surf.ID()) != 0 {
		t.Fatalf("expected scheduler entries purged")
	}
}

func TestTmuxPicker(t *testing.T) {
	var switched []string
	h := newHarness(t, WithSocket("/tmp/s"), WithTmux(func(socket string) ([]tmux.Session, error) {
		return []tmux.Session{{Name: "main", Label: "main: 2 windows", Current: true}, {Name: "work", Label: "work: 1 window"}}, nil
	}, func(socket, target string) error {
		switched = append(switched, socket+" "+target)
		return nil
	}))
	h.click(3, 0, input.Pickup)
	surf := h.current()
	if surf.Kind() != surface.Hopper || surf.Slot(1).Name != "work" {
		t.Fatalf("expected session picker, got %s", surf.Kind())
	}
	h.click(1, 0, input.Pickup)
	if diff := cmp.Diff([]string{"/tmp/s work"}, switched); diff != "" {
		t.Fatalf("unexpected switches (-want +got):\n%s", diff)
	}
	if h.root.tmuxStatus != "Switched to work" {
		t.Fatalf("unexpected status %q", h.root.tmuxStatus)
	}
}

func TestTmuxPickerError(t *testing.T) {
	h := newHarness(t, WithTmux(func(string) ([]tmux.Session, error) {
		return nil, errors.New("no server running")
	}, nil))
	h.click(3, 0, input.Pickup)
	if h.current().Title() != RootTitle {
		t.Fatalf("expected root reopened on error")
	}
	if h.root.tmuxStatus != "Error: no server running" {
		t.Fatalf("unexpected status %q", h.root.tmuxStatus)
	}
}
