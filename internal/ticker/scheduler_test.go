package ticker

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/slotgrid/internal/label"
)

type fakeTarget struct {
	id    string
	slots map[int]label.Image
	sets  int
}

func newFakeTarget(id string) *fakeTarget {
	return &fakeTarget{id: id, slots: map[int]label.Image{}}
}

func (f *fakeTarget) ID() string { return f.id }

func (f *fakeTarget) SetSlot(slot int, img label.Image) {
	f.slots[slot] = img
	f.sets++
}

func threeFrames(interval int) label.Label {
	return label.NewBuilder().
		Item("red_wool").
		Item("green_wool").
		Item("blue_wool").
		Interval(interval).
		Build()
}

func TestFrameIndexFollowsPhase(t *testing.T) {
	s := NewScheduler()
	target := newFakeTarget("a")
	l := threeFrames(20)
	s.AddAnimated(target, 4, l)
	target.slots[4] = l.First()

	for tick := int64(1); tick <= 200; tick++ {
		s.Tick()
		want := int((tick % 60) / 20)
		got := target.slots[4].Item
		if got != l.Frame(want).Item {
			t.Fatalf("tick %d: expected frame %d (%s), got %s", tick, want, l.Frame(want).Item, got)
		}
	}
}

func TestFrameOnlySetOnBoundaries(t *testing.T) {
	s := NewScheduler()
	target := newFakeTarget("a")
	s.AddAnimated(target, 0, threeFrames(20))
	for i := 0; i < 60; i++ {
		s.Tick()
	}
	if target.sets != 3 {
		t.Fatalf("expected 3 frame updates over one cycle, got %d", target.sets)
	}
}

func TestEntriesArePhaseLockedToStart(t *testing.T) {
	s := NewScheduler()
	early := newFakeTarget("early")
	late := newFakeTarget("late")
	s.AddAnimated(early, 0, threeFrames(2))
	s.Tick()
	s.AddAnimated(late, 0, threeFrames(2))
	s.Tick()
	s.Tick()
	s.Tick()

	if got := early.slots[0].Item; got != "blue_wool" {
		t.Fatalf("expected early entry on frame 2, got %s", got)
	}
	if got := late.slots[0].Item; got != "green_wool" {
		t.Fatalf("expected late entry on frame 1, got %s", got)
	}
}

func TestEmptyLabelIsNotRegistered(t *testing.T) {
	s := NewScheduler()
	s.AddAnimated(newFakeTarget("a"), 0, label.Blank)
	if animated, _ := s.Len(); animated != 0 {
		t.Fatalf("expected no entries, got %d", animated)
	}
}

func TestRemovedDropsOnlyOwnedEntries(t *testing.T) {
	s := NewScheduler()
	a := newFakeTarget("a")
	b := newFakeTarget("b")
	for slot := 0; slot < 4; slot++ {
		s.AddAnimated(a, slot, threeFrames(5))
	}
	s.AddAnimated(b, 0, threeFrames(5))
	s.AddMenuTicker(a, func(Target, int64) {})
	s.AddMenuTicker(b, func(Target, int64) {})

	if removed := s.Removed("a"); removed != 5 {
		t.Fatalf("expected 5 entries removed, got %d", removed)
	}
	animated, tickers := s.Len()
	if animated != 1 || tickers != 1 {
		t.Fatalf("expected 1 animation and 1 ticker left, got %d and %d", animated, tickers)
	}
	if s.Count("b") != 2 {
		t.Fatalf("expected b to keep 2 entries, got %d", s.Count("b"))
	}
	if removed := s.Removed("a"); removed != 0 {
		t.Fatalf("expected second removal to drop nothing, got %d", removed)
	}
}

func TestMenuTickerReceivesTicksOpen(t *testing.T) {
	s := NewScheduler()
	s.Tick()
	s.Tick()
	var seen []int64
	s.AddMenuTicker(newFakeTarget("a"), func(_ Target, ticksOpen int64) {
		seen = append(seen, ticksOpen)
	})
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if diff := cmp.Diff([]int64{1, 2, 3}, seen); diff != "" {
		t.Fatalf("unexpected ticksOpen (-want +got):\n%s", diff)
	}
}

func TestMenuTickerMayRemoveItsOwnTarget(t *testing.T) {
	s := NewScheduler()
	target := newFakeTarget("a")
	s.AddAnimated(target, 0, threeFrames(1))
	calls := 0
	s.AddMenuTicker(target, func(tg Target, _ int64) {
		calls++
		s.Removed(tg.ID())
	})
	s.Tick()
	s.Tick()
	if calls != 1 {
		t.Fatalf("expected ticker to run once, got %d", calls)
	}
	if target.sets != 0 {
		t.Fatalf("expected removed animation to stay untouched, got %d updates", target.sets)
	}
}

func TestNowAdvances(t *testing.T) {
	s := NewScheduler()
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Now() != 5 {
		t.Fatalf("expected tick 5, got %d", s.Now())
	}
}

func TestFrameAt(t *testing.T) {
	cases := []struct {
		elapsed  int64
		interval int
		frames   int
		frame    int
		boundary bool
	}{
		{0, 20, 3, 0, true},
		{19, 20, 3, 0, false},
		{20, 20, 3, 1, true},
		{40, 20, 3, 2, true},
		{60, 20, 3, 0, true},
		{7, 0, 3, 0, false},
		{7, 1, 0, 0, false},
	}
	for _, tc := range cases {
		frame, ok := FrameAt(tc.elapsed, tc.interval, tc.frames)
		if frame != tc.frame || ok != tc.boundary {
			t.Fatalf("FrameAt(%d, %d, %d): expected (%d, %v), got (%d, %v)", tc.elapsed, tc.interval, tc.frames, tc.frame, tc.boundary, frame, ok)
		}
	}
}
