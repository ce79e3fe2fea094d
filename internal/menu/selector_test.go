package menu

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/surface"
)

func numberedOptions(n int) []Option[int] {
	out := make([]Option[int], n)
	for i := range out {
		out[i] = Option[int]{Label: label.Item("stone", strconv.Itoa(i)), Value: i}
	}
	return out
}

type selection struct {
	values    []int
	cancelled int
}

func (s *selection) callback() Callback[int] {
	return NewCallback(func(v int) { s.values = append(s.values, v) }, func() { s.cancelled++ })
}

func values(opts []Option[int]) []int {
	out := make([]int, len(opts))
	for i, opt := range opts {
		out[i] = opt.Value
	}
	return out
}

func TestSmallestFit(t *testing.T) {
	cases := map[int]surface.Kind{
		1:  surface.Hopper,
		5:  surface.Hopper,
		6:  surface.Chest1,
		9:  surface.Chest1,
		10: surface.Chest2,
		45: surface.Chest5,
		46: surface.Chest6,
		54: surface.Chest6,
	}
	for n, want := range cases {
		if got := SmallestFit(n); got != want {
			t.Fatalf("SmallestFit(%d): expected %s, got %s", n, want, got)
		}
	}
}

func TestSelectorSizesToOptionCount(t *testing.T) {
	cases := []struct {
		options   int
		kind      surface.Kind
		paginated bool
		maxPage   int
	}{
		{4, surface.Hopper, false, 1},
		{53, surface.Chest6, false, 1},
		{54, surface.Chest6, true, 2},
	}
	for _, tc := range cases {
		sess, _ := newTestSession()
		var got selection
		sel := Select(sess, "pick", numberedOptions(tc.options), got.callback())
		surf := sess.Current()
		if surf.Kind() != tc.kind {
			t.Fatalf("%d options: expected %s, got %s", tc.options, tc.kind, surf.Kind())
		}
		if sel.Paginated() != tc.paginated || sel.MaxPage() != tc.maxPage {
			t.Fatalf("%d options: expected paginated=%v maxPage=%d, got %v and %d", tc.options, tc.paginated, tc.maxPage, sel.Paginated(), sel.MaxPage())
		}
	}
}

func TestCompactSelectorSelectsAndCancels(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	sel := Select(sess, "pick", numberedOptions(4), got.callback())
	surf := sess.Current()

	if item := surf.Slot(4).Item; item != "barrier" {
		t.Fatalf("expected cancel in last slot, got %q", item)
	}
	leftClick(sess, 2)
	leftClick(sess, 1)
	leftClick(sess, 4)
	if diff := cmp.Diff([]int{2}, got.values); diff != "" {
		t.Fatalf("unexpected selections (-want +got):\n%s", diff)
	}
	if got.cancelled != 0 {
		t.Fatalf("expected no cancel after selection, got %d", got.cancelled)
	}
	if !sel.Done() {
		t.Fatalf("expected selector done")
	}
	sel.Open()
	if sess.Current() != surf {
		t.Fatalf("expected a finished selector not to reopen")
	}
}

func TestCompactSelectorCancel(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	Select(sess, "pick", numberedOptions(8), got.callback())
	leftClick(sess, 8)
	if got.cancelled != 1 || len(got.values) != 0 {
		t.Fatalf("expected a single cancel, got %+v", got)
	}
}

func TestPagedLayout(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	Select(sess, "pick", numberedOptions(500), got.callback())
	surf := sess.Current()

	if surf.Bound(SlotPrevious) {
		t.Fatalf("expected no previous control on page 1")
	}
	for _, slot := range []int{SlotIndicator, SlotNext, SlotFilter, 53} {
		if !surf.Bound(slot) {
			t.Fatalf("expected control at slot %d", slot)
		}
	}
	if name := surf.Slot(SlotIndicator).Name; name != "Page 1 / 11" {
		t.Fatalf("expected page indicator, got %q", name)
	}
	if name := surf.Slot(PagePosition(47)).Name; name != "47" {
		t.Fatalf("expected option 47 in the last option slot, got %q", name)
	}
	if PagePosition(47) != 52 {
		t.Fatalf("expected last option slot 52, got %d", PagePosition(47))
	}
}

func TestPageTwoSelectionDeliversOffsetOption(t *testing.T) {
	for _, k := range []int{0, 7, 8, 30, 47} {
		sess, _ := newTestSession()
		var got selection
		sel := Select(sess, "pick", numberedOptions(500), got.callback())
		leftClick(sess, SlotNext)
		if sel.Page() != 2 {
			t.Fatalf("expected page 2, got %d", sel.Page())
		}
		leftClick(sess, PagePosition(k))
		want := sel.Filtered()[OptionsPerPage+k].Value
		if diff := cmp.Diff([]int{want}, got.values); diff != "" {
			t.Fatalf("k=%d: unexpected selection (-want +got):\n%s", k, diff)
		}
	}
}

func TestPageControlsBoundaries(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	sel := Select(sess, "pick", numberedOptions(100), got.callback())
	leftClick(sess, SlotNext)
	leftClick(sess, SlotNext)
	if sel.Page() != 3 || sel.MaxPage() != 3 {
		t.Fatalf("expected page 3 of 3, got %d of %d", sel.Page(), sel.MaxPage())
	}
	surf := sess.Current()
	if surf.Bound(SlotNext) {
		t.Fatalf("expected no next control on the last page")
	}
	if !surf.Bound(PagePosition(3)) || surf.Bound(PagePosition(4)) {
		t.Fatalf("expected four options on the last page")
	}
	leftClick(sess, SlotPrevious)
	if sel.Page() != 2 {
		t.Fatalf("expected page 2, got %d", sel.Page())
	}
}

func TestFilterPreservesOrderAndRecomputesPages(t *testing.T) {
	for _, text := range []string{"12", "1", "nothing"} {
		sess, _ := newTestSession()
		var got selection
		all := numberedOptions(500)
		sel := Select(sess, "pick", all, got.callback())

		var want []int
		for _, opt := range all {
			if strings.Contains(opt.Label.TitleText(), text) {
				want = append(want, opt.Value)
			}
		}
		sel.ApplyFilter(text)
		if diff := cmp.Diff(want, values(sel.Filtered()), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("filter %q: unexpected options (-want +got):\n%s", text, diff)
		}
		wantMax := (len(want) + OptionsPerPage - 1) / OptionsPerPage
		if wantMax < 1 {
			wantMax = 1
		}
		if sel.MaxPage() != wantMax || sel.Page() != 1 {
			t.Fatalf("filter %q: expected page 1 of %d, got %d of %d", text, wantMax, sel.Page(), sel.MaxPage())
		}
	}
}

func TestFilterPageTwoSelection(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	sel := Select(sess, "pick", numberedOptions(500), got.callback())
	sel.ApplyFilter("1")
	sel.Open()
	leftClick(sess, SlotNext)
	leftClick(sess, PagePosition(10))
	want := sel.Filtered()[OptionsPerPage+10].Value
	if diff := cmp.Diff([]int{want}, got.values); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
}

func TestFilterThroughTextDialog(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	sel := Select(sess, "pick", numberedOptions(500), got.callback())
	leftClick(sess, SlotNext)

	leftClick(sess, SlotFilter)
	dialog := sess.Current()
	if dialog.Kind() != surface.Anvil {
		t.Fatalf("expected text dialog, got %s", dialog.Kind())
	}
	if len(dialog.Suggestions()) != 500 {
		t.Fatalf("expected option titles as suggestions, got %d", len(dialog.Suggestions()))
	}
	sess.Rename("12")
	leftClick(sess, surface.AnvilResult)

	if sel.Filter() != "12" || sel.Page() != 1 {
		t.Fatalf("expected filter 12 on page 1, got %q on %d", sel.Filter(), sel.Page())
	}
	surf := sess.Current()
	if surf.Title() != "pick" {
		t.Fatalf("expected selector reopened, got %q", surf.Title())
	}
	if name := surf.Slot(0).Name; name != "12" {
		t.Fatalf("expected first match 12, got %q", name)
	}
	if name := surf.Slot(SlotFilter).Name; name != "Current filter: 12" {
		t.Fatalf("expected filter label, got %q", name)
	}

	rightClick(sess, SlotFilter)
	if sel.Filter() != "" || len(sel.Filtered()) != 500 {
		t.Fatalf("expected filter cleared, got %q with %d options", sel.Filter(), len(sel.Filtered()))
	}
}

func TestFilterDialogCancelReopensUnchanged(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	sel := Select(sess, "pick", numberedOptions(500), got.callback())
	leftClick(sess, SlotNext)
	leftClick(sess, SlotFilter)
	leftClick(sess, surface.AnvilInput)

	if sess.Current().Title() != "pick" {
		t.Fatalf("expected selector reopened")
	}
	if sel.Page() != 2 || sel.Filter() != "" {
		t.Fatalf("expected page 2 without filter, got %d and %q", sel.Page(), sel.Filter())
	}
	if got.cancelled != 0 {
		t.Fatalf("expected dialog cancel not to cancel the selector")
	}
}

type recordingPrompter struct {
	requests []TextRequest
	reply    string
}

func (p *recordingPrompter) Prompt(_ *session.Session, req TextRequest, cb Callback[string]) {
	p.requests = append(p.requests, req)
	cb.Complete(p.reply)
}

func TestSelectorUsesInjectedPrompter(t *testing.T) {
	sess, _ := newTestSession()
	var got selection
	prompter := &recordingPrompter{reply: "49"}
	sel := NewSelector(sess, "pick", numberedOptions(500), got.callback()).WithPrompter(prompter)
	sel.Open()
	leftClick(sess, SlotFilter)

	if len(prompter.requests) != 1 || prompter.requests[0].Title != "Set Filter" {
		t.Fatalf("expected one filter prompt, got %+v", prompter.requests)
	}
	var want []int
	for i := 0; i < 500; i++ {
		if strings.Contains(strconv.Itoa(i), "49") {
			want = append(want, i)
		}
	}
	if len(want) != 15 {
		t.Fatalf("expected 15 numbers containing 49, got %d", len(want))
	}
	if diff := cmp.Diff(want, values(sel.Filtered())); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}
