package label

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/slotgrid/internal/input"
)

func TestKindByFrameCount(t *testing.T) {
	if k := NewBuilder().Build().Kind(); k != Empty {
		t.Fatalf("expected empty, got %v", k)
	}
	if k := NewBuilder().Item("paper").Build().Kind(); k != Static {
		t.Fatalf("expected static, got %v", k)
	}
	l := NewBuilder().Item("red").Item("lime").Item("blue").Build()
	if l.Kind() != Animated || !l.IsAnimated() {
		t.Fatalf("expected animated, got %v", l.Kind())
	}
	if l.Interval() != DefaultInterval {
		t.Fatalf("expected default interval %d, got %d", DefaultInterval, l.Interval())
	}
}

func TestIntervalClamped(t *testing.T) {
	l := NewBuilder().Item("a").Item("b").Interval(0).Build()
	if l.Interval() != 1 {
		t.Fatalf("expected interval clamped to 1, got %d", l.Interval())
	}
}

func TestBuildAppliesTitleAndHints(t *testing.T) {
	src := Image{Item: "diamond_helmet", Count: 1, Notes: []string{"existing"}, Decoration: []string{"+2 Armor"}}
	l := NewBuilder().
		Image(src).
		Title("Helmet").
		Hint("plain").
		InputHint("Open", input.LeftClick{}).
		Build()

	want := Image{
		Item:  "diamond_helmet",
		Count: 1,
		Name:  "Helmet",
		Notes: []string{"existing", "plain", "Open: [LMB]"},
	}
	if diff := cmp.Diff(want, l.First()); diff != "" {
		t.Fatalf("unexpected first image (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"plain", "Open: [LMB]"}, l.Hints()); diff != "" {
		t.Fatalf("unexpected hints (-want +got):\n%s", diff)
	}
	if title, ok := l.Title(); !ok || title != "Helmet" {
		t.Fatalf("expected title Helmet, got %q (set=%v)", title, ok)
	}
}

func TestKeepDecoration(t *testing.T) {
	src := Image{Item: "diamond_helmet", Decoration: []string{"+2 Armor"}}
	kept := NewBuilder().Image(src).KeepDecoration().Build()
	if diff := cmp.Diff([]string{"+2 Armor"}, kept.First().Decoration); diff != "" {
		t.Fatalf("expected decoration kept (-want +got):\n%s", diff)
	}
	stripped := NewBuilder().Image(src).Build()
	if len(stripped.First().Decoration) != 0 {
		t.Fatalf("expected decoration stripped, got %v", stripped.First().Decoration)
	}
}

func TestLabelIsImmutable(t *testing.T) {
	b := NewBuilder().Item("a").Item("b").Hint("h")
	l := b.Build()

	images := l.Images()
	images[0].Item = "changed"
	images[0].Notes[0] = "changed"
	hints := l.Hints()
	hints[0] = "changed"
	b.Item("c").Hint("later")

	if l.Len() != 2 {
		t.Fatalf("expected builder reuse not to affect label, got %d frames", l.Len())
	}
	if l.First().Item != "a" || l.First().Notes[0] != "h" {
		t.Fatalf("expected first frame untouched, got %#v", l.First())
	}
	if got := l.Hints(); len(got) != 1 || got[0] != "h" {
		t.Fatalf("expected hints untouched, got %v", got)
	}
}

func TestEmptyLabelRendersBlank(t *testing.T) {
	if !Blank.First().IsBlank() {
		t.Fatalf("expected blank first image")
	}
	if !Blank.Frame(3).IsBlank() {
		t.Fatalf("expected out of range frame to be blank")
	}
}

func TestPredefinedLabels(t *testing.T) {
	if Cancel.First().Name != "Cancel" || Cancel.First().Item != "barrier" {
		t.Fatalf("unexpected cancel label %#v", Cancel.First())
	}
	if Close.TitleText() != "Close" {
		t.Fatalf("unexpected close title %q", Close.TitleText())
	}
	if Divider.Kind() != Static {
		t.Fatalf("expected static divider")
	}
}
