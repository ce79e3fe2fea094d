package command

import (
	"testing"

	"github.com/atomicstack/slotgrid/internal/input"
)

type recordingClicker struct {
	calls    []Request
	suppress bool
}

func (r *recordingClicker) ID() string { return "recorder" }

func (r *recordingClicker) Click(slot, button int, kind input.ClickKind) bool {
	r.calls = append(r.calls, Request{Slot: slot, Button: button, Kind: kind})
	return r.suppress
}

func TestExecuteAppliesBeforeReturning(t *testing.T) {
	target := &recordingClicker{suppress: true}
	cmd := New().Execute(target, Request{Key: "s", Slot: 4, Button: 1, Kind: input.QuickMove})
	if len(target.calls) != 1 {
		t.Fatalf("expected click to be applied immediately, got %d calls", len(target.calls))
	}
	if cmd == nil {
		t.Fatalf("expected result command")
	}
	msg, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg")
	}
	if !msg.Suppressed {
		t.Fatalf("expected suppressed result")
	}
	if msg.Event != (input.RightClick{Shift: true}) {
		t.Fatalf("expected shift right click, got %v", msg.Event)
	}
	if msg.Request.Key != "s" {
		t.Fatalf("expected key to round trip, got %q", msg.Request.Key)
	}
}

func TestExecuteUnclassified(t *testing.T) {
	target := &recordingClicker{}
	msg := New().Execute(target, Request{Slot: 0, Button: 5, Kind: input.QuickCraft})().(ResultMsg)
	if msg.Event != nil || msg.Suppressed {
		t.Fatalf("expected unclassified pass-through, got %#v", msg)
	}
}

func TestExecuteNilTarget(t *testing.T) {
	if cmd := New().Execute(nil, Request{}); cmd != nil {
		t.Fatalf("expected nil command for nil target")
	}
}
