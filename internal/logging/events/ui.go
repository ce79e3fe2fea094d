package events

import "github.com/atomicstack/slotgrid/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key string, slot int) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "slot": slot})
}

func (UITracer) Cursor(surface string, slot int) {
	logging.Trace("ui.cursor", map[string]interface{}{"surface": surface, "slot": slot})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (CommandTracer) Queue(session string, slot, button int, kind string) {
	logging.Trace("command.queue", map[string]interface{}{
		"session": session,
		"slot":    slot,
		"button":  button,
		"kind":    kind,
	})
}

func (CommandTracer) Result(session string, slot int, suppressed bool) {
	logging.Trace("command.result", map[string]interface{}{"session": session, "slot": slot, "suppressed": suppressed})
}
