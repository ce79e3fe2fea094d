package events

import "github.com/atomicstack/slotgrid/internal/logging"

type SurfaceTracer struct{}

type InputTracer struct{}

var (
	Surface = SurfaceTracer{}
	Input   = InputTracer{}
)

func (SurfaceTracer) Open(id, title, kind string, size int) {
	logging.Trace("surface.open", map[string]interface{}{
		"surface": id,
		"title":   title,
		"kind":    kind,
		"size":    size,
	})
}

func (SurfaceTracer) Seal(id string, bindings, animated, tickers int) {
	logging.Trace("surface.seal", map[string]interface{}{
		"surface":  id,
		"bindings": bindings,
		"animated": animated,
		"tickers":  tickers,
	})
}

func (SurfaceTracer) PassThrough(id string, slot int, reason string) {
	logging.Trace("surface.pass", map[string]interface{}{"surface": id, "slot": slot, "reason": reason})
}

func (SurfaceTracer) Dispatch(id string, slot int, event string) {
	logging.Trace("surface.dispatch", map[string]interface{}{"surface": id, "slot": slot, "event": event})
}

func (SurfaceTracer) Unbound(id string, slot int, event string) {
	logging.Trace("surface.unbound", map[string]interface{}{"surface": id, "slot": slot, "event": event})
}

func (SurfaceTracer) Text(id, text string) {
	logging.Trace("surface.text", map[string]interface{}{"surface": id, "text": text})
}

func (SurfaceTracer) Close(id string) {
	logging.Trace("surface.close", map[string]interface{}{"surface": id})
}

func (InputTracer) Unclassified(slot, button int, kind string) {
	logging.Trace("input.unclassified", map[string]interface{}{"slot": slot, "button": button, "kind": kind})
}
