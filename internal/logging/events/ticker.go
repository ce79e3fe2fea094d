package events

import (
	"time"

	"github.com/atomicstack/slotgrid/internal/logging"
)

type TickerTracer struct{}

var Ticker = TickerTracer{}

func (TickerTracer) Animated(surface string, slot, frames, interval int) {
	logging.Trace("ticker.animated", map[string]interface{}{
		"surface":  surface,
		"slot":     slot,
		"frames":   frames,
		"interval": interval,
	})
}

func (TickerTracer) MenuTicker(surface string) {
	logging.Trace("ticker.menu", map[string]interface{}{"surface": surface})
}

func (TickerTracer) Purge(surface string, removed int) {
	logging.Trace("ticker.purge", map[string]interface{}{"surface": surface, "removed": removed})
}

func (TickerTracer) ClockStart(interval time.Duration) {
	logging.Trace("ticker.clock.start", map[string]interface{}{"interval": interval.String()})
}

func (TickerTracer) ClockStop() {
	logging.Trace("ticker.clock.stop", nil)
}
