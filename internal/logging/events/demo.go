package events

import "github.com/atomicstack/slotgrid/internal/logging"

type DemoTracer struct{}

var Demo = DemoTracer{}

func (DemoTracer) Result(menu string, value interface{}) {
	logging.Trace("demo.result", map[string]interface{}{"menu": menu, "value": value})
}

func (DemoTracer) Cancel(menu string) {
	logging.Trace("demo.cancel", map[string]interface{}{"menu": menu})
}
