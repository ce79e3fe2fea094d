package events

import "github.com/atomicstack/slotgrid/internal/logging"

type SessionTracer struct{}

type TmuxTracer struct{}

var (
	Session = SessionTracer{}
	Tmux    = TmuxTracer{}
)

func (SessionTracer) Open(session, surface, title string) {
	logging.Trace("session.open", map[string]interface{}{"session": session, "surface": surface, "title": title})
}

func (SessionTracer) Close(session, surface string) {
	logging.Trace("session.close", map[string]interface{}{"session": session, "surface": surface})
}

func (SessionTracer) Transfer(session string, slot int) {
	logging.Trace("session.transfer", map[string]interface{}{"session": session, "slot": slot})
}

func (SessionTracer) Cue(session, cue string, pitch float64) {
	logging.Trace("session.cue", map[string]interface{}{"session": session, "cue": cue, "pitch": pitch})
}

func (TmuxTracer) List(socket string, count int) {
	logging.Trace("tmux.sessions", map[string]interface{}{"socket": socket, "count": count})
}

func (TmuxTracer) Switch(socket, target string) {
	logging.Trace("tmux.switch", map[string]interface{}{"socket": socket, "target": target})
}

func (TmuxTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("tmux.error", map[string]interface{}{"error": err.Error()})
}
