package demo

import (
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/logging"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/menu"
)

func (r *Root) tmuxHint() string {
	if r.tmuxStatus != "" {
		return r.tmuxStatus
	}
	return "Pick a session to switch to"
}

// OpenSessions lists tmux sessions in a selector and switches the attached
// client to the chosen one.
func (r *Root) OpenSessions() {
	sessions, err := r.listSessions(r.socketPath)
	if err != nil {
		logging.Error(err)
		r.tmuxStatus = "Error: " + err.Error()
		r.reopen()
		return
	}
	r.sess.Interact(1)

	options := make([]menu.Option[string], 0, len(sessions))
	for _, s := range sessions {
		item := "white_bed"
		if s.Current {
			item = "lime_bed"
		} else if s.Attached {
			item = "yellow_bed"
		}
		b := label.NewBuilder().Item(item).Title(s.Name).Hint(s.Label)
		for _, client := range s.Clients {
			b.Hint("client " + client)
		}
		options = append(options, menu.Option[string]{Label: b.Build(), Value: s.Name})
	}

	menu.Select(r.sess, "tmux sessions", options, menu.NewCallback(func(name string) {
		events.Demo.Result("tmux", name)
		if err := r.switchClient(r.socketPath, name); err != nil {
			logging.Error(err)
			r.tmuxStatus = "Error: " + err.Error()
			r.reopen()
			return
		}
		r.tmuxStatus = "Switched to " + name
		r.sess.Success()
		r.Open()
	}, func() {
		events.Demo.Cancel("tmux")
		r.reopen()
	}))
}
