// Package tmux reads tmux sessions and switches the attached client. The demo
// session picker is built on it.
package tmux

import (
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Session is a tmux session as offered by the picker.
type Session struct {
	Name     string
	Label    string
	Windows  int
	Attached bool
	Clients  []string
	Current  bool
}

type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListClients() ([]*gotmux.Client, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}
