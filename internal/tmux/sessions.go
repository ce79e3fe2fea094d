package tmux

import (
	"fmt"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"

	"github.com/atomicstack/slotgrid/internal/logging/events"
)

// ListSessions returns every session on the server at socketPath, in server
// order. An empty socketPath uses the default server.
func ListSessions(socketPath string) ([]Session, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		events.Tmux.Error(err)
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	sessions, err := client.ListSessions()
	if err != nil {
		events.Tmux.Error(err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	clients, _ := client.ListClients()
	attached := realAttachedClients(clients)
	current := currentSessionName(clients)

	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		names := attached[s.Name]
		out = append(out, Session{
			Name:     s.Name,
			Label:    defaultLabelForSession(s.Name, s.Windows, len(names) > 0),
			Windows:  s.Windows,
			Attached: len(names) > 0,
			Clients:  names,
			Current:  s.Name == current,
		})
	}
	events.Tmux.List(socketPath, len(out))
	return out, nil
}

// SwitchClient points the attached client at target.
func SwitchClient(socketPath, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("session target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		events.Tmux.Error(err)
		return fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	events.Tmux.Switch(socketPath, target)
	if err := client.SwitchClient(&gotmux.SwitchClientOptions{TargetSession: target}); err != nil {
		events.Tmux.Error(err)
		return fmt.Errorf("switch client to %s: %w", target, err)
	}
	return nil
}

func defaultLabelForSession(name string, windows int, attached bool) string {
	label := fmt.Sprintf("%s: %d window", name, windows)
	if windows != 1 {
		label += "s"
	}
	if attached {
		label += " (attached)"
	}
	return label
}

// realAttachedClients maps session names to the non-control-mode clients
// attached to them. The control-mode connection used for queries is skipped.
func realAttachedClients(clients []*gotmux.Client) map[string][]string {
	result := make(map[string][]string)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}

func currentSessionName(clients []*gotmux.Client) string {
	for _, c := range clients {
		if c != nil && !c.ControlMode && c.Session != "" {
			return c.Session
		}
	}
	return ""
}
