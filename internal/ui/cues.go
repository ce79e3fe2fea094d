package ui

import (
	"fmt"
	"sync"

	"github.com/atomicstack/slotgrid/internal/session"
)

// CueStatus is a session.CueSink that remembers the latest cue so the view
// can show it on the status line.
type CueStatus struct {
	mu    sync.Mutex
	last  session.Cue
	count int
}

// NewCueStatus returns an empty cue sink.
func NewCueStatus() *CueStatus {
	return &CueStatus{}
}

// Play implements session.CueSink.
func (c *CueStatus) Play(_ string, cue session.Cue) {
	c.mu.Lock()
	c.last = cue
	c.count++
	c.mu.Unlock()
}

// Last returns the latest cue and how many cues have played in total.
func (c *CueStatus) Last() (session.Cue, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.count
}

func (c *CueStatus) line() string {
	if c == nil {
		return ""
	}
	cue, n := c.Last()
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("♪ %s %.2f", cue.Sound, cue.Pitch)
}
