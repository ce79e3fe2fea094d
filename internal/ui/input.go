package ui

import (
	"sort"
	"strings"

	"github.com/atomicstack/slotgrid/internal/surface"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 5

func newTextField() textinput.Model {
	field := textinput.New()
	field.Prompt = "✎ "
	field.Placeholder = "type to rename"
	field.CharLimit = 50
	field.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		field.PromptStyle = *styles.Prompt
	}
	return field
}

// focusText attaches the text field to an Anvil surface's current text.
func (m *Model) focusText(surf *surface.Surface) {
	if surf == nil || surf.Kind() != surface.Anvil {
		return
	}
	m.text.SetValue(surf.Text())
	m.text.CursorEnd()
	m.text.Focus()
	m.textFocused = true
	m.applyTextStyle()
}

func (m *Model) blurText() {
	m.text.Blur()
	m.textFocused = false
	m.applyTextStyle()
}

func (m *Model) applyTextStyle() {
	style := styles.PromptIdle
	if m.textFocused {
		style = styles.Prompt
	}
	if style != nil {
		m.text.PromptStyle = *style
	}
}

// handleTextKey feeds a key to the focused text field and forwards edits to
// the surface. It reports whether the key was consumed.
func (m *Model) handleTextKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.blurText()
		return true, nil
	case "tab":
		suggestions := m.suggestions()
		if len(suggestions) == 0 {
			m.blurText()
			return true, nil
		}
		m.text.SetValue(suggestions[0])
		m.text.CursorEnd()
		m.syncText()
		return true, nil
	}
	before := m.text.Value()
	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	if m.text.Value() != before {
		m.syncText()
	}
	return true, cmd
}

func (m *Model) syncText() {
	m.sess.Rename(m.text.Value())
}

// suggestions ranks the current surface's candidates against the field value.
// An empty value lists candidates in their original order.
func (m *Model) suggestions() []string {
	surf := m.sess.Current()
	if surf == nil {
		return nil
	}
	candidates := surf.Suggestions()
	query := strings.TrimSpace(m.text.Value())
	if query == "" {
		return limitStrings(candidates, maxSuggestions)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, candidates)
	sort.Stable(ranks)
	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if r.Target == m.text.Value() {
			continue
		}
		out = append(out, r.Target)
	}
	return limitStrings(out, maxSuggestions)
}

func limitStrings(in []string, n int) []string {
	if len(in) > n {
		in = in[:n]
	}
	return append([]string(nil), in...)
}
