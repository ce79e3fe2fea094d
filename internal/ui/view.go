package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/slotgrid/internal/format/table"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/surface"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultCellWidth = 10
	minCellWidth     = 3
	maxCellWidth     = 14
	emptyCell        = "·"
	footerText       = "←↓↑→ move  enter/space click  s/S shift  d double  m middle  q/Q drop  1-9 hotbar  o outside  / text  esc close"
)

// View implements tea.Model.
func (m *Model) View() string {
	surf := m.sess.Current()
	if surf == nil {
		return ""
	}
	lines := make([]string, 0, 24)
	lines = append(lines, m.headerLine(surf))
	lines = append(lines, m.gridLines(surf)...)
	lines = append(lines, "")
	lines = append(lines, m.detailLines(surf)...)
	if surf.Kind() == surface.Anvil {
		lines = append(lines, "")
		lines = append(lines, m.textLines()...)
	}
	if status := m.statusLine(); status != "" {
		lines = append(lines, "", status)
	}
	if m.showFooter {
		lines = append(lines, "", render(styles.Footer, footerText))
	}
	lines = limitHeight(lines, m.height)
	return strings.Join(applyWidth(lines, m.width), "\n")
}

// headerLine is the surface title followed by the number of animation and
// ticker entries the surface has registered.
func (m *Model) headerLine(surf *surface.Surface) string {
	header := render(styles.Header, surf.Title())
	if m.ticks == nil {
		return header
	}
	if n := m.ticks.Count(surf.ID()); n > 0 {
		header += render(styles.Footer, fmt.Sprintf("  ⟳ %d", n))
	}
	return header
}

func (m *Model) cellWidth() int {
	if m.width <= 0 {
		return defaultCellWidth
	}
	w := (m.width - (playerColumns - 1)) / playerColumns
	return min(max(w, minCellWidth), maxCellWidth)
}

func (m *Model) gridLines(surf *surface.Surface) []string {
	width := m.cellWidth()
	slots := surf.Slots()
	var player []label.Image
	if inv := surf.Inventory(); inv != nil {
		player = inv.Snapshot()
	}

	rows := make([][]string, 0, len(m.grid.rows))
	var divider int
	for r, row := range m.grid.rows {
		if r == m.grid.container {
			divider = len(rows)
		}
		cells := make([]string, len(row))
		for c, slot := range row {
			var img label.Image
			playerRow := m.grid.isPlayerRow(r)
			if playerRow {
				if i := slot - surf.Size(); i < len(player) {
					img = player[i]
				}
			} else if slot < len(slots) {
				img = slots[slot]
			}
			selected := m.cursor == position{row: r, col: c}
			cells[c] = m.renderCell(img, width, selected, !playerRow && surf.Bound(slot), playerRow)
		}
		rows = append(rows, cells)
	}

	out := table.Format(rows, nil)
	if divider > 0 && divider < len(out) {
		line := render(styles.Divider, strings.Repeat("─", playerColumns*(width+1)-1))
		out = append(out[:divider], append([]string{line}, out[divider:]...)...)
	}
	return out
}

func (m *Model) renderCell(img label.Image, width int, selected, bound, player bool) string {
	text := cellText(img, width)
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	switch {
	case selected:
		return render(styles.Cursor, text)
	case img.IsBlank():
		return render(styles.EmptySlot, text)
	case player:
		return render(styles.PlayerSlot, text)
	case bound:
		return render(styles.BoundSlot, text)
	default:
		return render(styles.Slot, text)
	}
}

// cellText is the short form of img shown inside a grid cell.
func cellText(img label.Image, width int) string {
	if img.IsBlank() {
		return emptyCell
	}
	name := img.Name
	if name == "" {
		name = img.Item
	}
	if img.Count > 1 {
		name = fmt.Sprintf("%s×%d", name, img.Count)
	}
	return truncate.StringWithTail(name, uint(width), "…")
}

func (m *Model) detailLines(surf *surface.Surface) []string {
	slot := m.cursorSlot()
	img := surf.Slot(slot)

	lines := make([]string, 0, 4)
	if img.IsBlank() {
		lines = append(lines, render(styles.EmptySlot, fmt.Sprintf("slot %d: empty", slot)))
	} else {
		name := img.Name
		if name == "" {
			name = img.Item
		}
		lines = append(lines, render(styles.Detail, fmt.Sprintf("slot %d: %s", slot, name)))
		for _, note := range img.Notes {
			lines = append(lines, render(styles.Hint, "  "+note))
		}
		for _, deco := range img.Decoration {
			lines = append(lines, render(styles.Hint, "  "+deco))
		}
	}
	if held := m.sess.Held(); !held.IsBlank() {
		lines = append(lines, render(styles.Held, "holding: "+cellText(held, maxCellWidth*2)))
	}
	return lines
}

func (m *Model) textLines() []string {
	lines := []string{m.text.View()}
	for i, suggestion := range m.suggestions() {
		style := styles.Suggestion
		if i == 0 && m.textFocused {
			style = styles.TopSuggestion
		}
		lines = append(lines, render(style, "  "+suggestion))
	}
	return lines
}

func (m *Model) statusLine() string {
	parts := make([]string, 0, 2)
	if m.status != "" {
		parts = append(parts, render(styles.Status, m.status))
	}
	if cue := m.cues.line(); cue != "" {
		parts = append(parts, render(styles.Status, cue))
	}
	return strings.Join(parts, "  ")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return append(lines[:height-1:height-1], "…")
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		out[i] = line
	}
	return out
}
