package ui

import (
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/surface"
)

const playerColumns = 9

// grid maps screen rows to slot indices: the surface's managed rows first,
// then the player region in rows of nine.
type grid struct {
	rows      [][]int
	container int
}

func newGrid(kind surface.Kind) grid {
	g := grid{container: kind.Rows()}
	cols := kind.Columns()
	for r := 0; r < kind.Rows(); r++ {
		row := make([]int, cols)
		for c := range row {
			row[c] = r*cols + c
		}
		g.rows = append(g.rows, row)
	}
	base := kind.Size()
	for r := 0; r < surface.PlayerSlots/playerColumns; r++ {
		row := make([]int, playerColumns)
		for c := range row {
			row[c] = base + r*playerColumns + c
		}
		g.rows = append(g.rows, row)
	}
	return g
}

func (g grid) slot(pos position) int {
	if pos.row < 0 || pos.row >= len(g.rows) {
		return -1
	}
	row := g.rows[pos.row]
	if pos.col < 0 || pos.col >= len(row) {
		return -1
	}
	return row[pos.col]
}

func (g grid) isPlayerRow(row int) bool {
	return row >= g.container
}

type position struct {
	row int
	col int
}

// move shifts pos within g. Vertical moves clamp the column to the target
// row's width; horizontal moves stop at the row edge.
func (g grid) move(pos position, dRow, dCol int) position {
	if len(g.rows) == 0 {
		return pos
	}
	next := pos
	next.row = min(max(pos.row+dRow, 0), len(g.rows)-1)
	width := len(g.rows[next.row])
	next.col = min(max(pos.col+dCol, 0), width-1)
	return next
}

func (m *Model) moveCursor(dRow, dCol int) {
	m.cursor = m.grid.move(m.cursor, dRow, dCol)
	events.UI.Cursor(m.surfaceID, m.cursorSlot())
}

func (m *Model) cursorSlot() int {
	return m.grid.slot(m.cursor)
}
