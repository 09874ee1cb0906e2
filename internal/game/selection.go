package game

import (
	"strings"

	"github.com/samdwyer/roflwords/internal/board"
)

// SelectionPath is the ordered list of distinct cells traced for one word.
// Consecutive cells are always adjacent.
type SelectionPath struct {
	cells []board.Cell
}

// Len returns the number of traced cells.
func (p *SelectionPath) Len() int {
	return len(p.cells)
}

// Contains returns true if the path already holds a cell at the same position.
func (p *SelectionPath) Contains(cell board.Cell) bool {
	for _, c := range p.cells {
		if c.At(cell.Row, cell.Col) {
			return true
		}
	}
	return false
}

// CanExtend reports whether cell may be appended: it must be new to the path
// and adjacent to the last cell, unless the path is empty.
func (p *SelectionPath) CanExtend(cell board.Cell) bool {
	if p.Contains(cell) {
		return false
	}
	if len(p.cells) == 0 {
		return true
	}
	return p.cells[len(p.cells)-1].Adjacent(cell)
}

// Extend appends cell if CanExtend allows it and reports whether it did.
func (p *SelectionPath) Extend(cell board.Cell) bool {
	if !p.CanExtend(cell) {
		return false
	}
	p.cells = append(p.cells, cell)
	return true
}

// Clear empties the path.
func (p *SelectionPath) Clear() {
	p.cells = p.cells[:0]
}

// Word returns the letters of the path in order.
func (p *SelectionPath) Word() string {
	var b strings.Builder
	for _, c := range p.cells {
		b.WriteRune(c.Char)
	}
	return b.String()
}

// Score returns the pending score of the path.
func (p *SelectionPath) Score() PendingScore {
	if len(p.cells) == 0 {
		return NoScore
	}
	points := 0
	for _, c := range p.cells {
		points += pointsPerPrice * c.Price
	}
	return ScoreOf(points)
}

// Cells returns a copy of the traced cells.
func (p *SelectionPath) Cells() []board.Cell {
	return append([]board.Cell(nil), p.cells...)
}
