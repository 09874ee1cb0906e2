package board

import (
	"context"
	"fmt"
)

// CellListener receives a cell the pointer entered or left.
type CellListener func(Cell)

// Grid owns the current cell matrix and forwards pointer notifications
// for its cells. Subscribers register once on the grid and keep receiving
// events across regenerations.
type Grid struct {
	generator  *Generator
	cells      [][]Cell
	rows       int
	columns    int
	generation int

	entered listeners
	left    listeners
}

// NewGrid creates an empty grid. Call Regenerate before use.
func NewGrid(generator *Generator) *Grid {
	return &Grid{generator: generator}
}

// Regenerate replaces the whole cell matrix. On error the current matrix
// is kept untouched.
func (g *Grid) Regenerate(ctx context.Context, rows, columns int) error {
	cells, err := g.generator.Generate(ctx, rows, columns)
	if err != nil {
		return err
	}

	g.cells = cells
	g.rows = rows
	g.columns = columns
	g.generation++
	return nil
}

// Rows returns the current number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the current number of columns.
func (g *Grid) Columns() int {
	return g.columns
}

// Generation counts completed regenerations. It lets views detect a new board.
func (g *Grid) Generation() int {
	return g.generation
}

// InBounds returns true if the position lies inside the current matrix.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// CellAt returns the cell at the given position.
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.columns, ErrOutOfRange)
	}
	return g.cells[row][col], nil
}

// Cells returns a copy of the matrix indexed [row][col].
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for row := range g.cells {
		out[row] = append([]Cell(nil), g.cells[row]...)
	}
	return out
}

// OnCellEntered subscribes fn to pointer-entered notifications.
// The returned function removes the subscription.
func (g *Grid) OnCellEntered(fn CellListener) (unsubscribe func()) {
	return g.entered.add(fn)
}

// OnCellLeft subscribes fn to pointer-left notifications.
func (g *Grid) OnCellLeft(fn CellListener) (unsubscribe func()) {
	return g.left.add(fn)
}

// Enter notifies subscribers that the pointer entered the cell at (row, col).
// The position is resolved against the current matrix, so a stale
// position from a previous board can never reach subscribers as an old cell.
func (g *Grid) Enter(row, col int) error {
	cell, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	g.entered.notify(cell)
	return nil
}

// Leave notifies subscribers that the pointer left the cell at (row, col).
func (g *Grid) Leave(row, col int) error {
	cell, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	g.left.notify(cell)
	return nil
}

// listeners is an ordered registry of cell callbacks.
type listeners struct {
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn CellListener
}

func (l *listeners) add(fn CellListener) func() {
	id := l.nextID
	l.nextID++
	l.subs = append(l.subs, subscription{id: id, fn: fn})

	return func() {
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners) notify(cell Cell) {
	// Snapshot so a callback may unsubscribe while we iterate
	subs := append([]subscription(nil), l.subs...)
	for _, s := range subs {
		s.fn(cell)
	}
}
