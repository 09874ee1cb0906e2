package ui

// Board placement on screen. Each cell is a cellWidth×cellHeight box whose
// first line carries the label; the rest is spacing.
const (
	boardLeft  = 2
	boardTop   = 2
	cellWidth  = 4
	cellHeight = 2
)

// Layout maps between board positions and screen coordinates for a board
// of the given size.
type Layout struct {
	Rows    int
	Columns int
}

// CellOrigin returns the screen position of the top-left corner of a cell box.
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return boardLeft + col*cellWidth, boardTop + row*cellHeight
}

// CellAt returns the board position under screen coordinates (x, y).
// ok is false when the point lies outside the board.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if x < boardLeft || y < boardTop {
		return 0, 0, false
	}
	col = (x - boardLeft) / cellWidth
	row = (y - boardTop) / cellHeight
	if row >= l.Rows || col >= l.Columns {
		return 0, 0, false
	}
	return row, col, true
}

// Bottom returns the first screen line below the board.
func (l Layout) Bottom() int {
	return boardTop + l.Rows*cellHeight
}
