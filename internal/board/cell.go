// Package board provides letter grid generation and cell lookup.
package board

import (
	"strconv"
	"unicode"
)

// Cell is one grid position holding a letter and its point price.
// Cells are values; a regenerated grid holds entirely new cells.
type Cell struct {
	Char  rune // Lower-case letter
	Price int  // Point multiplier, 1..MaxPrice
	Row   int
	Col   int
}

// At returns true if the cell sits at the given position.
func (c Cell) At(row, col int) bool {
	return c.Row == row && c.Col == col
}

// Adjacent returns true if other is one of the eight neighbours of c.
// A cell is not adjacent to itself.
func (c Cell) Adjacent(other Cell) bool {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return -1 <= dr && dr <= 1 && -1 <= dc && dc <= 1
}

// Label returns the display text: the upper-cased letter, followed by the
// price when it is above 1.
func (c Cell) Label() string {
	label := string(unicode.ToUpper(c.Char))
	if c.Price > 1 {
		label += strconv.Itoa(c.Price)
	}
	return label
}
