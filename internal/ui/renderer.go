package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roflwords/internal/board"
)

// HUD is the session state shown around the board.
type HUD struct {
	PendingWord  string
	PendingScore string // empty when nothing is traced
	Total        int
	Found        []string
	Path         []board.Cell
	Message      string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the board and the HUD to the screen.
func (r *Renderer) Render(grid *board.Grid, hud HUD) {
	r.screen.Clear()

	r.drawText(boardLeft, 0, "RoflWords", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	selected := make(map[[2]int]bool, len(hud.Path))
	for _, c := range hud.Path {
		selected[[2]int{c.Row, c.Col}] = true
	}

	layout := Layout{Rows: grid.Rows(), Columns: grid.Columns()}
	for _, row := range grid.Cells() {
		for _, cell := range row {
			x, y := layout.CellOrigin(cell.Row, cell.Col)
			style := r.cellStyle(cell, selected[[2]int{cell.Row, cell.Col}])
			label := " " + cell.Label()
			for len([]rune(label)) < cellWidth-1 {
				label += " "
			}
			r.drawText(x, y, label, style)
		}
	}

	y := layout.Bottom() + 1
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.drawText(boardLeft, y, "Word:  "+strings.ToUpper(hud.PendingWord), plain)
	if hud.PendingScore != "" {
		r.drawText(boardLeft+24, y, "+"+hud.PendingScore, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	r.drawText(boardLeft, y+1, "Score: "+strconv.Itoa(hud.Total), plain.Bold(true))
	r.drawText(boardLeft, y+2, "Found: "+strings.Join(hud.Found, ", "), plain)
	if hud.Message != "" {
		r.RenderMessage(hud.Message, y+4)
	}
	r.drawText(boardLeft, y+6, "drag to trace  r reshuffle  n new game  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// cellStyle returns the style for a cell, colored by price and inverted when selected.
func (r *Renderer) cellStyle(cell board.Cell, selected bool) tcell.Style {
	style := tcell.StyleDefault.
		Background(PriceColor(cell.Price)).
		Foreground(tcell.ColorWhite).
		Bold(true)
	if selected {
		style = style.Reverse(true)
	}
	return style
}

// RenderMessage displays a message at the given line.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(boardLeft, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// drawText writes s starting at (x, y), one rune per column.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
