package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/dungeonpuzzle/internal/gamedata"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// Board layout: a title line, the column targets, then one line per row with its
// target in the first cell. Every cell is two columns wide so pictographs fit.
const (
	cellWidth  = 2
	titleY     = 0
	headerY    = 1
	boardY     = 2
	boardX     = cellWidth
	statusGapY = 1
)

// Canvas is the drawing surface the renderer needs. *Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// View is everything drawn in one frame.
type View struct {
	Grid       *world.Grid
	Cursor     world.Coord
	ShowCursor bool
	Status     string
	Help       string
}

// Renderer draws boards onto a canvas.
type Renderer struct {
	canvas  Canvas
	palette gamedata.Palette
	style   world.Style
}

// NewRenderer creates a renderer using palette colors and the given tile alphabet.
func NewRenderer(canvas Canvas, palette gamedata.Palette, style world.Style) *Renderer {
	return &Renderer{canvas: canvas, palette: palette, style: style}
}

// CellAt maps a screen position to a board cell.
func CellAt(x, y int) (world.Coord, bool) {
	if x < boardX || y < boardY {
		return world.Coord{}, false
	}
	return world.Coord{Row: y - boardY, Col: (x - boardX) / cellWidth}, true
}

// CellOrigin returns the screen position of a board cell.
func CellOrigin(c world.Coord) (x, y int) {
	return boardX + c.Col*cellWidth, boardY + c.Row
}

// Render draws the view and flushes it.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()
	g := v.Grid

	r.drawText(0, titleY, g.Name, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	rowCounts, colCounts := g.CountWalls()
	colTargets, rowTargets := g.ColTargets(), g.RowTargets()
	for c, target := range colTargets {
		r.drawText(boardX+c*cellWidth, headerY, strconv.Itoa(target), targetStyle(colCounts[c], target))
	}
	for row, target := range rowTargets {
		r.drawText(0, boardY+row, strconv.Itoa(target), targetStyle(rowCounts[row], target))
	}

	for c, tile := range g.All() {
		style := r.tileStyle(tile)
		if v.ShowCursor && c == v.Cursor {
			style = style.Reverse(true)
		}
		x, y := CellOrigin(c)
		r.drawText(x, y, tile.Text(r.style), style)
	}

	statusY := boardY + g.Rows() + statusGapY
	r.drawText(0, statusY, v.Status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, statusY+1, v.Help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.canvas.Show()
}

func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	return tcell.StyleDefault.Foreground(r.palette.Color(tile.Kind.String()))
}

// targetStyle colors a target by how the current wall count compares with it.
func targetStyle(count, target int) tcell.Style {
	switch {
	case count == target:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case count > target:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

// drawText writes s one grapheme at a time and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		r.canvas.SetContent(x, y, runes[0], runes[1:], style)
		x += max(gr.Width(), 1)
	}
	return x
}
