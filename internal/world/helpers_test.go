package world

import (
	"strings"
	"testing"
)

// buildGrid builds a solving grid from plain-text lines: a column line whose first
// character is a placeholder, then rows that start with their target digit.
func buildGrid(t *testing.T, cols string, rows ...string) *Grid {
	t.Helper()
	var colTargets []int
	for _, ch := range cols[1:] {
		colTargets = append(colTargets, int(ch-'0'))
	}
	rowTargets := make([]int, 0, len(rows))
	tiles := make([][]Tile, 0, len(rows))
	for _, row := range rows {
		row = strings.TrimSpace(row)
		rowTargets = append(rowTargets, int(row[0]-'0'))
		var line []Tile
		for _, ch := range row[1:] {
			line = append(line, ParseTile(string(ch)))
		}
		tiles = append(tiles, line)
	}
	return NewGrid("Test Puzzle", rowTargets, colTargets, tiles)
}

// kindsOf returns the grid's kinds row by row as plain-text codes.
func kindsOf(g *Grid) []string {
	lines := make([]string, g.Rows())
	for c, tile := range g.All() {
		lines[c.Row] += DefaultGlyph(tile.Kind, StylePlain)
	}
	return lines
}
