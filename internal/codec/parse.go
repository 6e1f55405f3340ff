package codec

import (
	"regexp"
	"strings"

	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

var (
	nameSpaces   = regexp.MustCompile(`[\s_+]+`)
	nameUnescape = strings.NewReplacer("%21", "!", "%2C", ",", "%2c", ",")
)

// Parse reads a puzzle in any of the serialized styles and returns a solving grid.
//
// The first line is the name, the second the column targets behind a placeholder
// glyph, and each remaining line a row: its target followed by one glyph per tile.
// Lines break on newlines, commas and "!". Short rows are padded with floor and
// extra glyphs are ignored; Parse never fails.
func Parse(text string) *world.Grid {
	l := newLexer(text)

	var lines [][]string
	for _, line := range l.lines() {
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}

	// A string that starts with its target line has no name.
	name := ""
	if len(lines) > 0 && !(looksLikeTargets(lines[0]) && (len(lines) < 2 || !looksLikeTargets(lines[1]))) {
		name = decodeName(strings.Join(lines[0], ""))
		lines = lines[1:]
	}

	var colTargets []int
	if len(lines) > 0 {
		colTargets = parseColTargets(lines[0])
		lines = lines[1:]
	}

	rowTargets := make([]int, 0, len(lines))
	tiles := make([][]world.Tile, 0, len(lines))
	for _, line := range lines {
		target, next := readCount(line, 0, true)
		rowTargets = append(rowTargets, target)

		row := make([]world.Tile, 0, len(colTargets))
		for _, glyph := range line[next:] {
			row = append(row, world.ParseTile(glyph))
		}
		tiles = append(tiles, row)
	}

	return world.NewGrid(name, rowTargets, colTargets, tiles)
}

func parseColTargets(line []string) []int {
	var targets []int
	for i := 1; i < len(line); {
		var n int
		n, i = readCount(line, i, false)
		targets = append(targets, n)
	}
	return targets
}

func decodeName(raw string) string {
	return nameUnescape.Replace(nameSpaces.ReplaceAllString(strings.TrimSpace(raw), " "))
}
