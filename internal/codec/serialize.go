package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// Style selects a serialization format.
type Style int

const (
	// StylePlain uses one ASCII code per tile, one row per line.
	StylePlain Style = iota
	// StylePictographic uses emoji tiles and keycap digits, one row per line.
	StylePictographic
	// StyleURI is a single "!"-joined line: plain codes for solvable tiles,
	// pictographs for fixed ones, trailing floors trimmed.
	StyleURI
	// StyleURIUnsolved is StyleURI with marked floors written as plain floors.
	StyleURIUnsolved
)

// String returns the style's flag name.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StylePictographic:
		return "emoji"
	case StyleURI:
		return "uri"
	case StyleURIUnsolved:
		return "uri-unsolved"
	default:
		return "unknown"
	}
}

// ParseStyle maps a flag name back to its Style.
func ParseStyle(name string) (Style, error) {
	for _, s := range []Style{StylePlain, StylePictographic, StyleURI, StyleURIUnsolved} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return StylePlain, fmt.Errorf("unknown style %q", name)
}

var (
	nameEscape    = strings.NewReplacer("!", "%21", ",", "%2C", "\r\n", " ", "\n", " ", "\r", " ")
	uriNameEscape = strings.NewReplacer("!", "%21", ",", "%2C")
)

// Serialize writes the grid in the given style. Parse accepts every style.
func Serialize(g *world.Grid, style Style) string {
	switch style {
	case StylePictographic:
		return serializeLines(g, nameEscape.Replace(g.Name), world.DefaultGlyph(world.KindFloor, world.StylePictographic), EmojiNumber, EmojiNumber, pictographicTile, "\n", false)
	case StyleURI, StyleURIUnsolved:
		name := uriNameEscape.Replace(strings.Join(strings.Fields(g.Name), "_"))
		tile := uriTile
		if style == StyleURIUnsolved {
			tile = unsolvedURITile
		}
		return serializeLines(g, name, ".", columnNumber, strconv.Itoa, tile, "!", true)
	default:
		return serializeLines(g, nameEscape.Replace(g.Name), ".", columnNumber, strconv.Itoa, plainTile, "\n", false)
	}
}

// columnNumber writes a plain column target. Column targets are one glyph each, so
// 10 and above use the "n," escape; row targets are a leading digit run and do not.
func columnNumber(n int) string {
	if n >= 0 && n <= 9 {
		return strconv.Itoa(n)
	}
	return strconv.Itoa(n) + ","
}

func serializeLines(g *world.Grid, name, placeholder string, colNumber, rowNumber func(int) string, tile func(world.Tile) string, sep string, trimFloors bool) string {
	lines := make([]string, 0, g.Rows()+2)
	lines = append(lines, name)

	var b strings.Builder
	b.WriteString(placeholder)
	for _, n := range g.ColTargets() {
		b.WriteString(colNumber(n))
	}
	lines = append(lines, b.String())

	rowTargets := g.RowTargets()
	for r := 0; r < g.Rows(); r++ {
		b.Reset()
		b.WriteString(rowNumber(rowTargets[r]))
		for _, t := range g.TilesInRect(r, 0, 1, g.Cols()) {
			b.WriteString(tile(t))
		}
		line := b.String()
		if trimFloors {
			line = strings.TrimRight(line, ".")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, sep)
}

func plainTile(t world.Tile) string {
	return t.Text(world.StylePlain)
}

func pictographicTile(t world.Tile) string {
	return t.Text(world.StylePictographic)
}

// uriTile keeps solvable tiles compact and fixed tiles recognisable.
func uriTile(t world.Tile) string {
	if t.IsSolvable() {
		return t.Text(world.StylePlain)
	}
	return t.Text(world.StylePictographic)
}

func unsolvedURITile(t world.Tile) string {
	if t.Kind == world.KindMarkedFloor {
		return world.DefaultGlyph(world.KindFloor, world.StylePlain)
	}
	return uriTile(t)
}

// EmojiNumber renders 0-9 as keycap glyphs and anything else as the "n," escape.
func EmojiNumber(n int) string {
	if n >= 0 && n <= 9 {
		return strconv.Itoa(n) + "\uFE0F" + keycap
	}
	return strconv.Itoa(n) + ","
}
