package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB", "RRGGBB" or the "#RGB" shorthand into a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette maps tile ids to their display colors.
type Palette map[string]tcell.Color

// Palette builds the color table for every registered tile.
func (r *TileRegistry) Palette() Palette {
	palette := make(Palette, len(r.all))
	for i := range r.all {
		palette[r.all[i].ID] = r.all[i].TCellColor()
	}
	return palette
}

// Color returns the color for a tile id, or the terminal default when unknown.
func (p Palette) Color(id string) tcell.Color {
	if color, ok := p[id]; ok {
		return color
	}
	return tcell.ColorDefault
}
