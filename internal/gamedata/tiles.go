package gamedata

import (
	"encoding/json"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileDef describes how one tile kind is written and recognised, loaded from tiles.json.
type TileDef struct {
	ID      string `json:"id"`             // Stable identifier (e.g., "floor-marked")
	Name    string `json:"name"`           // Display name (e.g., "Marked Floor")
	ASCII   string `json:"ascii"`          // Canonical plain-text code, URI safe without escaping
	Emoji   string `json:"emoji"`          // Canonical pictographic glyph, should render square
	HTML    string `json:"html,omitempty"` // Optional alternate display glyph
	Pattern string `json:"pattern"`        // Regexp matched against a single plain-text glyph
	Glyphs  string `json:"glyphs"`         // Pictographic aliases, one grapheme each
	Color   string `json:"color"`          // Hex color code (e.g., "#8B5A2B")
}

// DisplayGlyph returns the glyph to show on screen, preferring HTML over Emoji.
func (d *TileDef) DisplayGlyph() string {
	if d.HTML != "" {
		return d.HTML
	}
	return d.Emoji
}

// TCellColor returns the color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}
	return result, nil
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	for i, def := range file.Tiles {
		if def.ID == "" || def.ASCII == "" || def.Emoji == "" {
			return nil, fmt.Errorf("tiles.json entry %d is missing id, ascii or emoji", i)
		}
	}
	return file.Tiles, nil
}
