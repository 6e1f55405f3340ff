package world

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonpuzzle/internal/gamedata"
)

// classifyOrder is the recognition priority, most specific first.
var classifyOrder = []Kind{KindFloor, KindMarkedFloor, KindWall, KindTreasure, KindBossMonster, KindMonster}

// kindDef is a compiled recognition rule for one kind.
type kindDef struct {
	kind    Kind
	def     *gamedata.TileDef
	pattern *regexp.Regexp
	glyphs  mapset.Set[string]
}

func (d *kindDef) matches(key string) bool {
	if d.glyphs.Has(key) {
		return true
	}
	return d.pattern != nil && d.pattern.MatchString(key)
}

type tileRegistry struct {
	defs    [len(traits)]*kindDef
	ordered []*kindDef
}

var registry = newTileRegistry(gamedata.MustLoadTileRegistry())

func newTileRegistry(data *gamedata.TileRegistry) *tileRegistry {
	r := &tileRegistry{}
	for _, kind := range Kinds() {
		def := data.GetByID(kind.String())
		if def == nil {
			panic(fmt.Sprintf("tiles.json has no entry for %q", kind))
		}
		compiled := &kindDef{kind: kind, def: def, glyphs: mapset.New[string]()}
		if def.Pattern != "" {
			compiled.pattern = regexp.MustCompile(def.Pattern)
		}
		gr := uniseg.NewGraphemes(def.Glyphs)
		for gr.Next() {
			compiled.glyphs.Put(normalizeGlyph(gr.Str()))
		}
		compiled.glyphs.Put(normalizeGlyph(def.Emoji))
		if def.HTML != "" {
			compiled.glyphs.Put(normalizeGlyph(def.HTML))
		}
		r.defs[kind] = compiled
	}
	for _, kind := range classifyOrder {
		r.ordered = append(r.ordered, r.defs[kind])
	}
	return r
}

// normalizeGlyph strips emoji/text presentation selectors so "⬜️" and "⬜" compare equal.
func normalizeGlyph(glyph string) string {
	return strings.Map(func(r rune) rune {
		if r == '\uFE0F' || r == '\uFE0E' {
			return -1
		}
		return r
	}, glyph)
}

// Classify maps an arbitrary glyph to a tile kind.
// Unrecognised glyphs are monsters, since most pictographs stand for monster flavor.
// The empty glyph is floor.
func Classify(glyph string) Kind {
	key := normalizeGlyph(glyph)
	if key == "" {
		return KindFloor
	}
	for _, def := range registry.ordered {
		if def.matches(key) {
			return def.kind
		}
	}
	return KindMonster
}

// ParseTile classifies glyph and keeps it as the tile's custom pictograph when it
// differs from the kind's default.
func ParseTile(glyph string) Tile {
	tile := NewTile(Classify(glyph))
	if tile.IsSolvable() {
		return tile
	}
	return tile.WithGlyph(glyph)
}

// DefaultGlyph returns the canonical glyph of a kind in the given style.
func DefaultGlyph(kind Kind, style Style) string {
	if int(kind) >= len(registry.defs) {
		return "?"
	}
	def := registry.defs[kind].def
	if style == StylePictographic {
		return def.Emoji
	}
	return def.ASCII
}

// Def returns the data definition behind a kind.
func Def(kind Kind) *gamedata.TileDef {
	if int(kind) >= len(registry.defs) {
		return nil
	}
	return registry.defs[kind].def
}
