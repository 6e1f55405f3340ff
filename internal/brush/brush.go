// Package brush turns pointer strokes into tile edits. A board has one active
// brush at a time; a stroke picks its tile on the first cell and paints that same
// tile on every cell it moves over.
package brush

import (
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// Event is the input that started a stroke.
type Event int

const (
	EventDefault   Event = iota
	EventPrimary         // Left click or the main action key
	EventSecondary       // Right click or the mark key
	EventTouch
)

// DefaultTreasureGlyph is painted by the treasure brush when none is given.
const DefaultTreasureGlyph = "💎"

// Brush paints tiles onto a grid.
type Brush struct {
	name   string
	orders map[Event][]world.Kind
	glyph  string
	active *world.Tile

	nextKind    func(prev world.Tile, ev Event) world.Kind
	canPaint    func(g *world.Grid) bool
	afterPaint  func(g *world.Grid, row, col int)
	afterStroke func(g *world.Grid)
}

func newBrush(name string, order ...world.Kind) *Brush {
	return &Brush{name: name, orders: map[Event][]world.Kind{EventDefault: order}}
}

// Name returns the brush's display name.
func (b *Brush) Name() string {
	return b.name
}

// Glyph returns the custom glyph the brush paints with, if any.
func (b *Brush) Glyph() string {
	return b.glyph
}

// Active returns the tile being painted by the current stroke.
func (b *Brush) Active() (world.Tile, bool) {
	if b.active == nil {
		return world.Tile{}, false
	}
	return *b.active, true
}

// NextKind returns the kind a stroke starting on prev would paint.
func (b *Brush) NextKind(prev world.Tile, ev Event) world.Kind {
	if b.nextKind != nil {
		return b.nextKind(prev, ev)
	}
	order, ok := b.orders[ev]
	if !ok {
		order = b.orders[EventDefault]
	}
	return world.NextInOrder(order, prev.Kind)
}

// StrokeStart chooses the stroke's tile from the cell under the pointer and paints it.
// It returns true if the cell changed.
func (b *Brush) StrokeStart(g *world.Grid, row, col int, ev Event) bool {
	prev, ok := g.Get(row, col)
	if !ok {
		return false
	}
	kind := b.NextKind(prev, ev)
	tile := world.NewTile(kind)
	if b.glyph != "" && kind != world.KindFloor {
		tile = tile.WithGlyph(b.glyph)
	}
	b.active = &tile
	return b.paint(g, row, col)
}

// StrokeMove paints the stroke's tile onto another cell.
func (b *Brush) StrokeMove(g *world.Grid, row, col int) bool {
	return b.paint(g, row, col)
}

// StrokeEnd finishes the stroke.
func (b *Brush) StrokeEnd(g *world.Grid) {
	b.active = nil
	if b.afterStroke != nil {
		b.afterStroke(g)
	}
}

func (b *Brush) paint(g *world.Grid, row, col int) bool {
	if b.active == nil {
		return false
	}
	if b.canPaint != nil && !b.canPaint(g) {
		return false
	}
	if !g.Set(row, col, *b.active) {
		return false
	}
	if b.afterPaint != nil {
		b.afterPaint(g, row, col)
	}
	return true
}
