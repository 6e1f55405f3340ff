package brush

import (
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// NewSolveBrush cycles wall and marked floor while solving. Painting stops once the
// puzzle is solved, and finishing a stroke on a solved puzzle clears the marks.
func NewSolveBrush() *Brush {
	b := newBrush("solve", world.KindWall, world.KindMarkedFloor, world.KindFloor)
	b.orders[EventPrimary] = []world.Kind{world.KindWall, world.KindFloor}
	b.orders[EventSecondary] = []world.Kind{world.KindMarkedFloor, world.KindFloor}
	b.canPaint = func(g *world.Grid) bool {
		return !g.IsSolved().Solved
	}
	b.afterStroke = func(g *world.Grid) {
		if g.IsSolved().Solved {
			g.UnmarkFloors()
		}
	}
	return b
}

// NewDesignBrush toggles walls on an editable grid. With autoMonster set, dead ends
// around each painted cell get monster; with autoTarget set, the targets follow
// the walls.
func NewDesignBrush(monster world.Tile, autoMonster, autoTarget bool) *Brush {
	b := newBrush("design", world.KindWall, world.KindFloor)
	b.afterPaint = func(g *world.Grid, row, col int) {
		g.Batch(func() {
			if autoMonster {
				g.UpdateMonsters(row, col, 1, 1, monster)
			}
			if autoTarget {
				g.UpdateWallTargets()
			}
		})
	}
	return b
}

// NewEraseBrush always paints floor.
func NewEraseBrush() *Brush {
	return newBrush("erase", world.KindFloor)
}

// NewMonsterBrush places monsters showing glyph, or removes one that already shows it.
func NewMonsterBrush(glyph string) *Brush {
	b := newBrush("monster", world.KindMonster, world.KindFloor)
	b.glyph = glyph
	if b.glyph == "" {
		b.glyph = world.DefaultGlyph(world.KindMonster, world.StylePictographic)
	}
	b.nextKind = func(prev world.Tile, _ Event) world.Kind {
		if prev.Text(world.StylePictographic) == b.glyph {
			return world.KindFloor
		}
		return world.KindMonster
	}
	return b
}

// NewTreasureBrush toggles treasure showing glyph.
func NewTreasureBrush(glyph string) *Brush {
	b := newBrush("treasure", world.KindTreasure, world.KindFloor)
	b.glyph = glyph
	if b.glyph == "" {
		b.glyph = DefaultTreasureGlyph
	}
	return b
}
