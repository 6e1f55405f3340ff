package brush

import (
	"slices"
	"testing"

	"github.com/samdwyer/dungeonpuzzle/internal/codec"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

func layout(g *world.Grid) []string {
	lines := make([]string, g.Rows())
	for c, tile := range g.All() {
		lines[c.Row] += world.DefaultGlyph(tile.Kind, world.StylePlain)
	}
	return lines
}

func TestSolveBrushOrders(t *testing.T) {
	b := NewSolveBrush()

	tests := []struct {
		prev world.Kind
		ev   Event
		want world.Kind
	}{
		{world.KindFloor, EventDefault, world.KindWall},
		{world.KindWall, EventDefault, world.KindMarkedFloor},
		{world.KindMarkedFloor, EventDefault, world.KindFloor},
		{world.KindFloor, EventPrimary, world.KindWall},
		{world.KindWall, EventPrimary, world.KindFloor},
		{world.KindMarkedFloor, EventPrimary, world.KindWall},
		{world.KindFloor, EventSecondary, world.KindMarkedFloor},
		{world.KindMarkedFloor, EventSecondary, world.KindFloor},
		{world.KindFloor, EventTouch, world.KindWall},
	}

	for _, tt := range tests {
		if got := b.NextKind(world.NewTile(tt.prev), tt.ev); got != tt.want {
			t.Errorf("NextKind(%v, %v) = %v, want %v", tt.prev, tt.ev, got, tt.want)
		}
	}
}

func TestStrokePaintsOneTile(t *testing.T) {
	g := codec.Parse("Stroke\n.0000\n0m...")
	b := NewSolveBrush()

	if !b.StrokeStart(g, 0, 1, EventPrimary) {
		t.Fatal("StrokeStart on a floor should paint")
	}
	if tile, ok := b.Active(); !ok || tile.Kind != world.KindWall {
		t.Fatalf("Active() = %+v, %v; want wall", tile, ok)
	}
	b.StrokeMove(g, 0, 2)
	if b.StrokeMove(g, 0, 0) {
		t.Error("StrokeMove over a monster should be denied")
	}
	b.StrokeEnd(g)

	if got := layout(g); !slices.Equal(got, []string{"m**."}) {
		t.Errorf("layout = %q, want [m**.]", got)
	}
	if _, ok := b.Active(); ok {
		t.Error("Active() should be empty after StrokeEnd")
	}
	if b.StrokeMove(g, 0, 3) {
		t.Error("StrokeMove without a stroke should not paint")
	}
	if b.StrokeStart(g, 5, 5, EventPrimary) {
		t.Error("StrokeStart out of bounds should not paint")
	}
}

func TestSolveBrushStopsWhenSolved(t *testing.T) {
	g := codec.Parse("T\n.11132\n2...*.\n2x..**\n0..t..\n4****m")
	b := NewSolveBrush()

	if !b.StrokeStart(g, 0, 4, EventPrimary) {
		t.Fatal("StrokeStart should paint the last wall")
	}
	if !g.IsSolved().Solved {
		t.Fatalf("puzzle should be solved: %s", g.IsSolved().Reason)
	}
	if b.StrokeMove(g, 2, 4) {
		t.Error("painting should stop once solved")
	}
	if g.Kind(1, 0) != world.KindMarkedFloor {
		t.Fatal("marks should survive until the stroke ends")
	}

	b.StrokeEnd(g)
	if g.Kind(1, 0) != world.KindFloor {
		t.Error("StrokeEnd on a solved puzzle should clear marks")
	}
}

func TestDesignBrush(t *testing.T) {
	g := world.NewEditableGrid("Design", 3, 3, world.NewTile(world.KindWall))
	g.SetAutoTargets(false)
	b := NewDesignBrush(world.NewTile(world.KindMonster), true, true)

	b.StrokeStart(g, 1, 0, EventDefault)
	b.StrokeMove(g, 1, 1)
	b.StrokeMove(g, 1, 2)
	b.StrokeEnd(g)

	if got := layout(g); !slices.Equal(got, []string{"***", "m.m", "***"}) {
		t.Errorf("layout = %q, want [*** m.m ***]", got)
	}
	if got := g.RowTargets(); !slices.Equal(got, []int{3, 0, 3}) {
		t.Errorf("RowTargets() = %v, want [3 0 3]", got)
	}
	if got := g.ColTargets(); !slices.Equal(got, []int{2, 2, 2}) {
		t.Errorf("ColTargets() = %v, want [2 2 2]", got)
	}
}

func TestDesignBrushManual(t *testing.T) {
	g := world.NewEditableGrid("Design", 1, 3, world.NewTile(world.KindWall))
	g.SetAutoTargets(false)
	b := NewDesignBrush(world.NewTile(world.KindMonster), false, false)

	b.StrokeStart(g, 0, 0, EventDefault)
	b.StrokeMove(g, 0, 1)
	b.StrokeEnd(g)

	if got := layout(g); !slices.Equal(got, []string{"..*"}) {
		t.Errorf("layout = %q, want [..*]", got)
	}
	if got := g.RowTargets(); !slices.Equal(got, []int{3}) {
		t.Errorf("RowTargets() = %v, want unchanged [3]", got)
	}
}

func TestMonsterBrushToggles(t *testing.T) {
	g := world.NewEditableGrid("Design", 1, 2, world.NewTile(world.KindFloor))
	g.Set(0, 1, world.NewTile(world.KindMonster))
	b := NewMonsterBrush("🐀")

	b.StrokeStart(g, 0, 0, EventDefault)
	b.StrokeEnd(g)
	if tile, _ := g.Get(0, 0); tile.Kind != world.KindMonster || tile.Glyph != "🐀" {
		t.Fatalf("tile = %+v, want rat", tile)
	}

	b.StrokeStart(g, 0, 0, EventDefault)
	b.StrokeEnd(g)
	if g.Kind(0, 0) != world.KindFloor {
		t.Errorf("second stroke should remove the rat, got %v", g.Kind(0, 0))
	}

	b.StrokeStart(g, 0, 1, EventDefault)
	b.StrokeEnd(g)
	if tile, _ := g.Get(0, 1); tile.Glyph != "🐀" {
		t.Errorf("a different monster should be replaced, got %+v", tile)
	}
}

func TestMonsterBrushDefaultGlyph(t *testing.T) {
	b := NewMonsterBrush("")
	if b.Glyph() != world.DefaultGlyph(world.KindMonster, world.StylePictographic) {
		t.Errorf("Glyph() = %q", b.Glyph())
	}

	g := world.NewEditableGrid("Design", 1, 1, world.NewTile(world.KindMonster))
	if got := b.NextKind(world.NewTile(world.KindMonster), EventDefault); got != world.KindFloor {
		t.Errorf("NextKind(default monster) = %v, want floor", got)
	}
	b.StrokeStart(g, 0, 0, EventDefault)
	if g.Kind(0, 0) != world.KindFloor {
		t.Errorf("kind = %v, want floor", g.Kind(0, 0))
	}
}

func TestTreasureAndEraseBrushes(t *testing.T) {
	g := world.NewEditableGrid("Design", 1, 2, world.NewTile(world.KindWall))

	treasure := NewTreasureBrush("")
	treasure.StrokeStart(g, 0, 0, EventDefault)
	treasure.StrokeEnd(g)
	if tile, _ := g.Get(0, 0); tile.Kind != world.KindTreasure || tile.Glyph != "" {
		t.Errorf("tile = %+v, want default treasure", tile)
	}
	treasure.StrokeStart(g, 0, 0, EventDefault)
	treasure.StrokeEnd(g)
	if g.Kind(0, 0) != world.KindFloor {
		t.Errorf("second stroke should clear the treasure, got %v", g.Kind(0, 0))
	}

	crown := NewTreasureBrush("👑")
	crown.StrokeStart(g, 0, 0, EventDefault)
	if tile, _ := g.Get(0, 0); tile.Glyph != "👑" {
		t.Errorf("glyph = %q, want crown", tile.Glyph)
	}

	erase := NewEraseBrush()
	erase.StrokeStart(g, 0, 0, EventDefault)
	erase.StrokeMove(g, 0, 1)
	erase.StrokeEnd(g)
	if got := layout(g); !slices.Equal(got, []string{".."}) {
		t.Errorf("layout = %q, want [..]", got)
	}
}
