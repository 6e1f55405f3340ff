package game

import (
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonpuzzle/internal/codec"
	"github.com/samdwyer/dungeonpuzzle/internal/ui"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// almostSolved needs one more wall at (0, 4).
const almostSolved = "T\n.11132\n2...*.\n2...**\n0..t..\n4****m"

type nullCanvas struct{ shown int }

func (c *nullCanvas) SetContent(int, int, rune, []rune, tcell.Style) {}
func (c *nullCanvas) Clear()                                         {}
func (c *nullCanvas) Show()                                          { c.shown++ }

func layout(g *world.Grid) []string {
	lines := make([]string, g.Rows())
	for c, tile := range g.All() {
		lines[c.Row] += world.DefaultGlyph(tile.Kind, world.StylePlain)
	}
	return lines
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyUp, 0, ActionUp},
		{tcell.KeyDown, 0, ActionDown},
		{tcell.KeyLeft, 0, ActionLeft},
		{tcell.KeyRight, 0, ActionRight},
		{tcell.KeyEnter, 0, ActionPaint},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'k', ActionUp},
		{tcell.KeyRune, 'j', ActionDown},
		{tcell.KeyRune, 'h', ActionLeft},
		{tcell.KeyRune, 'l', ActionRight},
		{tcell.KeyRune, ' ', ActionPaint},
		{tcell.KeyRune, 'x', ActionMark},
		{tcell.KeyRune, 'b', ActionCycleBrush},
		{tcell.KeyRune, 'r', ActionReset},
		{tcell.KeyRune, 'c', ActionCheck},
		{tcell.KeyRune, 's', ActionShare},
		{tcell.KeyRune, 'z', ActionNone},
	}

	for _, tt := range tests {
		if got := actionForKey(tt.key, tt.r); got != tt.want {
			t.Errorf("actionForKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestSolvingSession(t *testing.T) {
	puzzle := codec.Parse(almostSolved)
	s := newSession(Options{Grid: puzzle}, &nullCanvas{})

	if s.State() != StateSolving {
		t.Fatalf("State() = %v, want solving", s.State())
	}
	for i := 0; i < 4; i++ {
		s.handleAction(ActionRight)
	}
	s.handleAction(ActionRight) // clamped at the edge
	if s.cursor != (world.Coord{Row: 0, Col: 4}) {
		t.Fatalf("cursor = %v, want (0, 4)", s.cursor)
	}

	s.handleAction(ActionPaint)
	if s.State() != StateSolved {
		t.Fatalf("State() = %v, want solved (%s)", s.State(), s.Grid().IsSolved().Reason)
	}
	if s.edits != 1 {
		t.Errorf("edits = %d, want 1", s.edits)
	}
	if puzzle.Kind(0, 4) != world.KindFloor {
		t.Error("the session should play on a copy of the puzzle")
	}

	s.handleAction(ActionReset)
	if s.State() != StateSolving {
		t.Errorf("State() after reset = %v, want solving", s.State())
	}
	if s.Grid().Kind(0, 3) != world.KindFloor || s.Grid().Kind(3, 4) != world.KindMonster {
		t.Errorf("reset layout = %q", layout(s.Grid()))
	}
}

func TestMarkCheckAndShare(t *testing.T) {
	s := newSession(Options{Grid: codec.Parse(almostSolved)}, &nullCanvas{})

	s.handleAction(ActionMark)
	if s.Grid().Kind(0, 0) != world.KindMarkedFloor {
		t.Errorf("Kind(0, 0) = %v, want marked", s.Grid().Kind(0, 0))
	}

	s.handleAction(ActionCheck)
	if s.status != s.Grid().IsSolved().Reason {
		t.Errorf("status = %q", s.status)
	}

	s.handleAction(ActionShare)
	if !strings.HasPrefix(s.status, "?puzzle=") || !strings.Contains(s.status, "#?state=") {
		t.Errorf("share status = %q", s.status)
	}
}

func TestPointerStroke(t *testing.T) {
	s := newSession(Options{Grid: codec.Parse("Drag\n.0000\n0....")}, &nullCanvas{})

	at := func(col int) (int, int) { return ui.CellOrigin(world.Coord{Row: 0, Col: col}) }

	s.handlePointer(tcell.ButtonPrimary, 0, 0) // off the board
	if s.stroking {
		t.Fatal("a press off the board should not start a stroke")
	}

	x, y := at(0)
	s.handlePointer(tcell.ButtonPrimary, x, y)
	x, y = at(1)
	s.handlePointer(tcell.ButtonPrimary, x, y)
	s.handlePointer(tcell.ButtonPrimary, x+1, y) // same cell
	s.handlePointer(tcell.ButtonNone, x, y)

	if got := layout(s.Grid()); !slices.Equal(got, []string{"**.."}) {
		t.Errorf("layout = %q, want [**..]", got)
	}
	if s.edits != 2 {
		t.Errorf("edits = %d, want 2", s.edits)
	}
	if s.stroking {
		t.Error("release should end the stroke")
	}

	x, y = at(3)
	s.handlePointer(tcell.ButtonSecondary, x, y)
	s.handlePointer(tcell.ButtonNone, x, y)
	if s.Grid().Kind(0, 3) != world.KindMarkedFloor {
		t.Errorf("secondary press should mark, got %v", s.Grid().Kind(0, 3))
	}
}

func TestDesignSession(t *testing.T) {
	answer := world.NewEditableGrid("Design", 3, 3, world.NewTile(world.KindWall))
	canvas := &nullCanvas{}
	s := newSession(Options{Grid: answer, Design: true, Monster: world.ParseTile("🐀")}, canvas)

	if s.State() != StateDesign {
		t.Fatalf("State() = %v, want design", s.State())
	}
	if s.activeBrush().Name() != "design" {
		t.Errorf("brush = %q, want design", s.activeBrush().Name())
	}

	s.handleAction(ActionDown)
	s.handleAction(ActionPaint)
	s.handleAction(ActionRight)
	s.handleAction(ActionPaint)

	if got := layout(s.Grid()); !slices.Equal(got, []string{"***", "mm*", "***"}) {
		t.Errorf("layout = %q, want [*** mm* ***]", got)
	}
	if tile, _ := s.Grid().Get(1, 0); tile.Glyph != "🐀" {
		t.Errorf("monster glyph = %q, want rat", tile.Glyph)
	}
	if got := s.Grid().RowTargets(); !slices.Equal(got, []int{3, 1, 3}) {
		t.Errorf("RowTargets() = %v, want [3 1 3]", got)
	}

	names := []string{s.activeBrush().Name()}
	for i := 0; i < 4; i++ {
		s.handleAction(ActionCycleBrush)
		names = append(names, s.activeBrush().Name())
	}
	if want := []string{"design", "monster", "treasure", "erase", "design"}; !slices.Equal(names, want) {
		t.Errorf("brush cycle = %v, want %v", names, want)
	}

	s.handleAction(ActionReset)
	if s.Grid().Kind(1, 0) != world.KindMonster {
		t.Error("reset should not apply while designing")
	}

	s.render()
	if canvas.shown != 1 || s.dirty {
		t.Errorf("render shown %d times, dirty %v", canvas.shown, s.dirty)
	}
	s.Grid().Set(0, 0, world.NewTile(world.KindFloor))
	if !s.dirty {
		t.Error("grid changes should mark the session dirty")
	}
}

func TestQuitAndClose(t *testing.T) {
	s := newSession(Options{}, &nullCanvas{})
	if s.Grid() == nil || s.Grid().Rows() != world.DefaultRows {
		t.Fatal("a session without a grid should get a blank board")
	}
	s.handleAction(ActionQuit)
	if s.running {
		t.Error("quit should stop the loop")
	}
	s.Close()
	s.Close()
}
