package world

import (
	"slices"
	"testing"
)

func TestNewGridPadsAndTruncates(t *testing.T) {
	tiles := [][]Tile{
		{NewTile(KindWall)},
		{NewTile(KindWall), NewTile(KindWall), NewTile(KindWall), NewTile(KindWall)},
	}
	g := NewGrid("Pad", []int{1, 3, 0}, []int{1, 1, 1}, tiles)

	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Rows(), g.Cols())
	}
	want := []string{"*..", "***", "..."}
	if got := kindsOf(g); !slices.Equal(got, want) {
		t.Errorf("tiles = %q, want %q", got, want)
	}
	if g.Mode() != ModeSolving {
		t.Errorf("Mode() = %v, want solving", g.Mode())
	}

	// The caller's slices are copied.
	tiles[0][0] = NewTile(KindFloor)
	if g.Kind(0, 0) != KindWall {
		t.Error("NewGrid should copy the tile rows")
	}
}

func TestGridBounds(t *testing.T) {
	g := buildGrid(t, ".00", "0..", "0..")

	tests := []struct {
		row, col int
		inBounds bool
	}{
		{0, 0, true},
		{1, 1, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 2, false},
	}

	for _, tt := range tests {
		if got := g.IsInBounds(tt.row, tt.col); got != tt.inBounds {
			t.Errorf("IsInBounds(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.inBounds)
		}
		if _, ok := g.Get(tt.row, tt.col); ok != tt.inBounds {
			t.Errorf("Get(%d, %d) ok = %v, want %v", tt.row, tt.col, ok, tt.inBounds)
		}
		if !tt.inBounds && g.Kind(tt.row, tt.col) != KindWall {
			t.Errorf("Kind(%d, %d) out of bounds should be wall", tt.row, tt.col)
		}
		if !tt.inBounds && g.Set(tt.row, tt.col, NewTile(KindWall)) {
			t.Errorf("Set(%d, %d) out of bounds should fail", tt.row, tt.col)
		}
	}
}

func TestCanEditByMode(t *testing.T) {
	g := buildGrid(t, ".000", "0.mT")

	tests := []struct {
		col      int
		solving  bool
		editable bool
	}{
		{0, true, true},
		{1, false, true},
		{2, false, true},
	}

	editable := g.EditableCopy()
	readOnly := g.ReadOnlyCopy()
	for _, tt := range tests {
		if readOnly.CanEdit(0, tt.col) || readOnly.Set(0, tt.col, NewTile(KindWall)) {
			t.Errorf("read-only grid allowed an edit at (0, %d)", tt.col)
		}
		if got := g.CanEdit(0, tt.col); got != tt.solving {
			t.Errorf("solving CanEdit(0, %d) = %v, want %v", tt.col, got, tt.solving)
		}
		if got := editable.CanEdit(0, tt.col); got != tt.editable {
			t.Errorf("editable CanEdit(0, %d) = %v, want %v", tt.col, got, tt.editable)
		}
	}
}

func TestSetNotifiesOnce(t *testing.T) {
	g := buildGrid(t, ".00", "0.m")

	var changes []Change
	cancel := g.Subscribe(func(c Change) { changes = append(changes, c) })

	if !g.Set(0, 0, NewTile(KindWall)) {
		t.Fatal("Set on a floor should succeed")
	}
	if g.Set(0, 1, NewTile(KindWall)) {
		t.Fatal("Set on a monster should fail while solving")
	}
	if g.Kind(0, 1) != KindMonster {
		t.Error("denied Set should leave the monster in place")
	}

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	if changes[0].At != (Coord{Row: 0, Col: 0}) || changes[0].Bulk {
		t.Errorf("change = %+v, want single edit at (0, 0)", changes[0])
	}
	if changes[0].Revision != g.Revision() {
		t.Errorf("change revision %d, grid revision %d", changes[0].Revision, g.Revision())
	}

	cancel()
	g.Set(0, 0, NewTile(KindFloor))
	if len(changes) != 1 {
		t.Errorf("cancelled subscriber still notified: %d changes", len(changes))
	}
}

func TestBatchCoalescesChanges(t *testing.T) {
	g := buildGrid(t, ".000", "0...")

	count := 0
	var last Change
	g.Subscribe(func(c Change) {
		count++
		last = c
	})

	g.Batch(func() {
		g.Set(0, 0, NewTile(KindWall))
		g.Batch(func() {
			g.Set(0, 1, NewTile(KindWall))
			g.Set(0, 2, NewTile(KindWall))
		})
		if count != 0 {
			t.Errorf("nested batch notified early: %d", count)
		}
	})

	if count != 1 {
		t.Fatalf("got %d notifications, want 1", count)
	}
	if !last.Bulk {
		t.Error("batched change should be bulk")
	}

	g.Batch(func() {})
	if count != 1 {
		t.Errorf("empty batch notified: %d", count)
	}
}

func TestSubscribersNotifiedInOrder(t *testing.T) {
	g := buildGrid(t, ".0", "0.")

	var order []string
	g.Subscribe(func(Change) { order = append(order, "first") })
	g.Subscribe(func(Change) { order = append(order, "second") })

	g.Set(0, 0, NewTile(KindWall))
	if want := []string{"first", "second"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestEditableGridTracksTargets(t *testing.T) {
	g := NewEditableGrid("Design", 3, 3, NewTile(KindWall))

	if got := g.RowTargets(); !slices.Equal(got, []int{3, 3, 3}) {
		t.Fatalf("RowTargets() = %v, want all 3", got)
	}

	g.Set(1, 1, NewTile(KindFloor))
	if got := g.RowTargets(); !slices.Equal(got, []int{3, 2, 3}) {
		t.Errorf("RowTargets() = %v, want [3 2 3]", got)
	}
	if got := g.ColTargets(); !slices.Equal(got, []int{3, 2, 3}) {
		t.Errorf("ColTargets() = %v, want [3 2 3]", got)
	}

	g.SetAutoTargets(false)
	g.Set(0, 0, NewTile(KindFloor))
	if got := g.RowTargets(); !slices.Equal(got, []int{3, 2, 3}) {
		t.Errorf("targets changed with auto targets off: %v", got)
	}

	g.UpdateWallTargets()
	if got := g.RowTargets(); !slices.Equal(got, []int{2, 2, 3}) {
		t.Errorf("RowTargets() after update = %v, want [2 2 3]", got)
	}
}

func TestUpdateWallTargetsSolving(t *testing.T) {
	g := buildGrid(t, ".00", "0**")
	if g.UpdateWallTargets() {
		t.Error("UpdateWallTargets should refuse solving grids")
	}
	if got := g.RowTargets(); !slices.Equal(got, []int{0}) {
		t.Errorf("RowTargets() = %v, want [0]", got)
	}
}

func TestTargetsAreCopies(t *testing.T) {
	g := buildGrid(t, ".12", "3..")
	g.RowTargets()[0] = 9
	g.ColTargets()[0] = 9
	if g.RowTargets()[0] != 3 || g.ColTargets()[0] != 1 {
		t.Error("target accessors should return copies")
	}
}

func TestCopiesAreDeep(t *testing.T) {
	g := buildGrid(t, ".00", "0..", "0..")

	solvable := g.SolvableCopy()
	editable := g.EditableCopy()
	solvable.Set(0, 0, NewTile(KindWall))
	editable.Set(1, 1, NewTile(KindTreasure))

	if g.Kind(0, 0) != KindFloor || g.Kind(1, 1) != KindFloor {
		t.Errorf("original changed through a copy: %q", kindsOf(g))
	}
	if solvable.Kind(1, 1) != KindFloor {
		t.Error("copies should not share tiles with each other")
	}
	if solvable.Mode() != ModeSolving || editable.Mode() != ModeEditable {
		t.Errorf("modes = %v, %v", solvable.Mode(), editable.Mode())
	}
	if solvable.Name != g.Name {
		t.Errorf("Name = %q, want %q", solvable.Name, g.Name)
	}
}

func TestUnsolveIsIdempotent(t *testing.T) {
	g := buildGrid(t, ".000", "0*x.", "0m*T")

	once := kindsOf(g.Unsolve())
	twice := kindsOf(g.Unsolve())

	if want := []string{"...", "m.T"}; !slices.Equal(once, want) {
		t.Errorf("Unsolve() = %q, want %q", once, want)
	}
	if !slices.Equal(once, twice) {
		t.Errorf("Unsolve() twice = %q, once = %q", twice, once)
	}
}

func TestUnmarkFloors(t *testing.T) {
	g := buildGrid(t, ".000", "0x*x")

	notified := 0
	g.Subscribe(func(Change) { notified++ })
	g.UnmarkFloors()

	if got := kindsOf(g); !slices.Equal(got, []string{".*."}) {
		t.Errorf("UnmarkFloors() = %q, want [.*.]", got)
	}
	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}
}

func TestTilesInRectClips(t *testing.T) {
	g := buildGrid(t, ".000", "0...", "0...", "0...")

	var cells []Coord
	for c := range g.TilesInRect(-1, 1, 3, 5) {
		cells = append(cells, c)
	}
	want := []Coord{{0, 1}, {0, 2}, {1, 1}, {1, 2}}
	if !slices.Equal(cells, want) {
		t.Errorf("TilesInRect = %v, want %v", cells, want)
	}
}

func TestNeighborsAndDeadEnds(t *testing.T) {
	g := buildGrid(t, ".000",
		"0.**",
		"0...",
		"0*m*",
	)

	if got := len(g.Neighbors(0, 0, 1, 1)); got != 2 {
		t.Errorf("corner has %d neighbors, want 2", got)
	}
	if got := len(g.Neighbors(1, 1, 1, 1)); got != 4 {
		t.Errorf("center has %d neighbors, want 4", got)
	}
	if got := len(g.Neighbors(0, 0, 3, 3)); got != 0 {
		t.Errorf("whole grid has %d neighbors, want 0", got)
	}

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 1, true},
		{1, 2, true},
		{1, 1, false},
		{1, 0, false},
		{0, 1, false}, // walls are never dead ends
		{5, 5, false},
	}

	for _, tt := range tests {
		if got := g.IsDeadEnd(tt.row, tt.col); got != tt.want {
			t.Errorf("IsDeadEnd(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestConnectedComponent(t *testing.T) {
	g := buildGrid(t, ".000",
		"0..*",
		"0***",
		"0*..",
	)

	if got := g.ConnectedComponent(0, 0).Size(); got != 2 {
		t.Errorf("top component size = %d, want 2", got)
	}
	bottom := g.ConnectedComponent(2, 2)
	if bottom.Size() != 2 || !bottom.Has(Coord{Row: 2, Col: 1}) {
		t.Errorf("bottom component size = %d, want 2 including (2, 1)", bottom.Size())
	}
	if got := g.ConnectedComponent(1, 1).Size(); got != 0 {
		t.Errorf("wall component size = %d, want 0", got)
	}
}

func TestUpdateMonsters(t *testing.T) {
	g := NewEditableGrid("Design", 3, 3, NewTile(KindWall))
	g.Set(1, 0, NewTile(KindFloor))
	g.Set(1, 1, NewTile(KindMonster)) // between two floors, not a dead end
	g.Set(1, 2, NewTile(KindFloor))

	notified := 0
	g.Subscribe(func(Change) { notified++ })

	rat := ParseTile("🐀")
	if !g.UpdateMonsters(0, 0, 3, 3, rat) {
		t.Fatal("UpdateMonsters should apply to editable grids")
	}

	if got := kindsOf(g); !slices.Equal(got, []string{"***", "m.m", "***"}) {
		t.Errorf("layout = %q, want [*** m.m ***]", got)
	}
	for c, tile := range g.All() {
		if g.IsDeadEnd(c.Row, c.Col) != tile.Kind.IsMonster() {
			t.Errorf("dead end/monster mismatch at %v", c)
		}
		if tile.Kind.IsMonster() && tile.Glyph != "🐀" {
			t.Errorf("monster at %v has glyph %q", c, tile.Glyph)
		}
	}
	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}

	solving := g.SolvableCopy()
	if solving.UpdateMonsters(0, 0, 3, 3, rat) {
		t.Error("UpdateMonsters should refuse solving grids")
	}
}
