package world

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Mode controls which cells a grid lets callers overwrite.
type Mode int

const (
	// ModeSolving forbids overwriting fixed tiles (monsters and treasure).
	ModeSolving Mode = iota
	// ModeEditable allows overwriting anything; used while designing.
	ModeEditable
	// ModeReadOnly denies every edit; used for archived and displayed boards.
	ModeReadOnly
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSolving:
		return "solving"
	case ModeEditable:
		return "editable"
	case ModeReadOnly:
		return "read-only"
	default:
		return "unknown"
	}
}

// Grid is a rectangular board of tiles with per-row and per-column wall targets.
// A Grid is single-writer. Branch it with SolvableCopy or EditableCopy.
type Grid struct {
	Name string

	rows, cols  int
	rowTargets  []int
	colTargets  []int
	tiles       [][]Tile
	mode        Mode
	autoTargets bool
	notes       notifier
}

// NewGrid creates a solving grid. The row and column counts come from the target
// slices; tiles is copied, padded with floor and truncated to fit.
func NewGrid(name string, rowTargets, colTargets []int, tiles [][]Tile) *Grid {
	g := &Grid{
		Name:       name,
		rows:       len(rowTargets),
		cols:       len(colTargets),
		rowTargets: append([]int(nil), rowTargets...),
		colTargets: append([]int(nil), colTargets...),
		mode:       ModeSolving,
	}
	g.tiles = make([][]Tile, g.rows)
	for r := range g.tiles {
		g.tiles[r] = make([]Tile, g.cols)
		if r < len(tiles) {
			copy(g.tiles[r], tiles[r])
		}
	}
	return g
}

// NewEditableGrid creates an editable grid filled with fill whose targets follow
// its walls.
func NewEditableGrid(name string, rows, cols int, fill Tile) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	g := &Grid{
		Name:        name,
		rows:        rows,
		cols:        cols,
		mode:        ModeEditable,
		autoTargets: true,
	}
	g.tiles = make([][]Tile, rows)
	for r := range g.tiles {
		g.tiles[r] = make([]Tile, cols)
		for c := range g.tiles[r] {
			g.tiles[r][c] = fill
		}
	}
	g.rowTargets, g.colTargets = g.CountWalls()
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Mode returns the grid's edit policy.
func (g *Grid) Mode() Mode { return g.mode }

// RowTargets returns a copy of the per-row wall targets.
func (g *Grid) RowTargets() []int { return append([]int(nil), g.rowTargets...) }

// ColTargets returns a copy of the per-column wall targets.
func (g *Grid) ColTargets() []int { return append([]int(nil), g.colTargets...) }

// SetAutoTargets controls whether edits to an editable grid recompute the targets.
func (g *Grid) SetAutoTargets(enabled bool) {
	g.autoTargets = enabled
}

// IsInBounds returns true if the cell lies on the grid.
func (g *Grid) IsInBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the tile at the given cell; ok is false when out of bounds.
func (g *Grid) Get(row, col int) (tile Tile, ok bool) {
	if !g.IsInBounds(row, col) {
		return Tile{}, false
	}
	return g.tiles[row][col], true
}

// Kind returns the kind at the given cell, treating out-of-bounds cells as walls.
func (g *Grid) Kind(row, col int) Kind {
	if !g.IsInBounds(row, col) {
		return KindWall
	}
	return g.tiles[row][col].Kind
}

// CanEdit reports whether Set would be allowed at the given cell.
func (g *Grid) CanEdit(row, col int) bool {
	if !g.IsInBounds(row, col) {
		return false
	}
	switch g.mode {
	case ModeEditable:
		return true
	case ModeSolving:
		return g.tiles[row][col].IsSolvable()
	default:
		return false
	}
}

// Set replaces the tile at the given cell and raises one change notification.
// It returns false, without notifying, when out of bounds or not editable.
func (g *Grid) Set(row, col int, tile Tile) bool {
	if !g.CanEdit(row, col) {
		return false
	}
	g.tiles[row][col] = tile
	if g.mode == ModeEditable && g.autoTargets {
		g.rowTargets, g.colTargets = g.CountWalls()
	}
	g.didChange(Coord{Row: row, Col: col}, false)
	return true
}

// All iterates over every cell in row-major order.
func (g *Grid) All() iter.Seq2[Coord, Tile] {
	return g.TilesInRect(0, 0, g.rows, g.cols)
}

// TilesInRect iterates over the in-bounds cells of a rectangle in row-major order.
func (g *Grid) TilesInRect(row, col, height, width int) iter.Seq2[Coord, Tile] {
	return func(yield func(Coord, Tile) bool) {
		for r := max(0, row); r < min(g.rows, row+height); r++ {
			for c := max(0, col); c < min(g.cols, col+width); c++ {
				if !yield(Coord{Row: r, Col: c}, g.tiles[r][c]) {
					return
				}
			}
		}
	}
}

// Neighbors returns the in-bounds tiles orthogonally bordering a height x width
// block at (row, col). For a single cell that is up to four tiles.
func (g *Grid) Neighbors(row, col, height, width int) []Tile {
	ring := Room{Row: row, Col: col, Height: height, Width: width}.Ring()
	tiles := make([]Tile, 0, len(ring))
	for _, c := range ring {
		if tile, ok := g.Get(c.Row, c.Col); ok {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// CountWalls counts walls in every row and column.
func (g *Grid) CountWalls() (rowCounts, colCounts []int) {
	rowCounts = make([]int, g.rows)
	colCounts = make([]int, g.cols)
	for c, tile := range g.All() {
		if tile.Kind == KindWall {
			rowCounts[c.Row]++
			colCounts[c.Col]++
		}
	}
	return rowCounts, colCounts
}

// IsDeadEnd returns true if the cell is walkable with exactly one walkable neighbor.
func (g *Grid) IsDeadEnd(row, col int) bool {
	tile, ok := g.Get(row, col)
	if !ok || !tile.IsWalkable() {
		return false
	}
	walkable := 0
	for _, n := range g.Neighbors(row, col, 1, 1) {
		if n.IsWalkable() {
			walkable++
		}
	}
	return walkable == 1
}

// ConnectedComponent returns every walkable cell reachable from (row, col).
// The set is empty if the start is out of bounds or not walkable.
func (g *Grid) ConnectedComponent(row, col int) mapset.Set[Coord] {
	visited := mapset.New[Coord]()
	if tile, ok := g.Get(row, col); !ok || !tile.IsWalkable() {
		return visited
	}

	start := Coord{Row: row, Col: col}
	visited.Put(start)
	queue := []Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbors() {
			if visited.Has(n) {
				continue
			}
			if tile, ok := g.Get(n.Row, n.Col); ok && tile.IsWalkable() {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Unsolve resets every solvable tile to floor. Applying it twice equals applying it once.
func (g *Grid) Unsolve() *Grid {
	g.replaceAll(func(t Tile) bool { return t.IsSolvable() }, NewTile(KindFloor))
	return g
}

// UnmarkFloors turns every marked floor back into a plain floor.
func (g *Grid) UnmarkFloors() *Grid {
	g.replaceAll(func(t Tile) bool { return t.Kind == KindMarkedFloor }, NewTile(KindFloor))
	return g
}

func (g *Grid) replaceAll(match func(Tile) bool, tile Tile) {
	for r := range g.tiles {
		for c := range g.tiles[r] {
			if match(g.tiles[r][c]) {
				g.tiles[r][c] = tile
			}
		}
	}
	if g.mode == ModeEditable && g.autoTargets {
		g.rowTargets, g.colTargets = g.CountWalls()
	}
	g.didChange(Coord{}, true)
}

// UpdateWallTargets makes the current walls the puzzle's targets.
// It only applies to editable grids, where the answer defines the clue.
func (g *Grid) UpdateWallTargets() bool {
	if g.mode != ModeEditable {
		return false
	}
	g.rowTargets, g.colTargets = g.CountWalls()
	g.didChange(Coord{}, true)
	return true
}

// UpdateMonsters places monster at every dead end in the block at (row, col) and
// its border, and turns monsters that are no longer in a dead end into floor.
// It only applies to editable grids.
func (g *Grid) UpdateMonsters(row, col, height, width int, monster Tile) bool {
	if g.mode != ModeEditable {
		return false
	}
	if !monster.Kind.IsMonster() {
		monster = NewTile(KindMonster)
	}
	g.Batch(func() {
		for c, tile := range g.TilesInRect(row-1, col-1, height+2, width+2) {
			deadEnd := g.IsDeadEnd(c.Row, c.Col)
			switch {
			case deadEnd && !tile.Kind.IsMonster():
				g.Set(c.Row, c.Col, monster)
			case !deadEnd && tile.Kind.IsMonster():
				g.Set(c.Row, c.Col, NewTile(KindFloor))
			}
		}
	})
	return true
}

// ReadOnlyCopy returns an independent grid that denies every edit.
func (g *Grid) ReadOnlyCopy() *Grid {
	return g.copyAs(ModeReadOnly)
}

// SolvableCopy returns an independent solving grid with the same contents.
func (g *Grid) SolvableCopy() *Grid {
	return g.copyAs(ModeSolving)
}

// EditableCopy returns an independent editable grid with the same contents.
func (g *Grid) EditableCopy() *Grid {
	return g.copyAs(ModeEditable)
}

func (g *Grid) copyAs(mode Mode) *Grid {
	other := NewGrid(g.Name, g.rowTargets, g.colTargets, g.tiles)
	other.mode = mode
	other.autoTargets = mode == ModeEditable
	return other
}
