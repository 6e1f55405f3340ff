package world

import (
	"context"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpuzzle/internal/telemetry"
)

const (
	// Default puzzle dimensions
	DefaultRows = 8
	DefaultCols = 8

	roomSize        = 3   // Treasure rooms are always 3x3
	maxRooms        = 2   // Stop placing rooms after this many succeed
	maxRoomAttempts = 100 // Upper bound for the random attempt budget
)

// Dungeon generates a puzzle answer on an editable grid.
type Dungeon struct {
	Grid     *Grid
	Seed     int64
	Rooms    []Room
	Monster  Tile // Tile placed on dead ends
	rng      *RNG
	reserved mapset.Set[Coord] // Room cells and their borders; halls stay out
}

// NewDungeon creates an all-wall dungeon named after its seed.
func NewDungeon(seed int64, rows, cols int) *Dungeon {
	return &Dungeon{
		Grid:     NewEditableGrid(fmt.Sprintf("Daily Dungeon %d", seed), rows, cols, NewTile(KindWall)),
		Seed:     seed,
		Rooms:    make([]Room, 0, maxRooms),
		Monster:  NewTile(KindMonster),
		rng:      NewRNG(seed),
		reserved: mapset.New[Coord](),
	}
}

// Generate is a convenience wrapper that builds a dungeon and returns its grid.
func Generate(ctx context.Context, seed int64, rows, cols int, monster Tile) *Grid {
	d := NewDungeon(seed, rows, cols)
	if monster.Kind.IsMonster() {
		d.Monster = monster
	}
	d.Generate(ctx)
	return d.Grid
}

// Generate carves treasure rooms and hallways, then derives the targets from the
// walls and puts monsters on every dead end. The result is deterministic for a seed,
// but it is not guaranteed to be a uniquely solvable puzzle.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	g := d.Grid
	g.SetAutoTargets(false)

	hallTiles := 0
	g.Batch(func() {
		d.placeRooms()
		hallTiles = d.carveHalls()
		d.connectRooms()

		// The answer defines the clue.
		g.UpdateWallTargets()
		g.UpdateMonsters(0, 0, g.Rows(), g.Cols(), d.Monster)
	})
	g.SetAutoTargets(true)

	monsters := 0
	for _, tile := range g.All() {
		if tile.Kind.IsMonster() {
			monsters++
		}
	}

	span.SetAttributes(
		attribute.Int64("dungeon.seed", d.Seed),
		attribute.Int("dungeon.rows", g.Rows()),
		attribute.Int("dungeon.cols", g.Cols()),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.hall_tiles", hallTiles),
		attribute.Int("dungeon.monster_count", monsters),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// placeRooms tries a random number of 3x3 placements and keeps up to maxRooms
// whose 5x5 surroundings are still solid wall.
func (d *Dungeon) placeRooms() {
	g := d.Grid
	attempts := 1 + d.rng.Intn(maxRoomAttempts)
	for i := 0; i < attempts && len(d.Rooms) < maxRooms; i++ {
		if g.Rows() < roomSize || g.Cols() < roomSize {
			return
		}
		room := Room{
			Row:    d.rng.Intn(g.Rows() - roomSize + 1),
			Col:    d.rng.Intn(g.Cols() - roomSize + 1),
			Height: roomSize,
			Width:  roomSize,
		}
		if d.hasOpenTiles(room.Grow(1)) {
			continue
		}
		d.carveRoom(room)
	}
}

func (d *Dungeon) hasOpenTiles(area Room) bool {
	for _, tile := range d.Grid.TilesInRect(area.Row, area.Col, area.Height, area.Width) {
		if tile.IsWalkable() {
			return true
		}
	}
	return false
}

// carveRoom opens the room and places its treasure on a random cell.
func (d *Dungeon) carveRoom(room Room) {
	treasure := Coord{Row: room.Row + d.rng.Intn(room.Height), Col: room.Col + d.rng.Intn(room.Width)}
	for c := range d.Grid.TilesInRect(room.Row, room.Col, room.Height, room.Width) {
		tile := NewTile(KindFloor)
		if c == treasure {
			tile = NewTile(KindTreasure)
		}
		d.Grid.Set(c.Row, c.Col, tile)
		d.reserved.Put(c)
	}
	for _, c := range room.Ring() {
		d.reserved.Put(c)
	}
	d.Rooms = append(d.Rooms, room)
}

// carveHalls opens one seed tile and grows a one-tile-wide hallway tree from it
// with a randomized depth-first search. It returns the number of hall tiles.
func (d *Dungeon) carveHalls() int {
	g := d.Grid
	start, ok := d.hallSeed()
	if !ok {
		return 0
	}
	g.Set(start.Row, start.Col, NewTile(KindFloor))
	carved := 1

	stack := []Coord{start}
	candidates := make([]Coord, 0, 4)
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, n := range current.Neighbors() {
			if d.canExtendHall(n, current) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[d.rng.Intn(len(candidates))]
		g.Set(next.Row, next.Col, NewTile(KindFloor))
		carved++
		stack = append(stack, next)
	}
	return carved
}

// hallSeed picks a uniformly random cell, moving forward in row-major order to
// the first cell that is not reserved for a room.
func (d *Dungeon) hallSeed() (Coord, bool) {
	g := d.Grid
	total := g.Rows() * g.Cols()
	if total == 0 {
		return Coord{}, false
	}
	first := d.rng.Intn(g.Rows())*g.Cols() + d.rng.Intn(g.Cols())
	for i := 0; i < total; i++ {
		index := (first + i) % total
		c := Coord{Row: index / g.Cols(), Col: index % g.Cols()}
		if !d.reserved.Has(c) && g.Kind(c.Row, c.Col) == KindWall {
			return c, true
		}
	}
	return Coord{}, false
}

// canExtendHall reports whether next can be opened from current without touching
// any other open tile, which keeps halls one tile wide and loop free.
func (d *Dungeon) canExtendHall(next, current Coord) bool {
	g := d.Grid
	if !g.IsInBounds(next.Row, next.Col) || d.reserved.Has(next) || g.Kind(next.Row, next.Col) != KindWall {
		return false
	}
	for _, n := range next.Neighbors() {
		if n != current && g.Kind(n.Row, n.Col).IsWalkable() {
			return false
		}
	}
	return true
}

// connectRooms opens one entrance per room on a border tile that touches a hall.
// A room with no such tile stays sealed.
func (d *Dungeon) connectRooms() {
	for _, room := range d.Rooms {
		var entrances []Coord
		for _, c := range room.Ring() {
			if d.isEntrance(room, c) {
				entrances = append(entrances, c)
			}
		}
		if len(entrances) == 0 {
			continue
		}
		door := entrances[d.rng.Intn(len(entrances))]
		d.Grid.Set(door.Row, door.Col, NewTile(KindFloor))
	}
}

// isEntrance reports whether c borders exactly one hall tile and nothing else open
// besides the room itself.
func (d *Dungeon) isEntrance(room Room, c Coord) bool {
	g := d.Grid
	if g.Kind(c.Row, c.Col) != KindWall {
		return false
	}
	halls := 0
	for _, n := range c.Neighbors() {
		if !g.Kind(n.Row, n.Col).IsWalkable() || room.Contains(n) {
			continue
		}
		if d.inAnyRoom(n) {
			return false
		}
		halls++
	}
	return halls == 1
}

func (d *Dungeon) inAnyRoom(c Coord) bool {
	for _, room := range d.Rooms {
		if room.Contains(c) {
			return true
		}
	}
	return false
}
