// Package world provides the puzzle grid, its validity rules and the seeded dungeon generator.
package world

// Kind identifies a tile type. The zero value is a plain floor.
type Kind uint8

const (
	// KindFloor is open space the solver has not marked.
	KindFloor Kind = iota
	// KindMarkedFloor is a floor the solver has marked as "certainly not a wall".
	KindMarkedFloor
	// KindWall blocks movement and counts toward the row/column targets.
	KindWall
	// KindMonster must sit in a dead end.
	KindMonster
	// KindBossMonster is a cosmetic variant of KindMonster.
	KindBossMonster
	// KindTreasure must sit inside a treasure room.
	KindTreasure
)

// Traits is the capability record attached to every Kind.
type Traits struct {
	ID       string // Matches the id in tiles.json
	Walkable bool   // Counts as open space for connectivity and dead ends
	Solvable bool   // May be changed by the solver; fixed tiles are scenery
	Family   Kind   // Structural kind used by the validator
}

var traits = [...]Traits{
	KindFloor:       {ID: "floor", Walkable: true, Solvable: true, Family: KindFloor},
	KindMarkedFloor: {ID: "floor-marked", Walkable: true, Solvable: true, Family: KindFloor},
	KindWall:        {ID: "wall", Walkable: false, Solvable: true, Family: KindWall},
	KindMonster:     {ID: "monster", Walkable: true, Solvable: false, Family: KindMonster},
	KindBossMonster: {ID: "monster-boss", Walkable: true, Solvable: false, Family: KindMonster},
	KindTreasure:    {ID: "treasure", Walkable: true, Solvable: false, Family: KindTreasure},
}

// Kinds lists every tile kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindFloor, KindMarkedFloor, KindWall, KindMonster, KindBossMonster, KindTreasure}
}

// Traits returns the capability record for the kind.
// Unknown kinds behave like walls so they never open up the board.
func (k Kind) Traits() Traits {
	if int(k) >= len(traits) {
		return Traits{ID: "unknown", Family: KindWall}
	}
	return traits[k]
}

// String returns the kind's stable id.
func (k Kind) String() string {
	return k.Traits().ID
}

// IsWalkable returns true if the kind counts as open space.
func (k Kind) IsWalkable() bool {
	return k.Traits().Walkable
}

// IsSolvable returns true if the solver may overwrite the kind.
func (k Kind) IsSolvable() bool {
	return k.Traits().Solvable
}

// IsFloor returns true for Floor and MarkedFloor.
func (k Kind) IsFloor() bool {
	return k.Traits().Family == KindFloor
}

// IsMonster returns true for Monster and BossMonster.
func (k Kind) IsMonster() bool {
	return k.Traits().Family == KindMonster
}

var (
	solvingOrder = []Kind{KindFloor, KindWall, KindMarkedFloor}
	editingOrder = []Kind{KindFloor, KindWall, KindMonster, KindBossMonster, KindTreasure}
)

// Next returns the kind that follows k when a tile is cycled.
// Kinds outside the active cycle restart it.
func (k Kind) Next(editing bool) Kind {
	order := solvingOrder
	if editing {
		order = editingOrder
	}
	return NextInOrder(order, k)
}

// NextInOrder returns the entry after k in order, wrapping around.
// If k is absent the first entry is returned.
func NextInOrder(order []Kind, k Kind) Kind {
	if len(order) == 0 {
		return k
	}
	for i, kind := range order {
		if kind == k {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Style selects one of the two tile alphabets.
type Style int

const (
	// StylePlain uses single-character ASCII codes.
	StylePlain Style = iota
	// StylePictographic uses emoji glyphs.
	StylePictographic
)

// Tile is an immutable tile value: a kind plus an optional custom pictograph.
// Edits replace tiles wholesale.
type Tile struct {
	Kind  Kind
	Glyph string // Custom pictographic glyph; empty means the kind's default
}

// NewTile returns a tile of the given kind with the default glyph.
func NewTile(kind Kind) Tile {
	return Tile{Kind: kind}
}

// WithGlyph returns a copy of the tile showing glyph in pictographic style.
// Plain-text glyphs are ignored because plain text always uses canonical codes.
func (t Tile) WithGlyph(glyph string) Tile {
	if glyph == "" || isASCII(glyph) || glyph == DefaultGlyph(t.Kind, StylePictographic) {
		t.Glyph = ""
		return t
	}
	t.Glyph = glyph
	return t
}

// Text returns the tile's glyph in the given style.
func (t Tile) Text(style Style) string {
	if style == StylePictographic && t.Glyph != "" {
		return t.Glyph
	}
	return DefaultGlyph(t.Kind, style)
}

// IsWalkable returns true if the tile counts as open space.
func (t Tile) IsWalkable() bool {
	return t.Kind.IsWalkable()
}

// IsSolvable returns true if the solver may overwrite the tile.
func (t Tile) IsSolvable() bool {
	return t.Kind.IsSolvable()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
