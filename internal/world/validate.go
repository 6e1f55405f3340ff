package world

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Rule identifies which validity rule a grid failed.
type Rule int

const (
	RuleNone Rule = iota
	RuleWallCounts
	RuleConnectivity
	RuleDeadEnds
	RuleTreasureRooms
)

// String returns a short rule name.
func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleWallCounts:
		return "wall_counts"
	case RuleConnectivity:
		return "connectivity"
	case RuleDeadEnds:
		return "dead_ends"
	case RuleTreasureRooms:
		return "treasure_rooms"
	default:
		return "unknown"
	}
}

// Result is the outcome of IsSolved. Reason names the first failing rule only.
type Result struct {
	Solved bool
	Rule   Rule
	Reason string
	At     *Coord // Offending cell, when the rule is cell-specific
}

func failed(rule Rule, at *Coord, format string, args ...any) Result {
	return Result{Rule: rule, At: at, Reason: fmt.Sprintf(format, args...)}
}

// IsSolved checks the rules in order and stops at the first failure:
//  1. wall counts equal the row and column targets;
//  2. all walkable tiles form one connected region;
//  3. every dead end holds a monster and every monster is in a dead end;
//  4. every treasure, and every 2x2 block of walkable tiles, lies in a treasure room.
//
// Rule 4 rescans 3x3 windows per cell, which is fine at puzzle sizes (about 12x12)
// but is not meant for large boards.
func (g *Grid) IsSolved() Result {
	rowCounts, colCounts := g.CountWalls()
	if !slices.Equal(rowCounts, g.rowTargets) {
		return failed(RuleWallCounts, nil, "Row wall counts do not match targets.")
	}
	if !slices.Equal(colCounts, g.colTargets) {
		return failed(RuleWallCounts, nil, "Column wall counts do not match targets.")
	}

	if at, ok := g.firstDisconnected(); !ok {
		return failed(RuleConnectivity, &at, "Some hall is not connected: %v.", at)
	}

	for c, tile := range g.All() {
		deadEnd := g.IsDeadEnd(c.Row, c.Col)
		if tile.Kind.IsMonster() && !deadEnd {
			return failed(RuleDeadEnds, &c, "Some monster is not in a dead end: %v.", c)
		}
		if !tile.Kind.IsMonster() && deadEnd {
			return failed(RuleDeadEnds, &c, "Some dead end has no monster: %v.", c)
		}
	}

	for c, tile := range g.All() {
		if tile.Kind == KindTreasure && !g.inTreasureRoom(c.Row, c.Col, 1, 1) {
			return failed(RuleTreasureRooms, &c, "Some treasure is not in a treasure room: %v.", c)
		}
		if g.isWideHall(c.Row, c.Col) && !g.inTreasureRoom(c.Row, c.Col, 2, 2) {
			return failed(RuleTreasureRooms, &c, "Some hall is wider than one tile: %v.", c)
		}
	}

	return Result{Solved: true, Rule: RuleNone, Reason: "Valid dungeon layout."}
}

// firstDisconnected returns a walkable cell outside the first walkable cell's region.
func (g *Grid) firstDisconnected() (Coord, bool) {
	var region mapset.Set[Coord]
	seeded := false
	for c, tile := range g.All() {
		if !tile.IsWalkable() {
			continue
		}
		if !seeded {
			region = g.ConnectedComponent(c.Row, c.Col)
			seeded = true
			continue
		}
		if !region.Has(c) {
			return c, false
		}
	}
	return Coord{}, true
}

// isWideHall reports whether the 2x2 block at (row, col) is entirely walkable.
func (g *Grid) isWideHall(row, col int) bool {
	if !g.IsInBounds(row+1, col+1) {
		return false
	}
	for _, tile := range g.TilesInRect(row, col, 2, 2) {
		if !tile.IsWalkable() {
			return false
		}
	}
	return true
}

// inTreasureRoom reports whether some 3x3 treasure room covers the whole
// height x width block at (row, col).
func (g *Grid) inTreasureRoom(row, col, height, width int) bool {
	for r := row + height - 3; r <= row; r++ {
		for c := col + width - 3; c <= col; c++ {
			if g.isTreasureRoom(r, c) {
				return true
			}
		}
	}
	return false
}

// isTreasureRoom reports whether the 3x3 window at (row, col) holds eight floors
// and one treasure, and its border has exactly one walkable tile, a floor.
func (g *Grid) isTreasureRoom(row, col int) bool {
	if !g.IsInBounds(row, col) || !g.IsInBounds(row+2, col+2) {
		return false
	}
	floors, treasures := 0, 0
	for _, tile := range g.TilesInRect(row, col, 3, 3) {
		switch {
		case tile.Kind.IsFloor():
			floors++
		case tile.Kind == KindTreasure:
			treasures++
		}
	}
	if floors != 8 || treasures != 1 {
		return false
	}

	entrances := 0
	for _, tile := range g.Neighbors(row, col, 3, 3) {
		if !tile.IsWalkable() {
			continue
		}
		if !tile.Kind.IsFloor() {
			return false
		}
		entrances++
	}
	return entrances == 1
}
