package world

import "fmt"

// Coord addresses a grid cell.
type Coord struct {
	Row, Col int
}

// String returns the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Translate returns the coordinate shifted by (dr, dc).
func (c Coord) Translate(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Neighbors returns the four orthogonal neighbors, in bounds or not.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{c.Translate(-1, 0), c.Translate(1, 0), c.Translate(0, -1), c.Translate(0, 1)}
}

// Room represents a rectangular block of cells.
type Room struct {
	Row, Col      int // Top-left corner position
	Height, Width int // Dimensions of the room
}

// Contains returns true if the given cell is inside the room.
func (r Room) Contains(c Coord) bool {
	return c.Row >= r.Row && c.Row < r.Row+r.Height && c.Col >= r.Col && c.Col < r.Col+r.Width
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.Col < other.Col+other.Width &&
		r.Col+r.Width > other.Col &&
		r.Row < other.Row+other.Height &&
		r.Row+r.Height > other.Row
}

// Grow returns the room extended by n cells on every side.
func (r Room) Grow(n int) Room {
	return Room{Row: r.Row - n, Col: r.Col - n, Height: r.Height + 2*n, Width: r.Width + 2*n}
}

// Ring returns the cells orthogonally bordering the room, corners excluded.
// Cells may lie outside the grid.
func (r Room) Ring() []Coord {
	ring := make([]Coord, 0, 2*(r.Height+r.Width))
	for c := r.Col; c < r.Col+r.Width; c++ {
		ring = append(ring, Coord{Row: r.Row - 1, Col: c}, Coord{Row: r.Row + r.Height, Col: c})
	}
	for row := r.Row; row < r.Row+r.Height; row++ {
		ring = append(ring, Coord{Row: row, Col: r.Col - 1}, Coord{Row: row, Col: r.Col + r.Width})
	}
	return ring
}
