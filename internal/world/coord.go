// Package world builds the tile map a session is played on.
package world

import "fmt"

// Coord is a position on the map grid.
type Coord struct {
	Row, Col int
}

// ID returns the tile id for the position, e.g. "r0c3".
func (c Coord) ID() string {
	return fmt.Sprintf("r%dc%d", c.Row, c.Col)
}

// ParseCoord is the inverse of Coord.ID.
func ParseCoord(id string) (Coord, error) {
	var c Coord
	if _, err := fmt.Sscanf(id, "r%dc%d", &c.Row, &c.Col); err != nil {
		return Coord{}, fmt.Errorf("parse tile id %q: %w", id, err)
	}
	if c.ID() != id {
		return Coord{}, fmt.Errorf("parse tile id %q: not canonical", id)
	}
	return c, nil
}

// Add returns the position offset by dr rows and dc columns.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}
