// Package world provides room generation, staircase placement and world
// assembly.
package world

import (
	"github.com/samdwyer/poorguelike/internal/entity"
	"github.com/samdwyer/poorguelike/internal/gamedata"
)

// Stair marks a cell as a connector to a neighbouring room.
type Stair int

const (
	// StairNone means the cell has no connector.
	StairNone Stair = iota
	// StairUp is the entrance, leading back to the previous room.
	StairUp
	// StairDown is the exit, leading on to the next room.
	StairDown
)

// String returns a human-readable stair name.
func (s Stair) String() string {
	switch s {
	case StairNone:
		return "none"
	case StairUp:
		return "up"
	case StairDown:
		return "down"
	default:
		return "unknown"
	}
}

// Cell is a single room tile. Terrain is fixed at generation; Stair is
// written at most once by the placer.
type Cell struct {
	Terrain   gamedata.TerrainID
	Stair     Stair
	Occupants []entity.Character
}

// HasStair reports whether the cell carries a connector.
func (c Cell) HasStair() bool {
	return c.Stair != StairNone
}
