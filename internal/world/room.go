package world

import (
	"math/rand"

	"github.com/samdwyer/poorguelike/internal/entity"
	"github.com/samdwyer/poorguelike/internal/gamedata"
)

// Room is a rectangular grid of cells stored row-major.
type Room struct {
	Width, Height int
	cells         []Cell
}

// GenerateRoom builds a width x height room. Border cells get a random wall
// variant and interior cells a random ground variant, chosen independently
// per cell. Rooms narrower or shorter than 3 are all wall.
func GenerateRoom(rng *rand.Rand, terrains *gamedata.TerrainRegistry, width, height int) *Room {
	width, height = max(width, 0), max(height, 0)

	room := &Room{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}

	walls := terrains.Walls()
	ground := terrains.Ground()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := &room.cells[y*width+x]
			if room.IsBorder(x, y) {
				cell.Terrain = walls[rng.Intn(len(walls))]
			} else {
				cell.Terrain = ground[rng.Intn(len(ground))]
			}
		}
	}

	return room
}

// InBounds reports whether (x, y) lies inside the room.
func (r *Room) InBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// IsBorder reports whether (x, y) is on the outer ring of the room.
func (r *Room) IsBorder(x, y int) bool {
	return x == 0 || x == r.Width-1 || y == 0 || y == r.Height-1
}

// Cell returns a copy of the cell at (x, y). The second result is false when
// the coordinates are out of range.
func (r *Room) Cell(x, y int) (Cell, bool) {
	if !r.InBounds(x, y) {
		return Cell{}, false
	}
	return r.cells[y*r.Width+x], true
}

// StairPositions returns the coordinates of every cell carrying s.
func (r *Room) StairPositions(s Stair) []entity.Position {
	var found []entity.Position
	for i, c := range r.cells {
		if c.Stair == s {
			found = append(found, entity.Position{X: i % r.Width, Y: i / r.Width})
		}
	}
	return found
}

// SetOccupants replaces every cell's occupant list with the given snapshot.
// Occupants outside the room are ignored. Lists handed out by Cell earlier
// keep showing the old snapshot.
func (r *Room) SetOccupants(occupants []entity.Character) {
	for i := range r.cells {
		r.cells[i].Occupants = nil
	}
	for _, o := range occupants {
		if !r.InBounds(o.Pos.X, o.Pos.Y) {
			continue
		}
		c := &r.cells[o.Pos.Y*r.Width+o.Pos.X]
		c.Occupants = append(c.Occupants, o)
	}
}
