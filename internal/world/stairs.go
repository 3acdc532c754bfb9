package world

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/poorguelike/internal/gamedata"
)

// ErrNoPlaceableCell is returned when a room has no cell that can take a stair.
var ErrNoPlaceableCell = errors.New("no placeable cell for stair")

// PlaceStairs marks a random ground cell as the entrance and/or another
// random ground cell as the exit. The entrance goes first so the exit, which
// skips cells that already carry a stair, can never land on it.
func PlaceStairs(rng *rand.Rand, terrains *gamedata.TerrainRegistry, room *Room, entrance, exit bool) error {
	if entrance {
		if err := room.placeStair(rng, terrains, StairUp); err != nil {
			return err
		}
	}
	if exit {
		if err := room.placeStair(rng, terrains, StairDown); err != nil {
			return err
		}
	}
	return nil
}

// placeStair picks uniformly among the cells that may take s.
func (r *Room) placeStair(rng *rand.Rand, terrains *gamedata.TerrainRegistry, s Stair) error {
	candidates := r.stairCandidates(terrains)
	if len(candidates) == 0 {
		return fmt.Errorf("%w: %s stair in %dx%d room", ErrNoPlaceableCell, s, r.Width, r.Height)
	}

	r.cells[candidates[rng.Intn(len(candidates))]].Stair = s
	return nil
}

// stairCandidates returns the indices of non-wall cells without a stair.
func (r *Room) stairCandidates(terrains *gamedata.TerrainRegistry) []int {
	candidates := make([]int, 0, len(r.cells))
	for i, c := range r.cells {
		if terrains.IsWall(c.Terrain) || c.HasStair() {
			continue
		}
		candidates = append(candidates, i)
	}
	return candidates
}
