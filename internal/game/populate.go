package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/poorguelike/internal/entity"
	"github.com/samdwyer/poorguelike/internal/gamedata"
	"github.com/samdwyer/poorguelike/internal/logger"
	"github.com/samdwyer/poorguelike/internal/world"
)

// PlayerStart is where the player enters the starting room.
var PlayerStart = entity.Position{X: 1, Y: 1}

// StartingCharacters places the player at PlayerStart, then npcs friendly
// NPCs and mobs hostile mobs on random free interior cells of room. When the
// interior fills up the remaining characters are skipped.
func StartingCharacters(rng *rand.Rand, room *world.Room, npcs, mobs int) []entity.Character {
	player := entity.New(entity.KindPlayer, entity.RelationNeutral, PlayerStart)
	characters := []entity.Character{player}

	taken := mapset.New[entity.Position]()
	if room.InBounds(player.Pos.X, player.Pos.Y) && !room.IsBorder(player.Pos.X, player.Pos.Y) {
		taken.Put(player.Pos)
	}

	spawn := func(kind entity.Kind, rel entity.Relationship, count int) {
		for i := 0; i < count; i++ {
			pos, ok := randomFreePosition(rng, room, taken)
			if !ok {
				logger.Component("game").WithFields(logrus.Fields{
					"kind":    kind.String(),
					"skipped": count - i,
				}).Warn("No free cell left for character")
				return
			}
			taken.Put(pos)
			characters = append(characters, entity.New(kind, rel, pos))
		}
	}

	spawn(entity.KindNPC, entity.RelationFriendly, npcs)
	spawn(entity.KindMob, entity.RelationFoe, mobs)

	return characters
}

// randomFreePosition samples interior cells until it finds one not in taken.
// It gives up immediately when every interior cell is taken.
func randomFreePosition(rng *rand.Rand, room *world.Room, taken mapset.Set[entity.Position]) (entity.Position, bool) {
	interiorW, interiorH := room.Width-2, room.Height-2
	if interiorW <= 0 || interiorH <= 0 || taken.Size() >= interiorW*interiorH {
		return entity.Position{}, false
	}

	for {
		pos := entity.Position{
			X: 1 + rng.Intn(interiorW),
			Y: 1 + rng.Intn(interiorH),
		}
		if !taken.Has(pos) {
			return pos, true
		}
	}
}

// StructuresFromRoom turns room terrain into static structures: a wall
// segment on every wall cell and walkable ground filler everywhere else.
func StructuresFromRoom(room *world.Room, terrains *gamedata.TerrainRegistry) []entity.Character {
	structures := make([]entity.Character, 0, room.Width*room.Height)
	for y := 0; y < room.Height; y++ {
		for x := 0; x < room.Width; x++ {
			cell, _ := room.Cell(x, y)
			kind := entity.KindGround
			if terrains.IsWall(cell.Terrain) {
				kind = entity.KindWall
			}
			structures = append(structures, entity.New(kind, entity.RelationNone, entity.Position{X: x, Y: y}))
		}
	}
	return structures
}
