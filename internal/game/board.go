package game

import "github.com/samdwyer/poorguelike/internal/entity"

// Board is one tick's snapshot of the live characters and static structures.
// It is never mutated while a tick is being resolved.
type Board struct {
	Characters []entity.Character
	Structures []entity.Character
}

// NewBoard creates a snapshot from the given occupant lists.
func NewBoard(characters, structures []entity.Character) *Board {
	return &Board{
		Characters: characters,
		Structures: structures,
	}
}

// CanMove reports whether an occupant at pos may step one cell in dir.
//
// Characters always block, whatever their Walkable flag says. Structures
// block unless they are walkable. A target with no occupant at all, which
// includes any position off the board, never blocks.
func (b *Board) CanMove(pos entity.Position, dir entity.Direction) bool {
	return !b.blocked(pos.Shift(dir))
}

// blocked is the single occupancy test behind every direction.
func (b *Board) blocked(target entity.Position) bool {
	for i := range b.Characters {
		if b.Characters[i].Pos == target {
			return true
		}
	}
	for i := range b.Structures {
		if b.Structures[i].Pos == target && !b.Structures[i].Walkable {
			return true
		}
	}
	return false
}

// Moves returns the set of directions CanMove allows from pos.
func (b *Board) Moves(pos entity.Position) MoveSet {
	var set MoveSet
	for _, dir := range entity.AllDirections() {
		if b.CanMove(pos, dir) {
			set |= MoveSet(dirBit(dir))
		}
	}
	return set
}

// At returns every occupant on pos: characters first, then structures.
func (b *Board) At(pos entity.Position) []entity.Character {
	var found []entity.Character
	for _, c := range b.Characters {
		if c.Pos == pos {
			found = append(found, c)
		}
	}
	for _, s := range b.Structures {
		if s.Pos == pos {
			found = append(found, s)
		}
	}
	return found
}

// Player returns the player character, if the snapshot has one.
func (b *Board) Player() (entity.Character, bool) {
	for _, c := range b.Characters {
		if c.Kind == entity.KindPlayer {
			return c, true
		}
	}
	return entity.Character{}, false
}

// MoveSet is a set of directions an occupant can currently take.
type MoveSet uint8

// Has reports whether dir is in the set.
func (m MoveSet) Has(dir entity.Direction) bool {
	return uint8(m)&dirBit(dir) != 0
}

func dirBit(dir entity.Direction) uint8 {
	if !dir.IsValid() {
		return 0
	}
	return 1 << uint(dir)
}
