// Package entity provides the characters and static structures that occupy
// the grid.
package entity

import "github.com/google/uuid"

// Kind identifies what an occupant is.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
	KindMob
	// KindWall and KindGround are static structures. They never move.
	KindWall
	KindGround
)

// String returns the kind name used by the appearance catalog.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindMob:
		return "mob"
	case KindWall:
		return "wall"
	case KindGround:
		return "ground"
	default:
		return "unknown"
	}
}

// IsStructure reports whether the kind is a static structure.
func (k Kind) IsStructure() bool {
	return k == KindWall || k == KindGround
}

// IsAutonomous reports whether the kind moves on its own each tick.
func (k Kind) IsAutonomous() bool {
	return k == KindNPC || k == KindMob
}

// Walkable reports whether others may stand where an occupant of this kind
// is. Only ground filler is walkable.
func (k Kind) Walkable() bool {
	return k == KindGround
}

// Relationship is an occupant's stance towards the player.
type Relationship int

const (
	RelationNone Relationship = iota
	RelationFoe
	RelationFriendly
	RelationNeutral
)

// String returns the relationship name.
func (r Relationship) String() string {
	switch r {
	case RelationFoe:
		return "foe"
	case RelationFriendly:
		return "friendly"
	case RelationNeutral:
		return "neutral"
	default:
		return "none"
	}
}

// Character is any occupant of the grid: the player, NPCs, mobs and static
// structures alike.
type Character struct {
	ID           uuid.UUID
	Kind         Kind
	Relationship Relationship
	Walkable     bool
	Pos          Position
}

// New creates an occupant with a fresh identifier. Walkable is derived from
// the kind.
func New(kind Kind, rel Relationship, pos Position) Character {
	return Character{
		ID:           uuid.New(),
		Kind:         kind,
		Relationship: rel,
		Walkable:     kind.Walkable(),
		Pos:          pos,
	}
}

// Move updates the position by one step in dir.
func (c *Character) Move(dir Direction) {
	c.Pos = c.Pos.Shift(dir)
}
