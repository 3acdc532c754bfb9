package game

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/poorguelike/internal/entity"
	"github.com/samdwyer/poorguelike/internal/logger"
	"github.com/samdwyer/poorguelike/internal/telemetry"
)

// Command is the set of directions the player asked for this tick.
// Several may be set at once; each is applied independently.
type Command uint8

// CmdNone means the player stays put.
const CmdNone Command = 0

// Single-direction commands.
var (
	CmdLeft  = CommandFor(entity.Left)
	CmdRight = CommandFor(entity.Right)
	CmdUp    = CommandFor(entity.Up)
	CmdDown  = CommandFor(entity.Down)
)

// playerOrder is the order in which a player's requested directions are tried.
var playerOrder = []entity.Direction{entity.Left, entity.Right, entity.Down, entity.Up}

// CommandFor builds a command requesting every given direction.
func CommandFor(dirs ...entity.Direction) Command {
	var c Command
	for _, dir := range dirs {
		c |= Command(dirBit(dir))
	}
	return c
}

// Has reports whether the command requests dir.
func (c Command) Has(dir entity.Direction) bool {
	return uint8(c)&dirBit(dir) != 0
}

// Step advances the simulation by one tick and returns the next character
// list. The player follows cmd; every NPC and mob tries one random step.
// All moves are checked against board, the previous snapshot, which is left
// untouched. Structures are not visited.
func Step(ctx context.Context, rng *rand.Rand, board *Board, cmd Command) []entity.Character {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.tick")
	defer span.End()

	next := make([]entity.Character, len(board.Characters))
	copy(next, board.Characters)

	moved := 0
	for i := range next {
		c := &next[i]
		switch {
		case c.Kind == entity.KindPlayer:
			if stepPlayer(board, c, cmd) {
				moved++
			}
		case c.Kind.IsAutonomous():
			if stepRandom(rng, board, c) {
				moved++
			}
		}
	}

	span.SetAttributes(
		attribute.Int("tick.characters", len(next)),
		attribute.Int("tick.moved", moved),
		attribute.Int("tick.command", int(cmd)),
	)
	return next
}

// stepPlayer applies each requested direction in turn. A later check starts
// from wherever an earlier one left the player, so two axes can both move in
// the same tick.
func stepPlayer(board *Board, c *entity.Character, cmd Command) bool {
	moved := false
	for _, dir := range playerOrder {
		if cmd.Has(dir) && board.CanMove(c.Pos, dir) {
			c.Move(dir)
			moved = true
		}
	}
	return moved
}

// stepRandom picks one direction uniformly and takes it if it is free.
// A blocked pick is not retried.
func stepRandom(rng *rand.Rand, board *Board, c *entity.Character) bool {
	dirs := entity.AllDirections()
	dir := dirs[rng.Intn(len(dirs))]

	log := logger.Component("game").WithFields(logrus.Fields{
		"id":        c.ID.String(),
		"kind":      c.Kind.String(),
		"direction": dir.String(),
	})
	log.Debug("Trying to move")

	if !board.CanMove(c.Pos, dir) {
		return false
	}

	c.Move(dir)
	log.Debug("Moved")
	return true
}
