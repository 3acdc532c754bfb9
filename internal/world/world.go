package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/poorguelike/internal/gamedata"
	"github.com/samdwyer/poorguelike/internal/logger"
	"github.com/samdwyer/poorguelike/internal/telemetry"
)

const (
	// Default world layout
	DefaultRooms      = 4
	DefaultRoomWidth  = 10
	DefaultRoomHeight = 10
)

var (
	// ErrTooFewRooms is returned when a world would lack a start or a finish.
	ErrTooFewRooms = errors.New("not enough rooms: need at least a start and a finish")
	// ErrNegativeRoomSize is returned for a room width or height below zero.
	ErrNegativeRoomSize = errors.New("negative room size")
)

// Config controls world assembly.
type Config struct {
	Rooms      int
	RoomWidth  int
	RoomHeight int
}

// DefaultConfig returns the standard four rooms of 10x10.
func DefaultConfig() Config {
	return Config{
		Rooms:      DefaultRooms,
		RoomWidth:  DefaultRoomWidth,
		RoomHeight: DefaultRoomHeight,
	}
}

// Validate checks the layout Assemble needs. Rooms too small to hold their
// stairs pass here and fail in Assemble with ErrNoPlaceableCell.
func (c Config) Validate() error {
	if c.Rooms < 2 {
		return fmt.Errorf("%w (got %d)", ErrTooFewRooms, c.Rooms)
	}
	if c.RoomWidth < 0 || c.RoomHeight < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeRoomSize, c.RoomWidth, c.RoomHeight)
	}
	return nil
}

// World is the ordered sequence of rooms for one session.
type World struct {
	Rooms []*Room
}

// Start returns the first room.
func (w *World) Start() *Room {
	return w.Rooms[0]
}

// Finish returns the last room.
func (w *World) Finish() *Room {
	return w.Rooms[len(w.Rooms)-1]
}

// Assemble generates cfg.Rooms rooms and places their stairs. The first room
// only gets an exit, the last only an entrance, and every room in between
// gets both.
func Assemble(ctx context.Context, rng *rand.Rand, terrains *gamedata.TerrainRegistry, cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.assemble")
	defer span.End()

	startTime := time.Now()
	log := logger.Component("world")
	log.WithField("rooms", cfg.Rooms).Info("Generating world")

	w := &World{Rooms: make([]*Room, 0, cfg.Rooms)}
	last := cfg.Rooms - 1

	for n := 0; n < cfg.Rooms; n++ {
		room := GenerateRoom(rng, terrains, cfg.RoomWidth, cfg.RoomHeight)

		entrance, exit := true, true
		switch n {
		case last:
			exit = false
		case 0:
			entrance = false
		}

		if err := PlaceStairs(rng, terrains, room, entrance, exit); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("room %d: %w", n+1, err)
		}

		log.WithFields(logrus.Fields{
			"room":     n + 1,
			"entrance": entrance,
			"exit":     exit,
		}).Debug("Room generated")

		w.Rooms = append(w.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("world.room_count", len(w.Rooms)),
		attribute.Int("world.room_width", cfg.RoomWidth),
		attribute.Int("world.room_height", cfg.RoomHeight),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return w, nil
}

// MustAssemble is Assemble for callers that treat a bad layout as fatal.
func MustAssemble(ctx context.Context, rng *rand.Rand, terrains *gamedata.TerrainRegistry, cfg Config) *World {
	w, err := Assemble(ctx, rng, terrains, cfg)
	if err != nil {
		panic(err)
	}
	return w
}
