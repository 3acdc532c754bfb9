package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/poorguelike/internal/world"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed       = "POORGUELIKE_SEED"
	EnvRooms      = "POORGUELIKE_ROOMS"
	EnvRoomWidth  = "POORGUELIKE_ROOM_WIDTH"
	EnvRoomHeight = "POORGUELIKE_ROOM_HEIGHT"
	EnvNPCs       = "POORGUELIKE_NPCS"
	EnvMobs       = "POORGUELIKE_MOBS"
	EnvDump       = "POORGUELIKE_DUMP"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	World world.Config

	// Characters spawned into the starting room besides the player.
	NPCs int
	Mobs int

	// Dump prints the world as text instead of running interactively.
	Dump bool
}

// DefaultConfig returns the standard layout: four 10x10 rooms, five NPCs
// and five mobs.
func DefaultConfig() Config {
	return Config{
		World: world.DefaultConfig(),
		NPCs:  5,
		Mobs:  5,
	}
}

// Validate checks the ranges world assembly and population rely on.
func (c Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.World.RoomWidth < 3 || c.World.RoomHeight < 3 {
		return fmt.Errorf("%w: room size %dx%d leaves no floor", ErrInvalidConfig, c.World.RoomWidth, c.World.RoomHeight)
	}
	if c.NPCs < 0 || c.Mobs < 0 {
		return fmt.Errorf("%w: negative character count", ErrInvalidConfig)
	}
	return nil
}

// ConfigFromEnv starts from DefaultConfig and applies any variables that
// lookup finds. Pass os.LookupEnv in production.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvRooms, &cfg.World.Rooms},
		{EnvRoomWidth, &cfg.World.RoomWidth},
		{EnvRoomHeight, &cfg.World.RoomHeight},
		{EnvNPCs, &cfg.NPCs},
		{EnvMobs, &cfg.Mobs},
	}
	for _, f := range ints {
		v, ok := lookupTrimmed(lookup, f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, f.key, err)
		}
		*f.dst = n
	}

	if v, ok := lookupTrimmed(lookup, EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookupTrimmed(lookup, EnvDump); ok {
		dump, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvDump, err)
		}
		cfg.Dump = dump
	}

	return cfg, cfg.Validate()
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
