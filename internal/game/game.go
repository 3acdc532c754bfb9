package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/poorguelike/internal/gamedata"
	"github.com/samdwyer/poorguelike/internal/logger"
	"github.com/samdwyer/poorguelike/internal/telemetry"
	"github.com/samdwyer/poorguelike/internal/ui"
	"github.com/samdwyer/poorguelike/internal/world"
)

// Game holds the entire session state.
type Game struct {
	cfg      Config
	rng      *rand.Rand
	terrains *gamedata.TerrainRegistry
	kinds    map[string]gamedata.KindAppearance
	world    *world.World
	room     *world.Room
	board    *Board
	state    State
	ticks    int
}

// New loads the catalogs, assembles the world and populates the starting room.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	terrains, err := gamedata.LoadTerrainRegistry()
	if err != nil {
		return nil, fmt.Errorf("load terrains: %w", err)
	}
	kinds, err := gamedata.LoadKindAppearances()
	if err != nil {
		return nil, fmt.Errorf("load kinds: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	w, err := world.Assemble(ctx, rng, terrains, cfg.World)
	if err != nil {
		return nil, fmt.Errorf("assemble world: %w", err)
	}

	room := w.Start()
	characters := StartingCharacters(rng, room, cfg.NPCs, cfg.Mobs)
	room.SetOccupants(characters)

	g := &Game{
		cfg:      cfg,
		rng:      rng,
		terrains: terrains,
		kinds:    kinds,
		world:    w,
		room:     room,
		board:    NewBoard(characters, StructuresFromRoom(room, terrains)),
		state:    StateRunning,
	}

	span.SetAttributes(
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Int("game.characters", len(characters)),
		attribute.Int("game.structures", len(g.board.Structures)),
	)
	logger.Component("game").WithFields(logrus.Fields{
		"seed":       cfg.Seed,
		"rooms":      len(w.Rooms),
		"characters": len(characters),
	}).Info("Game initialized")

	return g, nil
}

// World returns the assembled world.
func (g *Game) World() *world.World { return g.world }

// Board returns the current snapshot.
func (g *Game) Board() *Board { return g.board }

// Terrains returns the terrain catalog the world was built from.
func (g *Game) Terrains() *gamedata.TerrainRegistry { return g.terrains }

// Kinds returns the character appearance catalog.
func (g *Game) Kinds() map[string]gamedata.KindAppearance { return g.kinds }

// State returns the current session state.
func (g *Game) State() State { return g.state }

// Ticks returns how many ticks have been resolved.
func (g *Game) Ticks() int { return g.ticks }

// Seed returns the seed the world was generated from.
func (g *Game) Seed() int64 { return g.cfg.Seed }

// Tick resolves one step and replaces the snapshot with the result.
func (g *Game) Tick(ctx context.Context, cmd Command) {
	characters := Step(ctx, g.rng, g.board, cmd)
	g.board = NewBoard(characters, g.board.Structures)
	g.room.SetOccupants(characters)
	g.ticks++
}

// Run executes the interactive loop on screen until the player quits.
// The screen is closed on return.
func (g *Game) Run(ctx context.Context, screen ui.Terminal) error {
	defer screen.Close()

	renderer := ui.NewRenderer(screen, g.terrains, g.kinds)

	for g.state == StateRunning {
		renderer.Render(g.room, g.board.Characters, g.status())

		switch ev := screen.PollEvent().(type) {
		case nil:
			g.state = StateQuit
		case *tcell.EventKey:
			g.handleKey(ctx, ev.Key(), ev.Rune())
		case *tcell.EventResize:
			screen.Sync()
		}
	}

	return nil
}

// handleKey maps a key press to a tick, a quit, or nothing.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, ch rune) {
	cmd, action := commandForKey(key, ch)
	switch action {
	case actionQuit:
		g.state = StateQuit
	case actionTick:
		g.Tick(ctx, cmd)
	}
}

func (g *Game) status() string {
	player, _ := g.board.Player()
	return fmt.Sprintf("Room 1/%d  tick %d  @%d,%d  seed %d",
		len(g.world.Rooms), g.ticks, player.Pos.X, player.Pos.Y, g.cfg.Seed)
}

type keyAction int

const (
	actionNone keyAction = iota
	actionTick
	actionQuit
)

// commandForKey resolves vi keys and arrows to moves, '.' and space to a
// wait, and q, Esc or Ctrl-C to quit.
func commandForKey(key tcell.Key, ch rune) (Command, keyAction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdNone, actionQuit
	case tcell.KeyLeft:
		return CmdLeft, actionTick
	case tcell.KeyRight:
		return CmdRight, actionTick
	case tcell.KeyUp:
		return CmdUp, actionTick
	case tcell.KeyDown:
		return CmdDown, actionTick
	case tcell.KeyRune:
		switch ch {
		case 'h':
			return CmdLeft, actionTick
		case 'l':
			return CmdRight, actionTick
		case 'j':
			return CmdDown, actionTick
		case 'k':
			return CmdUp, actionTick
		case '.', ' ':
			return CmdNone, actionTick
		case 'q', 'Q':
			return CmdNone, actionQuit
		}
	}
	return CmdNone, actionNone
}
