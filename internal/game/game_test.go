package game

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/poorguelike/internal/world"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	g, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateRunning, "running"},
		{StateQuit, "quit"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 12345)

	if len(g.World().Rooms) != 4 {
		t.Errorf("world has %d rooms, want 4", len(g.World().Rooms))
	}
	if got := len(g.Board().Characters); got != 11 {
		t.Errorf("board has %d characters, want 11", got)
	}
	if got := len(g.Board().Structures); got != 100 {
		t.Errorf("board has %d structures, want 100", got)
	}
	if g.State() != StateRunning || g.Ticks() != 0 || g.Seed() != 12345 {
		t.Errorf("fresh game state=%v ticks=%d seed=%d", g.State(), g.Ticks(), g.Seed())
	}
	if g.Terrains() == nil || len(g.Kinds()) == 0 {
		t.Error("catalogs not loaded")
	}

	player, ok := g.Board().Player()
	if !ok {
		t.Fatal("no player on the board")
	}
	cell, _ := g.World().Start().Cell(player.Pos.X, player.Pos.Y)
	if len(cell.Occupants) != 1 || cell.Occupants[0].ID != player.ID {
		t.Errorf("start room cell under player has occupants %v", cell.Occupants)
	}
}

func TestNewGameRandomSeed(t *testing.T) {
	g := newTestGame(t, 0)
	if g.Seed() == 0 {
		t.Error("seed 0 should be replaced by a random seed")
	}
}

func TestNewGameInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Rooms = 1

	_, err := New(context.Background(), cfg)
	if !errors.Is(err, world.ErrTooFewRooms) {
		t.Errorf("New(1 room) error = %v, want ErrTooFewRooms", err)
	}
}

func TestGameTick(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 777)

	before := g.Board()
	structures := before.Structures

	g.Tick(ctx, CmdNone)

	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", g.Ticks())
	}
	if g.Board() == before {
		t.Error("Tick() should replace the snapshot")
	}
	if &g.Board().Structures[0] != &structures[0] {
		t.Error("Tick() should pass the structure list through unchanged")
	}
	if len(g.Board().Characters) != len(before.Characters) {
		t.Errorf("character count changed from %d to %d", len(before.Characters), len(g.Board().Characters))
	}
}

func TestGameHandleKey(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 31)

	g.handleKey(ctx, tcell.KeyRune, 'x')
	if g.Ticks() != 0 {
		t.Errorf("unmapped key advanced the game to tick %d", g.Ticks())
	}

	g.handleKey(ctx, tcell.KeyRune, '.')
	if g.Ticks() != 1 {
		t.Errorf("wait key: Ticks() = %d, want 1", g.Ticks())
	}

	g.handleKey(ctx, tcell.KeyEscape, 0)
	if g.State() != StateQuit {
		t.Errorf("Escape: State() = %v, want quit", g.State())
	}
}

// scriptedTerminal ends the session on its first poll and records Close.
type scriptedTerminal struct {
	panicOnDraw bool
	draws       int
	closed      int
}

func (s *scriptedTerminal) Clear() {}

func (s *scriptedTerminal) SetContent(int, int, rune, tcell.Style) {
	s.draws++
	if s.panicOnDraw {
		panic("draw failed")
	}
}

func (s *scriptedTerminal) Show()                  {}
func (s *scriptedTerminal) Sync()                  {}
func (s *scriptedTerminal) PollEvent() tcell.Event { return nil }
func (s *scriptedTerminal) Close()                 { s.closed++ }

func TestRunClosesScreen(t *testing.T) {
	g := newTestGame(t, 8)
	term := &scriptedTerminal{}

	if err := g.Run(context.Background(), term); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if g.State() != StateQuit {
		t.Errorf("State() = %v after closed event stream, want quit", g.State())
	}
	if term.draws == 0 {
		t.Error("Run() never drew the room")
	}
	if term.closed != 1 {
		t.Errorf("Close() called %d times, want 1", term.closed)
	}
}

func TestRunClosesScreenOnPanic(t *testing.T) {
	g := newTestGame(t, 8)
	term := &scriptedTerminal{panicOnDraw: true}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Run() should propagate the render panic")
			}
		}()
		_ = g.Run(context.Background(), term)
	}()

	if term.closed != 1 {
		t.Errorf("Close() called %d times after a panic, want 1", term.closed)
	}
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		ch     rune
		cmd    Command
		action keyAction
	}{
		{tcell.KeyRune, 'h', CmdLeft, actionTick},
		{tcell.KeyRune, 'l', CmdRight, actionTick},
		{tcell.KeyRune, 'j', CmdDown, actionTick},
		{tcell.KeyRune, 'k', CmdUp, actionTick},
		{tcell.KeyLeft, 0, CmdLeft, actionTick},
		{tcell.KeyRight, 0, CmdRight, actionTick},
		{tcell.KeyUp, 0, CmdUp, actionTick},
		{tcell.KeyDown, 0, CmdDown, actionTick},
		{tcell.KeyRune, ' ', CmdNone, actionTick},
		{tcell.KeyRune, 'q', CmdNone, actionQuit},
		{tcell.KeyCtrlC, 0, CmdNone, actionQuit},
		{tcell.KeyRune, 'z', CmdNone, actionNone},
		{tcell.KeyTab, 0, CmdNone, actionNone},
	}

	for _, tt := range tests {
		cmd, action := commandForKey(tt.key, tt.ch)
		if cmd != tt.cmd || action != tt.action {
			t.Errorf("commandForKey(%v, %q) = (%08b, %d), want (%08b, %d)",
				tt.key, tt.ch, cmd, action, tt.cmd, tt.action)
		}
	}
}

func TestGameStatus(t *testing.T) {
	g := newTestGame(t, 5)
	status := g.status()

	if !strings.HasPrefix(status, "Room 1/4") {
		t.Errorf("status() = %q, want it to start with Room 1/4", status)
	}
	if !strings.Contains(status, "@1,1") {
		t.Errorf("status() = %q, want the player at @1,1", status)
	}
}
