package entity

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
		name   string
	}{
		{Left, -1, 0, "LEFT"},
		{Right, 1, 0, "RIGHT"},
		{Up, 0, -1, "UP"},
		{Down, 0, 1, "DOWN"},
		{Direction(9), 0, 0, "UNKNOWN"},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
		if got := tt.dir.String(); got != tt.name {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.name)
		}
	}

	if Direction(9).IsValid() {
		t.Error("Direction(9).IsValid() = true, want false")
	}
	if len(AllDirections()) != 4 {
		t.Errorf("len(AllDirections()) = %d, want 4", len(AllDirections()))
	}
}

func TestPositionShift(t *testing.T) {
	p := Position{X: 5, Y: 5}

	if got := p.Shift(Left); got != (Position{X: 4, Y: 5}) {
		t.Errorf("Shift(Left) = %v, want (4,5)", got)
	}
	if got := p.Shift(Down); got != (Position{X: 5, Y: 6}) {
		t.Errorf("Shift(Down) = %v, want (5,6)", got)
	}
	if p != (Position{X: 5, Y: 5}) {
		t.Errorf("Shift mutated receiver: %v", p)
	}
}

func TestKindWalkable(t *testing.T) {
	tests := []struct {
		kind       Kind
		walkable   bool
		structure  bool
		autonomous bool
	}{
		{KindPlayer, false, false, false},
		{KindNPC, false, false, true},
		{KindMob, false, false, true},
		{KindWall, false, true, false},
		{KindGround, true, true, false},
	}

	for _, tt := range tests {
		if got := tt.kind.Walkable(); got != tt.walkable {
			t.Errorf("%v.Walkable() = %v, want %v", tt.kind, got, tt.walkable)
		}
		if got := tt.kind.IsStructure(); got != tt.structure {
			t.Errorf("%v.IsStructure() = %v, want %v", tt.kind, got, tt.structure)
		}
		if got := tt.kind.IsAutonomous(); got != tt.autonomous {
			t.Errorf("%v.IsAutonomous() = %v, want %v", tt.kind, got, tt.autonomous)
		}
	}
}

func TestNewCharacter(t *testing.T) {
	a := New(KindGround, RelationNone, Position{X: 1, Y: 2})
	b := New(KindGround, RelationNone, Position{X: 1, Y: 2})

	if !a.Walkable {
		t.Error("ground structure should be walkable")
	}
	if a.ID == b.ID {
		t.Error("New() returned duplicate IDs")
	}

	p := New(KindPlayer, RelationNeutral, Position{X: 1, Y: 1})
	if p.Walkable {
		t.Error("player should not be walkable")
	}

	p.Move(Right)
	p.Move(Down)
	if p.Pos != (Position{X: 2, Y: 2}) {
		t.Errorf("after Move(Right), Move(Down) Pos = %v, want (2,2)", p.Pos)
	}
}
