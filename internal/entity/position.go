package entity

// Position is a grid coordinate. It carries no bounds; callers that care
// about the board edges check them.
type Position struct {
	X, Y int
}

// Shift returns the neighbouring position one step in dir.
func (p Position) Shift(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// AllDirections returns the four directions in a fixed order.
func AllDirections() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d >= Left && d <= Down
}

// Delta returns the x and y offsets for one step. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}
