package board

// Direction is a one-cell movement intent in board space.
//
// Up is special: frontends hand it to Board.Update like any other intent,
// but the board treats it as "rotate the active piece" rather than an
// upward translation.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
