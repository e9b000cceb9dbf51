package wfc

// Direction identifies one of the four cardinal neighbor positions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

const dirCount = 4

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return d ^ 1 }

// Delta returns the unit cell offset for the direction, y growing downward.
func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

// String returns a readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "down"
	}
}
