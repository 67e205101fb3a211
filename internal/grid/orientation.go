package grid

// Orientation is the direction the agent faces.
type Orientation int

const (
	North Orientation = iota
	South
	East
	West
)

var (
	leftOf  = [...]Orientation{North: West, West: South, South: East, East: North}
	rightOf = [...]Orientation{North: East, East: South, South: West, West: North}
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Left returns the orientation after a 90 degree left turn.
func (o Orientation) Left() Orientation {
	return leftOf[o]
}

// Right returns the orientation after a 90 degree right turn.
func (o Orientation) Right() Orientation {
	return rightOf[o]
}

// Delta returns the unit step for the orientation.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
