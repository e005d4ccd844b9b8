package geom

// Direction is one of the four orthogonal facings.
type Direction int

const (
	// North faces Up.
	North Direction = iota
	// East faces Right.
	East
	// South faces Down.
	South
	// West faces Left.
	West
)

// Translation returns the unit step for the facing.
func (d Direction) Translation() Translation {
	return orthogonal[d.norm()]
}

// TurnRight rotates the facing 90° clockwise.
func (d Direction) TurnRight() Direction { return (d.norm() + 1) % 4 }

// TurnLeft rotates the facing 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d.norm() + 3) % 4 }

// Reverse returns the opposite facing.
func (d Direction) Reverse() Direction { return (d.norm() + 2) % 4 }

func (d Direction) String() string {
	return [...]string{"north", "east", "south", "west"}[d.norm()]
}

func (d Direction) norm() Direction {
	return ((d % 4) + 4) % 4
}
