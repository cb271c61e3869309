package board

import "fmt"

// A Position is a zero-based row and column on a grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Row, p.Col)
}

// Less orders positions in reading order (top to bottom, left to right).
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// A Direction is a single step on the grid. Up and Down change the row,
// Left and Right change the column.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections lists the four neighbors of a square.
var AllDirections = [4]Direction{Up, Down, Left, Right}

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
	return "none"
}

// Delta returns the row and column change of one step.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// Move returns the position one step away in direction d. It does not
// check bounds.
func (p Position) Move(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Orientation is the axis a word is laid along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Orientations lists both orientations, horizontal first.
var Orientations = [2]Orientation{Horizontal, Vertical}

func (o Orientation) String() string {
	if o == Vertical {
		return "(vertical)"
	}
	return "(horizontal)"
}

// Start is the direction pointing to the beginning of a word.
func (o Orientation) Start() Direction {
	if o == Vertical {
		return Up
	}
	return Left
}

// End is the direction pointing to the end of a word.
func (o Orientation) End() Direction {
	if o == Vertical {
		return Down
	}
	return Right
}

// Opposite returns the orthogonal orientation, the one cross words are
// read along.
func (o Orientation) Opposite() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}
