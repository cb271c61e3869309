package board

import (
	"errors"
	"fmt"

	"github.com/tilewright/solver/tilemapping"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("square already has a tile")
)

// A Grid is the playing surface: a fixed number of rows and columns, each
// square either empty or holding a tile. Once built it is only read; the
// search engine lays tentative tiles on a Layer instead.
type Grid struct {
	rows    int
	cols    int
	squares []tilemapping.Tile
	// number of squares holding a tile
	tilesPlayed int
}

// NewGrid makes an empty grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:    rows,
		cols:    cols,
		squares: make([]tilemapping.Tile, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Contains returns whether p lies on the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) sqIdx(p Position) int {
	return p.Row*g.cols + p.Col
}

// Set puts a tile on an empty square. It is meant for building a grid
// before a search starts.
func (g *Grid) Set(p Position, t tilemapping.Tile) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if t.Letter == 0 {
		return fmt.Errorf("%w: undesignated blank at %v", tilemapping.ErrBadTile, p)
	}
	if g.squares[g.sqIdx(p)].Letter != 0 {
		return fmt.Errorf("%w: %v", ErrOccupied, p)
	}
	g.squares[g.sqIdx(p)] = t
	g.tilesPlayed++
	return nil
}

// Get returns the tile at p and whether the square is filled. Positions
// outside the grid are an error.
func (g *Grid) Get(p Position) (tilemapping.Tile, bool, error) {
	if !g.Contains(p) {
		return tilemapping.Tile{}, false, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	t := g.squares[g.sqIdx(p)]
	return t, t.Letter != 0, nil
}

// At implements Layer. Off-grid positions are reported as empty.
func (g *Grid) At(p Position) (tilemapping.Tile, bool) {
	if !g.Contains(p) {
		return tilemapping.Tile{}, false
	}
	t := g.squares[g.sqIdx(p)]
	return t, t.Letter != 0
}

// HasLetter returns true if p is on the grid and filled.
func (g *Grid) HasLetter(p Position) bool {
	_, ok := g.At(p)
	return ok
}

// IsEmpty returns if no tile has been placed on the grid.
func (g *Grid) IsEmpty() bool {
	return g.tilesPlayed == 0
}

func (g *Grid) TilesPlayed() int {
	return g.tilesPlayed
}

// Center is the middle square, rounding down on even dimensions.
func (g *Grid) Center() Position {
	return Position{Row: g.rows / 2, Col: g.cols / 2}
}

// Step moves one square in direction d, reporting false when that would
// leave the grid.
func (g *Grid) Step(p Position, d Direction) (Position, bool) {
	n := p.Move(d)
	return n, g.Contains(n)
}

// Positions returns every square in reading order.
func (g *Grid) Positions() []Position {
	ps := make([]Position, 0, len(g.squares))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			ps = append(ps, Position{Row: r, Col: c})
		}
	}
	return ps
}

func (g *Grid) isAnchor(p Position) bool {
	if g.HasLetter(p) {
		return false
	}
	for _, d := range AllDirections {
		if g.HasLetter(p.Move(d)) {
			return true
		}
	}
	return false
}

// AnchorPositions returns, in reading order, every empty square with at
// least one filled neighbor. An empty grid has no anchors; the move
// generator decides how a first move is seeded.
func (g *Grid) AnchorPositions() []Position {
	var anchors []Position
	for _, p := range g.Positions() {
		if g.isAnchor(p) {
			anchors = append(anchors, p)
		}
	}
	return anchors
}

// EmptyOnLine counts the empty squares on the row (horizontal) or column
// (vertical) that passes through p.
func (g *Grid) EmptyOnLine(p Position, o Orientation) int {
	n := 0
	if o == Horizontal {
		for c := 0; c < g.cols; c++ {
			if !g.HasLetter(Position{Row: p.Row, Col: c}) {
				n++
			}
		}
		return n
	}
	for r := 0; r < g.rows; r++ {
		if !g.HasLetter(Position{Row: r, Col: p.Col}) {
			n++
		}
	}
	return n
}

// ResolveWord returns the word formed along o if t were placed at the
// empty square origin, absorbing every contiguous tile on both sides.
func (g *Grid) ResolveWord(origin Position, t tilemapping.Tile, o Orientation) WordPlacement {
	return WordThrough(withTile{base: g, pos: origin, tile: t}, origin, o)
}
