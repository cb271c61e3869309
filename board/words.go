package board

import (
	"strings"
	"unicode/utf8"

	"github.com/tilewright/solver/tilemapping"
)

// A Layer is anything that can tell what tile sits on a square: the grid
// itself or the grid with tentative placements on top of it.
type Layer interface {
	At(p Position) (tilemapping.Tile, bool)
}

// A WordPlacement is a run of filled squares read in natural reading
// order, left to right or top to bottom.
type WordPlacement struct {
	Word  string
	Start Position
	End   Position
}

// Len is the number of letters in the word.
func (w WordPlacement) Len() int {
	return utf8.RuneCountInString(w.Word)
}

type withTile struct {
	base Layer
	pos  Position
	tile tilemapping.Tile
}

func (w withTile) At(p Position) (tilemapping.Tile, bool) {
	if p == w.pos {
		return w.tile, true
	}
	return w.base.At(p)
}

// wordEdge walks from p in direction d while squares stay filled and
// returns the last filled square.
func wordEdge(l Layer, p Position, d Direction) Position {
	for {
		next := p.Move(d)
		if _, ok := l.At(next); !ok {
			return p
		}
		p = next
	}
}

// WordThrough reads the contiguous word along o that passes through the
// filled square origin. The result is the same whichever end of the word
// origin is closest to.
func WordThrough(l Layer, origin Position, o Orientation) WordPlacement {
	start := wordEdge(l, origin, o.Start())
	end := wordEdge(l, origin, o.End())
	var sb strings.Builder
	for p := start; ; p = p.Move(o.End()) {
		t, _ := l.At(p)
		sb.WriteRune(t.Letter)
		if p == end {
			break
		}
	}
	return WordPlacement{Word: sb.String(), Start: start, End: end}
}
