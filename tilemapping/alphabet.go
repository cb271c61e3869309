package tilemapping

import (
	"errors"
	"fmt"
	"unicode"
)

const (
	// BlankToken is the user-friendly representation of an undesignated
	// blank on a rack.
	BlankToken = '*'
	// AltBlankToken is also accepted for a blank, as in Quackle racks.
	AltBlankToken = '?'
	// EmptyToken marks an empty square in the board text format.
	EmptyToken = '-'
)

var ErrBadTile = errors.New("not a valid tile")

// A Tile is a single letter tile. A wildcard tile stands in for any letter
// when matching words but never scores. A blank on a rack is a wildcard
// whose letter has not been designated yet (Letter is 0).
type Tile struct {
	Letter   rune
	Wildcard bool
}

// Blank is an undesignated wildcard.
var Blank = Tile{Wildcard: true}

// NewTile returns a regular (scoring) tile for the letter.
func NewTile(r rune) Tile {
	return Tile{Letter: unicode.ToUpper(r)}
}

// NewWildcard returns a wildcard tile designated as the letter.
func NewWildcard(r rune) Tile {
	return Tile{Letter: unicode.ToUpper(r), Wildcard: true}
}

// IsBlank returns true for a wildcard with no designated letter.
func (t Tile) IsBlank() bool {
	return t.Wildcard && t.Letter == 0
}

// Designate returns a copy of the wildcard t standing in for letter r.
func (t Tile) Designate(r rune) Tile {
	return NewWildcard(r)
}

// String renders the tile the way the board files do: regular tiles are
// uppercase, wildcards lowercase and an undesignated blank is BlankToken.
func (t Tile) String() string {
	switch {
	case t.IsBlank():
		return string(BlankToken)
	case t.Wildcard:
		return string(unicode.ToLower(t.Letter))
	}
	return string(t.Letter)
}

// FromRune parses a tile in board notation: an uppercase letter is a
// regular tile and a lowercase letter a wildcard holding that letter.
func FromRune(r rune) (Tile, error) {
	switch {
	case unicode.IsUpper(r):
		return NewTile(r), nil
	case unicode.IsLower(r):
		return NewWildcard(r), nil
	}
	return Tile{}, fmt.Errorf("%w: %q", ErrBadTile, r)
}
