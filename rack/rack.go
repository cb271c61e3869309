// Package rack holds a player's tiles and the generator that walks the
// distinct choices a rack offers for the next tile.
package rack

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/tilewright/solver/tilemapping"
)

var (
	ErrEmptyRack   = errors.New("rack is empty")
	ErrBadRackTile = errors.New("invalid rack tile")
)

// A Rack is a multiset of tiles. Order is kept only so that output is
// stable; two racks with the same tiles are the same rack.
type Rack []tilemapping.Tile

// FromString parses a rack such as "CAT*". Letters are case-insensitive,
// `*` or `?` is a blank, and spaces are ignored.
func FromString(s string) (Rack, error) {
	var r Rack
	for _, c := range s {
		switch {
		case unicode.IsSpace(c):
			continue
		case c == tilemapping.BlankToken || c == tilemapping.AltBlankToken:
			r = append(r, tilemapping.Blank)
		case unicode.IsLetter(c):
			r = append(r, tilemapping.NewTile(c))
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadRackTile, c)
		}
	}
	return r, nil
}

func (r Rack) String() string {
	var sb strings.Builder
	for _, t := range r {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// NumBlanks counts the undesignated blanks on the rack.
func (r Rack) NumBlanks() int {
	n := 0
	for _, t := range r {
		if t.IsBlank() {
			n++
		}
	}
	return n
}
