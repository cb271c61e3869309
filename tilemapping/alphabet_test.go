package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestFromRune(t *testing.T) {
	is := is.New(t)
	tile, err := FromRune('Q')
	is.NoErr(err)
	is.Equal(tile, Tile{Letter: 'Q'})

	tile, err = FromRune('q')
	is.NoErr(err)
	is.Equal(tile, Tile{Letter: 'Q', Wildcard: true})

	_, err = FromRune('3')
	is.True(errors.Is(err, ErrBadTile))
}

func TestTileString(t *testing.T) {
	is := is.New(t)
	is.Equal(NewTile('a').String(), "A")
	is.Equal(NewWildcard('E').String(), "e")
	is.Equal(Blank.String(), "*")
	is.True(Blank.IsBlank())
	is.True(!NewWildcard('E').IsBlank())
	is.Equal(Blank.Designate('z'), Tile{Letter: 'Z', Wildcard: true})
}
