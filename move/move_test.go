package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tilewright/solver/board"
	"github.com/tilewright/solver/rack"
	"github.com/tilewright/solver/tilemapping"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.vertical)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		pos, o, ok := FromBoardGameCoords(tc.output)
		vertical := o == board.Vertical
		if !ok || pos.Row != tc.row || pos.Col != tc.col || vertical != tc.vertical {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v)",
				tc.output, tc.row, tc.col, tc.vertical, pos.Row, pos.Col, vertical)
		}
	}
	for _, bad := range []string{"", "H", "0A", "8h", "HH"} {
		if _, _, ok := FromBoardGameCoords(bad); ok {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func pl(r rune, row, col int) Placement {
	return Placement{Tile: tilemapping.NewTile(r), Pos: board.Position{Row: row, Col: col}}
}

// C is on the grid at [1, 1]; the turn adds A then T to make CAT.
func catTurn() *Turn {
	a := pl('A', 1, 2)
	t := NewTurn(board.Horizontal, a, board.WordPlacement{
		Word:  "CA",
		Start: board.Position{Row: 1, Col: 1},
		End:   board.Position{Row: 1, Col: 2},
	}, rack.Rack{tilemapping.NewTile('T')}, 2)
	return t.Extend(pl('T', 1, 3), board.WordPlacement{
		Word:  "CAT",
		Start: board.Position{Row: 1, Col: 1},
		End:   board.Position{Row: 1, Col: 3},
	}, nil)
}

func TestTurnDescription(t *testing.T) {
	is := is.New(t)
	turn := catTurn()
	is.Equal(turn.TilesPlayed(), 2)
	is.Equal(turn.BoardCoords(), "2B")
	is.Equal(turn.TilesString(), ".AT")
	is.Equal(turn.ShortDescription(), "2B .AT")
	is.Equal(turn.FullRack(), "AT")
	is.Equal(turn.Word().Word, "CAT")
	is.True(!turn.CanGrow())
	lo, hi := turn.TileRange()
	is.Equal(lo, 1)
	is.Equal(hi, 2)
}

func TestExtendDoesNotModify(t *testing.T) {
	is := is.New(t)
	base := NewTurn(board.Horizontal, pl('A', 0, 0), board.WordPlacement{Word: "A"},
		rack.Rack{tilemapping.NewTile('B'), tilemapping.NewTile('C')}, 5)
	b := base.Extend(pl('B', 0, 1), board.WordPlacement{Word: "AB"}, rack.Rack{tilemapping.NewTile('C')})
	c := base.Extend(pl('C', 0, 1), board.WordPlacement{Word: "AC"}, rack.Rack{tilemapping.NewTile('B')})
	is.Equal(base.TilesPlayed(), 1)
	is.Equal(b.Placements()[1], pl('B', 0, 1))
	is.Equal(c.Placements()[1], pl('C', 0, 1))
	is.True(base.CanGrow())
}

func TestKeyIgnoresOrder(t *testing.T) {
	is := is.New(t)
	x, y := pl('A', 2, 2), pl('T', 2, 3)
	w := board.WordPlacement{Word: "AT"}
	t1 := NewTurn(board.Horizontal, x, w, rack.Rack{y.Tile}, 7).Extend(y, w, nil)
	t2 := NewTurn(board.Horizontal, y, w, rack.Rack{x.Tile}, 7).Extend(x, w, nil)
	is.Equal(t1.Key(), t2.Key())
	is.Equal(t1.Hash(), t2.Hash())
	is.True(t1.Equals(t2, false))

	// Same single tile found along both orientations.
	h := NewTurn(board.Horizontal, x, w, nil, 7)
	v := NewTurn(board.Vertical, x, w, nil, 7)
	is.Equal(h.Key(), v.Key())
	is.True(h.Hash() != v.Hash())

	// A blank is not the letter it stands for.
	b := NewTurn(board.Horizontal, Placement{Tile: tilemapping.NewWildcard('A'), Pos: x.Pos}, w, nil, 7)
	is.True(b.Key() != h.Key())
	is.True(!b.Equals(h, true))
}

func TestEqualsWithLeaveIgnore(t *testing.T) {
	is := is.New(t)
	w := board.WordPlacement{Word: "A"}
	m1 := NewTurn(board.Horizontal, pl('A', 0, 0), w, rack.Rack{tilemapping.NewTile('B')}, 7)
	m2 := NewTurn(board.Horizontal, pl('A', 0, 0), w, rack.Rack{tilemapping.Blank}, 7)
	is.True(!m1.Equals(m2, false))
	is.True(m1.Equals(m2, true))
}
