package scoreboard

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tilewright/solver/board"
	"github.com/tilewright/solver/move"
	"github.com/tilewright/solver/rack"
	"github.com/tilewright/solver/tilemapping"
)

func placement(t tilemapping.Tile, row, col int) move.Placement {
	return move.Placement{Tile: t, Pos: board.Position{Row: row, Col: col}}
}

// turnOf lays the tiles of word left to right from [row, col].
func turnOf(word string, row, col int) *move.Turn {
	var turn *move.Turn
	for i, r := range word {
		tile := tilemapping.NewTile(r)
		if r >= 'a' && r <= 'z' {
			tile = tilemapping.NewWildcard(r)
		}
		p := placement(tile, row, col+i)
		w := board.WordPlacement{Word: word[:i+1]}
		if turn == nil {
			turn = move.NewTurn(board.Horizontal, p, w, nil, 15)
		} else {
			turn = turn.Extend(p, w, nil)
		}
	}
	return turn
}

func TestScore(t *testing.T) {
	is := is.New(t)
	s := NewScorer(tilemapping.EnglishScores())
	is.Equal(s.Score(turnOf("AT", 1, 2)), 2)
	is.Equal(s.Score(turnOf("QI", 0, 0)), 11)
	is.Equal(s.Score(turnOf("Qi", 0, 0)), 10)
	// blanks score zero
	is.Equal(s.Score(turnOf("zax", 0, 0)), 0)
}

func TestBingoBonus(t *testing.T) {
	is := is.New(t)
	s := NewScorer(tilemapping.EnglishScores())
	is.Equal(s.Score(turnOf("RETINAS", 0, 0)), 7)
	s.BingoBonus = 50
	is.Equal(s.Score(turnOf("RETINAS", 0, 0)), 57)
	is.Equal(s.Score(turnOf("RETINA", 0, 0)), 6)
}

func TestRecordDedup(t *testing.T) {
	is := is.New(t)
	sb := New()
	is.True(sb.Record(turnOf("AT", 0, 0), 2))
	is.True(!sb.Record(turnOf("AT", 0, 0), 2))
	is.True(sb.Record(turnOf("aT", 0, 0), 1))
	is.True(sb.Record(turnOf("AT", 1, 0), 2))
	is.Equal(sb.Len(), 3)
}

func TestBestAndAll(t *testing.T) {
	is := is.New(t)
	sb := New()
	_, ok := sb.Best()
	is.True(!ok)

	sb.Record(turnOf("AT", 0, 0), 2)
	sb.Record(turnOf("QI", 1, 0), 11)
	sb.Record(turnOf("XI", 2, 0), 9)
	sb.Record(turnOf("ZA", 3, 0), 11)

	best, ok := sb.Best()
	is.True(ok)
	is.Equal(best.Score, 11)
	is.Equal(best.Turn.Placements()[0].Pos.Row, 1) // first of the tied entries

	all := sb.All()
	is.Equal(len(all), 4)
	var scores []int
	for _, e := range all {
		scores = append(scores, e.Score)
	}
	is.Equal(scores, []int{11, 11, 9, 2})
	is.Equal(all[1].Turn.Placements()[0].Pos.Row, 3)

	is.Equal(len(sb.Top(2)), 2)
	is.Equal(len(sb.Top(0)), 4)
	is.Equal(len(sb.Top(10)), 4)
}

func TestMerge(t *testing.T) {
	is := is.New(t)
	a, b := New(), New()
	a.Record(turnOf("AT", 0, 0), 2)
	b.Record(turnOf("AT", 0, 0), 2)
	b.Record(turnOf("TA", 0, 0), 2)
	a.Merge(b)
	is.Equal(a.Len(), 2)
	is.Equal(b.Len(), 2)
}

func TestLeaveDoesNotMatter(t *testing.T) {
	is := is.New(t)
	sb := New()
	p := placement(tilemapping.NewTile('A'), 0, 0)
	is.True(sb.Record(move.NewTurn(board.Horizontal, p, board.WordPlacement{Word: "A"},
		rack.Rack{tilemapping.NewTile('B')}, 7), 1))
	is.True(!sb.Record(move.NewTurn(board.Vertical, p, board.WordPlacement{Word: "A"},
		rack.Rack{tilemapping.Blank}, 7), 1))
}
