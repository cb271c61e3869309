package scoreboard

import (
	"github.com/samber/lo"

	"github.com/tilewright/solver/move"
	"github.com/tilewright/solver/tilemapping"
)

// DefaultBingoTiles is the rack size a bingo bonus is usually paid for.
const DefaultBingoTiles = 7

// A Scorer values a turn by the tiles it places. Tiles already on the
// grid score nothing and neither do wildcards.
type Scorer struct {
	Scores tilemapping.LetterScores
	// BingoBonus is added when a turn places exactly BingoTiles tiles.
	// Zero disables it.
	BingoBonus int
	BingoTiles int
}

// NewScorer returns a Scorer without a bingo bonus.
func NewScorer(scores tilemapping.LetterScores) *Scorer {
	return &Scorer{Scores: scores, BingoTiles: DefaultBingoTiles}
}

func (s *Scorer) Score(t *move.Turn) int {
	score := lo.SumBy(t.Placements(), func(p move.Placement) int {
		return s.Scores.Score(p.Tile)
	})
	if s.BingoBonus != 0 && t.TilesPlayed() == s.BingoTiles {
		score += s.BingoBonus
	}
	return score
}
