package movegen

import (
	"context"

	"github.com/tilewright/solver/board"
	"github.com/tilewright/solver/move"
	"github.com/tilewright/solver/rack"
	"github.com/tilewright/solver/scoreboard"
	"github.com/tilewright/solver/tilemapping"
)

// turnLayer is the grid with a partial turn and one more tile on it.
type turnLayer struct {
	grid  *board.Grid
	turn  *move.Turn
	extra move.Placement
}

func (l turnLayer) At(p board.Position) (tilemapping.Tile, bool) {
	if p == l.extra.Pos {
		return l.extra.Tile, true
	}
	if t, ok := l.turn.PlacementAt(p); ok {
		return t, true
	}
	return l.grid.At(p)
}

// designations lists the tiles t can be played as: itself, or every
// letter of the dictionary for a blank.
func (gen *Generator) designations(t tilemapping.Tile) []tilemapping.Tile {
	if !t.IsBlank() {
		return []tilemapping.Tile{t}
	}
	alph := gen.index.Alphabet()
	ts := make([]tilemapping.Tile, len(alph))
	for i, r := range alph {
		ts[i] = t.Designate(r)
	}
	return ts
}

// crossOK reports whether the word formed across o by placing t at p is
// a single letter or a dictionary word. Only grid tiles can lie on that
// line besides t, since the turn's own tiles are all along o.
func (gen *Generator) crossOK(p board.Position, t tilemapping.Tile, o board.Orientation) bool {
	cross := gen.grid.ResolveWord(p, t, o.Opposite())
	return cross.Len() < 2 || gen.index.HasWord(cross.Word)
}

// seeds returns every single-tile turn the search starts from, in order
// of start position, rack tile, blank designation and orientation.
func (gen *Generator) seeds(r rack.Rack) ([]*move.Turn, error) {
	var seeds []*move.Turn
	for _, p := range gen.startPositions() {
		perms, err := rack.NewPermutations(r)
		if err != nil {
			return nil, err
		}
		for {
			tile, rest, ok := perms.Next()
			if !ok {
				break
			}
			for _, t := range gen.designations(tile) {
				for _, o := range board.Orientations {
					word := gen.grid.ResolveWord(p, t, o)
					if _, ok := gen.index.Lookup(word.Word); !ok {
						continue
					}
					if !gen.crossOK(p, t, o) {
						continue
					}
					seeds = append(seeds, move.NewTurn(o, move.Placement{Tile: t, Pos: p},
						word, rest, gen.grid.EmptyOnLine(p, o)))
				}
			}
		}
	}
	return seeds, nil
}

// A frame is a partial turn on the stack and the seed it grew from.
type frame struct {
	turn *move.Turn
	seed int
}

// A found turn remembers its seed so results from several searches can
// be put back in the order one search would have found them.
type found struct {
	seed  int
	entry scoreboard.ScoreEntry
}

// A search is one depth-first walk. It is owned by a single goroutine.
type search struct {
	gen     *Generator
	stack   []frame
	visited map[uint64]struct{}
	results *scoreboard.Scoreboard
	found   []found
	nodes   int
}

func (gen *Generator) newSearch(seeds []frame) *search {
	stack := make([]frame, len(seeds))
	// Reversed so the first seed is popped first.
	for i, s := range seeds {
		stack[len(seeds)-1-i] = s
	}
	return &search{
		gen:     gen,
		stack:   stack,
		visited: map[uint64]struct{}{},
		results: scoreboard.New(),
	}
}

func (s *search) pop() frame {
	n := len(s.stack) - 1
	f := s.stack[n]
	s.stack[n] = frame{}
	s.stack = s.stack[:n]
	return f
}

func (s *search) run(ctx context.Context) error {
	for len(s.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := s.pop()
		h := f.turn.Hash()
		if _, ok := s.visited[h]; ok {
			continue
		}
		s.visited[h] = struct{}{}
		s.nodes++

		if w := f.turn.Word(); w.Len() >= 2 && s.gen.index.HasWord(w.Word) {
			score := s.gen.scorer.Score(f.turn)
			if s.results.Record(f.turn, score) {
				s.found = append(s.found, found{seed: f.seed,
					entry: scoreboard.ScoreEntry{Turn: f.turn, Score: score}})
			}
		}
		s.expand(f)
	}
	return nil
}

// expand pushes every extension of t by one tile past either end of its
// main word.
func (s *search) expand(f frame) {
	t := f.turn
	if !t.CanGrow() {
		return
	}
	gen := s.gen
	o := t.Orientation()
	ends := [2]board.Position{t.Start().Move(o.Start()), t.End().Move(o.End())}
	for _, p := range ends {
		if !gen.grid.Contains(p) {
			continue
		}
		perms, err := rack.NewPermutations(t.Leave())
		if err != nil {
			// CanGrow guarantees a non-empty leave.
			continue
		}
		for {
			tile, rest, ok := perms.Next()
			if !ok {
				break
			}
			for _, d := range gen.designations(tile) {
				pl := move.Placement{Tile: d, Pos: p}
				word := board.WordThrough(turnLayer{grid: gen.grid, turn: t, extra: pl}, p, o)
				if _, ok := gen.index.Lookup(word.Word); !ok {
					continue
				}
				if !gen.crossOK(p, d, o) {
					continue
				}
				s.stack = append(s.stack, frame{turn: t.Extend(pl, word, rest), seed: f.seed})
			}
		}
	}
}
