// Package movegen finds every legal turn a rack can make on a grid. The
// search is a depth-first walk over partial turns kept on an explicit
// stack; each partial turn's main word must be a substring of some
// dictionary word or it is pruned.
package movegen

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tilewright/solver/board"
	"github.com/tilewright/solver/lexicon"
	"github.com/tilewright/solver/move"
	"github.com/tilewright/solver/rack"
	"github.com/tilewright/solver/scoreboard"
)

var ErrUnknownFirstMove = errors.New("unknown first move policy")

// FirstMovePolicy says where turns may start on an empty grid, which has
// no anchors.
type FirstMovePolicy string

const (
	// FirstMoveCenter requires the first turn to cover the center square.
	FirstMoveCenter FirstMovePolicy = "center"
	// FirstMoveAny lets the first turn go anywhere.
	FirstMoveAny FirstMovePolicy = "any"
)

func ParseFirstMovePolicy(s string) (FirstMovePolicy, error) {
	switch FirstMovePolicy(s) {
	case "", FirstMoveCenter:
		return FirstMoveCenter, nil
	case FirstMoveAny:
		return FirstMoveAny, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFirstMove, s)
}

// Generator searches one grid with one dictionary. The grid and the index
// are only read, so a Generator may run several searches at once.
type Generator struct {
	grid      *board.Grid
	index     lexicon.Index
	scorer    *scoreboard.Scorer
	firstMove FirstMovePolicy
	workers   int
}

type Option func(*Generator)

func WithFirstMove(p FirstMovePolicy) Option {
	return func(g *Generator) { g.firstMove = p }
}

// WithWorkers splits the search over n goroutines. n < 1 is treated as 1.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = max(n, 1) }
}

func NewGenerator(grid *board.Grid, index lexicon.Index, scorer *scoreboard.Scorer,
	opts ...Option) *Generator {

	gen := &Generator{
		grid:      grid,
		index:     index,
		scorer:    scorer,
		firstMove: FirstMoveCenter,
		workers:   1,
	}
	for _, o := range opts {
		o(gen)
	}
	return gen
}

func (gen *Generator) Grid() *board.Grid          { return gen.grid }
func (gen *Generator) Index() lexicon.Index       { return gen.index }
func (gen *Generator) Workers() int               { return gen.workers }
func (gen *Generator) FirstMove() FirstMovePolicy { return gen.firstMove }

// startPositions are the squares seeds are laid on.
func (gen *Generator) startPositions() []board.Position {
	if !gen.grid.IsEmpty() {
		return gen.grid.AnchorPositions()
	}
	if gen.firstMove == FirstMoveAny {
		return gen.grid.Positions()
	}
	return []board.Position{gen.grid.Center()}
}

// Generate finds and scores every turn the rack can make. If ctx is done
// before the search finishes, the turns found so far are returned along
// with ctx.Err().
func (gen *Generator) Generate(ctx context.Context, r rack.Rack) (*scoreboard.Scoreboard, error) {
	if len(r) == 0 {
		return nil, rack.ErrEmptyRack
	}
	session := uuid.New()
	logger := log.With().Str("session", session.String()).Logger()
	started := time.Now()

	seeds, err := gen.seeds(r)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("rack", r.String()).Int("seeds", len(seeds)).
		Int("workers", gen.workers).Msg("search-starting")

	workers := min(gen.workers, max(len(seeds), 1))
	results, nodes, err := gen.run(ctx, seeds, workers, logger)

	logger.Debug().Int("nodes", nodes).Int("turns", results.Len()).
		Dur("elapsed", time.Since(started)).Err(err).Msg("search-done")
	return results, err
}

// run deals seeds round-robin to the workers. Each worker keeps its own
// stack, visited set and scoreboard. Once every worker has stopped, the
// turns they found are merged in seed order, which gives the same
// scoreboard whatever the number of workers.
func (gen *Generator) run(ctx context.Context, seeds []*move.Turn, workers int,
	logger zerolog.Logger) (*scoreboard.Scoreboard, int, error) {

	work := make([][]frame, workers)
	for i, s := range seeds {
		work[i%workers] = append(work[i%workers], frame{turn: s, seed: i})
	}
	searches := make([]*search, workers)
	for t := range work {
		searches[t] = gen.newSearch(work[t])
	}

	var err error
	if workers == 1 {
		err = searches[0].run(ctx)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for t := range searches {
			g.Go(func() error {
				logger.Debug().Msgf("Thread %d starting with %d seeds", t, len(work[t]))
				err := searches[t].run(gctx)
				logger.Debug().Msgf("Thread %d done; %d turns", t, searches[t].results.Len())
				return err
			})
		}
		err = g.Wait()
	}

	var all []found
	nodes := 0
	for _, s := range searches {
		all = append(all, s.found...)
		nodes += s.nodes
	}
	// Each seed belongs to one worker, so a stable sort keeps the order
	// turns were found in within a seed.
	slices.SortStableFunc(all, func(a, b found) int { return a.seed - b.seed })
	results := scoreboard.New()
	for _, f := range all {
		results.Record(f.entry.Turn, f.entry.Score)
	}
	return results, nodes, err
}
