// Package scoreboard collects scored turns and ranks them.
package scoreboard

import (
	"slices"

	"github.com/tilewright/solver/move"
)

// A ScoreEntry is a completed turn and what it scored.
type ScoreEntry struct {
	Turn  *move.Turn
	Score int
}

// A Scoreboard is an append-only list of entries. It is not safe for
// concurrent use; parallel searches keep one each and merge at the end.
type Scoreboard struct {
	entries []ScoreEntry
	seen    map[uint64]struct{}
}

func New() *Scoreboard {
	return &Scoreboard{seen: map[uint64]struct{}{}}
}

// Record adds a turn unless one placing the same tiles on the same
// squares is already there. It reports whether the turn was added.
func (sb *Scoreboard) Record(t *move.Turn, score int) bool {
	k := t.Key()
	if _, ok := sb.seen[k]; ok {
		return false
	}
	sb.seen[k] = struct{}{}
	sb.entries = append(sb.entries, ScoreEntry{Turn: t, Score: score})
	return true
}

func (sb *Scoreboard) Len() int {
	return len(sb.entries)
}

// Best returns the highest scoring entry. Ties go to the one recorded
// first. ok is false for an empty scoreboard.
func (sb *Scoreboard) Best() (best ScoreEntry, ok bool) {
	for i, e := range sb.entries {
		if i == 0 || e.Score > best.Score {
			best = e
		}
	}
	return best, len(sb.entries) > 0
}

// All returns every entry by descending score; equal scores keep the
// order they were recorded in.
func (sb *Scoreboard) All() []ScoreEntry {
	es := slices.Clone(sb.entries)
	slices.SortStableFunc(es, func(a, b ScoreEntry) int {
		return b.Score - a.Score
	})
	return es
}

// Top returns at most n entries from the head of All. n <= 0 means all.
func (sb *Scoreboard) Top(n int) []ScoreEntry {
	es := sb.All()
	if n > 0 && n < len(es) {
		es = es[:n]
	}
	return es
}

// Merge records every entry of other, in other's order.
func (sb *Scoreboard) Merge(other *Scoreboard) {
	for _, e := range other.entries {
		sb.Record(e.Turn, e.Score)
	}
}
