package lexicon

import (
	"maps"
	"slices"
)

// state is a node of the automaton. Every string that leads to a state
// shares the same set of end positions across the word list; length is
// the longest such string and link points at the state for the longest
// suffix that ends in more places.
type state struct {
	length int32
	link   int32
	next   map[rune]int32
}

// An Automaton is a generalized suffix automaton built over every
// accepted word. Following arcs from the root for s succeeds exactly when
// s is a substring of some word, so substring lookups cost O(len(s)) and
// the automaton has at most 2N states for N dictionary characters.
// Whole-word membership is answered from a separate word set.
type Automaton struct {
	name     string
	states   []state
	words    map[string]struct{}
	alphabet []rune
}

func newAutomaton(name string, words map[string]struct{}) *Automaton {
	a := &Automaton{
		name:     name,
		words:    words,
		alphabet: alphabetOf(words),
		states:   []state{{length: 0, link: -1, next: map[rune]int32{}}},
	}
	// Insert in a fixed order so the layout does not depend on map order.
	sorted := slices.Sorted(maps.Keys(words))
	for _, w := range sorted {
		last := int32(0)
		for _, r := range w {
			last = a.extend(last, r)
		}
	}
	return a
}

func (a *Automaton) newState(length, link int32, next map[rune]int32) int32 {
	a.states = append(a.states, state{length: length, link: link, next: next})
	return int32(len(a.states) - 1)
}

// clone splits q so that a state of length `length` exists for the
// strings that now end in more places than q's longer ones.
func (a *Automaton) clone(p, q int32, r rune, length int32) int32 {
	c := a.newState(length, a.states[q].link, maps.Clone(a.states[q].next))
	// Arcs never lead back to the root, so a missing arc never equals q.
	for ; p != -1 && a.states[p].next[r] == q; p = a.states[p].link {
		a.states[p].next[r] = c
	}
	a.states[q].link = c
	return c
}

// extend appends rune r to the string ending at state last and returns
// the state for the extended string.
func (a *Automaton) extend(last int32, r rune) int32 {
	if q, ok := a.states[last].next[r]; ok {
		// The extended string is already present, from an earlier word.
		if a.states[q].length == a.states[last].length+1 {
			return q
		}
		return a.clone(last, q, r, a.states[last].length+1)
	}
	cur := a.newState(a.states[last].length+1, 0, map[rune]int32{})
	p := last
	for p != -1 {
		if _, ok := a.states[p].next[r]; ok {
			break
		}
		a.states[p].next[r] = cur
		p = a.states[p].link
	}
	if p == -1 {
		return cur
	}
	q := a.states[p].next[r]
	if a.states[p].length+1 == a.states[q].length {
		a.states[cur].link = q
		return cur
	}
	a.states[cur].link = a.clone(p, q, r, a.states[p].length+1)
	return cur
}

func (a *Automaton) Name() string { return a.name }

func (a *Automaton) Lookup(s string) (Entry, bool) {
	if s == "" {
		return Entry{}, false
	}
	cur := int32(0)
	for _, r := range s {
		nxt, ok := a.states[cur].next[r]
		if !ok {
			return Entry{}, false
		}
		cur = nxt
	}
	_, isWord := a.words[s]
	return Entry{IsSubstring: true, IsWord: isWord}, true
}

func (a *Automaton) HasWord(s string) bool {
	_, ok := a.words[s]
	return ok
}

func (a *Automaton) Alphabet() []rune { return a.alphabet }

func (a *Automaton) NumWords() int { return len(a.words) }

// NumStates is the number of automaton states, including the root.
func (a *Automaton) NumStates() int { return len(a.states) }
