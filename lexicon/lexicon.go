// Package lexicon holds the dictionary indexes used to prune the move
// search. An index answers two questions about any string: is it part of
// some accepted word, and is it an accepted word itself.
package lexicon

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownKind = errors.New("unknown lexicon index kind")

// An Entry describes a string found in the index. IsSubstring is always
// true; strings that are not part of any word have no entry at all.
type Entry struct {
	IsSubstring bool
	IsWord      bool
}

// Index is implemented by every dictionary index.
type Index interface {
	Name() string
	// Lookup returns false if s is not contained in any accepted word.
	Lookup(s string) (Entry, bool)
	HasWord(s string) bool
	// Alphabet is the sorted set of letters used by accepted words.
	Alphabet() []rune
	NumWords() int
}

// Kind selects an Index implementation.
type Kind string

const (
	// KindAutomaton is a suffix automaton; space is linear in the total
	// number of dictionary characters.
	KindAutomaton Kind = "automaton"
	// KindSubstring stores every substring of every word in a map.
	KindSubstring Kind = "substring"
	// KindAuto chooses the substring map when it comfortably fits in
	// memory and the automaton otherwise.
	KindAuto Kind = "auto"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindAutomaton, KindSubstring, KindAuto:
		return k, nil
	case "":
		return KindAutomaton, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// wordSet returns the accepted words without duplicates or omitted words.
func wordSet(words, omitted []string) map[string]struct{} {
	omit := make(map[string]struct{}, len(omitted))
	for _, w := range omitted {
		omit[w] = struct{}{}
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := omit[w]; ok {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

func alphabetOf(words map[string]struct{}) []rune {
	seen := map[rune]struct{}{}
	for w := range words {
		for _, r := range w {
			seen[r] = struct{}{}
		}
	}
	alph := make([]rune, 0, len(seen))
	for r := range seen {
		alph = append(alph, r)
	}
	slices.Sort(alph)
	return alph
}

// Build makes an index of the given kind out of words, leaving out any
// word that appears in omitted.
func Build(kind Kind, name string, words, omitted []string) (Index, error) {
	set := wordSet(words, omitted)
	if kind == KindAuto {
		kind = chooseKind(set)
	}
	switch kind {
	case KindAutomaton, "":
		return newAutomaton(name, set), nil
	case KindSubstring:
		return newSubstringIndex(name, set), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
