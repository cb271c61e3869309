package lexicon

// SubstringIndex materializes every contiguous substring of every word.
// It costs O(L²) entries per word of length L but each lookup is a single
// map access.
type SubstringIndex struct {
	name     string
	entries  map[string]Entry
	numWords int
	alphabet []rune
}

func newSubstringIndex(name string, words map[string]struct{}) *SubstringIndex {
	idx := &SubstringIndex{
		name:     name,
		entries:  make(map[string]Entry),
		numWords: len(words),
		alphabet: alphabetOf(words),
	}
	for w := range words {
		runes := []rune(w)
		for start := range runes {
			for end := start + 1; end <= len(runes); end++ {
				sub := string(runes[start:end])
				if _, ok := idx.entries[sub]; ok {
					continue
				}
				_, isWord := words[sub]
				idx.entries[sub] = Entry{IsSubstring: true, IsWord: isWord}
			}
		}
	}
	return idx
}

func (s *SubstringIndex) Name() string { return s.name }

func (s *SubstringIndex) Lookup(str string) (Entry, bool) {
	e, ok := s.entries[str]
	return e, ok
}

func (s *SubstringIndex) HasWord(str string) bool {
	return s.entries[str].IsWord
}

func (s *SubstringIndex) Alphabet() []rune { return s.alphabet }

func (s *SubstringIndex) NumWords() int { return s.numWords }

// NumEntries is the number of distinct substrings stored.
func (s *SubstringIndex) NumEntries() int { return len(s.entries) }
