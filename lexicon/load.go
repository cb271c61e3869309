package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

var (
	ErrBadWord         = errors.New("dictionary line is not an alphabetic word")
	ErrUnknownEncoding = errors.New("unknown dictionary encoding")
)

// LoadOptions control how word files are read.
type LoadOptions struct {
	// Validate rejects any non-blank line that is not made of letters.
	Validate bool
	// Uppercase folds every word to upper case, matching how tiles are
	// stored on the board.
	Uppercase bool
	// Encoding is "utf8" (the default) or "latin1".
	Encoding string
	Kind     Kind
}

// DefaultLoadOptions validates and uppercases UTF-8 word lists into an
// automaton.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Validate: true, Uppercase: true, Encoding: "utf8", Kind: KindAutomaton}
}

func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf8", "utf-8":
		return r, nil
	case "latin1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// ReadWords reads one word per line. Blank lines are skipped.
func ReadWords(r io.Reader, opts LoadOptions) ([]string, error) {
	r, err := decoder(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	caser := cases.Upper(language.Und)
	var words []string
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if opts.Validate && !isAlphabetic(line) {
			return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrBadWord, line)
		}
		if opts.Uppercase {
			line = caser.String(line)
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func readWordFile(path string, opts LoadOptions) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := ReadWords(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// LoadFiles builds an index from a word file and an optional file of
// words to leave out. The index is named after the word file.
func LoadFiles(dictPath, omitPath string, opts LoadOptions) (Index, error) {
	words, err := readWordFile(dictPath, opts)
	if err != nil {
		return nil, err
	}
	var omitted []string
	if omitPath != "" {
		omitted, err = readWordFile(omitPath, opts)
		if err != nil {
			return nil, err
		}
	}
	name := strings.TrimSuffix(filepath.Base(dictPath), filepath.Ext(dictPath))
	idx, err := Build(opts.Kind, name, words, omitted)
	if err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", name).Int("words", idx.NumWords()).
		Int("omitted", len(omitted)).Type("index", idx).Msg("loaded lexicon")
	return idx, nil
}

// substringFootprint is a rough byte estimate of a SubstringIndex: one
// map slot plus string data per substring.
func substringFootprint(words map[string]struct{}) uint64 {
	const perEntry = 64
	var total uint64
	for w := range words {
		n := uint64(len([]rune(w)))
		total += n * (n + 1) / 2 * (perEntry + n/2)
	}
	return total
}

func chooseKind(words map[string]struct{}) Kind {
	avail := memory.TotalMemory()
	need := substringFootprint(words)
	if avail > 0 && need < avail/8 {
		log.Debug().Uint64("estimate", need).Uint64("total-memory", avail).
			Msg("substring index fits in memory")
		return KindSubstring
	}
	log.Debug().Uint64("estimate", need).Uint64("total-memory", avail).
		Msg("using automaton index")
	return KindAutomaton
}
