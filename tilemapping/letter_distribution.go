package tilemapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrBadScoreLine = errors.New("malformed letter score line")

// LetterScores maps each letter to its point value.
type LetterScores map[rune]int

// EnglishScores returns the standard English letter values.
func EnglishScores() LetterScores {
	ls := LetterScores{}
	for _, group := range []struct {
		letters string
		points  int
	}{
		{"EAIONRTLSU", 1},
		{"DG", 2},
		{"BCMP", 3},
		{"FHVWY", 4},
		{"K", 5},
		{"JX", 8},
		{"QZ", 10},
	} {
		for _, r := range group.letters {
			ls[r] = group.points
		}
	}
	return ls
}

// Score gives the score of a single tile. Wildcards are always worth 0.
func (ls LetterScores) Score(t Tile) int {
	if t.Wildcard {
		return 0
	}
	return ls[t.Letter]
}

// ScanLetterScores reads lines of the form `<letter> <points>`. Blank
// lines are skipped.
func ScanLetterScores(data io.Reader) (LetterScores, error) {
	ls := LetterScores{}
	scanner := bufio.NewScanner(data)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 || utf8.RuneCountInString(fields[0]) != 1 {
			return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrBadScoreLine, scanner.Text())
		}
		p, err := strconv.Atoi(fields[1])
		if err != nil || p < 0 {
			return nil, fmt.Errorf("line %d: %w: bad points %q", lineNum, ErrBadScoreLine, fields[1])
		}
		r, _ := utf8.DecodeRuneInString(fields[0])
		letter := NewTile(r).Letter
		if _, ok := ls[letter]; ok {
			return nil, fmt.Errorf("line %d: %w: duplicate letter %c", lineNum, ErrBadScoreLine, letter)
		}
		ls[letter] = p
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ls, nil
}

// LoadLetterScores reads a points file from disk.
func LoadLetterScores(path string) (LetterScores, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ls, err := ScanLetterScores(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ls, nil
}
