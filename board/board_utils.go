package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/tilewright/solver/tilemapping"
)

var (
	ErrBadToken   = errors.New("unexpected board token")
	ErrRaggedRows = errors.New("rows have different numbers of columns")
	ErrNoRows     = errors.New("board has no rows")
)

// Parse reads a board in text form: whitespace-separated one-character
// tokens, `-` for an empty square, uppercase for a tile and lowercase for
// a wildcard holding that letter. Blank lines are ignored.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]tilemapping.Tile
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]tilemapping.Tile, 0, len(fields))
		for _, tok := range fields {
			if utf8.RuneCountInString(tok) != 1 {
				return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrBadToken, tok)
			}
			c, _ := utf8.DecodeRuneInString(tok)
			if c == tilemapping.EmptyToken {
				row = append(row, tilemapping.Tile{})
				continue
			}
			t, err := tilemapping.FromRune(c)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrBadToken, tok)
			}
			row = append(row, t)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %w: expected %d, got %d",
				lineNum, ErrRaggedRows, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, t := range row {
			if t.Letter == 0 {
				continue
			}
			if err := g.Set(Position{Row: r, Col: c}, t); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// LoadFile loads a board file from disk.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("rows", g.rows).Int("cols", g.cols).
		Int("tiles", g.tilesPlayed).Msg("loaded board")
	return g, nil
}

// String renders the grid in the same text format Parse reads.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			t, ok := g.At(Position{Row: r, Col: c})
			if !ok {
				sb.WriteRune(tilemapping.EmptyToken)
				continue
			}
			sb.WriteString(t.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ToDisplayText draws the grid with column letters and 1-based row
// numbers, the coordinates used in move descriptions.
func (g *Grid) ToDisplayText() string {
	var str string
	row := "   "
	for i := 0; i < g.cols; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", g.cols*2) + "\n"
	for i := 0; i < g.rows; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < g.cols; j++ {
			t, ok := g.At(Position{Row: i, Col: j})
			if ok {
				row = row + t.String() + " "
			} else {
				row = row + ". "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", g.cols*2) + "\n"
	return "\n" + str
}
