package move

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/tilewright/solver/board"
	"github.com/tilewright/solver/rack"
	"github.com/tilewright/solver/tilemapping"
)

// A Placement is one tile laid on an empty square.
type Placement struct {
	Tile tilemapping.Tile
	Pos  board.Position
}

func (p Placement) String() string {
	return fmt.Sprintf("%v%v", p.Tile, p.Pos)
}

// A Turn is a set of placements along one orientation that, together
// with the tiles already on the grid, forms a single contiguous word.
// Turns are immutable; Extend returns a new one.
type Turn struct {
	orientation board.Orientation
	placements  []Placement
	word        board.WordPlacement
	leave       rack.Rack
	minTiles    int
	maxTiles    int
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// NewTurn starts a turn with a single placement. word is the main word it
// forms and leave the tiles still on the rack. maxTiles caps how many
// tiles the turn may ever place; it is further capped by the leave.
func NewTurn(o board.Orientation, p Placement, word board.WordPlacement,
	leave rack.Rack, maxTiles int) *Turn {

	return &Turn{
		orientation: o,
		placements:  []Placement{p},
		word:        word,
		leave:       leave,
		minTiles:    1,
		maxTiles:    min(maxTiles, 1+len(leave)),
	}
}

// Extend returns a copy of t with one more placement. The receiver is not
// modified, so sibling branches can share it.
func (t *Turn) Extend(p Placement, word board.WordPlacement, leave rack.Rack) *Turn {
	placements := make([]Placement, len(t.placements), len(t.placements)+1)
	copy(placements, t.placements)
	return &Turn{
		orientation: t.orientation,
		placements:  append(placements, p),
		word:        word,
		leave:       leave,
		minTiles:    t.minTiles,
		maxTiles:    t.maxTiles,
	}
}

// String provides a string just for debugging purposes.
func (t *Turn) String() string {
	return fmt.Sprintf("<%p turn: %v %v %v tp: %v leave: %v range: %d-%d>",
		t, t.BoardCoords(), t.word.Word, t.orientation, t.TilesPlayed(),
		t.leave, t.minTiles, t.maxTiles)
}

func (t *Turn) Orientation() board.Orientation { return t.orientation }

// Placements returns the placements in the order they were added.
func (t *Turn) Placements() []Placement {
	return slices.Clone(t.placements)
}

// SortedPlacements returns the placements in reading order.
func (t *Turn) SortedPlacements() []Placement {
	ps := slices.Clone(t.placements)
	slices.SortFunc(ps, func(a, b Placement) int {
		switch {
		case a.Pos == b.Pos:
			return 0
		case a.Pos.Less(b.Pos):
			return -1
		}
		return 1
	})
	return ps
}

// Word is the main word, including tiles already on the grid.
func (t *Turn) Word() board.WordPlacement { return t.word }

// Start and End bound the main word.
func (t *Turn) Start() board.Position { return t.word.Start }
func (t *Turn) End() board.Position   { return t.word.End }

// Leave is what remains on the rack after this turn.
func (t *Turn) Leave() rack.Rack { return t.leave }

// TilesPlayed returns the number of tiles placed by this turn.
func (t *Turn) TilesPlayed() int { return len(t.placements) }

// TileRange is the inclusive range of tile counts this turn can still
// reach.
func (t *Turn) TileRange() (int, int) { return t.minTiles, t.maxTiles }

// CanGrow reports whether another tile may still be added.
func (t *Turn) CanGrow() bool {
	return len(t.leave) > 0 && len(t.placements) < t.maxTiles
}

// PlacementAt returns the tile this turn places on p, if any.
func (t *Turn) PlacementAt(p board.Position) (tilemapping.Tile, bool) {
	for _, pl := range t.placements {
		if pl.Pos == p {
			return pl.Tile, true
		}
	}
	return tilemapping.Tile{}, false
}

// TilesString is the main word with tiles already on the grid shown as
// a dot, the way plays are usually written down.
func (t *Turn) TilesString() string {
	var sb strings.Builder
	for p := t.word.Start; ; p = p.Move(t.orientation.End()) {
		if tile, ok := t.PlacementAt(p); ok {
			sb.WriteString(tile.String())
		} else {
			sb.WriteByte('.')
		}
		if p == t.word.End {
			break
		}
	}
	return sb.String()
}

// FullRack returns the rack the turn was made from, blanks shown as *.
func (t *Turn) FullRack() string {
	rs := []rune(t.leave.String())
	for _, pl := range t.placements {
		if pl.Tile.Wildcard {
			rs = append(rs, tilemapping.BlankToken)
		} else {
			rs = append(rs, pl.Tile.Letter)
		}
	}
	slices.Sort(rs)
	return string(rs)
}

// BoardCoords is the coordinate of the main word, like 8H or H8.
func (t *Turn) BoardCoords() string {
	return ToBoardGameCoords(t.word.Start.Row, t.word.Start.Col,
		t.orientation == board.Vertical)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (t *Turn) ShortDescription() string {
	return fmt.Sprintf("%v %v", t.BoardCoords(), t.TilesString())
}

func appendPlacements(b []byte, ps []Placement) []byte {
	for _, p := range ps {
		b = binary.LittleEndian.AppendUint32(b, uint32(p.Pos.Row))
		b = binary.LittleEndian.AppendUint32(b, uint32(p.Pos.Col))
		b = binary.LittleEndian.AppendUint32(b, uint32(p.Tile.Letter))
		if p.Tile.Wildcard {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	}
	return b
}

// Key identifies the set of tiles a turn lays down, whatever order they
// were added in and whichever orientation found them. Two turns with the
// same key put the same tiles on the same squares.
func (t *Turn) Key() uint64 {
	return xxhash.Sum64(appendPlacements(nil, t.SortedPlacements()))
}

// Hash is Key with the orientation mixed in; partial turns with equal
// hashes grow into the same set of turns.
func (t *Turn) Hash() uint64 {
	b := []byte{byte(t.orientation)}
	return xxhash.Sum64(appendPlacements(b, t.SortedPlacements()))
}

// Equals compares placements, ignoring the order they were added in.
// With ignoreLeave false the leaves must match too.
func (t *Turn) Equals(o *Turn, ignoreLeave bool) bool {
	if len(t.placements) != len(o.placements) {
		return false
	}
	if !slices.Equal(t.SortedPlacements(), o.SortedPlacements()) {
		return false
	}
	if ignoreLeave {
		return true
	}
	a, b := []rune(t.leave.String()), []rune(o.leave.String())
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords
// above. ok is false for anything that is not a coordinate.
func FromBoardGameCoords(c string) (pos board.Position, o board.Orientation, ok bool) {
	if m := reVertical.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[2])
		return board.Position{Row: row - 1, Col: int(m[1][0] - 'A')}, board.Vertical, row > 0
	}
	if m := reHorizontal.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[1])
		return board.Position{Row: row - 1, Col: int(m[2][0] - 'A')}, board.Horizontal, row > 0
	}
	return board.Position{}, board.Horizontal, false
}
