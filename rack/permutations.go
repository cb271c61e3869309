package rack

import (
	"github.com/samber/lo"

	"github.com/tilewright/solver/tilemapping"
)

// Permutations yields each distinct tile of a rack together with the
// rest of the rack, so that duplicate tiles never start duplicate search
// branches. Given CATTO it yields:
//
//	C ATTO
//	A CTTO
//	T CATO
//	O CATT
//
// Tiles come out in order of first occurrence. A Permutations is used
// once; make a new one to start over.
type Permutations struct {
	tiles  Rack
	unique []tilemapping.Tile
	idx    int
}

// NewPermutations returns ErrEmptyRack for a rack with no tiles.
func NewPermutations(tiles Rack) (*Permutations, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyRack
	}
	return &Permutations{
		tiles:  tiles,
		unique: lo.Uniq(tiles),
	}, nil
}

// Len is the number of distinct tiles, and so the number of pairs Next
// will return.
func (p *Permutations) Len() int {
	return len(p.unique)
}

// Next returns the next distinct tile and the rack with its first
// occurrence removed. ok is false once every distinct tile was returned.
func (p *Permutations) Next() (tile tilemapping.Tile, rest Rack, ok bool) {
	if p.idx >= len(p.unique) {
		return tilemapping.Tile{}, nil, false
	}
	tile = p.unique[p.idx]
	p.idx++
	rest = make(Rack, 0, len(p.tiles)-1)
	removed := false
	for _, t := range p.tiles {
		if t == tile && !removed {
			removed = true
			continue
		}
		rest = append(rest, t)
	}
	return tile, rest, true
}
