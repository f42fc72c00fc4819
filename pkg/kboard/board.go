package kboard

import "github.com/ishehadeh/konjecture/pkg/bitset"

// Board is the 2D view of a BitArray: a Geometry paired with the bits it
// addresses. It carries no state of its own beyond the delegation — get/set
// are translated to linear-index BitArray operations.
type Board struct {
	Geometry
	Bits bitset.BitArray
}

// NewBoard returns an empty Board for the given geometry.
func NewBoard(g Geometry) Board {
	return Board{Geometry: g, Bits: bitset.New(g.Blocks() * 64)}
}

// Get reports whether (x,y) is set.
func (b Board) Get(x, y int) bool {
	return b.Bits.Get(b.Index(x, y))
}

// Set sets (x,y).
func (b *Board) Set(x, y int) {
	b.Bits.Set(b.Index(x, y))
}

// Clear clears (x,y).
func (b *Board) Clear(x, y int) {
	b.Bits.Clear(b.Index(x, y))
}

// Clone returns an independent copy of b.
func (b Board) Clone() Board {
	return Board{Geometry: b.Geometry, Bits: b.Bits.Clone()}
}
