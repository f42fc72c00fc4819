// Package invariant computes scalar metrics (piece counts, spatial spread,
// move/capture counts) from a kboard.Position, consumer-facing reductions
// layered entirely on Position's exported surface.
package invariant

import (
	"github.com/ishehadeh/konjecture/pkg/bitset"
	"github.com/ishehadeh/konjecture/pkg/kboard"
)

// Invariant computes one scalar metric from a whole position.
type Invariant interface {
	Compute(p *kboard.Position) float64
}

// PlayerInvariant computes a scalar metric for a single color's stones.
type PlayerInvariant interface {
	Compute(p *kboard.Position, c kboard.Color) float64
}

type impartial struct {
	inner PlayerInvariant
}

// Impartial builds an Invariant that applies inner to the union of both
// colors' stones, as if they belonged to one side.
func Impartial(inner PlayerInvariant) Invariant {
	return impartial{inner: inner}
}

func (v impartial) Compute(p *kboard.Position) float64 {
	black, white := p.RawBitmaps()
	union := make([]uint64, len(black))
	for i := range union {
		union[i] = black[i] | white[i]
	}
	combined := kboard.FromRawBitmaps(p.Geometry, make([]uint64, len(black)), union)
	return v.inner.Compute(combined, kboard.White)
}

type partizan struct {
	inner PlayerInvariant
	color kboard.Color
}

// Partizan builds an Invariant that applies inner only to c's stones.
func Partizan(inner PlayerInvariant, c kboard.Color) Invariant {
	return partizan{inner: inner, color: c}
}

func (v partizan) Compute(p *kboard.Position) float64 {
	return v.inner.Compute(p, v.color)
}

// bitsOf returns c's bitboard contents directly, for invariants that read
// raw bit geometry rather than going through Position's capture/move
// semantics.
func bitsOf(p *kboard.Position, c kboard.Color) bitset.BitArray {
	if c == kboard.Black {
		return p.Black.Bits
	}
	return p.White.Bits
}
