package invariant

import "github.com/ishehadeh/konjecture/pkg/kboard"

// PieceCount is the number of stones a color has on the board.
type PieceCount struct{}

func (PieceCount) Compute(p *kboard.Position, c kboard.Color) float64 {
	return float64(bitsOf(p, c).CountSet())
}

// PieceHeight is the vertical span, in rows, between a color's topmost and
// bottommost stone, inclusive. A color with no stones has height 0.
type PieceHeight struct{}

func (PieceHeight) Compute(p *kboard.Position, c kboard.Color) float64 {
	bits := bitsOf(p, c)
	first, ok := bits.FirstSet()
	if !ok {
		return 0
	}
	last, _ := bits.LastSet()
	return float64(last/p.Width - first/p.Width + 1)
}

// PieceWidth is the horizontal span, in columns, between a color's
// leftmost and rightmost stone across any row, inclusive. A color with no
// stones has width 0.
type PieceWidth struct{}

func (PieceWidth) Compute(p *kboard.Position, c kboard.Color) float64 {
	bits := bitsOf(p, c)
	first, ok := -1, false
	last := -1
	it := bits.IterSet()
	for {
		i, more := it.Next()
		if !more {
			break
		}
		x, _ := p.Cell(i)
		if !ok {
			first, last, ok = x, x, true
			continue
		}
		if x < first {
			first = x
		}
		if x > last {
			last = x
		}
	}
	if !ok {
		return 0
	}
	return float64(last - first + 1)
}
