package invariant

import "github.com/ishehadeh/konjecture/pkg/kboard"

// NearestBorder is the average, over a color's stones, of each stone's
// distance to the nearest edge of the board.
type NearestBorder struct{}

func (NearestBorder) Compute(p *kboard.Position, c kboard.Color) float64 {
	bits := bitsOf(p, c)
	it := bits.IterSet()

	sum, n := 0.0, 0
	for {
		i, ok := it.Next()
		if !ok {
			break
		}
		x, y := p.Cell(i)
		xDist := x
		if d := p.Width - 1 - x; d < xDist {
			xDist = d
		}
		yDist := y
		if d := p.Height - 1 - y; d < yDist {
			yDist = d
		}
		dist := xDist
		if yDist < dist {
			dist = yDist
		}
		sum += float64(dist)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
