package invariant

import "github.com/ishehadeh/konjecture/pkg/kboard"

// MoveCount is the number of legal jumps available to a color.
type MoveCount struct{}

func (MoveCount) Compute(p *kboard.Position, c kboard.Color) float64 {
	return float64(p.MoveCount(c))
}

// CaptureCount is the number of opponent stones that disappear if every
// legal jump of a color were applied in parallel.
type CaptureCount struct{}

func (CaptureCount) Compute(p *kboard.Position, c kboard.Color) float64 {
	return float64(p.Captures(c))
}
