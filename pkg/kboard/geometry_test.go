package kboard_test

import (
	"testing"

	"github.com/ishehadeh/konjecture/pkg/kboard"
	"github.com/stretchr/testify/assert"
)

func TestBorderMaskCardinality(t *testing.T) {
	g := kboard.NewGeometry(5, 4)

	tests := []struct {
		dir  kboard.Direction
		want int
	}{
		{kboard.Up, 5},
		{kboard.Down, 5},
		{kboard.Left, 4},
		{kboard.Right, 4},
	}

	for _, tt := range tests {
		m := g.BorderMask(tt.dir)
		assert.Equal(t, tt.want, m.CountSet(), "direction %v", tt.dir)
	}
}

func TestBorderMaskTopRowIsExactlyRowZero(t *testing.T) {
	g := kboard.NewGeometry(5, 4)
	m := g.BorderMask(kboard.Up)

	for i := 0; i < g.Cells(); i++ {
		_, y := g.Cell(i)
		assert.Equal(t, y == 0, m.Get(i), "cell index %v", i)
	}
}

func TestBorderMaskBottomRow(t *testing.T) {
	g := kboard.NewGeometry(5, 4)
	m := g.BorderMask(kboard.Down)

	for i := 0; i < g.Cells(); i++ {
		_, y := g.Cell(i)
		assert.Equal(t, y == g.Height-1, m.Get(i), "cell index %v", i)
	}
}

func TestBorderMaskColumns(t *testing.T) {
	g := kboard.NewGeometry(5, 4)
	left := g.BorderMask(kboard.Left)
	right := g.BorderMask(kboard.Right)

	for i := 0; i < g.Cells(); i++ {
		x, _ := g.Cell(i)
		assert.Equal(t, x == 0, left.Get(i), "left cell index %v", i)
		assert.Equal(t, x == g.Width-1, right.Get(i), "right cell index %v", i)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := kboard.NewGeometry(7, 3)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.Index(x, y)
			gx, gy := g.Cell(i)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}
}
