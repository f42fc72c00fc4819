// Package kboard contains the Kōnane bitboard view and the Position/move
// generator layered on top of pkg/bitset.
package kboard

import (
	"fmt"

	"github.com/ishehadeh/konjecture/pkg/bitset"
)

// Direction is one of the four axis-aligned jump directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the fixed visitation order move enumeration uses.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "?"
	}
}

// Geometry is a (W,H) board shape with no bits of its own: it only knows
// how to translate cells to linear indices and to build border masks.
type Geometry struct {
	Width, Height int
}

// NewGeometry returns a Geometry for a W-by-H board. Panics if either
// dimension is non-positive.
func NewGeometry(w, h int) Geometry {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("kboard: invalid geometry %vx%v", w, h))
	}
	return Geometry{Width: w, Height: h}
}

// Cells returns the number of addressable cells, W*H.
func (g Geometry) Cells() int {
	return g.Width * g.Height
}

// Blocks returns the number of 64-bit words needed to hold Cells() bits.
func (g Geometry) Blocks() int {
	return (g.Cells() + 63) / 64
}

func (g Geometry) checkCell(x, y int) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic(fmt.Sprintf("kboard: cell (%v,%v) out of bounds for %vx%v board", x, y, g.Width, g.Height))
	}
}

// Index returns the linear bit index of cell (x,y). Panics if out of
// bounds.
func (g Geometry) Index(x, y int) int {
	g.checkCell(x, y)
	return y*g.Width + x
}

// Cell returns the (x,y) cell for a linear bit index.
func (g Geometry) Cell(index int) (x, y int) {
	return index % g.Width, index / g.Width
}

// unit returns the absolute linear-index magnitude of a single cell step in
// direction d.
func (g Geometry) unit(d Direction) int {
	switch d {
	case Left, Right:
		return 1
	case Up, Down:
		return g.Width
	default:
		panic(fmt.Sprintf("kboard: invalid direction %v", d))
	}
}

// shift applies one directional shift of magnitude n*unit(d) to a, per the
// fixed bit-order/direction convention: Right and Down raise the logical
// bit index (ShiftLeft), Left and Up lower it (ShiftRight).
func (g Geometry) shift(a bitset.BitArray, d Direction, n int) bitset.BitArray {
	mag := n * g.unit(d)
	switch d {
	case Right, Down:
		return a.ShiftLeft(mag)
	case Left, Up:
		return a.ShiftRight(mag)
	default:
		panic(fmt.Sprintf("kboard: invalid direction %v", d))
	}
}

// opposite returns the reverse of d, used to walk a landing cell back to the
// stone it captured.
func (d Direction) opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		panic(fmt.Sprintf("kboard: invalid direction %v", d))
	}
}

// BorderMask returns a bitboard-capacity BitArray with every cell on the
// named edge set: Up -> top row, Down -> bottom row, Left -> left column,
// Right -> right column.
func (g Geometry) BorderMask(d Direction) bitset.BitArray {
	m := bitset.New(g.Blocks() * 64)
	switch d {
	case Up:
		m.SetRange(0, g.Width)
	case Down:
		m.SetRange(g.Width*(g.Height-1), g.Cells())
	case Left:
		m.SetRangeStep(0, g.Cells(), g.Width)
	case Right:
		m.SetRangeStep(g.Width-1, g.Cells(), g.Width)
	default:
		panic(fmt.Sprintf("kboard: invalid direction %v", d))
	}
	return m
}

// paddingMask returns the bits at index >= Cells(), if any — the capacity
// beyond W*H that must stay zero in every player bitboard.
func (g Geometry) paddingMask() bitset.BitArray {
	m := bitset.New(g.Blocks() * 64)
	if g.Cells() < m.Bits() {
		m.SetRange(g.Cells(), m.Bits())
	}
	return m
}
