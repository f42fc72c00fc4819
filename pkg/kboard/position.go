package kboard

import (
	"fmt"

	"github.com/ishehadeh/konjecture/pkg/bitset"
)

// Color represents the playing side: white or black.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "?"
	}
}

// Tile is the occupant of a cell.
type Tile int

const (
	TileEmpty Tile = iota
	TileBlack
	TileWhite
)

func (t Tile) String() string {
	switch t {
	case TileWhite:
		return "x"
	case TileBlack:
		return "o"
	default:
		return "_"
	}
}

// Position is a pair of BitBoards, black and white, sharing one geometry. A
// cell is Empty, Black, or White; black and white are always disjoint.
type Position struct {
	Geometry
	Black, White Board
}

// EmptyPosition returns a position with no pieces on a W-by-H board.
func EmptyPosition(g Geometry) *Position {
	return &Position{Geometry: g, Black: NewBoard(g), White: NewBoard(g)}
}

// Checkerboard returns a fully-occupied alternating position, White on
// (0,0).
func Checkerboard(g Geometry) *Position {
	p := EmptyPosition(g)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if (x+y)%2 == 0 {
				p.SetTile(x, y, TileWhite)
			} else {
				p.SetTile(x, y, TileBlack)
			}
		}
	}
	return p
}

// FromRawBitmaps builds a position from a pair of word sequences, one per
// color, using the bit-order convention of pkg/bitset.FromWords: bit 0 of
// the first word is cell (0,0). No endianness transform is performed.
func FromRawBitmaps(g Geometry, black, white []uint64) *Position {
	p := EmptyPosition(g)
	p.Black.Bits = bitset.FromWords(g.Blocks(), black)
	p.White.Bits = bitset.FromWords(g.Blocks(), white)
	p.checkDisjoint()
	return p
}

// RawBitmaps exports the position's bits as a pair of word sequences using
// the same convention FromRawBitmaps accepts.
func (p *Position) RawBitmaps() (black, white []uint64) {
	return p.Black.Bits.Words(), p.White.Bits.Words()
}

func (p *Position) checkDisjoint() {
	if !p.Black.Bits.And(p.White.Bits).IsEmpty() {
		panic("kboard: black and white bits are not disjoint")
	}
}

// Clone returns an independent copy of p.
func (p *Position) Clone() *Position {
	return &Position{Geometry: p.Geometry, Black: p.Black.Clone(), White: p.White.Clone()}
}

// SetTile writes Black, White or Empty at (x,y), clearing the other color.
func (p *Position) SetTile(x, y int, t Tile) {
	i := p.Geometry.Index(x, y)
	p.Black.Bits.Clear(i)
	p.White.Bits.Clear(i)
	switch t {
	case TileBlack:
		p.Black.Bits.Set(i)
	case TileWhite:
		p.White.Bits.Set(i)
	case TileEmpty:
	default:
		panic(fmt.Sprintf("kboard: invalid tile %v", t))
	}
}

// GetTile reads the occupant of (x,y). Panics if both colors are somehow
// set (a fatal invariant violation).
func (p *Position) GetTile(x, y int) Tile {
	i := p.Geometry.Index(x, y)
	b, w := p.Black.Bits.Get(i), p.White.Bits.Get(i)
	switch {
	case b && w:
		panic(fmt.Sprintf("kboard: cell (%v,%v) set in both colors", x, y))
	case b:
		return TileBlack
	case w:
		return TileWhite
	default:
		return TileEmpty
	}
}

// EmptyMask returns the complement of black|white, with padding bits (index
// >= W*H) forced to zero.
func (p *Position) EmptyMask() bitset.BitArray {
	occupied := p.Black.Bits.Or(p.White.Bits)
	return occupied.Not().AndNot(p.Geometry.paddingMask())
}

// bits returns the bitboard belonging to c.
func (p *Position) bits(c Color) bitset.BitArray {
	if c == Black {
		return p.Black.Bits
	}
	return p.White.Bits
}

func (p *Position) clearCell(i int) {
	p.Black.Bits.Clear(i)
	p.White.Bits.Clear(i)
}

func (p *Position) setCell(c Color, i int) {
	if c == Black {
		p.Black.Bits.Set(i)
	} else {
		p.White.Bits.Set(i)
	}
}

// String renders the position as the §6 ASCII exchange format, top row
// first, 'x' for White, 'o' for Black, '_' for Empty.
func (p *Position) String() string {
	buf := make([]byte, 0, p.Height*(p.Width+1))
	for y := 0; y < p.Height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < p.Width; x++ {
			buf = append(buf, []byte(p.GetTile(x, y).String())...)
		}
	}
	return string(buf)
}
