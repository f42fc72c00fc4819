package kboard

import "github.com/ishehadeh/konjecture/pkg/bitset"

// advance runs one iteration step of the bit-parallel jump algorithm: shift
// the candidate mask one cell in dir, keep candidates whose new position
// holds an opponent stone, shift one more cell, keep candidates whose final
// position is empty. Applied to the P-stones-minus-border mask this yields
// 1-hop landing candidates; applied again to a landing-candidate mask it
// extends the chain to the next hop.
//
// A horizontal shift carries a bit off one end of a row onto the opposite
// end of the neighbouring row, so after each Left/Right shift the column on
// the far side of travel is cleared; a jump never leaves its row.
func (p *Position) advance(mover Color, dir Direction, candidates bitset.BitArray) bitset.BitArray {
	wrapped := bitset.New(p.Geometry.Blocks() * 64)
	switch dir {
	case Right:
		wrapped = p.Geometry.BorderMask(Left)
	case Left:
		wrapped = p.Geometry.BorderMask(Right)
	}
	c := p.Geometry.shift(candidates, dir, 1).AndNot(wrapped)
	c = c.And(p.bits(mover.Opponent()))
	c = p.Geometry.shift(c, dir, 1).AndNot(wrapped)
	c = c.And(p.EmptyMask())
	return c
}

// MoveIterator enumerates the legal jumps of one mover, yielding freshly
// constructed successor positions. Directions are visited in the fixed
// order Up, Down, Left, Right; within a direction, successors are yielded
// hop count by hop count (all 1-hop jumps, then all 2-hop jumps, ...), each
// hop count in ascending landing-bit order.
type MoveIterator struct {
	pos    *Position
	mover  Color
	dirIdx int
	dir    Direction
	hop    int
	mask   bitset.BitArray
	iter   *bitset.Iter
}

// Moves returns an iterator over mover's legal jumps from p.
func (p *Position) Moves(mover Color) *MoveIterator {
	it := &MoveIterator{pos: p, mover: mover, dirIdx: -1}
	it.advanceDirection()
	return it
}

// advanceDirection moves to the next direction, (re)initialising the
// candidate mask from the mover's stones not on that direction's border. It
// skips directions whose first iteration step yields no candidates.
// Returns false once all four directions are exhausted.
func (it *MoveIterator) advanceDirection() bool {
	for {
		it.dirIdx++
		if it.dirIdx >= len(Directions) {
			return false
		}
		it.dir = Directions[it.dirIdx]
		origin := it.pos.bits(it.mover).AndNot(it.pos.Geometry.BorderMask(it.dir))
		it.mask = it.pos.advance(it.mover, it.dir, origin)
		it.hop = 1
		it.iter = it.mask.IterSet()
		if !it.mask.IsEmpty() {
			return true
		}
	}
}

// Next returns the next successor position, or (nil, false) once the
// mover's legal jumps are exhausted.
func (it *MoveIterator) Next() (*Position, bool) {
	for {
		if landing, ok := it.iter.Next(); ok {
			return it.pos.applyJump(it.mover, it.dir, it.hop, landing), true
		}
		if it.mask.IsEmpty() {
			if !it.advanceDirection() {
				return nil, false
			}
			continue
		}
		it.mask = it.pos.advance(it.mover, it.dir, it.mask)
		it.hop++
		it.iter = it.mask.IterSet()
	}
}

// applyJump constructs the successor of a hop-hop jump by mover in dir
// landing at landing: every cell from the jump's origin to landing
// (inclusive, stepping by one cell) is cleared in both bitboards, then
// landing is set to mover. Because the intermediate empty cells on the path
// are already clear, this clears exactly the origin and the hop captured
// opponent stones.
func (p *Position) applyJump(mover Color, dir Direction, hop int, landing int) *Position {
	unit := p.Geometry.unit(dir)
	delta := 2 * hop * unit

	var origin int
	switch dir {
	case Right, Down:
		origin = landing - delta
	default: // Left, Up
		origin = landing + delta
	}

	next := p.Clone()
	lo, hi := origin, landing
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i += unit {
		next.clearCell(i)
	}
	next.setCell(mover, landing)
	return next
}

// MoveCount returns the number of legal jumps available to mover, without
// materialising any successor.
func (p *Position) MoveCount(mover Color) int {
	total := 0
	for _, dir := range Directions {
		origin := p.bits(mover).AndNot(p.Geometry.BorderMask(dir))
		mask := p.advance(mover, dir, origin)
		for !mask.IsEmpty() {
			total += mask.CountSet()
			mask = p.advance(mover, dir, mask)
		}
	}
	return total
}

// Captures returns the number of opponent stones that would disappear if
// every legal jump of mover (all directions, all hop-lengths) were applied
// in parallel from p.
func (p *Position) Captures(mover Color) int {
	opponent := mover.Opponent()
	working := p.Clone()
	before := p.bits(opponent).CountSet()

	for _, dir := range Directions {
		origin := p.bits(mover).AndNot(p.Geometry.BorderMask(dir))
		mask := p.advance(mover, dir, origin)
		for !mask.IsEmpty() {
			captured := p.Geometry.shift(mask, dir.opposite(), 1)
			it := captured.IterSet()
			for {
				i, ok := it.Next()
				if !ok {
					break
				}
				working.clearCell(i)
			}
			mask = p.advance(mover, dir, mask)
		}
	}

	after := working.bits(opponent).CountSet()
	return before - after
}
