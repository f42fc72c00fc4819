package kboard_test

import (
	"testing"

	"github.com/ishehadeh/konjecture/pkg/kboard"
	"github.com/ishehadeh/konjecture/pkg/kboard/ascii"
	"github.com/stretchr/testify/assert"
)

func collectMoves(p *kboard.Position, mover kboard.Color) []string {
	var out []string
	it := p.Moves(mover)
	for {
		next, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, next.String())
	}
	return out
}

func mustDecode(t *testing.T, w, h int, lines ...string) *kboard.Position {
	t.Helper()
	p, err := ascii.Decode(w, h, lines)
	assert.NoError(t, err)
	return p
}

// TestSingleRowOneJump covers the "xo_" -> "__x" scenario: a lone white
// jump over a lone black stone into the trailing empty cell, and no legal
// black move on the same row.
func TestSingleRowOneJump(t *testing.T) {
	p := mustDecode(t, 3, 1, "xo_")

	whiteMoves := collectMoves(p, kboard.White)
	assert.Equal(t, []string{"__x"}, whiteMoves)
	assert.Equal(t, 1, p.MoveCount(kboard.White))
	assert.Equal(t, 1, p.Captures(kboard.White))

	assert.Empty(t, collectMoves(p, kboard.Black))
	assert.Equal(t, 0, p.MoveCount(kboard.Black))
}

// TestSingleRowOneJumpMirrored mirrors the colors of TestSingleRowOneJump:
// black has the one jump, white has none.
func TestSingleRowOneJumpMirrored(t *testing.T) {
	p := mustDecode(t, 3, 1, "ox_")

	blackMoves := collectMoves(p, kboard.Black)
	assert.Equal(t, []string{"__o"}, blackMoves)

	assert.Empty(t, collectMoves(p, kboard.White))
}

// TestSingleRowBlackHasNoMove covers "_oxx" -> white's one left-jump lands
// "x__x"; black, sandwiched with no empty cell to land in, has none.
func TestSingleRowBlackHasNoMove(t *testing.T) {
	p := mustDecode(t, 4, 1, "_oxx")

	whiteMoves := collectMoves(p, kboard.White)
	assert.Equal(t, []string{"x__x"}, whiteMoves)

	assert.Empty(t, collectMoves(p, kboard.Black))
}

// TestFourRowBoardExactSuccessors covers the multi-row scenario: black has
// exactly one successor (its left stone jumping down into the empty
// bottom row), white has exactly three.
func TestFourRowBoardExactSuccessors(t *testing.T) {
	p := mustDecode(t, 5, 4,
		"_____",
		"_oxo_",
		"_x___",
		"_____",
	)

	blackMoves := collectMoves(p, kboard.Black)
	assert.Equal(t, []string{
		"_____\n" +
			"__xo_\n" +
			"_____\n" +
			"_o___",
	}, blackMoves)
	assert.Equal(t, 1, p.MoveCount(kboard.Black))

	whiteMoves := collectMoves(p, kboard.White)
	assert.Equal(t, []string{
		// Up: the (1,2) white stone captures (1,1) black, landing (1,0).
		"_x___\n" +
			"__xo_\n" +
			"_____\n" +
			"_____",
		// Left: the (2,1) white stone captures (1,1) black, landing (0,1).
		"_____\n" +
			"x__o_\n" +
			"_x___\n" +
			"_____",
		// Right: the (2,1) white stone captures (3,1) black, landing (4,1).
		"_____\n" +
			"_o__x\n" +
			"_x___\n" +
			"_____",
	}, whiteMoves)
	assert.Equal(t, 3, p.MoveCount(kboard.White))
}

// TestCheckerboardIsTerminalForBothColors: a fully packed board has no
// empty cells at all, so every candidate mask is killed by the empty-mask
// step on its very first hop.
func TestCheckerboardIsTerminalForBothColors(t *testing.T) {
	p := kboard.Checkerboard(kboard.NewGeometry(4, 4))

	assert.Empty(t, collectMoves(p, kboard.White))
	assert.Empty(t, collectMoves(p, kboard.Black))
	assert.Equal(t, 0, p.MoveCount(kboard.White))
	assert.Equal(t, 0, p.MoveCount(kboard.Black))
}

// TestSolidAlternatingLineEndpointJumps covers the "one jump per color"
// alternating-line scenario: only the stone nearest each leading/trailing
// empty cell has a legal jump, and it is the only successor.
func TestSolidAlternatingLineEndpointJumps(t *testing.T) {
	p := mustDecode(t, 6, 1, "_oxox_")

	whiteMoves := collectMoves(p, kboard.White)
	assert.Equal(t, []string{"x__ox_"}, whiteMoves)

	blackMoves := collectMoves(p, kboard.Black)
	assert.Equal(t, []string{"_ox__o"}, blackMoves)
}

// TestMoveCountMatchesIteratorLength checks MoveCount's incremental-sum
// algorithm against the straightforward count of Moves() successors, which
// exercises multi-hop chains (unlike the single-hop scenarios above).
func TestMoveCountMatchesIteratorLength(t *testing.T) {
	p := mustDecode(t, 5, 1, "xo_o_")

	assert.Equal(t, len(collectMoves(p, kboard.White)), p.MoveCount(kboard.White))
	assert.Equal(t, len(collectMoves(p, kboard.Black)), p.MoveCount(kboard.Black))
}

// TestWordBoundaryCrossingJump places a solitary jump straddling bit index
// 64, the BitArray internal word boundary, on a board wide enough to force
// two storage blocks.
func TestWordBoundaryCrossingJump(t *testing.T) {
	g := kboard.NewGeometry(70, 1)
	p := kboard.EmptyPosition(g)
	// White at x=63, Black at x=64, empty landing at x=65: the jump
	// crosses from blocks[1] into blocks[0] under the N-1-bit/64 storage
	// convention.
	p.SetTile(63, 0, kboard.TileWhite)
	p.SetTile(64, 0, kboard.TileBlack)

	moves := collectMoves(p, kboard.White)
	assert.Len(t, moves, 1)
	assert.Equal(t, 1, p.MoveCount(kboard.White))
	assert.Equal(t, 1, p.Captures(kboard.White))

	next, _ := p.Moves(kboard.White).Next()
	assert.Equal(t, kboard.TileEmpty, next.GetTile(63, 0))
	assert.Equal(t, kboard.TileEmpty, next.GetTile(64, 0))
	assert.Equal(t, kboard.TileWhite, next.GetTile(65, 0))
}

// TestEmptyBoardHasNoMoves covers a large empty board: no stones, so
// neither color has any candidates at all.
func TestEmptyBoardHasNoMoves(t *testing.T) {
	p := kboard.EmptyPosition(kboard.NewGeometry(16, 16))

	assert.Empty(t, collectMoves(p, kboard.White))
	assert.Empty(t, collectMoves(p, kboard.Black))
	assert.Equal(t, 0, p.Captures(kboard.White))
}

// TestSinglePieceHasNoMoves: one stone alone on an otherwise empty board
// can never have an opponent to jump, in any direction.
func TestSinglePieceHasNoMoves(t *testing.T) {
	p := kboard.EmptyPosition(kboard.NewGeometry(8, 8))
	p.SetTile(4, 4, kboard.TileWhite)

	assert.Empty(t, collectMoves(p, kboard.White))
	assert.Equal(t, 0, p.MoveCount(kboard.White))
}

// TestCapturesCountsUnionAcrossParallelJumps checks Captures against a
// hand-derived count on the four-row scenario: two black stones, each
// individually capturable by a different white jump (the second white
// successor captures the same black stone as the first), so the union
// has exactly two distinct captured cells.
func TestCapturesCountsUnionAcrossParallelJumps(t *testing.T) {
	p := mustDecode(t, 5, 4,
		"_____",
		"_oxo_",
		"_x___",
		"_____",
	)

	assert.Equal(t, 2, p.Captures(kboard.White))
	assert.Equal(t, 1, p.Captures(kboard.Black))
}
