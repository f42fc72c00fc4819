// Package ascii decodes and encodes the whitespace-trimmed ASCII board
// exchange format: each line's characters are 'x' (white), 'o' (black), or
// '_' (empty), row and column 0-based from the top-left.
package ascii

import (
	"fmt"
	"strings"

	"github.com/ishehadeh/konjecture/pkg/kboard"
)

// UnexpectedCharacterError reports a character outside {x,o,_}.
type UnexpectedCharacterError struct {
	Char     rune
	Row, Col int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("ascii: expected one of 'x', 'o', or '_' at row %v, col %v, got %q", e.Row, e.Col, e.Char)
}

// OutOfBoundsError reports a character at a coordinate beyond the declared
// board dimensions.
type OutOfBoundsError struct {
	Char          rune
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("ascii: tile %q at row %v, col %v is out of bounds for a %vx%v board", e.Char, e.Row, e.Col, e.Width, e.Height)
}

// Decode parses lines into a Position sized exactly w-by-h. Each line is
// trimmed of surrounding whitespace before its characters are read.
func Decode(w, h int, lines []string) (*kboard.Position, error) {
	g := kboard.NewGeometry(w, h)
	pos := kboard.EmptyPosition(g)

	for y, line := range lines {
		line = strings.TrimSpace(line)
		for x, c := range line {
			if x >= w || y >= h {
				return nil, &OutOfBoundsError{Char: c, Row: y, Col: x, Width: w, Height: h}
			}
			switch c {
			case 'x':
				pos.SetTile(x, y, kboard.TileWhite)
			case 'o':
				pos.SetTile(x, y, kboard.TileBlack)
			case '_':
				// already empty
			default:
				return nil, &UnexpectedCharacterError{Char: c, Row: y, Col: x}
			}
		}
	}
	return pos, nil
}

// DecodeAuto infers the board geometry from the input: width is the
// longest trimmed line, height is the number of trimmed lines (after
// discarding a leading/trailing blank line from multi-line literals).
func DecodeAuto(text string) (*kboard.Position, error) {
	lines := splitNonEmpty(text)
	w := 1
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	h := len(lines)
	if h == 0 {
		h = 1
	}
	return Decode(w, h, lines)
}

func splitNonEmpty(text string) []string {
	raw := strings.Split(strings.Trim(text, "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

// Encode renders p using Position.String, one line per row.
func Encode(p *kboard.Position) []string {
	return strings.Split(p.String(), "\n")
}
