// perft walks the Kōnane move tree to a fixed depth and reports node
// counts per ply. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ishehadeh/konjecture/pkg/kboard"
	"github.com/ishehadeh/konjecture/pkg/kboard/ascii"
	"github.com/ishehadeh/konjecture/pkg/kconfig"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

var (
	width   = flag.Int("width", 0, "Board width (default from config)")
	height  = flag.Int("height", 0, "Board height (default from config)")
	depth   = flag.Int("depth", 4, "Search depth")
	mover   = flag.String("mover", "white", "Side to move first: white or black")
	divide  = flag.Bool("divide", false, "Divide counts by initial move")
	cfgPath = flag.String("config", "", "Path to a TOML config file")
)

func main() {
	ctx := context.Background()
	flag.Parse()
	kconfig.Setup(*cfgPath)

	w, h := *width, *height
	if w == 0 {
		w = kconfig.Settings.Board.Width
	}
	if h == 0 {
		h = kconfig.Settings.Board.Height
	}

	var pos *kboard.Position
	if flag.NArg() > 0 {
		text := strings.Join(flag.Args(), "\n")
		p, err := ascii.DecodeAuto(text)
		if err != nil {
			logw.Exitf(ctx, "Invalid position: %v", err)
		}
		pos = p
	} else {
		pos = kboard.Checkerboard(kboard.NewGeometry(w, h))
	}

	var moverOpt lang.Optional[kboard.Color]
	switch *mover {
	case "white":
		moverOpt = lang.Some(kboard.White)
	case "black":
		moverOpt = lang.Some(kboard.Black)
	default:
		logw.Exitf(ctx, "Invalid mover '%v': must be white or black", *mover)
	}
	turn, ok := moverOpt.V()
	if !ok {
		turn = kboard.White
	}

	maxDepth := mathx.Max(1, *depth)
	for i := 1; i <= maxDepth; i++ {
		start := time.Now()
		nodes := search(pos, turn, i, *divide && i == maxDepth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}

func search(pos *kboard.Position, mover kboard.Color, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	it := pos.Moves(mover)
	for {
		next, ok := it.Next()
		if !ok {
			break
		}
		count := search(next, mover.Opponent(), depth-1, false)
		if d {
			fmt.Fprintf(os.Stderr, "%v: %v\n", next, count)
		}
		nodes += count
	}
	return nodes
}
