// konane inspects a single Kōnane position: its ASCII rendering, legal
// move count, capture count, and the named board invariants.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ishehadeh/konjecture/pkg/kboard"
	"github.com/ishehadeh/konjecture/pkg/kboard/ascii"
	"github.com/ishehadeh/konjecture/pkg/kboard/invariant"
	"github.com/ishehadeh/konjecture/pkg/kconfig"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	cfgPath = flag.String("config", "", "Path to a TOML config file")
	list    = flag.Bool("list", false, "Print every legal successor for each side")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: konane [options] [file]

konane reads a Kōnane position in the ASCII exchange format ('x' white,
'o' black, '_' empty) from file, or stdin if file is omitted, and prints
its move count, capture count, and spatial invariants for both sides.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	ctx := context.Background()
	flag.Parse()
	kconfig.Setup(*cfgPath)

	logw.Infof(ctx, "konane %v", version)

	text, err := readInput(flag.Arg(0))
	if err != nil {
		logw.Exitf(ctx, "Failed to read position: %v", err)
	}

	pos, err := ascii.DecodeAuto(text)
	if err != nil {
		logw.Exitf(ctx, "Invalid position: %v", err)
	}

	fmt.Println(pos)
	fmt.Println()
	for _, c := range []kboard.Color{kboard.White, kboard.Black} {
		fmt.Printf("%v: pieces=%v moves=%v captures=%v height=%v width=%v nearest_border=%.2f\n",
			c,
			int(invariant.Partizan(invariant.PieceCount{}, c).Compute(pos)),
			pos.MoveCount(c),
			pos.Captures(c),
			int(invariant.Partizan(invariant.PieceHeight{}, c).Compute(pos)),
			int(invariant.Partizan(invariant.PieceWidth{}, c).Compute(pos)),
			invariant.Partizan(invariant.NearestBorder{}, c).Compute(pos),
		)
		if *list {
			printMoves(pos, c)
		}
	}
}

func printMoves(pos *kboard.Position, c kboard.Color) {
	it := pos.Moves(c)
	for {
		next, ok := it.Next()
		if !ok {
			return
		}
		fmt.Println(next)
		fmt.Println()
	}
}

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	return sb.String(), scanner.Err()
}
