// Command perft runs move generation node counts against a FEN position, for
// validating the legal move generator against known perft results.
//
// Grounded on the teacher's internal/perft.go main(): same flag set
// (depth/verbose/cpuprofile/memprofile), adapted to build on this module's
// Game driver and internal/perft package instead of copy-make Position
// cloning.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/chesscore/chesscore"
	"github.com/chesscore/chesscore/internal/perft"
	"github.com/chesscore/chesscore/notation"
)

func main() {
	depth := flag.Int("depth", 1, "perft depth")
	fen := flag.String("fen", chesscore.InitialPos, "FEN of the root position")
	verbose := flag.Bool("verbose", false, "print per-category move counts")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a memory profile to")

	flag.Parse()

	chesscore.InitAttackTables(false)
	chesscore.InitZobristKeys()

	p, err := chesscore.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parse FEN: %v", err)
	}
	g := chesscore.NewGameFromPosition(p)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	start := time.Now()

	switch {
	case *divide:
		results := perft.Divide(g, *depth)
		keys := make([]string, 0, len(results))
		for k := range results {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		total := 0
		for _, k := range keys {
			log.Printf("%s %d", k, results[k])
			total += results[k]
		}
		log.Printf("Nodes reached: %d", total)

	case *verbose:
		r := &perft.Result{}
		log.Print(notation.FormatPosition(g.Position))
		nodes := perft.Verbose(g, *depth, r)
		log.Printf("nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d double_checks=%d",
			nodes, r.Captures, r.EPCaptures, r.Castles, r.Promotions, r.Checks, r.DoubleChecks)

	default:
		log.Printf("Nodes reached: %d", perft.Count(g, *depth))
	}

	log.Printf("Elapsed time: %s", time.Since(start))
}
