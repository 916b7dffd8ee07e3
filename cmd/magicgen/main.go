// Command magicgen searches for a fresh set of bishop/rook magic numbers and
// prints them as a Go source fragment suitable for pasting into tables.go's
// frozenBishopMagics/frozenRookMagics arrays.
//
// Grounded on other_examples' blunext-chess generate.go (offline magic
// search emitting a Go-loadable artifact), adapted from that program's
// gob-encoded binary blob output to a textual Go literal, since this
// module bakes its magics in as source rather than loading them from a
// data file at runtime.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/chesscore/chesscore"
)

func main() {
	// FindMagics needs the relevant-blocker masks built by InitAttackTables.
	chesscore.InitAttackTables(false)

	start := time.Now()
	bishop, rook := chesscore.FindMagics()
	elapsed := time.Since(start)

	fmt.Println("var frozenBishopMagics = [64]uint64{")
	printMagics(bishop)
	fmt.Println("}")
	fmt.Println()
	fmt.Println("var frozenRookMagics = [64]uint64{")
	printMagics(rook)
	fmt.Println("}")

	log.Printf("search took %s", elapsed)
}

func printMagics(magics [64]uint64) {
	for sq, m := range magics {
		fmt.Printf("\t0x%016X, // %s\n", m, chesscore.Square2String[sq])
	}
}
