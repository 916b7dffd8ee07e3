// Package perft implements move generation test counting used to validate
// the legal move generator against known node counts.
//
// Grounded on the teacher's internal/perft/perft.go, adapted from its
// copy-the-whole-Position make/unmake style to this module's Game driver,
// which exposes reversal-stack Make/Unmake instead.
package perft

import "github.com/chesscore/chesscore"

// Result accumulates the per-category node counts produced by Verbose.
type Result struct {
	Nodes        int
	Captures     int
	EPCaptures   int
	Castles      int
	Promotions   int
	Checks       int
	DoubleChecks int
}

// Count walks the legal move tree rooted at g's current position to depth
// and returns the number of leaf nodes reached.
//
// See https://www.chessprogramming.org/Perft_Results
func Count(g *chesscore.Game, depth int) int {
	if depth == 0 {
		return 1
	}

	list := g.LegalMoves
	if depth == 1 {
		return list.LastMoveIndex
	}

	nodes := 0
	for _, m := range list.Slice() {
		g.Make(m)
		nodes += Count(g, depth-1)
		g.Unmake()
	}

	return nodes
}

// Verbose follows Count's traversal but also tallies move-category counts
// into r. Use it to localize a divergence in the move generation tree, not
// to measure raw throughput.
func Verbose(g *chesscore.Game, depth int, r *Result) int {
	list := g.LegalMoves
	if depth == 1 {
		tallyLeaf(&list, r)
		return list.LastMoveIndex
	}

	nodes := 0
	for _, m := range list.Slice() {
		if m.IsCapture() {
			r.Captures++
		}
		if m.IsEnPassant() {
			r.EPCaptures++
		}
		if m.IsShortCastle() || m.IsLongCastle() {
			r.Castles++
		}
		if m.IsPromotion() {
			r.Promotions++
		}

		g.Make(m)

		if g.Position.NofCheckers > 0 {
			r.Checks++
		}
		if g.Position.NofCheckers > 1 {
			r.DoubleChecks++
		}

		cnt := Verbose(g, depth-1, r)
		nodes += cnt

		g.Unmake()
	}

	return nodes
}

func tallyLeaf(list *chesscore.MoveList, r *Result) {
	for _, m := range list.Slice() {
		if m.IsCapture() {
			r.Captures++
		}
		if m.IsEnPassant() {
			r.EPCaptures++
		}
		if m.IsShortCastle() || m.IsLongCastle() {
			r.Castles++
		}
		if m.IsPromotion() {
			r.Promotions++
		}
	}
}

// Divide returns, for every legal root move, the number of leaf nodes
// reached after that move to the given depth. Useful for comparing against
// a reference engine's divide output to find which root move diverges.
func Divide(g *chesscore.Game, depth int) map[string]int {
	out := make(map[string]int, g.LegalMoves.LastMoveIndex)

	for _, m := range g.LegalMoves.Slice() {
		g.Make(m)
		out[moveKey(m)] = Count(g, depth-1)
		g.Unmake()
	}

	return out
}

func moveKey(m chesscore.Move) string {
	s := chesscore.Square2String[m.From()] + chesscore.Square2String[m.To()]
	if m.IsPromotion() {
		switch m.PromotedPiece() % 6 {
		case chesscore.WKnight:
			s += "n"
		case chesscore.WBishop:
			s += "b"
		case chesscore.WRook:
			s += "r"
		case chesscore.WQueen:
			s += "q"
		}
	}
	return s
}
