// attacks.go computes the keep-protected attack bitboards the legality
// filter and the pin/check analyzer both depend on, and ties together the
// full derived-state refresh a freshly parsed or newly built Position needs.
// Grounded on the teacher's genAttacks sliding-piece loop in movegen.go,
// generalized from its interleaved per-color piece stepping to the
// contiguous per-color index ranges this package's piece ordering gives.

package chesscore

// computeAttacks returns every square color c attacks, including squares
// held by c's own pieces (so the opposing king cannot capture a defended
// piece; see the Data Model note on WhiteAttacks/BlackAttacks). Unlike the
// meta-attack squares computed by analyzePinsAndChecks, this uses the real
// board occupancy, not a king-removed one: the "x-ray past the king" case is
// handled entirely by MetaAttacks, not by this function.
func computeAttacks(p *Position, c Color) uint64 {
	occ := p.Occupation()

	pawn, knight, bishop, rook, queen, king := WPawn, WKnight, WBishop, WRook, WQueen, WKing
	if c == ColorBlack {
		pawn, knight, bishop, rook, queen, king = BPawn, BKnight, BBishop, BRook, BQueen, BKing
	}

	attacks := genPawnAttacks(p.Pieces[pawn], c)
	attacks |= genKnightAttacks(p.Pieces[knight])
	attacks |= genKingAttacks(p.Pieces[king])

	bishops := p.Pieces[bishop]
	for bishops > 0 {
		square := PopLSB(&bishops)
		attacks |= lookupBishopAttacks(square, occ)
	}
	rooks := p.Pieces[rook]
	for rooks > 0 {
		square := PopLSB(&rooks)
		attacks |= lookupRookAttacks(square, occ)
	}
	queens := p.Pieces[queen]
	for queens > 0 {
		square := PopLSB(&queens)
		attacks |= lookupQueenAttacks(square, occ)
	}

	return attacks
}

// refreshDerivedState fully rewrites every field derived from Pieces,
// Turn, and CastlingRights: both colors' attack sets, and the side-to-move's
// checker count, check-block squares, pins, and meta-attacks. Called once
// after ParseFEN builds a Position from scratch; Game.Make instead
// recomputes only the mover's attack set before re-running the pin/check
// analyzer, since the other color's attack set is not read again until that
// color has moved and recomputed it.
func refreshDerivedState(p *Position) {
	p.WhiteAttacks = computeAttacks(p, ColorWhite)
	p.BlackAttacks = computeAttacks(p, ColorBlack)
	analyzePinsAndChecks(p)
}
