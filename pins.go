// pins.go implements the pin/check analyzer: for the side about to move, it
// finds pinned pieces and their movement restrictions, counts checkers,
// finds the squares that block a single check, and marks the meta-attack
// squares a king must not step to because it would remain on a sliding
// checker's ray. See spec section 4.4; grounded on the pinned/pinned-
// restriction/mover-in-check fields of the Rust reference's Board type,
// realized here with this package's magic-free naive sliders for the
// synthetic (non-occupancy) ray walks the algorithm needs.

package chesscore

// analyzePinsAndChecks recomputes every derived field for the side about to
// move: NofCheckers, CheckBlockSqrs, {side}Pinned, {side}PinnedRestrictions,
// and MetaAttacks. It does not touch the non-mover's fields, matching the
// "runs once per ply on the side that is about to move" scope in spec 4.4.
func analyzePinsAndChecks(p *Position) {
	side := p.Turn
	opp := 1 ^ side

	p.NofCheckers = 0
	p.CheckBlockSqrs = 0
	p.MetaAttacks = 0
	if side == ColorWhite {
		p.WhitePinned = 0
	} else {
		p.BlackPinned = 0
	}

	kingSq := p.KingSquare(side)
	kingBB := uint64(1) << uint(kingSq)
	occ := p.Occupation()

	opponentPawn := WPawn + 6*opp
	opponentKnight := WKnight + 6*opp

	if pawnAttacks[side][kingSq]&p.Pieces[opponentPawn] != 0 {
		p.NofCheckers++
		p.CheckBlockSqrs |= pawnAttacks[side][kingSq] & p.Pieces[opponentPawn]
	}
	if knightAttacks[kingSq]&p.Pieces[opponentKnight] != 0 {
		checker := knightAttacks[kingSq] & p.Pieces[opponentKnight]
		p.NofCheckers += CountBits(checker)
		p.CheckBlockSqrs |= checker
	}

	opponentQueen := WQueen + 6*opp
	opponentRook := WRook + 6*opp
	opponentBishop := WBishop + 6*opp

	for _, ray := range [2]struct {
		opponentSliders uint64
		slide           func(bb, occupancy uint64) uint64
	}{
		{p.Pieces[opponentQueen] | p.Pieces[opponentRook], slideRook},
		{p.Pieces[opponentQueen] | p.Pieces[opponentBishop], slideBishop},
	} {
		rayFromKing := ray.slide(kingBB, 0)
		potentialPinners := ray.opponentSliders & rayFromKing
		if potentialPinners == 0 {
			continue
		}

		rpp := ray.slide(kingBB, ray.opponentSliders)

		for potentialPinners > 0 {
			pinnerSq := PopLSB(&potentialPinners)
			pinnerBB := uint64(1) << uint(pinnerSq)

			specificRPP := rpp & ray.slide(pinnerBB, kingBB)

			between := specificRPP & occ
			switch CountBits(between) {
			case 1:
				pinnedSq := bitScan(between)
				if isWhitePiece(p.PieceAt(pinnedSq)) == (side == ColorWhite) {
					restriction := specificRPP | pinnerBB
					if side == ColorWhite {
						p.WhitePinned |= between
						p.WhitePinnedRestrictions[pinnedSq] = restriction
					} else {
						p.BlackPinned |= between
						p.BlackPinnedRestrictions[pinnedSq] = restriction
					}
				}
			case 0:
				p.NofCheckers++
				p.CheckBlockSqrs |= specificRPP | pinnerBB

				pEmptyBoardSlide := ray.slide(pinnerBB, 0)
				p.MetaAttacks |= kingAttacks[kingSq] & pEmptyBoardSlide &^ specificRPP &^ kingBB
			}
		}
	}
}
