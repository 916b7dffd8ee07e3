// legality.go filters a pseudo-legal move list down to legal moves, and
// resolves the eaten-piece field on captures. Grounded on spec section 4.6;
// the teacher has no equivalent (movegen.go instead legality-checks by
// copy-making onto a cloned Position and rejecting if the king ends up
// attacked), so this is built from the pin/check analyzer's derived fields
// directly rather than by simulating each move.
package chesscore

// GenerateLegal appends every legal move for the side to move to list. It
// also sets the eaten-piece field on every capturing move, which the
// pseudo-legal generator leaves unresolved.
func GenerateLegal(p *Position, list *MoveList) {
	var pseudo MoveList
	GeneratePseudoLegal(p, &pseudo)

	opponentAttacks := p.Attacks(1 ^ p.Turn)
	metaAttacks := p.MetaAttacks
	pinned := p.pinned(p.Turn)
	restrictions := p.pinnedRestrictions(p.Turn)

	for _, m := range pseudo.Slice() {
		if m.IsCapture() {
			m = resolveEatenPiece(p, m)
		}

		if !isLegal(p, m, opponentAttacks, metaAttacks, pinned, restrictions) {
			continue
		}
		list.Push(m)
	}
}

// isLegal reports whether a pseudo-legal move may actually be played.
func isLegal(p *Position, m Move, opponentAttacks, metaAttacks, pinned uint64, restrictions *[64]uint64) bool {
	if m.IsCastle() {
		// genCastlingMoves already verified the king's path is unattacked and
		// unoccupied; a castle is otherwise always legal once generated.
		return true
	}

	isKingMove := m.MovedPiece() == WKing || m.MovedPiece() == BKing
	if isKingMove {
		to := uint64(1) << uint(m.To())
		return opponentAttacks&to == 0 && metaAttacks&to == 0
	}

	if p.NofCheckers >= 2 {
		// Only the king may move out of a double check.
		return false
	}

	if p.NofCheckers == 1 {
		to := uint64(1) << uint(m.To())
		blocks := p.CheckBlockSqrs&to != 0
		if m.IsEnPassant() {
			// The captured pawn's square, not the destination, is what
			// leaves the check-block set; check that instead.
			capturedSq := m.To() - 8
			if p.Turn == ColorBlack {
				capturedSq = m.To() + 8
			}
			blocks = blocks || p.CheckBlockSqrs&(uint64(1)<<uint(capturedSq)) != 0
		}
		if !blocks {
			return false
		}
	}

	from := m.From()
	if pinned&(uint64(1)<<uint(from)) != 0 {
		to := uint64(1) << uint(m.To())
		if restrictions[from]&to == 0 {
			return false
		}
	}

	if m.IsEnPassant() && leavesKingInCheckAfterEP(p, m) {
		return false
	}

	return true
}

// leavesKingInCheckAfterEP handles the rare rank-pin edge case: capturing en
// passant removes two pawns from the same rank as the king, which can expose
// a horizontal pin that neither pawn's own pin state reflects (each pawn
// alone still blocks the ray; together they do not).
func leavesKingInCheckAfterEP(p *Position, m Move) bool {
	kingSq := p.KingSquare(p.Turn)
	kingRank := kingSq / 8
	fromRank := m.From() / 8
	if kingRank != fromRank {
		return false
	}

	capturedSq := m.To() - 8
	if p.Turn == ColorBlack {
		capturedSq = m.To() + 8
	}

	occ := p.Occupation()
	occ &^= uint64(1) << uint(m.From())
	occ &^= uint64(1) << uint(capturedSq)
	occ |= uint64(1) << uint(m.To())

	opp := 1 ^ p.Turn
	rookLike := p.Pieces[WRook+colorOffset(opp)] | p.Pieces[WQueen+colorOffset(opp)]

	return lookupRookAttacks(kingSq, occ)&rookLike != 0
}

// resolveEatenPiece identifies the piece standing on a capturing move's
// destination (or, for en passant, the pawn one rank behind it) and returns
// m with that field filled in.
func resolveEatenPiece(p *Position, m Move) Move {
	target := m.To()
	if m.IsEnPassant() {
		if p.Turn == ColorWhite {
			target = m.To() - 8
		} else {
			target = m.To() + 8
		}
	}
	return m.WithEatenPiece(p.PieceAt(target))
}
