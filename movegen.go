// movegen.go generates pseudo-legal moves: every move a piece could make
// ignoring whether it leaves its own king in check. legality.go filters this
// list down to legal moves using the pin/check state movegen.go leaves
// untouched. Grounded on the teacher's movegen.go generator, restructured
// from its copy-make legality check (now moved to legality.go) and
// generalized to the contiguous per-color piece index ranges.

package chesscore

// GeneratePseudoLegal appends every pseudo-legal move for the side to move
// to list.
func GeneratePseudoLegal(p *Position, list *MoveList) {
	genPawnMoves(p, list)
	genKnightMoves(p, list)
	genSlidingMoves(p, list, WBishop)
	genSlidingMoves(p, list, WRook)
	genSlidingMoves(p, list, WQueen)
	genKingMoves(p, list)
	genCastlingMoves(p, list)
}

func colorOffset(c Color) int {
	if c == ColorBlack {
		return 6
	}
	return 0
}

// genPawnMoves generates single/double pushes, diagonal captures,
// promotions (plain and capturing), and en-passant captures.
func genPawnMoves(p *Position, list *MoveList) {
	white := p.Turn == ColorWhite
	off := colorOffset(p.Turn)
	pawn := WPawn + off

	occ := p.Occupation()
	enemyOcc := p.occupationOf(1 ^ p.Turn)

	var pushDelta, doublePushRank, promotionRank int
	if white {
		pushDelta, doublePushRank, promotionRank = 8, 1, 6
	} else {
		pushDelta, doublePushRank, promotionRank = -8, 6, 1
	}

	pawns := p.Pieces[pawn]
	for pawns > 0 {
		from := PopLSB(&pawns)
		rank := from / 8

		to := from + pushDelta
		if to >= 0 && to < 64 && !Test(occ, to) {
			if rank == promotionRank {
				genPromotions(list, from, to, pawn, white, false)
			} else {
				list.Push(NewQuietMove(from, to, pawn, white))

				if rank == doublePushRank {
					to2 := to + pushDelta
					if !Test(occ, to2) {
						list.Push(NewDoublePushMove(from, to2, pawn, white))
					}
				}
			}
		}

		for attacks := pawnAttacks[p.Turn][from]; attacks > 0; {
			target := PopLSB(&attacks)
			switch {
			case Test(enemyOcc, target):
				if rank == promotionRank {
					genPromotions(list, from, target, pawn, white, true)
				} else {
					list.Push(NewCaptureMove(from, target, pawn, white))
				}
			case target == p.EPSquare:
				list.Push(NewEnPassantMove(from, target, pawn, white))
			}
		}
	}
}

func genPromotions(list *MoveList, from, to int, pawn Piece, white, capture bool) {
	off := colorOffset(colorOf(white))
	list.Push(NewPromotionMove(from, to, pawn, WKnight+off, white, capture))
	list.Push(NewPromotionMove(from, to, pawn, WBishop+off, white, capture))
	list.Push(NewPromotionMove(from, to, pawn, WRook+off, white, capture))
	list.Push(NewPromotionMove(from, to, pawn, WQueen+off, white, capture))
}

func colorOf(white bool) Color {
	if white {
		return ColorWhite
	}
	return ColorBlack
}

func genKnightMoves(p *Position, list *MoveList) {
	white := p.Turn == ColorWhite
	off := colorOffset(p.Turn)
	knight := WKnight + off
	own := p.occupationOf(p.Turn)
	enemyOcc := p.occupationOf(1 ^ p.Turn)

	knights := p.Pieces[knight]
	for knights > 0 {
		from := PopLSB(&knights)
		targets := knightAttacks[from] &^ own
		for targets > 0 {
			to := PopLSB(&targets)
			if Test(enemyOcc, to) {
				list.Push(NewCaptureMove(from, to, knight, white))
			} else {
				list.Push(NewQuietMove(from, to, knight, white))
			}
		}
	}
}

func genKingMoves(p *Position, list *MoveList) {
	white := p.Turn == ColorWhite
	off := colorOffset(p.Turn)
	king := WKing + off
	own := p.occupationOf(p.Turn)
	enemyOcc := p.occupationOf(1 ^ p.Turn)

	from := p.KingSquare(p.Turn)
	targets := kingAttacks[from] &^ own
	for targets > 0 {
		to := PopLSB(&targets)
		if Test(enemyOcc, to) {
			list.Push(NewCaptureMove(from, to, king, white))
		} else {
			list.Push(NewQuietMove(from, to, king, white))
		}
	}
}

// genSlidingMoves generates moves for bishop, rook, or queen (lo selects
// which; pass WBishop, WRook, or WQueen). Black's piece index is lo+6.
func genSlidingMoves(p *Position, list *MoveList, lo Piece) {
	white := p.Turn == ColorWhite
	piece := lo + colorOffset(p.Turn)
	own := p.occupationOf(p.Turn)
	enemyOcc := p.occupationOf(1 ^ p.Turn)
	occ := p.Occupation()

	pieces := p.Pieces[piece]
	for pieces > 0 {
		from := PopLSB(&pieces)

		var targets uint64
		switch lo {
		case WBishop:
			targets = lookupBishopAttacks(from, occ)
		case WRook:
			targets = lookupRookAttacks(from, occ)
		case WQueen:
			targets = lookupQueenAttacks(from, occ)
		}
		targets &^= own

		for targets > 0 {
			to := PopLSB(&targets)
			if Test(enemyOcc, to) {
				list.Push(NewCaptureMove(from, to, piece, white))
			} else {
				list.Push(NewQuietMove(from, to, piece, white))
			}
		}
	}
}

// genCastlingMoves generates the castling moves the position's recorded
// rights and current occupancy/attack state permit. Legality against check
// (the king may not start, pass through, or land on an attacked square) is
// verified here directly against castlingAttackPath and the opponent's
// attack set, since the pin/check analyzer does not itself cover castling.
func genCastlingMoves(p *Position, list *MoveList) {
	occ := p.Occupation()
	opponentAttacks := p.Attacks(1 ^ p.Turn)

	var rightsBase int
	var moves [2]Move
	if p.Turn == ColorWhite {
		rightsBase = 0
		moves = [2]Move{WhiteShortCastle, WhiteLongCastle}
	} else {
		rightsBase = 2
		moves = [2]Move{BlackShortCastle, BlackLongCastle}
	}

	for side := 0; side < 2; side++ {
		right := CastlingWhiteShort << (rightsBase + side)
		if p.CastlingRights&right == 0 {
			continue
		}
		idx := rightsBase + side
		if occ&castlingPath[idx] != 0 {
			continue
		}
		if opponentAttacks&castlingAttackPath[idx] != 0 {
			continue
		}
		list.Push(moves[side])
	}
}
