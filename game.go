// game.go implements the Game driver: the owner of a Position, the
// immutable attack/magic tables, and the reversal stacks that make Make/
// Unmake symmetric. Grounded on spec section 4.7's literal Make/Unmake
// algorithm and the teacher's game.go for the surrounding API shape
// (NewGame, IsThreefoldRepetition, IsInsufficientMaterial, IsCheckmate) —
// the teacher itself has no make/unmake (it regenerates legal moves by
// copy-making a cloned Position), so the reversal-stack machinery here is
// new, built directly from the spec's step-by-step description. The
// teacher's clock fields (whiteTime/blackTime/timeBonus/SetClock) are
// dropped: time management is out of scope.

package chesscore

import (
	"errors"
	"fmt"
)

// pinnedInfoFrame is the pin/check state Make's analyzer overwrites: the
// side-to-move checker/block/meta-attack fields and the pin fields of the
// color that moves next, enough to restore them verbatim on Unmake.
type pinnedInfoFrame struct {
	nofCheckers        int
	checkBlockSqrs     uint64
	pinned             uint64
	pinnedRestrictions [64]uint64
	metaAttacks        uint64
}

// repetitionFrame records what recordRepetition did this ply, so
// forgetRepetition can reverse it exactly. clearedSnapshot is non-nil only
// when the move was irreversible and the table was reset before counting it.
type repetitionFrame struct {
	key             uint64
	clearedSnapshot map[uint64]int
}

// PGNTags holds the Portable Game Notation tag-pair fields a caller may set
// on a Game before exporting it (the Seven Tag Roster: Event/Site/Date/
// Round/White/Black/Result). Grounded on the teacher's pgn.go doc comment,
// which describes this roster but never wires it to a Game; notation.FormatPGN
// renders a populated PGNTags plus each ply's SAN string into a full PGN
// document.
type PGNTags struct {
	Event  string
	Site   string
	Date   string
	Round  string
	White  string
	Black  string
	Result string
}

/*
Game owns one Position plus the reversal stacks Make/Unmake push to and pop
from. NOTE: call InitAttackTables and InitZobristKeys once before creating a
Game.
*/
type Game struct {
	Position   Position
	LegalMoves MoveList
	Tags       PGNTags

	repetitions map[uint64]int

	epStack             []int
	castlingRightsStack []CastlingRights
	attacksStack        []uint64
	pinnedInfoStack     []pinnedInfoFrame
	legalMovesStack     []MoveList
	playedMovesStack    []Move
	repetitionStack     []repetitionFrame
}

// NewGame returns a Game at the standard starting position, with its legal
// move list already populated.
func NewGame() *Game {
	return NewGameFromPosition(NewPosition())
}

// NewGameFromPosition returns a Game starting from p (e.g. a FEN-derived
// position for puzzles or endgame studies), with its legal move list
// populated. p is taken as-is; the caller is responsible for having already
// run it through ParseFEN (or equivalent) so its derived fields are valid.
func NewGameFromPosition(p Position) *Game {
	g := &Game{
		Position:    p,
		repetitions: make(map[uint64]int, 1),
	}
	GenerateLegal(&g.Position, &g.LegalMoves)
	g.repetitions[zobristKey(&g.Position)] = 1
	return g
}

// ErrIllegalMove is returned by TryMove when from/to does not match any move
// in the current legal-move list.
var ErrIllegalMove = errors.New("chesscore: illegal move")

// TryMove looks up and plays the legal move from from to to. Promotions
// disambiguate to queen; callers that need a specific underpromotion must
// search g.LegalMoves directly and call Make. The position is left unchanged
// on error.
func (g *Game) TryMove(from, to int) (Move, error) {
	var chosen Move
	found := false
	for _, m := range g.LegalMoves.Slice() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromotedPiece() != WQueen && m.PromotedPiece() != BQueen {
			continue
		}
		chosen = m
		found = true
		break
	}
	if !found {
		return 0, fmt.Errorf("%w: %s-%s", ErrIllegalMove, Square2String[from], Square2String[to])
	}
	g.Make(chosen)
	return chosen, nil
}

// castleIndex maps (mover, short) to the 0..3 index used by castlingPath,
// castlingAttackPath, rookCastleFrom, and rookCastleTo: 0 white short, 1
// white long, 2 black short, 3 black long.
func castleIndex(mover Color, short bool) int {
	idx := 0
	if mover == ColorBlack {
		idx = 2
	}
	if !short {
		idx++
	}
	return idx
}

// castlingRightsLost returns the rights bits a move moving piece moved
// between from and to permanently strips: moving either king drops both of
// that color's rights; touching a corner square (as mover or as a capture
// target) drops the right tied to that rook.
func castlingRightsLost(moved Piece, from, to int) CastlingRights {
	lost := CastlingRights(0)
	switch moved {
	case WKing:
		lost |= CastlingWhiteShort | CastlingWhiteLong
	case BKing:
		lost |= CastlingBlackShort | CastlingBlackLong
	}
	for _, sq := range [2]int{from, to} {
		switch sq {
		case SA1:
			lost |= CastlingWhiteLong
		case SH1:
			lost |= CastlingWhiteShort
		case SA8:
			lost |= CastlingBlackLong
		case SH8:
			lost |= CastlingBlackShort
		}
	}
	return lost
}

// Make plays m, following spec section 4.7's thirteen steps in order. m must
// come from g.LegalMoves (TryMove enforces this; callers driving Make
// directly, e.g. a search, are trusted to only pass legal moves).
func (g *Game) Make(m Move) {
	p := &g.Position
	mover := p.Turn
	moverOffset := colorOffset(mover)

	g.epStack = append(g.epStack, p.EPSquare)
	g.castlingRightsStack = append(g.castlingRightsStack, p.CastlingRights)
	g.attacksStack = append(g.attacksStack, p.Attacks(mover))
	g.pinnedInfoStack = append(g.pinnedInfoStack, pinnedInfoFrame{
		nofCheckers:        p.NofCheckers,
		checkBlockSqrs:     p.CheckBlockSqrs,
		pinned:             p.pinned(1 ^ mover),
		pinnedRestrictions: *p.pinnedRestrictions(1 ^ mover),
		metaAttacks:        p.MetaAttacks,
	})
	g.legalMovesStack = append(g.legalMovesStack, g.LegalMoves)

	from, to := m.From(), m.To()
	moved := m.MovedPiece()

	// 1. Clear the eaten piece (ordinary captures only; en passant is step 5).
	if m.IsCapture() && !m.IsEnPassant() {
		p.removePiece(m.EatenPiece(), to)
	}

	// 2. Relocate the moved piece, unless it's about to be replaced by step 3.
	p.removePiece(moved, from)
	if !m.IsPromotion() {
		p.placePiece(moved, to)
	}

	// 3. Promotion: the promoted piece takes the destination square instead.
	if m.IsPromotion() {
		p.placePiece(m.PromotedPiece(), to)
	}

	// 4. Castling also relocates the rook.
	if m.IsCastle() {
		idx := castleIndex(mover, m.IsShortCastle())
		rook := WRook + moverOffset
		p.removePiece(rook, rookCastleFrom[idx])
		p.placePiece(rook, rookCastleTo[idx])
	}

	// 5. En passant removes the captured pawn from the rank behind t.
	if m.IsEnPassant() {
		capturedSq := to - 8
		if mover == ColorBlack {
			capturedSq = to + 8
		}
		p.removePiece(m.EatenPiece(), capturedSq)
	}

	// 6. En-passant target square for the next ply.
	if m.IsDoublePush() {
		if mover == ColorWhite {
			p.EPSquare = to - 8
		} else {
			p.EPSquare = to + 8
		}
	} else {
		p.EPSquare = NoEPSquare
	}

	// 7. Castling rights.
	p.CastlingRights &^= castlingRightsLost(moved, from, to)

	// 8. The mover's own attack set changed; recompute it. The opposing
	// color's attack field is left as it was; it may be stale after this
	// move, but nothing reads it before that color moves and recomputes it.
	p.setAttacks(mover, computeAttacks(p, mover))

	// 9. Flip the side to move.
	p.Turn = 1 ^ mover

	// 10-11. Pin/check analyzer on the new mover.
	analyzePinsAndChecks(p)

	// 12. Legal moves for the new mover.
	g.LegalMoves = MoveList{}
	GenerateLegal(p, &g.LegalMoves)

	// 13. Record the played move.
	g.playedMovesStack = append(g.playedMovesStack, m)

	g.recordRepetition(moved, m)
}

// Unmake reverses the most recent Make call, restoring every field of
// Position to its exact pre-move value.
func (g *Game) Unmake() {
	p := &g.Position

	n := len(g.playedMovesStack) - 1
	m := g.playedMovesStack[n]
	g.playedMovesStack = g.playedMovesStack[:n]

	mover := colorOf(m.IsWhite())
	moverOffset := colorOffset(mover)
	from, to := m.From(), m.To()
	moved := m.MovedPiece()

	p.Turn = mover

	// Reverse steps 5, 4, 3/2, 1, in that order.
	if m.IsEnPassant() {
		capturedSq := to - 8
		if mover == ColorBlack {
			capturedSq = to + 8
		}
		p.placePiece(m.EatenPiece(), capturedSq)
	}

	if m.IsCastle() {
		idx := castleIndex(mover, m.IsShortCastle())
		rook := WRook + moverOffset
		p.removePiece(rook, rookCastleTo[idx])
		p.placePiece(rook, rookCastleFrom[idx])
	}

	if m.IsPromotion() {
		p.removePiece(m.PromotedPiece(), to)
	} else {
		p.removePiece(moved, to)
	}
	p.placePiece(moved, from)

	if m.IsCapture() && !m.IsEnPassant() {
		p.placePiece(m.EatenPiece(), to)
	}

	nEP := len(g.epStack) - 1
	p.EPSquare = g.epStack[nEP]
	g.epStack = g.epStack[:nEP]

	nRights := len(g.castlingRightsStack) - 1
	p.CastlingRights = g.castlingRightsStack[nRights]
	g.castlingRightsStack = g.castlingRightsStack[:nRights]

	nPin := len(g.pinnedInfoStack) - 1
	frame := g.pinnedInfoStack[nPin]
	g.pinnedInfoStack = g.pinnedInfoStack[:nPin]
	p.NofCheckers = frame.nofCheckers
	p.CheckBlockSqrs = frame.checkBlockSqrs
	p.MetaAttacks = frame.metaAttacks
	if mover == ColorWhite {
		p.BlackPinned = frame.pinned
		p.BlackPinnedRestrictions = frame.pinnedRestrictions
	} else {
		p.WhitePinned = frame.pinned
		p.WhitePinnedRestrictions = frame.pinnedRestrictions
	}

	nAttacks := len(g.attacksStack) - 1
	p.setAttacks(mover, g.attacksStack[nAttacks])
	g.attacksStack = g.attacksStack[:nAttacks]

	nLegal := len(g.legalMovesStack) - 1
	g.LegalMoves = g.legalMovesStack[nLegal]
	g.legalMovesStack = g.legalMovesStack[:nLegal]

	g.forgetRepetition()
}

// recordRepetition updates the Zobrist repetition table after a move is
// played. Irreversible moves (captures, castling, promotion, or any pawn
// move) clear prior history first, per
// https://www.chessprogramming.org/Irreversible_Moves.
func (g *Game) recordRepetition(moved Piece, m Move) {
	frame := repetitionFrame{}

	irreversible := m.IsCapture() || m.IsCastle() || m.IsPromotion() || moved == WPawn || moved == BPawn
	if irreversible {
		snapshot := make(map[uint64]int, len(g.repetitions))
		for k, v := range g.repetitions {
			snapshot[k] = v
		}
		frame.clearedSnapshot = snapshot
		clear(g.repetitions)
	}

	key := zobristKey(&g.Position)
	frame.key = key
	g.repetitions[key]++
	g.repetitionStack = append(g.repetitionStack, frame)
}

func (g *Game) forgetRepetition() {
	n := len(g.repetitionStack) - 1
	frame := g.repetitionStack[n]
	g.repetitionStack = g.repetitionStack[:n]

	if frame.clearedSnapshot != nil {
		g.repetitions = frame.clearedSnapshot
		return
	}
	g.repetitions[frame.key]--
	if g.repetitions[frame.key] == 0 {
		delete(g.repetitions, frame.key)
	}
}

// IsThreefoldRepetition reports whether any reachable position (by Zobrist
// key, since the mover's legal-move list is itself a function of piece
// placement, castling rights, and turn) has occurred three times.
func (g *Game) IsThreefoldRepetition() bool {
	for _, n := range g.repetitions {
		if n >= 3 {
			return true
		}
	}
	return false
}

// IsInsufficientMaterial reports a dead position: bare kings, king and
// minor against bare king, or same-colored bishops / a knight pair on both
// sides.
func (g *Game) IsInsufficientMaterial() bool {
	const dark = uint64(0xAA55AA55AA55AA55)
	p := &g.Position
	material := p.material(ColorWhite) + p.material(ColorBlack)

	if material == 0 || (material == 3 && p.Pieces[WPawn] == 0 && p.Pieces[BPawn] == 0) {
		return true
	}

	if material == 6 {
		wb, bb := p.Pieces[WBishop], p.Pieces[BBishop]
		sameColorBishops := wb != 0 && bb != 0 &&
			((wb&dark != 0 && bb&dark != 0) || (wb&dark == 0 && bb&dark == 0))
		bothKnights := p.Pieces[WKnight] != 0 && p.Pieces[BKnight] != 0
		return sameColorBishops || bothKnights
	}

	return false
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (g *Game) IsCheckmate() bool {
	return g.Position.NofCheckers > 0 && g.LegalMoves.LastMoveIndex == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (g *Game) IsStalemate() bool {
	return g.Position.NofCheckers == 0 && g.LegalMoves.LastMoveIndex == 0
}

// Result reports the terminal outcome of the current position, or
// ResultUnscored if the game is still ongoing. Checkmate is checked before
// stalemate since both share an empty legal-move list; the draw conditions
// are then checked in the order a tournament arbiter would apply them:
// repetition and the fifty-move rule are claimable the moment they arise,
// insufficient material is automatic.
func (g *Game) Result() Result {
	switch {
	case g.IsCheckmate():
		return ResultCheckmate
	case g.IsStalemate():
		return ResultStalemate
	case g.IsThreefoldRepetition():
		return ResultThreefoldRepetition
	case g.Position.HalfmoveClock >= 100:
		return ResultFiftyMove
	case g.IsInsufficientMaterial():
		return ResultInsufficientMaterial
	default:
		return ResultUnscored
	}
}

// PlayedMoves returns the moves played so far, in play order. The returned
// slice aliases Game's internal stack and must not be mutated.
func (g *Game) PlayedMoves() []Move {
	return g.playedMovesStack
}
