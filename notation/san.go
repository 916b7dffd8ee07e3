/*
san.go implements serialization of moves into Standard Algebraic Notation.
See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt Section 8.2.3.

Grounded on the teacher's san.go Move2SAN/disambiguate pair, generalized so
the check/checkmate suffix is read from the position reached after the move
instead of being passed in by the caller.
*/
package notation

import (
	"strings"

	"github.com/chesscore/chesscore"
)

var fileLetters = "abcdefgh"

/*
MoveToSAN encodes m, played from before with legal move list beforeLegal,
into its SAN representation. after and afterLegal are the position and
legal-move list immediately following m (as left by Game.Make), used only to
determine the check/checkmate suffix.

SAN string consists of these parts:
 1. Piece name, omitted for pawns;
 2. Optional originating file or rank, used for disambiguation. A capturing
    pawn always includes its originating file;
 3. 'x' for a capture;
 4. Destination file and rank;
 5. '+' for check, '#' for checkmate (mutually exclusive).

King castling and queen castling are encoded as "O-O" and "O-O-O".
*/
func MoveToSAN(
	before *chesscore.Position,
	beforeLegal *chesscore.MoveList,
	m chesscore.Move,
	after *chesscore.Position,
	afterLegal *chesscore.MoveList,
) string {
	if m.IsCastle() {
		if m.IsLongCastle() {
			return appendCheckSuffix("O-O-O", after, afterLegal)
		}
		return appendCheckSuffix("O-O", after, afterLegal)
	}

	var b strings.Builder
	b.Grow(6)

	moved := m.MovedPiece()
	switch moved {
	case chesscore.WKnight, chesscore.BKnight:
		b.WriteByte('N')
	case chesscore.WBishop, chesscore.BBishop:
		b.WriteByte('B')
	case chesscore.WRook, chesscore.BRook:
		b.WriteByte('R')
	case chesscore.WQueen, chesscore.BQueen:
		b.WriteByte('Q')
	case chesscore.WKing, chesscore.BKing:
		b.WriteByte('K')
	}

	isPawn := moved == chesscore.WPawn || moved == chesscore.BPawn

	// Resolve ambiguity against the other legal moves sharing a destination.
	// Pawns are skipped: a pawn move is disambiguated by its capture file,
	// never by rank/file letters.
	if !isPawn {
		for _, lm := range beforeLegal.Slice() {
			if lm.MovedPiece() == moved && lm.To() == m.To() && lm.From() != m.From() {
				b.WriteByte(disambiguate(m.From(), lm.From()))
				break
			}
		}
	}

	if m.IsCapture() {
		if isPawn {
			b.WriteByte(fileLetters[m.From()%8])
		}
		b.WriteByte('x')
	}

	b.WriteString(chesscore.Square2String[m.To()])

	if m.IsPromotion() {
		switch m.PromotedPiece() {
		case chesscore.WKnight, chesscore.BKnight:
			b.WriteString("=N")
		case chesscore.WBishop, chesscore.BBishop:
			b.WriteString("=B")
		case chesscore.WRook, chesscore.BRook:
			b.WriteString("=R")
		case chesscore.WQueen, chesscore.BQueen:
			b.WriteString("=Q")
		}
	}

	return appendCheckSuffix(b.String(), after, afterLegal)
}

func appendCheckSuffix(san string, after *chesscore.Position, afterLegal *chesscore.MoveList) string {
	if after.NofCheckers == 0 {
		return san
	}
	if afterLegal.LastMoveIndex == 0 {
		return san + "#"
	}
	return san + "+"
}

/*
disambiguate resolves the ambiguity that arises when two pieces of the same
type can move to the same square: prefer the originating file letter, falling
back to the originating rank digit.
*/
func disambiguate(fromA, fromB int) byte {
	if fromA%8 != fromB%8 {
		return fileLetters[fromA%8]
	}
	if fromA/8 != fromB/8 {
		return byte(fromA/8 + 1 + '0')
	}
	panic("notation: cannot disambiguate the move")
}
