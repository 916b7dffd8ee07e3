// uci.go implements Universal Chess Interface move formatting.
//
// Grounded on the teacher's uci.go Move2UCI.

package notation

import (
	"strings"

	"github.com/chesscore/chesscore"
)

// MoveToUCI converts m into long algebraic notation.
// Examples: e2e4, e7e5, e1g1 (white short castling), e7e8q (promotion).
func MoveToUCI(m chesscore.Move) string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(chesscore.Square2String[m.From()])
	b.WriteString(chesscore.Square2String[m.To()])

	if m.IsPromotion() {
		switch m.PromotedPiece() {
		case chesscore.WKnight, chesscore.BKnight:
			b.WriteByte('n')
		case chesscore.WBishop, chesscore.BBishop:
			b.WriteByte('b')
		case chesscore.WRook, chesscore.BRook:
			b.WriteByte('r')
		case chesscore.WQueen, chesscore.BQueen:
			b.WriteByte('q')
		}
	}

	return b.String()
}
