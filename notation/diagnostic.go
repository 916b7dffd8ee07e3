// diagnostic.go implements the human-readable diagnostic move format from
// spec section 6: "P(e2) -> e4", "N(g1) x f3". Grounded on the teacher's
// uci.go/san.go formatting style, generalized to this one-off debug format
// which neither teacher file implements directly.

package notation

import (
	"strings"

	"github.com/chesscore/chesscore"
)

var diagnosticPieceLetters = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'P', 'N', 'B', 'R', 'Q', 'K',
}

// MoveToDiagnostic renders m as "P(e2) -> e4" for quiet moves or
// "N(g1) x f3" for captures, intended for logs and debugger output rather
// than any wire format.
func MoveToDiagnostic(m chesscore.Move) string {
	var b strings.Builder
	b.Grow(16)

	b.WriteByte(diagnosticPieceLetters[m.MovedPiece()])
	b.WriteByte('(')
	b.WriteString(chesscore.Square2String[m.From()])
	b.WriteByte(')')

	if m.IsCapture() {
		b.WriteString(" x ")
	} else {
		b.WriteString(" -> ")
	}

	b.WriteString(chesscore.Square2String[m.To()])

	if m.IsPromotion() {
		b.WriteByte('=')
		b.WriteByte(diagnosticPieceLetters[m.PromotedPiece()])
	}

	return b.String()
}
