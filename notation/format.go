// format.go renders a Position as a human-readable board diagram, used to
// visualize positions during development and debugging.
//
// Grounded on the teacher's cli/cli.go FormatBitboard/FormatPosition,
// adapted from the teacher's [12]uint64 parameter list to this package's
// Position type and its wider derived-state fields.

package notation

import (
	"strings"

	"github.com/chesscore/chesscore"
)

var pieceGlyphs = [12]rune{
	'♙', '♘', '♗', '♖', '♕', '♔',
	'♟', '♞', '♝', '♜', '♛', '♚',
}

// FormatBitboard renders a single bitboard as an 8x8 grid, marking every set
// square with piece's glyph.
func FormatBitboard(bb uint64, piece chesscore.Piece) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << uint(8*rank+file)

			symbol := pieceGlyphs[piece]
			if bb&square == 0 {
				symbol = '.'
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// FormatPosition renders a full Position: the board, active color, en
// passant target, and castling rights.
func FormatPosition(p chesscore.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << uint(8*rank+file)

			symbol := '.'
			for i, bb := range p.Pieces {
				if square&bb != 0 {
					symbol = pieceGlyphs[i]
					break
				}
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")
	if p.Turn == chesscore.ColorWhite {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if p.EPSquare == chesscore.NoEPSquare {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(chesscore.Square2String[p.EPSquare])
		b.WriteString("\nCastling rights: ")
	}

	if p.CastlingRights&chesscore.CastlingWhiteShort != 0 {
		b.WriteByte('K')
	}
	if p.CastlingRights&chesscore.CastlingWhiteLong != 0 {
		b.WriteByte('Q')
	}
	if p.CastlingRights&chesscore.CastlingBlackShort != 0 {
		b.WriteByte('k')
	}
	if p.CastlingRights&chesscore.CastlingBlackLong != 0 {
		b.WriteByte('q')
	}
	b.WriteByte('\n')

	return b.String()
}
