// fen.go converts between Forsyth-Edwards Notation strings and Position
// values. ParseFEN consumes the output of an external FEN validator — per
// spec, this package trusts the six fields it is handed and does not
// re-validate square counts, piece counts, or field syntax; a string with
// fewer than six fields or a malformed halfmove/fullmove counter is reported
// back as an error rather than panicked on, since it is routine to encounter
// and not an internal invariant violation.

package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

// FENError reports a field of a FEN string that could not be reconciled.
type FENError struct {
	Field string
	Value string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("chesscore: invalid FEN field %s: %q", e.Field, e.Value)
}

// ParseFEN parses fen into a fully-derived Position: occupations, attacks,
// checker count, pins, and meta-attacks are all computed before return, so
// the result is immediately usable by the move generator.
func ParseFEN(fen string) (Position, error) {
	var p Position

	fields := strings.SplitN(fen, " ", 6)
	if len(fields) < 6 {
		return p, &FENError{Field: "fen", Value: fen}
	}

	ParseBitboards(fields[0], &p)

	if fields[1] == "b" {
		p.Turn = ColorBlack
	}

	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			p.CastlingRights |= CastlingWhiteShort
		case 'Q':
			p.CastlingRights |= CastlingWhiteLong
		case 'k':
			p.CastlingRights |= CastlingBlackShort
		case 'q':
			p.CastlingRights |= CastlingBlackLong
		}
	}

	p.EPSquare = parseSquare(fields[3])

	var err error
	p.HalfmoveClock, err = strconv.Atoi(fields[4])
	if err != nil {
		return Position{}, &FENError{Field: "halfmove clock", Value: fields[4]}
	}
	p.FullmoveNumber, err = strconv.Atoi(fields[5])
	if err != nil {
		return Position{}, &FENError{Field: "fullmove number", Value: fields[5]}
	}

	refreshDerivedState(&p)

	return p, nil
}

// SerializeFEN serializes p into a FEN string.
func SerializeFEN(p Position) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(SerializeBitboards(p))

	if p.Turn == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	cnt := 4
	if p.CastlingRights&CastlingWhiteShort != 0 {
		fen.WriteByte('K')
		cnt--
	}
	if p.CastlingRights&CastlingWhiteLong != 0 {
		fen.WriteByte('Q')
		cnt--
	}
	if p.CastlingRights&CastlingBlackShort != 0 {
		fen.WriteByte('k')
		cnt--
	}
	if p.CastlingRights&CastlingBlackLong != 0 {
		fen.WriteByte('q')
		cnt--
	}
	if cnt == 4 {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if p.EPSquare == NoEPSquare {
		fen.WriteString("- ")
	} else {
		fen.WriteString(Square2String[p.EPSquare])
		fen.WriteByte(' ')
	}

	fen.WriteString(strconv.Itoa(p.HalfmoveClock))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.FullmoveNumber))

	return fen.String()
}

// ParseBitboards parses the piece-placement field of a FEN string into p's
// piece and occupation bitboards.
func ParseBitboards(piecePlacement string, p *Position) {
	square := 56

	for i := 0; i < len(piecePlacement); i++ {
		char := piecePlacement[i]

		switch {
		case char == '/':
			square -= 16
		case char >= '1' && char <= '8':
			square += int(char - '0')
		default:
			piece := pieceFromFENByte(char)
			p.placePiece(piece, square)
			square++
		}
	}
}

func pieceFromFENByte(char byte) Piece {
	switch char {
	case 'P':
		return WPawn
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'R':
		return WRook
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'r':
		return BRook
	case 'q':
		return BQueen
	case 'k':
		return BKing
	}
	return PieceNone
}

// SerializeBitboards converts p's piece placement into the first field of a
// FEN string.
func SerializeBitboards(p Position) string {
	var b strings.Builder
	b.Grow(20)

	var board [64]byte
	for i := range p.Pieces {
		bb := p.Pieces[i]
		for bb > 0 {
			square := PopLSB(&bb)
			board[square] = PieceSymbols[i]
		}
	}

	emptySquares := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 {
				emptySquares++
			} else {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				b.WriteByte(char)
			}

			if (square+1)%8 == 0 {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				if square != 7 {
					b.WriteByte('/')
				}
			}
		}
	}

	return b.String()
}

// parseSquare parses a FEN en-passant field ("-" or a file+rank pair) into a
// square index, or NoEPSquare.
func parseSquare(str string) int {
	if str == "-" || str == "" {
		return NoEPSquare
	}
	file := int(str[0] - 'a')
	rank := int(str[1]-'0') - 1
	return rank*8 + file
}
