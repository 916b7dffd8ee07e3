// move.go packs a chess move into a fixed-width integer and unpacks its
// fields again. The bit layout is wire-exact: any two builds of this package
// must agree byte-for-byte on what a given Move value means, since played
// moves are also the unmake record a Game pops off its reversal stack.

package chesscore

/*
Move represents a chess move, encoded as a 32-bit unsigned integer:

	 0..5   from-square (0..63)
	 6..11  to-square (0..63)
	12      is-capture
	13..16  eaten piece id (0..11; filled by the legality filter once
	        is-capture is set; for en passant, the captured pawn)
	17      short castle
	18      long castle
	19      double push
	20      is-promotion
	21..24  promoted piece id
	25..28  moved piece id
	29      en passant
	31      mover is white

Bit 30 is unused.
*/
type Move uint32

const (
	moveFromShift     = 0
	moveToShift       = 6
	moveCaptureBit    = 12
	moveEatenShift    = 13
	moveShortCastle   = 17
	moveLongCastle    = 18
	moveDoublePush    = 19
	movePromotionBit  = 20
	movePromotedShift = 21
	moveMovedShift    = 25
	moveEnPassantBit  = 29
	moveWhiteBit      = 31

	moveSquareMask = 0x3F
	movePieceMask  = 0xF
)

func (m Move) From() int  { return int(m>>moveFromShift) & moveSquareMask }
func (m Move) To() int    { return int(m>>moveToShift) & moveSquareMask }
func (m Move) IsCapture() bool { return m&(1<<moveCaptureBit) != 0 }
func (m Move) EatenPiece() Piece {
	if !m.IsCapture() {
		return PieceNone
	}
	return int(m>>moveEatenShift) & movePieceMask
}
func (m Move) IsShortCastle() bool { return m&(1<<moveShortCastle) != 0 }
func (m Move) IsLongCastle() bool  { return m&(1<<moveLongCastle) != 0 }
func (m Move) IsCastle() bool      { return m.IsShortCastle() || m.IsLongCastle() }
func (m Move) IsDoublePush() bool  { return m&(1<<moveDoublePush) != 0 }
func (m Move) IsPromotion() bool   { return m&(1<<movePromotionBit) != 0 }
func (m Move) PromotedPiece() Piece {
	if !m.IsPromotion() {
		return PieceNone
	}
	return int(m>>movePromotedShift) & movePieceMask
}
func (m Move) MovedPiece() Piece  { return int(m>>moveMovedShift) & movePieceMask }
func (m Move) IsEnPassant() bool  { return m&(1<<moveEnPassantBit) != 0 }
func (m Move) IsWhite() bool      { return m&(1<<moveWhiteBit) != 0 }

// WithEatenPiece returns m with the eaten-piece field and the capture bit
// set to p. Used by the legality filter, which is the sole writer of this
// field (see spec section 4.6): the pseudo-legal generator itself only
// raises the capture bit.
func (m Move) WithEatenPiece(p Piece) Move {
	m &^= Move(movePieceMask) << moveEatenShift
	m |= 1 << moveCaptureBit
	m |= Move(p&movePieceMask) << moveEatenShift
	return m
}

func colorBit(white bool) Move {
	if white {
		return 1 << moveWhiteBit
	}
	return 0
}

func newBase(from, to int, moved Piece, white bool) Move {
	return Move(from&moveSquareMask)<<moveFromShift |
		Move(to&moveSquareMask)<<moveToShift |
		Move(moved&movePieceMask)<<moveMovedShift |
		colorBit(white)
}

// NewQuietMove builds a non-capturing, non-special move.
func NewQuietMove(from, to int, moved Piece, white bool) Move {
	return newBase(from, to, moved, white)
}

// NewCaptureMove builds a capturing move. The eaten piece is left unset; the
// legality filter fills it in once it resolves the defending piece.
func NewCaptureMove(from, to int, moved Piece, white bool) Move {
	return newBase(from, to, moved, white) | 1<<moveCaptureBit
}

// NewDoublePushMove builds a two-square pawn push.
func NewDoublePushMove(from, to int, moved Piece, white bool) Move {
	return newBase(from, to, moved, white) | 1<<moveDoublePush
}

// NewEnPassantMove builds an en-passant capture. The eaten piece (the
// opposing pawn) is filled in by the legality filter, matching the treatment
// of ordinary captures.
func NewEnPassantMove(from, to int, moved Piece, white bool) Move {
	return newBase(from, to, moved, white) | 1<<moveCaptureBit | 1<<moveEnPassantBit
}

// NewPromotionMove builds a pawn promotion, optionally a capturing one.
func NewPromotionMove(from, to int, moved, promoted Piece, white, capture bool) Move {
	m := newBase(from, to, moved, white) | 1<<movePromotionBit |
		Move(promoted&movePieceMask)<<movePromotedShift
	if capture {
		m |= 1 << moveCaptureBit
	}
	return m
}

// Four compile-time castling move templates, one per (color, side). Queen-
// side ("long") castling for White must encode as WhiteLong, not WhiteShort:
// see DESIGN.md for the source variants that disagreed on this.
const (
	WhiteShortCastle = Move(SE1<<moveFromShift) | Move(SG1<<moveToShift) |
		Move(WKing)<<moveMovedShift | 1<<moveShortCastle | 1<<moveWhiteBit
	WhiteLongCastle = Move(SE1<<moveFromShift) | Move(SC1<<moveToShift) |
		Move(WKing)<<moveMovedShift | 1<<moveLongCastle | 1<<moveWhiteBit
	BlackShortCastle = Move(SE8<<moveFromShift) | Move(SG8<<moveToShift) |
		Move(BKing)<<moveMovedShift | 1<<moveShortCastle
	BlackLongCastle = Move(SE8<<moveFromShift) | Move(SC8<<moveToShift) |
		Move(BKing)<<moveMovedShift | 1<<moveLongCastle
)

/*
MoveList stores moves in a preallocated array to avoid dynamic allocation
during move generation.

Maximum number of moves per chess position is 218, hence 218 elements.
See https://www.talkchess.com/forum/viewtopic.php?t=61792
*/
type MoveList struct {
	Moves         [218]Move
	LastMoveIndex int
}

// Push adds a move to the end of the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.LastMoveIndex] = m
	l.LastMoveIndex++
}

// Slice returns the populated prefix of the list.
func (l *MoveList) Slice() []Move {
	return l.Moves[:l.LastMoveIndex]
}
