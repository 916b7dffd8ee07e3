// types.go declares the identifier types and predefined constants the rest of
// the package is built on: piece/color identifiers, castling rights flags, and
// the square name tables used by move serialization and diagnostics.

package chesscore

// Piece is an alias type to avoid bothersome conversion between int and Piece.
//
// Identifiers run 0..11: 0..5 are White {pawn, knight, bishop, rook, queen,
// king} and 6..11 are the Black mirror of the same list. This ordering is
// load-bearing: the "same piece, other color" offset is always ±6, and the
// sliding-piece identifiers (bishop=2, rook=3, queen=4) line up with their
// Black counterparts (8, 9, 10) so a single dispatch table can serve both
// colors by adding a color offset.
type Piece = int

const (
	WPawn Piece = iota
	WKnight
	WBishop
	WRook
	WQueen
	WKing
	BPawn
	BKnight
	BBishop
	BRook
	BQueen
	BKing
	// PieceNone marks an empty square, to avoid magic numbers at call sites.
	PieceNone Piece = -1
)

// Color is an alias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// PromotionFlag is an alias type to avoid bothersome conversion between int
// and PromotionFlag.
//
// 00 - knight, 01 - bishop, 10 - rook, 11 - queen.
type PromotionFlag = int

const (
	PromotionKnight PromotionFlag = iota
	PromotionBishop
	PromotionRook
	PromotionQueen
)

/*
CastlingRights defines the players' rights to perform castling.
  - 0 bit: white king can O-O.
  - 1 bit: white king can O-O-O.
  - 2 bit: black king can O-O.
  - 3 bit: black king can O-O-O.
*/
type CastlingRights = int

const (
	CastlingWhiteShort CastlingRights = 1
	CastlingWhiteLong  CastlingRights = 2
	CastlingBlackShort CastlingRights = 4
	CastlingBlackLong  CastlingRights = 8
)

// Result represents the possible outcomes of a chess game.
type Result int

const (
	ResultUnscored Result = iota // The game isn't finished yet.
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
)

var (
	// PieceSymbols maps each piece identifier to its FEN/diagnostic symbol.
	PieceSymbols = [12]byte{
		'P', 'N', 'B', 'R', 'Q', 'K',
		'p', 'n', 'b', 'r', 'q', 'k',
	}
	// Square2String maps each board square index to its algebraic name.
	Square2String = [64]string{
		"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
		"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
		"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
		"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
		"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
		"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
		"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
		"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	}
	// pieceWeights holds the material value of each piece, indexed by Piece,
	// used to detect draws by insufficient material. Kings are never queried.
	pieceWeights = [12]int{1, 3, 3, 5, 9, 0, 1, 3, 3, 5, 9, 0}
)

// Square indices. Named for readability at call sites; file = s%8 (a=0),
// rank = s/8 (White's first rank = 0).
const (
	SA1 int = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// Square bitboards, one bit set per name. Used by castling and en-passant
// logic where a literal square mask reads clearer than 1<<S.
const (
	A1 uint64 = 1 << iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// InitialPos is the standard initial chess position, in FEN.
const InitialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
