// zobrist.go implements Zobrist hashing to key positions for repetition
// detection. Grounded on the teacher's zobrist.go, reindexed to this
// package's contiguous piece ordering; EPSquare uses NoEPSquare rather than
// a sentinel square, so it is hashed only when set.

package chesscore

import "math/rand/v2"

var (
	pieceKeys    [12][64]uint64
	epKeys       [64]uint64
	castlingKeys [16]uint64
	colorKey     uint64
)

// InitZobristKeys initializes the pseudo-random keys used by zobristKey.
// Call this once, as close to program start as possible; if it isn't
// called, every key is zero, every position hashes to the same value, and
// repetition detection treats every position as a repeat.
func InitZobristKeys() {
	for i := WPawn; i <= BKing; i++ {
		for square := range 64 {
			pieceKeys[i][square] = rand.Uint64()
		}
	}
	for square := range 64 {
		epKeys[square] = rand.Uint64()
	}
	for i := range 16 {
		castlingKeys[i] = rand.Uint64()
	}
	colorKey = rand.Uint64()
}

// zobristKey hashes p's repetition-relevant state: piece placement,
// en-passant target, castling rights, and side to move. Derived fields
// (attacks, pins, checkers) are excluded since they're a pure function of
// those, and halfmove/fullmove counters are excluded since the repetition
// rule does not care about them.
func zobristKey(p *Position) (key uint64) {
	for i := WPawn; i <= BKing; i++ {
		bb := p.Pieces[i]
		for bb > 0 {
			key ^= pieceKeys[i][PopLSB(&bb)]
		}
	}

	if p.EPSquare != NoEPSquare {
		key ^= epKeys[p.EPSquare]
	}

	key ^= castlingKeys[p.CastlingRights]

	if p.Turn == ColorBlack {
		key ^= colorKey
	}

	return key
}
