// bitboard.go implements bit utilities shared by move generation, the pin/check
// analyzer, and position management: LSB pop, population count, and the
// file/rank/edge masks every ray-walk in this package is built on.

package chesscore

const (
	// intSize is 32 on 32-bit platforms and 64 on 64-bit platforms.
	intSize = (32 << (^uint(0) >> 63))
	// Precalculated magic used to form indices for the bitScanLookup array.
	bitscanMagic uint64 = 0x07EDD5E59A4E28C2
)

// File masks, index 0 (A) .. 7 (H).
var Files = [8]uint64{
	0x0101010101010101, 0x0202020202020202, 0x0404040404040404, 0x0808080808080808,
	0x1010101010101010, 0x2020202020202020, 0x4040404040404040, 0x8080808080808080,
}

// Rank masks, index 0 (rank 1) .. 7 (rank 8).
var Ranks = [8]uint64{
	0xFF, 0xFF00, 0xFF0000, 0xFF000000,
	0xFF00000000, 0xFF0000000000, 0xFF000000000000, 0xFF00000000000000,
}

// Edges is the union of the outermost files and ranks.
const Edges = uint64(0xFF818181818181FF)

const (
	notAFile    uint64 = 0xFEFEFEFEFEFEFEFE
	notHFile    uint64 = 0x7F7F7F7F7F7F7F7F
	notABFile   uint64 = 0xFCFCFCFCFCFCFCFC
	notGHFile   uint64 = 0x3F3F3F3F3F3F3F3F
	not1stRank  uint64 = 0xFFFFFFFFFFFFFF00
	not8thRank  uint64 = 0x00FFFFFFFFFFFFFF
)

// bitScanLookup maps the De Bruijn hash of an isolated LSB to its square index.
//
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// CountBits returns the number of set bits in the bitboard.
func CountBits(bb uint64) (cnt int) {
	for ; bb > 0; cnt++ {
		bb &= bb - 1
	}
	return cnt
}

// bitScan returns the index of the LSB within the bitboard.  bb & -bb isolates
// the LSB which is then run through the hashing scheme to index the lookup.
//
// NOTE: bitScan returns 63 for the empty bitboard.
func bitScan(bb uint64) int {
	return bitScanLookup[bb&-bb*bitscanMagic>>58]
}

// PopLSB removes the LSB from *bb and returns its square index.
//
// NOTE: PopLSB returns 63 for the empty bitboard.
func PopLSB(bb *uint64) int {
	lsb := bitScan(*bb)
	*bb &= *bb - 1
	return lsb
}

// Test reports whether square s is set in bb.
func Test(bb uint64, s int) bool { return bb&(1<<uint(s)) != 0 }

// Set returns bb with square s set.
func Set(bb uint64, s int) uint64 { return bb | 1<<uint(s) }

// Clear returns bb with square s cleared.
func Clear(bb uint64, s int) uint64 { return bb &^ (1 << uint(s)) }

// Diff returns the squares in a that are not in b (a &^ b).
func Diff(a, b uint64) uint64 { return a &^ b }
