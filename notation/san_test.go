package notation

import (
	"testing"

	"github.com/chesscore/chesscore"
)

func init() {
	chesscore.InitAttackTables(false)
}

// findMove returns the legal move from list matching from/to, optionally
// filtered to a specific promoted piece (ignored when want is PieceNone).
func findMove(t *testing.T, list *chesscore.MoveList, from, to int, want chesscore.Piece) chesscore.Move {
	t.Helper()
	for _, m := range list.Slice() {
		if m.From() != from || m.To() != to {
			continue
		}
		if want != chesscore.PieceNone && m.PromotedPiece() != want {
			continue
		}
		return m
	}
	t.Fatalf("no legal move %s-%s found", chesscore.Square2String[from], chesscore.Square2String[to])
	return 0
}

func TestMoveToSAN(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		from, to int
		promo    chesscore.Piece
		expected string
	}{
		{
			name:     "knight disambiguated by file",
			fen:      "8/8/8/8/8/2N5/8/4K1N1 w - - 0 1",
			from:     chesscore.SC3,
			to:       chesscore.SE2,
			promo:    chesscore.PieceNone,
			expected: "Nce2",
		},
		{
			name:     "pinned knight removes the ambiguity",
			fen:      "8/8/8/8/1b6/2N5/8/4K1N1 w - - 0 1",
			from:     chesscore.SG1,
			to:       chesscore.SE2,
			promo:    chesscore.PieceNone,
			expected: "Ne2",
		},
		{
			name:     "capture giving check",
			fen:      "3nk3/8/8/8/8/8/8/3QK3 w - - 0 1",
			from:     chesscore.SD1,
			to:       chesscore.SD8,
			promo:    chesscore.PieceNone,
			expected: "Qxd8+",
		},
		{
			name:     "knight promotion, no check",
			fen:      "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			from:     chesscore.SA7,
			to:       chesscore.SA8,
			promo:    chesscore.WKnight,
			expected: "a8=N",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			before, err := chesscore.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			g := chesscore.NewGameFromPosition(before)
			beforeLegal := g.LegalMoves

			m := findMove(t, &beforeLegal, tc.from, tc.to, tc.promo)

			g.Make(m)
			after := g.Position
			afterLegal := g.LegalMoves

			got := MoveToSAN(&before, &beforeLegal, m, &after, &afterLegal)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
