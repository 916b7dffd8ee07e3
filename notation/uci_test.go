package notation

import (
	"testing"

	"github.com/chesscore/chesscore"
)

func TestMoveToUCI(t *testing.T) {
	testcases := []struct {
		name     string
		m        chesscore.Move
		expected string
	}{
		{
			"quiet pawn push",
			chesscore.NewQuietMove(chesscore.SE2, chesscore.SE4, chesscore.WPawn, true),
			"e2e4",
		},
		{
			"knight capture",
			chesscore.NewCaptureMove(chesscore.SG1, chesscore.SF3, chesscore.WKnight, true),
			"g1f3",
		},
		{
			"queen promotion",
			chesscore.NewPromotionMove(chesscore.SA7, chesscore.SA8, chesscore.WPawn, chesscore.WQueen, true, false),
			"a7a8q",
		},
		{
			"knight promotion with capture",
			chesscore.NewPromotionMove(chesscore.SB7, chesscore.SA8, chesscore.WPawn, chesscore.WKnight, true, true),
			"b7a8n",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := MoveToUCI(tc.m)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
