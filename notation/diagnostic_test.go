package notation

import (
	"testing"

	"github.com/chesscore/chesscore"
)

func TestMoveToDiagnosticQuiet(t *testing.T) {
	m := chesscore.NewQuietMove(chesscore.SE2, chesscore.SE4, chesscore.WPawn, true)
	got := MoveToDiagnostic(m)
	if got != "P(e2) -> e4" {
		t.Fatalf("expected %q, got %q", "P(e2) -> e4", got)
	}
}

func TestMoveToDiagnosticCapture(t *testing.T) {
	m := chesscore.NewCaptureMove(chesscore.SG1, chesscore.SF3, chesscore.WKnight, true)
	got := MoveToDiagnostic(m)
	if got != "N(g1) x f3" {
		t.Fatalf("expected %q, got %q", "N(g1) x f3", got)
	}
}

func TestMoveToDiagnosticPromotion(t *testing.T) {
	m := chesscore.NewPromotionMove(chesscore.SA7, chesscore.SA8, chesscore.WPawn, chesscore.WQueen, true, false)
	got := MoveToDiagnostic(m)
	if got != "P(a7) -> a8=Q" {
		t.Fatalf("expected %q, got %q", "P(a7) -> a8=Q", got)
	}
}
