package chesscore

import "testing"

func TestNewQuietMove(t *testing.T) {
	m := NewQuietMove(SE2, SE4, WPawn, true)

	if m.From() != SE2 || m.To() != SE4 || m.MovedPiece() != WPawn || !m.IsWhite() {
		t.Fatalf("unexpected fields: from=%d to=%d moved=%d white=%v",
			m.From(), m.To(), m.MovedPiece(), m.IsWhite())
	}
	if m.IsCapture() || m.IsPromotion() || m.IsCastle() || m.IsEnPassant() || m.IsDoublePush() {
		t.Fatal("quiet move must have no flags set")
	}
}

func TestNewCaptureMoveAndEatenPiece(t *testing.T) {
	m := NewCaptureMove(SD4, SE5, WPawn, true)
	if !m.IsCapture() {
		t.Fatal("expected capture bit set")
	}
	if m&(Move(movePieceMask)<<moveEatenShift) != 0 {
		t.Fatal("eaten-piece field should be left zero until the legality filter resolves it")
	}

	m = m.WithEatenPiece(BKnight)
	if !m.IsCapture() || m.EatenPiece() != BKnight {
		t.Fatalf("expected eaten piece BKnight, got %d", m.EatenPiece())
	}
}

func TestNewDoublePushMove(t *testing.T) {
	m := NewDoublePushMove(SE2, SE4, WPawn, true)
	if !m.IsDoublePush() {
		t.Fatal("expected double push bit set")
	}
}

func TestNewEnPassantMove(t *testing.T) {
	m := NewEnPassantMove(SD5, SE6, WPawn, true)
	if !m.IsCapture() || !m.IsEnPassant() {
		t.Fatal("en passant move must set both capture and en-passant bits")
	}
}

func TestNewPromotionMove(t *testing.T) {
	m := NewPromotionMove(SA7, SA8, WPawn, WQueen, true, false)
	if !m.IsPromotion() || m.PromotedPiece() != WQueen || m.IsCapture() {
		t.Fatalf("unexpected promotion fields: promo=%v piece=%d capture=%v",
			m.IsPromotion(), m.PromotedPiece(), m.IsCapture())
	}

	capture := NewPromotionMove(SB7, SA8, WPawn, WKnight, true, true)
	if !capture.IsPromotion() || !capture.IsCapture() || capture.PromotedPiece() != WKnight {
		t.Fatal("capturing promotion must set both promotion and capture bits")
	}
}

func TestCastlingTemplates(t *testing.T) {
	testcases := []struct {
		name  string
		m     Move
		from  int
		to    int
		short bool
		white bool
	}{
		{"white short", WhiteShortCastle, SE1, SG1, true, true},
		{"white long", WhiteLongCastle, SE1, SC1, false, true},
		{"black short", BlackShortCastle, SE8, SG8, true, false},
		{"black long", BlackLongCastle, SE8, SC8, false, false},
	}

	for _, tc := range testcases {
		if tc.m.From() != tc.from || tc.m.To() != tc.to {
			t.Fatalf("%s: expected from=%d to=%d, got from=%d to=%d",
				tc.name, tc.from, tc.to, tc.m.From(), tc.m.To())
		}
		if tc.m.IsShortCastle() != tc.short || tc.m.IsLongCastle() != !tc.short {
			t.Fatalf("%s: unexpected castle flags", tc.name)
		}
		if tc.m.IsWhite() != tc.white {
			t.Fatalf("%s: unexpected color bit", tc.name)
		}
	}
}

func TestMoveListPushSlice(t *testing.T) {
	var list MoveList

	list.Push(NewQuietMove(SE2, SE3, WPawn, true))
	list.Push(NewQuietMove(SE2, SE4, WPawn, true))

	s := list.Slice()
	if len(s) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(s))
	}
	if s[0].To() != SE3 || s[1].To() != SE4 {
		t.Fatal("moves not preserved in push order")
	}
}
