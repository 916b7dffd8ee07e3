package chesscore

import "testing"

func init() {
	InitAttackTables(false)
}

func TestNewPositionOccupation(t *testing.T) {
	p := NewPosition()

	if CountBits(p.WhiteOccupation) != 16 || CountBits(p.BlackOccupation) != 16 {
		t.Fatalf("expected 16 pieces per side, got white=%d black=%d",
			CountBits(p.WhiteOccupation), CountBits(p.BlackOccupation))
	}
	if p.Occupation() != p.WhiteOccupation|p.BlackOccupation {
		t.Fatal("Occupation must be the union of both colors")
	}
}

func TestKingSquare(t *testing.T) {
	p := NewPosition()

	if p.KingSquare(ColorWhite) != SE1 {
		t.Fatalf("expected white king on e1, got %s", Square2String[p.KingSquare(ColorWhite)])
	}
	if p.KingSquare(ColorBlack) != SE8 {
		t.Fatalf("expected black king on e8, got %s", Square2String[p.KingSquare(ColorBlack)])
	}
}

func TestPieceAt(t *testing.T) {
	p := NewPosition()

	if p.PieceAt(SE1) != WKing {
		t.Fatalf("expected WKing on e1, got %d", p.PieceAt(SE1))
	}
	if p.PieceAt(SE4) != PieceNone {
		t.Fatalf("expected empty square e4, got %d", p.PieceAt(SE4))
	}
}

func TestPlaceAndRemovePiece(t *testing.T) {
	var p Position

	p.placePiece(WQueen, SD4)
	if p.PieceAt(SD4) != WQueen || p.WhiteOccupation&(uint64(1)<<SD4) == 0 {
		t.Fatal("expected WQueen placed on d4 and white occupation updated")
	}

	p.removePiece(WQueen, SD4)
	if p.PieceAt(SD4) != PieceNone || p.WhiteOccupation != 0 {
		t.Fatal("expected d4 cleared and white occupation emptied")
	}
}

func TestMaterial(t *testing.T) {
	p := NewPosition()

	// 8 pawns + 2 knights + 2 bishops + 2 rooks + 1 queen = 8+6+6+10+9 = 39.
	if got := p.material(ColorWhite); got != 39 {
		t.Fatalf("expected starting material 39, got %d", got)
	}
	if got := p.material(ColorBlack); got != 39 {
		t.Fatalf("expected starting material 39, got %d", got)
	}
}

func TestIsWhitePiece(t *testing.T) {
	if !isWhitePiece(WPawn) || !isWhitePiece(WKing) {
		t.Fatal("expected White-range pieces to report as white")
	}
	if isWhitePiece(BPawn) || isWhitePiece(BKing) {
		t.Fatal("expected Black-range pieces to report as not white")
	}
}
