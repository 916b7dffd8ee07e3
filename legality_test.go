package chesscore

import "testing"

func legalMove(list *MoveList, from, to int) (Move, bool) {
	for _, m := range list.Slice() {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return 0, false
}

func TestGenerateLegalStartingPositionCount(t *testing.T) {
	p := NewPosition()

	var list MoveList
	GenerateLegal(&p, &list)

	if list.LastMoveIndex != 20 {
		t.Fatalf("expected 20 legal moves from the starting position, got %d", list.LastMoveIndex)
	}
}

func TestGenerateLegalPinnedPieceRejection(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/4r3/4R2K b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var list MoveList
	GenerateLegal(&p, &list)

	if _, ok := legalMove(&list, SE2, SD2); ok {
		t.Fatal("the pinned rook must not be allowed to step off the pin line")
	}
	if _, ok := legalMove(&list, SE2, SE1); !ok {
		t.Fatal("the pinned rook must still be allowed to capture the pinning piece along the pin line")
	}
}

func TestGenerateLegalEnPassantIntoPinRejection(t *testing.T) {
	// Capturing en passant would remove both the white pawn (e5) and the
	// black pawn (d5) from the 5th rank, exposing the white king on a5 to the
	// black rook on h5.
	p, err := ParseFEN("8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var list MoveList
	GenerateLegal(&p, &list)

	if _, ok := legalMove(&list, SE5, SD6); ok {
		t.Fatal("en passant must be rejected when it exposes the king to a rank pin")
	}
}

func TestGenerateLegalDoubleCheckForcesKingMove(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/7B/8/8/8/4R2K b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var list MoveList
	GenerateLegal(&p, &list)

	for _, m := range list.Slice() {
		if m.MovedPiece() != BKing {
			t.Fatalf("expected every legal move under double check to move the king, got piece %d", m.MovedPiece())
		}
	}
	if list.LastMoveIndex == 0 {
		t.Fatal("expected at least one king move to escape the double check")
	}
}

func TestGenerateLegalSingleCheckMustBlockOrCapture(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/4R3/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var list MoveList
	GenerateLegal(&p, &list)

	for _, m := range list.Slice() {
		if m.MovedPiece() == BKing {
			continue
		}
		to := uint64(1) << uint(m.To())
		if p.CheckBlockSqrs&to == 0 {
			t.Fatalf("non-king move to %s does not resolve the check", Square2String[m.To()])
		}
	}
}

func TestResolveEatenPieceOrdinaryCapture(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/3p4/4P3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	m := NewCaptureMove(SE3, SD4, WPawn, true)
	resolved := resolveEatenPiece(&p, m)

	if resolved.EatenPiece() != BPawn {
		t.Fatalf("expected BPawn eaten, got %d", resolved.EatenPiece())
	}
}
