package chesscore

import "testing"

func TestZobristKeyDeterministic(t *testing.T) {
	InitZobristKeys()

	p := NewPosition()
	a := zobristKey(&p)
	b := zobristKey(&p)

	if a != b {
		t.Fatal("zobristKey must be a pure function of position state")
	}
}

func TestZobristKeyDiffersOnTurn(t *testing.T) {
	InitZobristKeys()

	p := NewPosition()
	white := zobristKey(&p)

	p.Turn = ColorBlack
	black := zobristKey(&p)

	if white == black {
		t.Fatal("expected the side to move to affect the Zobrist key")
	}
}

func TestZobristKeyDiffersOnEnPassant(t *testing.T) {
	InitZobristKeys()

	p := NewPosition()
	p.EPSquare = NoEPSquare
	withoutEP := zobristKey(&p)

	p.EPSquare = SE3
	withEP := zobristKey(&p)

	if withoutEP == withEP {
		t.Fatal("expected the en-passant target to affect the Zobrist key")
	}
}

func TestZobristKeyIgnoresMoveCounters(t *testing.T) {
	InitZobristKeys()

	p := NewPosition()
	before := zobristKey(&p)

	p.HalfmoveClock = 17
	p.FullmoveNumber = 42
	after := zobristKey(&p)

	if before != after {
		t.Fatal("move counters must not affect repetition keying")
	}
}
