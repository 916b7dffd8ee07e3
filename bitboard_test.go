package chesscore

import "testing"

func TestCountBits(t *testing.T) {
	testcases := []struct {
		bb  uint64
		cnt int
	}{
		{0, 0},
		{1, 1},
		{0xFF, 8},
		{^uint64(0), 64},
		{Files[0], 8},
	}

	for _, tc := range testcases {
		if got := CountBits(tc.bb); got != tc.cnt {
			t.Fatalf("CountBits(%#x): expected %d, got %d", tc.bb, tc.cnt, got)
		}
	}
}

func TestPopLSB(t *testing.T) {
	bb := uint64(0b1010100)
	var got []int
	for bb != 0 {
		got = append(got, PopLSB(&bb))
	}

	expected := []int{2, 4, 6}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func TestSetClearTest(t *testing.T) {
	var bb uint64

	bb = Set(bb, SE4)
	if !Test(bb, SE4) {
		t.Fatal("expected e4 to be set")
	}

	bb = Clear(bb, SE4)
	if Test(bb, SE4) {
		t.Fatal("expected e4 to be cleared")
	}
}

func TestDiff(t *testing.T) {
	a := Files[0] | Files[1]
	b := Files[1]

	got := Diff(a, b)
	if got != Files[0] {
		t.Fatalf("expected %#x, got %#x", Files[0], got)
	}
}
