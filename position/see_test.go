package position_test

import (
	"testing"

	"github.com/ollins/chesscore/position"
)

func sq(coord string) position.Square {
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	return position.MakeSquare(file, rank)
}

func TestSEESimpleCapture(t *testing.T) {
	// White rook takes an undefended black knight: a clean material win.
	pos, _ := mustSet(t, "6k1/8/4n3/8/8/8/8/4R1K1 w - - 0 1", position.VariantStandard)
	m := position.NewMove(sq("e1"), sq("e6"))
	if got := pos.SEEValue(m); got != position.PieceValue[position.Knight] {
		t.Fatalf("SEEValue: got %d want %d", got, position.PieceValue[position.Knight])
	}
}

func TestSEEAccountsForRecapture(t *testing.T) {
	// Bishop takes a queen-defended knight: the queen recaptures, so the
	// mover ends up a bishop down for a knight (§4.8).
	pos, _ := mustSet(t, "6k1/4q3/4n3/8/2B5/8/8/6K1 w - - 0 1", position.VariantStandard)
	m := position.NewMove(sq("c4"), sq("e6"))
	want := position.PieceValue[position.Knight] - position.PieceValue[position.Bishop]
	if got := pos.SEEValue(m); got != want {
		t.Fatalf("SEEValue: got %d want %d", got, want)
	}
}

func TestSEEHandlesEnPassantCapture(t *testing.T) {
	pos, _ := mustSet(t, "8/8/8/3pP3/8/8/8/6K1 w - d6 0 1", position.VariantStandard)
	m := position.NewEnPassantMove(sq("e5"), sq("d6"))
	if got := pos.SEEValue(m); got != position.PieceValue[position.Pawn] {
		t.Fatalf("SEEValue: got %d want %d", got, position.PieceValue[position.Pawn])
	}
}

func TestSEEGeThreshold(t *testing.T) {
	pos, _ := mustSet(t, "6k1/8/4n3/8/8/8/8/4R1K1 w - - 0 1", position.VariantStandard)
	m := position.NewMove(sq("e1"), sq("e6"))
	if !pos.SEEGe(m, position.PieceValue[position.Knight]) {
		t.Fatalf("expected SEEGe to hold at exactly the knight's value")
	}
	if pos.SEEGe(m, position.PieceValue[position.Knight]+1) {
		t.Fatalf("expected SEEGe to fail one above the knight's value")
	}
}
