package position_test

import (
	"testing"

	"github.com/ollins/chesscore/position"
)

func mustSet(t *testing.T, fen string, v position.Variant) (*position.Position, *position.StateInfo) {
	t.Helper()
	var pos position.Position
	var st position.StateInfo
	if err := pos.Set(fen, v, &st); err != nil {
		t.Fatalf("Set(%q): %v", fen, err)
	}
	return &pos, &st
}

func TestFenRoundTripStartPos(t *testing.T) {
	pos, _ := mustSet(t, position.StartFEN, position.VariantStandard)
	if got := pos.Fen(); got != position.StartFEN {
		t.Fatalf("round trip: got %q want %q", got, position.StartFEN)
	}
	if err := pos.IsOk(); err != nil {
		t.Fatalf("IsOk: %v", err)
	}
}

func TestFenRoundTripKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, _ := mustSet(t, fen, position.VariantStandard)
	if got := pos.Fen(); got != fen {
		t.Fatalf("round trip: got %q want %q", got, fen)
	}
	if err := pos.IsOk(); err != nil {
		t.Fatalf("IsOk: %v", err)
	}
}

func TestFenClearsDeadEnPassantSquare(t *testing.T) {
	// No white pawn beside d5 that could actually capture on d6: the ep
	// square must be dropped so the Zobrist key matches the same position
	// given with "-" instead (§4.3 step 4, §8 scenario 4).
	withEp, _ := mustSet(t, "8/8/8/3p4/4P3/k6K/8/8 w - d6 0 2", position.VariantStandard)
	without, _ := mustSet(t, "8/8/8/3p4/4P3/k6K/8/8 w - - 0 2", position.VariantStandard)
	if withEp.EpSquare() != position.NoSquare {
		t.Fatalf("expected ep square to be cleared (no attacker), got %v", withEp.EpSquare())
	}
	if withEp.State().Key != without.State().Key {
		t.Fatalf("expected identical keys once the dead ep square is cleared")
	}
}

func TestFenKeepsLiveEnPassantSquare(t *testing.T) {
	pos, _ := mustSet(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", position.VariantStandard)
	if pos.EpSquare() == position.NoSquare {
		t.Fatalf("expected ep square d6 to survive validation (e5 pawn can recapture)")
	}
}

func TestFenThreeCheckSuffixRoundTrips(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 +1+2"
	pos, _ := mustSet(t, fen, position.VariantThreeCheck)
	if got := pos.Fen(); got != fen {
		t.Fatalf("round trip: got %q want %q", got, fen)
	}
}

func TestFenChess960ShredderCastling(t *testing.T) {
	fen := "nrkqbrnb/pppppppp/8/8/8/8/PPPPPPPP/NRKQBRNB w FBfb - 0 1"
	pos, _ := mustSet(t, fen, position.VariantChess960)
	if err := pos.IsOk(); err != nil {
		t.Fatalf("IsOk: %v", err)
	}
	if got := pos.Fen(); got != fen {
		t.Fatalf("round trip: got %q want %q", got, fen)
	}
}
