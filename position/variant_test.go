package position_test

import (
	"testing"

	"github.com/ollins/chesscore/position"
)

func TestAntichessForcesCaptureWhenAvailable(t *testing.T) {
	// Black pawn on d5 can be taken by the white pawn on e4; Antichess
	// rules require every other move to be withheld when a capture
	// exists.
	pos, _ := mustSet(t, "8/8/8/3p4/4P3/8/8/8 w - - 0 1", position.VariantAntichess)
	for _, m := range pos.LegalMoves() {
		if !pos.IsCapture(m) {
			t.Fatalf("expected only capturing moves, found non-capture %s", m)
		}
	}
	if len(pos.LegalMoves()) == 0 {
		t.Fatalf("expected at least the forced capture exd5")
	}
}

func TestHordeDoublePushFromCrowdedRank(t *testing.T) {
	// A white pawn sitting on rank 2 of Horde's dense formation may still
	// double-push even though it isn't on White's "normal" second rank
	// in the conventional sense (it is, here, but the allowance covers
	// ranks 1-4 uniformly for Horde's packed walls).
	pos, _ := mustSet(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", position.VariantHorde)
	found := false
	for _, m := range pos.LegalMoves() {
		if m.From() == sq("e2") && m.To() == sq("e4") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected e2e4 double push to be legal in Horde")
	}
}

func TestRacingKingsForbidsMovesThatGiveCheck(t *testing.T) {
	pos, _ := mustSet(t, "8/8/8/8/8/2k5/8/R3K3 w - - 0 1", position.VariantRacingKings)
	illegal := position.NewMove(sq("a1"), sq("a3"))
	for _, m := range pos.LegalMoves() {
		if m == illegal {
			t.Fatalf("Ra3 gives check and must be excluded under Racing Kings rules")
		}
	}
}

func TestVariantTerminalKOTH(t *testing.T) {
	pos, _ := mustSet(t, "4k3/8/8/3K4/8/8/8/8 w - - 0 1", position.VariantKOTH)
	if got := pos.VariantTerminal(len(pos.LegalMoves())); got != position.WhiteWins {
		t.Fatalf("expected WhiteWins once the white king reaches d5, got %v", got)
	}
}

func TestVariantTerminalThreeCheck(t *testing.T) {
	pos, _ := mustSet(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1 +3+0", position.VariantThreeCheck)
	if got := pos.VariantTerminal(len(pos.LegalMoves())); got != position.WhiteWins {
		t.Fatalf("expected WhiteWins after three checks given, got %v", got)
	}
}
