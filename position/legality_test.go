package position_test

import (
	"testing"

	"github.com/ollins/chesscore/position"
)

func TestLegalRejectsPinBreakingCapture(t *testing.T) {
	// Black pawn e7 is pinned to its king along the e-file by the white
	// queen; capturing on d6 would expose the king.
	pos, _ := mustSet(t, "4k3/4p3/3P4/8/8/8/4Q3/4K3 b - - 0 1", position.VariantStandard)
	capture := position.NewMove(sq("e7"), sq("d6"))
	if pos.Legal(capture) {
		t.Fatalf("expected e7xd6 to be illegal: it abandons the e-file pin")
	}
	push := position.NewMove(sq("e7"), sq("e6"))
	if !pos.Legal(push) {
		t.Fatalf("expected e7e6 to remain legal: it stays on the pin line")
	}
}

func TestLegalMovesExcludesPinnedSidestep(t *testing.T) {
	pos, _ := mustSet(t, "4k3/4p3/3P4/8/8/8/4Q3/4K3 b - - 0 1", position.VariantStandard)
	for _, m := range pos.LegalMoves() {
		if m.From() == sq("e7") && m.To() == sq("d6") {
			t.Fatalf("LegalMoves must not include the pin-breaking capture e7xd6")
		}
	}
}

func TestCastlingBlockedByAttackedPassThroughSquare(t *testing.T) {
	// Black rook on f7 rakes down the f-file onto f1, which the king must
	// cross to reach g1; O-O must be refused even though the path is
	// otherwise clear and the king isn't currently in check.
	pos, _ := mustSet(t, "4k3/5r2/8/8/8/8/8/4K2R w K - 0 1", position.VariantStandard)
	castle := position.NewCastlingMove(sq("e1"), sq("h1"))
	if pos.Legal(castle) {
		t.Fatalf("expected O-O to be illegal: f1 is attacked by the rook on f7")
	}
}

func TestGivesCheckDetectsDiscoveredCheck(t *testing.T) {
	// The knight on e4 blocks its own queen's view down the e-file onto
	// the black king; stepping aside uncovers check.
	pos, _ := mustSet(t, "4k3/8/8/8/4N3/8/8/4Q1K1 w - - 0 1", position.VariantStandard)
	knightMove := position.NewMove(sq("e4"), sq("c5"))
	if !pos.GivesCheck(knightMove) {
		t.Fatalf("expected Nc5 to give discovered check from the queen on e1")
	}
}
