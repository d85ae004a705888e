package position_test

import (
	"testing"

	"github.com/ollins/chesscore/position"
)

// playAndUndo applies every move returned by LegalMoves one at a time,
// checking IsOk() after each DoMove and after the matching UndoMove
// restores exactly the starting Fen/Key.
func playAndUndo(t *testing.T, fen string, v position.Variant) {
	t.Helper()
	pos, _ := mustSet(t, fen, v)
	startFen := pos.Fen()
	startKey := pos.State().Key

	for _, m := range pos.LegalMoves() {
		var st position.StateInfo
		gc := pos.GivesCheck(m)
		pos.DoMove(m, &st, gc)
		if err := pos.IsOk(); err != nil {
			t.Fatalf("after DoMove(%s): %v", m, err)
		}
		pos.UndoMove(m)
		if err := pos.IsOk(); err != nil {
			t.Fatalf("after UndoMove(%s): %v", m, err)
		}
		if got := pos.Fen(); got != startFen {
			t.Fatalf("after UndoMove(%s): Fen mismatch: got %q want %q", m, got, startFen)
		}
		if got := pos.State().Key; got != startKey {
			t.Fatalf("after UndoMove(%s): Key mismatch: got %#x want %#x", m, got, startKey)
		}
	}
}

func TestMakeUnmakeStartPos(t *testing.T) {
	playAndUndo(t, position.StartFEN, position.VariantStandard)
}

func TestMakeUnmakeKiwipete(t *testing.T) {
	playAndUndo(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", position.VariantStandard)
}

func TestMakeUnmakeCastling(t *testing.T) {
	playAndUndo(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", position.VariantStandard)
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	playAndUndo(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", position.VariantStandard)
}

func TestMakeUnmakePromotion(t *testing.T) {
	playAndUndo(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1", position.VariantStandard)
}

func TestMakeUnmakeAtomicCapture(t *testing.T) {
	// Guarantees at least one capturing move (exd5) in the legal move
	// list, exercising the blast-radius removal/restoration path.
	playAndUndo(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", position.VariantAtomic)
}

func TestDoMoveFlipsSideToMove(t *testing.T) {
	pos, _ := mustSet(t, position.StartFEN, position.VariantStandard)
	var st position.StateInfo
	m := position.NewMove(sq("e2"), sq("e4"))
	pos.DoMove(m, &st, false)
	if pos.SideToMove() != position.Black {
		t.Fatalf("expected Black to move after 1.e4")
	}
	if pos.EpSquare() != position.NoSquare {
		t.Fatalf("expected no ep square after 1.e4 (no black pawn can capture on e3), got %v", pos.EpSquare())
	}
}
