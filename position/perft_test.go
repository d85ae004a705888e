package position_test

import (
	"testing"

	"github.com/ollins/chesscore/position"
)

func perft(t *testing.T, fen string, v position.Variant, depth int, want uint64) {
	t.Helper()
	pos, _ := mustSet(t, fen, v)
	if got := pos.Perft(depth); got != want {
		t.Fatalf("Perft(%d) on %q: got %d want %d", depth, fen, got, want)
	}
}

func TestPerftStartPos(t *testing.T) {
	perft(t, position.StartFEN, position.VariantStandard, 1, 20)
	perft(t, position.StartFEN, position.VariantStandard, 2, 400)
	perft(t, position.StartFEN, position.VariantStandard, 3, 8902)
	perft(t, position.StartFEN, position.VariantStandard, 4, 197281)
}

func TestPerftStartPosDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 perft skipped in short mode")
	}
	perft(t, position.StartFEN, position.VariantStandard, 5, 4865609)
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	perft(t, fen, position.VariantStandard, 1, 48)
	perft(t, fen, position.VariantStandard, 2, 2039)
	perft(t, fen, position.VariantStandard, 3, 97862)
	if !testing.Short() {
		perft(t, fen, position.VariantStandard, 4, 4085603)
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	perft(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", position.VariantStandard, 1, 5)
	perft(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", position.VariantStandard, 2, 19)
}

func TestPerftPromotionPosition(t *testing.T) {
	perft(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1", position.VariantStandard, 1, 11)
}

func TestPerftChess960Castling(t *testing.T) {
	// Standard array is a valid (if boring) Chess960 start: exercises the
	// generalized castling path/rights code on the familiar piece count.
	perft(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", position.VariantChess960, 3, 8902)
}

func TestPerftKOTHCountsMatchStandardAwayFromCenter(t *testing.T) {
	// With the center empty and no king near it, KOTH's extra win
	// condition is never reachable in one ply, so counts match standard.
	perft(t, position.StartFEN, position.VariantKOTH, 1, 20)
}
