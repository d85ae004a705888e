package position_test

import (
	"testing"

	"github.com/ollins/chesscore/position"
)

func TestIsDrawThreefoldRepetition(t *testing.T) {
	pos, _ := mustSet(t, position.StartFEN, position.VariantStandard)

	shuffle := []position.Move{
		position.NewMove(sq("b1"), sq("c3")),
		position.NewMove(sq("b8"), sq("c6")),
		position.NewMove(sq("c3"), sq("b1")),
		position.NewMove(sq("c6"), sq("b8")),
	}

	states := make([]position.StateInfo, 0, 8)
	for cycle := 0; cycle < 2; cycle++ {
		for _, m := range shuffle {
			states = append(states, position.StateInfo{})
			pos.DoMove(m, &states[len(states)-1], false)
		}
	}

	if !pos.IsDraw(0) {
		t.Fatalf("expected threefold repetition draw after two full knight-shuffle cycles")
	}
}

func TestIsDrawNotTriggeredEarly(t *testing.T) {
	pos, _ := mustSet(t, position.StartFEN, position.VariantStandard)
	var st position.StateInfo
	pos.DoMove(position.NewMove(sq("b1"), sq("c3")), &st, false)
	if pos.IsDraw(0) {
		t.Fatalf("expected no draw after a single non-repeating move")
	}
}

func TestIsDrawFiftyMoveRule(t *testing.T) {
	// A position with kings only and no pawns/captures available lets
	// Rule50 climb freely via king shuffles.
	pos, _ := mustSet(t, "7k/8/8/8/8/8/8/K7 w - - 99 1", position.VariantStandard)
	var st position.StateInfo
	pos.DoMove(position.NewMove(sq("a1"), sq("a2")), &st, false)
	if !pos.IsDraw(0) {
		t.Fatalf("expected fifty-move draw once Rule50 exceeds 99 half-moves")
	}
}
