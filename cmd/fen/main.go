// Command fen round-trips a FEN string through Position.Set/Fen and
// reports the result, as a smoke test for the parser and emitter
// independent of any search or UCI harness.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ollins/chesscore/position"
)

func main() {
	in := flag.String("fen", position.StartFEN, "FEN string to parse and re-emit")
	variantName := flag.String("variant", "standard", "Rule variant: standard, chess960, koth, 3check, horde, racingkings, antichess, atomic")
	check := flag.Bool("check", false, "Run Position.IsOk() against the parsed position")
	flag.Parse()

	v, err := parseVariant(*variantName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var pos position.Position
	var st position.StateInfo
	if err := pos.Set(*in, v, &st); err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	out := pos.Fen()
	fmt.Printf("in:  %s\n", *in)
	fmt.Printf("out: %s\n", out)
	fmt.Printf("legal moves: %d\n", len(pos.LegalMoves()))

	if *check {
		if err := pos.IsOk(); err != nil {
			fmt.Fprintf(os.Stderr, "IsOk: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("IsOk: ok")
	}
}

func parseVariant(s string) (position.Variant, error) {
	switch s {
	case "standard", "":
		return position.VariantStandard, nil
	case "chess960":
		return position.VariantChess960, nil
	case "koth":
		return position.VariantKOTH, nil
	case "3check":
		return position.VariantThreeCheck, nil
	case "horde":
		return position.VariantHorde, nil
	case "racingkings":
		return position.VariantRacingKings, nil
	case "antichess":
		return position.VariantAntichess, nil
	case "atomic":
		return position.VariantAtomic, nil
	default:
		return 0, fmt.Errorf("unknown -variant %q", s)
	}
}
