package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/ollins/chesscore/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	variantName := flag.String("variant", "standard", "Rule variant: standard, chess960, koth, 3check, horde, racingkings, antichess, atomic")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	v, err := parseVariant(*variantName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var pos position.Position
	var st position.StateInfo
	if err := pos.Set(*fen, v, &st); err != nil {
		fmt.Fprintf(os.Stderr, "parsing FEN: %v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div := pos.PerftDivide(*depth)
		arr := make([]string, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, fmt.Sprintf("%s: %d", m.String(), n))
			sum += n
		}
		sort.Strings(arr)
		for _, line := range arr {
			fmt.Println(line)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += pos.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
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
