package position

import "golang.org/x/exp/constraints"

// abs serves square-index arithmetic (DoMove's double-push detection)
// instead of a one-off absInt per call site, the way goosemg hand-rolled
// a separate helper. min/max use Go's builtins directly (1.21+) — x/exp's
// generic min/max predate the language builtins and would just shadow them.
func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
