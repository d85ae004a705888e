package position

import (
	"github.com/dylhunn/dragontoothmg"
)

// Precomputed leaper attack tables (§4.1). Knight and king attacks don't
// depend on occupancy; pawn attacks depend on color. These mirror
// goosemg/movegen.go's initAttackTables, built once at package init.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard

	// pseudoAttacks[pt][sq] is the unobstructed reach of a piece of type pt
	// from sq on an empty board — for sliders this is attacks on an empty
	// board, used by sliderBlockers as a cheap first filter before the
	// real occupancy-aware query.
	pseudoAttacks [7][64]Bitboard

	// lineBB[a][b] is the full line through a and b if they are aligned
	// (same rank, file, or diagonal), else 0. betweenBB[a][b] is the open
	// interval strictly between them along that line.
	lineBB    [64][64]Bitboard
	betweenBB [64][64]Bitboard
)

func init() {
	buildLeaperTables()
	buildPseudoAttacksAndLines()
}

func buildLeaperTables() {
	knightDeltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	for sq := 0; sq < 64; sq++ {
		f, r := sq&7, sq>>3
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightAttacks[sq] |= MakeSquare(nf, nr).Bitboard()
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kingAttacks[sq] |= MakeSquare(nf, nr).Bitboard()
			}
		}
		if r < 7 {
			if f > 0 {
				pawnAttacks[White][sq] |= MakeSquare(f-1, r+1).Bitboard()
			}
			if f < 7 {
				pawnAttacks[White][sq] |= MakeSquare(f+1, r+1).Bitboard()
			}
		}
		if r > 0 {
			if f > 0 {
				pawnAttacks[Black][sq] |= MakeSquare(f-1, r-1).Bitboard()
			}
			if f < 7 {
				pawnAttacks[Black][sq] |= MakeSquare(f+1, r-1).Bitboard()
			}
		}
	}
}

func buildPseudoAttacksAndLines() {
	for sq := 0; sq < 64; sq++ {
		pseudoAttacks[Knight][sq] = knightAttacks[sq]
		pseudoAttacks[King][sq] = kingAttacks[sq]
		pseudoAttacks[Bishop][sq] = slidingAttacksEmpty(Bishop, Square(sq))
		pseudoAttacks[Rook][sq] = slidingAttacksEmpty(Rook, Square(sq))
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}

	directions := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for a := 0; a < 64; a++ {
		af, ar := a&7, a>>3
		for i, d := range directions {
			pt := Rook
			if i >= 4 {
				pt = Bishop
			}
			f, r := af+d[0], ar+d[1]
			var ray Bitboard
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				b := MakeSquare(f, r)
				ray |= b.Bitboard()
				lineBB[a][b] = pseudoAttacks[pt][a]&pseudoAttacks[pt][int(b)] |
					Square(a).Bitboard() | b.Bitboard()
				betweenBB[a][b] = ray &^ b.Bitboard()
				f += d[0]
				r += d[1]
			}
		}
	}
}

// slidingAttacksEmpty computes the attack set of a slider on an empty
// board, used only during table initialization (real queries go through
// AttacksBB with an occupancy).
func slidingAttacksEmpty(pt PieceType, sq Square) Bitboard {
	return slidingAttacksOcc(pt, sq, 0)
}

func slidingAttacksOcc(pt PieceType, sq Square, occ Bitboard) Bitboard {
	var dirs [][2]int
	if pt == Rook {
		dirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	} else {
		dirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	}
	f, r := sq.File(), sq.Rank()
	var attacks Bitboard
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			s := MakeSquare(nf, nr)
			attacks |= s.Bitboard()
			if occ&s.Bitboard() != 0 {
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return attacks
}

// AttacksBB returns the occupancy-aware attack set of a slider (Bishop,
// Rook or Queen) from sq given the board occupancy occ (§4.1). Rook and
// bishop attacks are delegated to dragontoothmg's magic-bitboard tables —
// the same functions the teacher calls directly from its SEE — rather
// than a second hand-rolled slider implementation.
func AttacksBB(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)))
	case Rook:
		return Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
	case Queen:
		return Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ))) |
			Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
	default:
		return 0
	}
}

// AttacksFrom returns the attack set of a leaper (Knight or King) from sq.
func AttacksFrom(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// PawnAttacksFrom returns the squares a pawn of color c on sq attacks.
func PawnAttacksFrom(sq Square, c Color) Bitboard { return pawnAttacks[c][sq] }

// PseudoAttacks returns the unobstructed reach of piece type pt from sq,
// i.e. its attack set on an empty board.
func PseudoAttacks(pt PieceType, sq Square) Bitboard { return pseudoAttacks[pt][sq] }

// BetweenBB returns the set of squares strictly between s1 and s2 if they
// lie on a common rank, file or diagonal, else the empty set.
func BetweenBB(s1, s2 Square) Bitboard { return betweenBB[s1][s2] }

// LineBB returns the full line (both rays plus endpoints) through s1 and
// s2 if aligned, else the empty set.
func LineBB(s1, s2 Square) Bitboard { return lineBB[s1][s2] }

// Aligned reports whether a, b and c lie on a common rank, file or diagonal.
func Aligned(a, b, c Square) bool { return lineBB[a][b]&c.Bitboard() != 0 }
