package position

// Variant is a bitmask selecting which rule branches apply to a Position.
// It is threaded through Set as an integer and XORed into the initial
// Zobrist key (§6) so that, e.g., standard chess and Atomic starting from
// the same FEN never alias in a shared transposition table. Bits combine
// freely — Chess960 is orthogonal to the others (e.g. Chess960 + Atomic is
// a legal combination) — matching how the source treats Chess960 as a
// castling-encoding flag rather than a distinct ruleset.
type Variant uint16

const (
	VariantStandard    Variant = 0
	VariantChess960    Variant = 1 << 0
	VariantKOTH        Variant = 1 << 1
	VariantThreeCheck  Variant = 1 << 2
	VariantHorde       Variant = 1 << 3
	VariantRacingKings Variant = 1 << 4
	VariantAntichess   Variant = 1 << 5
	VariantAtomic      Variant = 1 << 6
)

func (v Variant) has(bit Variant) bool { return v&bit != 0 }

// IsChess960 reports whether castling should be interpreted with
// Chess960/Shredder semantics (variable rook files).
func (v Variant) IsChess960() bool { return v.has(VariantChess960) }

// IsKOTH reports King-of-the-Hill: reaching a central square (d4/d5/e4/e5) wins.
func (v Variant) IsKOTH() bool { return v.has(VariantKOTH) }

// IsThreeCheck reports Three-Check: giving check three times wins.
func (v Variant) IsThreeCheck() bool { return v.has(VariantThreeCheck) }

// IsHorde reports Horde: White has no king and a wall of pawns.
// VariantTerminal applies no Horde-specific win condition.
func (v Variant) IsHorde() bool { return v.has(VariantHorde) }

// IsRacingKings reports Racing Kings: no move that gives check is legal, and
// reaching rank 8 with the king wins (a race, not an attack).
func (v Variant) IsRacingKings() bool { return v.has(VariantRacingKings) }

// IsAntichess reports Antichess: captures are forced when available, there
// is no check/checkmate, and losing all pieces (or being stalemated) wins.
func (v Variant) IsAntichess() bool { return v.has(VariantAntichess) }

// IsAtomic reports Atomic: captures explode the 8 neighboring squares,
// removing every non-pawn piece there.
func (v Variant) IsAtomic() bool { return v.has(VariantAtomic) }

// centralSquares is the four King-of-the-Hill target squares: d4 e4 d5 e5.
var centralSquares = Bitboard(0) |
	Square(27).Bitboard() | Square(28).Bitboard() | // d4 e4
	Square(35).Bitboard() | Square(36).Bitboard() // d5 e5

// VariantOutcome classifies a terminal (or non-terminal) position under
// the active variant's win conditions, beyond plain checkmate/stalemate
// which a caller detects via an empty LegalMoves list.
type VariantOutcome uint8

const (
	Ongoing VariantOutcome = iota
	WhiteWins
	BlackWins
	Drawn
)

// VariantTerminal evaluates the variant-specific win conditions that are
// not plain checkmate/stalemate: KOTH's king-in-the-center, Three-Check's
// three checks given, Racing Kings' king-on-rank-8 race, Antichess' empty
// army, and Atomic's missing enemy king. legalMoveCount must be the number
// of legal moves in the current position (the caller already has it from
// move generation, so it is not recomputed here).
func (pos *Position) VariantTerminal(legalMoveCount int) VariantOutcome {
	v := pos.variant
	st := pos.st

	if v.IsKOTH() {
		if pos.kingSquare(White) != NoSquare && centralSquares&pos.kingSquare(White).Bitboard() != 0 {
			return WhiteWins
		}
		if pos.kingSquare(Black) != NoSquare && centralSquares&pos.kingSquare(Black).Bitboard() != 0 {
			return BlackWins
		}
	}

	if v.IsThreeCheck() {
		if st.ChecksGiven[White] >= 3 {
			return WhiteWins
		}
		if st.ChecksGiven[Black] >= 3 {
			return BlackWins
		}
	}

	if v.IsRacingKings() {
		wk, bk := pos.kingSquare(White), pos.kingSquare(Black)
		wkHome := wk != NoSquare && wk.Rank() == 7
		bkHome := bk != NoSquare && bk.Rank() == 7
		if wkHome || bkHome {
			// Both kings on rank 8 is a draw; otherwise the king already on
			// rank 8 wins at once, whichever side is to move. A Black reply
			// that could still bring its king to rank 8 is not considered.
			if wkHome && bkHome {
				return Drawn
			}
			if wkHome {
				return WhiteWins
			}
			return BlackWins
		}
	}

	if v.IsAntichess() {
		if pos.byColor[White] == 0 {
			return WhiteWins
		}
		if pos.byColor[Black] == 0 {
			return BlackWins
		}
		if legalMoveCount == 0 {
			// No forced capture and no other move: the side to move wins
			// by being unable to move, the inverse of standard stalemate.
			if pos.sideToMove == White {
				return WhiteWins
			}
			return BlackWins
		}
	}

	if v.IsAtomic() {
		if pos.kingSquare(White) == NoSquare {
			return BlackWins
		}
		if pos.kingSquare(Black) == NoSquare {
			return WhiteWins
		}
	}

	return Ongoing
}
