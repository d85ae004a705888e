package position

// SEEValue runs the classic swap-algorithm Static Exchange Evaluation
// (§4.8) for the capture sequence that would follow m: both sides keep
// recapturing on m.To() with their cheapest available attacker until one
// side runs out, and the result is the net material the mover ends up
// ahead (or behind) by, assuming optimal play on both sides.
//
// Unlike the teacher's SEE (which walks dragontoothmg's Board type
// directly), this re-queries attackersTo after every simulated capture
// instead of hand-maintaining an x-ray bitboard: removing the attacker
// from occ is enough for the next attackersTo call to reveal any slider
// behind it on its own.
func (pos *Position) SEEValue(m Move) int {
	if m.Type() == Castling {
		return 0
	}

	to, from := m.To(), m.From()
	occ := pos.Pieces()

	var captured Piece
	if m.Type() == EnPassant {
		capSq := MakeSquare(to.File(), from.Rank())
		captured = pos.board[capSq]
		occ &^= capSq.Bitboard()
	} else {
		captured = pos.board[to]
	}

	mover := pos.board[from]
	attackerValue := PieceValue[mover.Type()]
	if m.Type() == Promotion {
		attackerValue = PieceValue[m.PromotionType()]
	}

	var gain [32]int
	gain[0] = PieceValue[captured.Type()]
	occ &^= from.Bitboard()
	side := mover.Color().Other()

	d := 0
	for d < 31 {
		d++
		gain[d] = attackerValue - gain[d-1]

		attackers := pos.attackersTo(to, occ) & occ & pos.byColor[side]
		if attackers == 0 {
			break
		}
		sq, pt := leastValuableAttacker(pos, attackers)
		if pt == King {
			// A king can't recapture into a square the other side still
			// attacks — that would be moving into check. Treat this as if
			// no attacker had been found at all and stop the exchange
			// here, discarding the king's (illegal) turn (§4.8 step 5).
			occAfterKing := occ &^ sq.Bitboard()
			if pos.attackersTo(to, occAfterKing)&occAfterKing&pos.byColor[side.Other()] != 0 {
				break
			}
		}
		attackerValue = PieceValue[pt]
		occ &^= sq.Bitboard()
		side = side.Other()
	}

	for d > 0 {
		d--
		if d == 0 {
			break
		}
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// SEEGe reports whether the exchange sequence on m is worth at least
// threshold centipawns to the mover — the predicate move ordering and
// capture pruning actually need, computed without the caller having to
// interpret SEEValue's sign conventions itself.
func (pos *Position) SEEGe(m Move, threshold int) bool {
	return pos.SEEValue(m) >= threshold
}

// leastValuableAttacker returns the cheapest piece (by conventional
// material value) in attackers, breaking ties by square index.
func leastValuableAttacker(pos *Position, attackers Bitboard) (Square, PieceType) {
	for pt := Pawn; pt <= King; pt++ {
		bb := attackers & pos.byType[pt]
		if bb != 0 {
			return LSB(bb), pt
		}
	}
	return NoSquare, NoPieceType
}
