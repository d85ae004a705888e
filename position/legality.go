package position

// Legal reports whether a pseudo-legal move m leaves the mover's own king
// safe (§4.6). It assumes m was produced by PseudoMoves (or is otherwise
// already known pseudo-legal) and does not re-derive occupancy/target
// legality from scratch.
func (pos *Position) Legal(m Move) bool {
	us := pos.sideToMove
	from, to := m.From(), m.To()

	if m.Type() == Castling {
		return pos.castlingIsLegal(us, from, to)
	}

	if m.Type() == EnPassant {
		capSq := MakeSquare(to.File(), from.Rank())
		if pos.InCheck() && !pos.resolvesCheck(to, capSq) {
			return false
		}
		return pos.enPassantIsLegal(us, from, to)
	}

	ksq := pos.kingSquare(us)
	if ksq == NoSquare {
		return true // Horde/Antichess: no king to endanger
	}

	if from == ksq {
		// A king move is legal iff the destination isn't attacked once the
		// king itself is removed from the blocker set (it can't block its
		// own escape square) and, in Atomic, landing adjacent to the enemy
		// king is always safe (kings can't check or capture each other).
		// A king move never has to "resolve" check by blocking/capturing:
		// stepping out of attack range is enough, which the attackersTo
		// query below already verifies.
		if pos.variant.IsAtomic() && AttacksFrom(King, to)&pos.kingSquare(us.Other()).Bitboard() != 0 {
			return true
		}
		occ := (pos.Pieces() ^ from.Bitboard()) | to.Bitboard()
		return pos.attackersTo(to, occ)&pos.byColor[us.Other()]&^to.Bitboard() == 0
	}

	if pos.variant.IsAtomic() && pos.board[to] != NoPiece {
		// atomicCaptureIsLegal simulates the blast and checks king safety
		// directly, which already subsumes check evasion: a blast that
		// destroys the checker (even without landing on or blocking its
		// square) leaves the king unattacked and is legal.
		return pos.atomicCaptureIsLegal(us, from, to, ksq)
	}

	if pos.InCheck() && !pos.resolvesCheck(to, to) {
		return false
	}

	// Not moving the king: only matters if from is pinned, and then only
	// if the move stays aligned with the king and the pinner.
	if pos.st.BlockersForKing[us]&from.Bitboard() == 0 {
		return true
	}
	return Aligned(from, to, ksq)
}

// resolvesCheck reports whether landing on to (capturing at capSq, which
// differs from to only for en passant) gets the side to move out of
// check: capturing the sole checker or blocking its line to the king. A
// double check has no such move — only a king step escapes it — so every
// call here rejects outright when more than one checker is set.
func (pos *Position) resolvesCheck(to, capSq Square) bool {
	checkers := pos.st.CheckersBB
	if PopCount(checkers) > 1 {
		return false
	}
	checker := LSB(checkers)
	if to == checker || capSq == checker {
		return true
	}
	ksq := pos.kingSquare(pos.sideToMove)
	return BetweenBB(ksq, checker)&to.Bitboard() != 0
}

// atomicCaptureIsLegal simulates the blast a capture at `to` would cause
// and checks whether the mover's own king survives it unattacked. A
// blast that destroys the mover's own king is legal regardless (Atomic
// has no rule against self-destruction; VariantTerminal decides the
// outcome once it happens).
func (pos *Position) atomicCaptureIsLegal(us Color, from, to, ksq Square) bool {
	blastRadius := AttacksFrom(King, to) | to.Bitboard()
	destroyed := (blastRadius & pos.Pieces() &^ pos.byType[Pawn]) | from.Bitboard() | to.Bitboard()
	if destroyed&ksq.Bitboard() != 0 {
		return true
	}
	occ := pos.Pieces() &^ destroyed
	return pos.attackersTo(ksq, occ)&pos.byColor[us.Other()]&^destroyed == 0
}

func (pos *Position) enPassantIsLegal(us Color, from, to Square) bool {
	ksq := pos.kingSquare(us)
	if ksq == NoSquare {
		return true
	}
	capSq := MakeSquare(to.File(), from.Rank())
	occ := pos.Pieces() ^ from.Bitboard() ^ capSq.Bitboard() | to.Bitboard()
	them := us.Other()
	return (AttacksBB(Rook, ksq, occ)&(pos.byType[Rook]|pos.byType[Queen])&pos.byColor[them] == 0) &&
		(AttacksBB(Bishop, ksq, occ)&(pos.byType[Bishop]|pos.byType[Queen])&pos.byColor[them] == 0)
}

func (pos *Position) castlingIsLegal(us Color, kfrom, rfrom Square) bool {
	if pos.InCheck() {
		return false
	}
	var cr CastlingRight
	oo, ooo := rightsOf(us)
	if rfrom > kfrom {
		cr = oo
	} else {
		cr = ooo
	}
	kto := MakeSquare(fileFor(cr, true), kfrom.Rank())
	occ := pos.Pieces() &^ kfrom.Bitboard() &^ rfrom.Bitboard()
	them := us.Other()

	lo, hi := kfrom, kto
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		if pos.attackersTo(s, occ|s.Bitboard())&pos.byColor[them] != 0 {
			return false
		}
	}
	return true
}

// PseudoLegal reports whether m is pseudo-legal in the current position
// (§4.6), the check a corrupt transposition-table move must pass. It
// rejects outright once a variant-terminal condition is already reached,
// checks Normal/Promotion moves directly against the piece-movement
// rules (falling back to membership in the legal move list for castling
// and en passant, which are fiddly to verify standalone), and — when the
// side to move is in check — accepts only a king move, a capture of the
// sole checker, or a block of the sole checker.
func (pos *Position) PseudoLegal(m Move) bool {
	if m.IsNull() {
		return false
	}

	// Antichess is the only VariantTerminal branch that consults
	// legalMoveCount, so the (otherwise wasted) full move generation is
	// skipped for every other variant.
	legalMoveCount := 0
	if pos.variant.IsAntichess() {
		legalMoveCount = len(pos.LegalMoves())
	}
	if pos.VariantTerminal(legalMoveCount) != Ongoing {
		return false
	}

	from, to := m.From(), m.To()
	p := pos.board[from]
	if p == NoPiece || p.Color() != pos.sideToMove {
		return false
	}
	if pos.byColor[pos.sideToMove]&to.Bitboard() != 0 {
		return false
	}

	if m.Type() == Castling || m.Type() == EnPassant {
		return pos.containsMove(m)
	}

	if p.Type() == Pawn {
		if !pos.pawnPseudoLegal(p, from, to, m) {
			return false
		}
	} else {
		occ := pos.Pieces()
		var targets Bitboard
		switch p.Type() {
		case Knight:
			targets = AttacksFrom(Knight, from)
		case King:
			targets = AttacksFrom(King, from)
		default:
			targets = AttacksBB(p.Type(), from, occ)
		}
		if targets&to.Bitboard() == 0 {
			return false
		}
	}

	if pos.InCheck() && p.Type() != King && !pos.resolvesCheck(to, to) {
		return false
	}
	return true
}

func (pos *Position) pawnPseudoLegal(p Piece, from, to Square, m Move) bool {
	us := p.Color()
	forward := 8
	lastRank := 7
	startRank := 1
	if us == Black {
		forward = -8
		lastRank = 0
		startRank = 6
	}
	isPromo := to.Rank() == lastRank
	if (m.Type() == Promotion) != isPromo {
		return false
	}

	if PawnAttacksFrom(from, us)&to.Bitboard() != 0 {
		return pos.board[to] != NoPiece
	}
	if int(to) != int(from)+forward {
		if int(to) == int(from)+2*forward {
			mid := Square(int(from) + forward)
			allowedRank := from.Rank() == startRank
			if pos.variant.IsHorde() && us == White {
				allowedRank = from.Rank() <= 3
			}
			return allowedRank && pos.board[mid] == NoPiece && pos.board[to] == NoPiece
		}
		return false
	}
	return pos.board[to] == NoPiece
}

// GivesCheck reports whether playing m would place the opponent's king in
// check, using CheckSquares / BlockersForKing as a fast path before
// falling back to a direct attack query for special move types (§4.6).
func (pos *Position) GivesCheck(m Move) bool {
	from, to := m.From(), m.To()
	p := pos.board[from]
	them := p.Color().Other()
	ksq := pos.kingSquare(them)
	if ksq == NoSquare {
		return false
	}

	if pos.st.CheckSquares[p.Type()]&to.Bitboard() != 0 {
		return true
	}

	if pos.st.BlockersForKing[them]&from.Bitboard() != 0 && !Aligned(from, to, ksq) {
		return true
	}

	switch m.Type() {
	case Normal:
		return false
	case Promotion:
		occ := (pos.Pieces() ^ from.Bitboard()) | to.Bitboard()
		return AttacksBB(m.PromotionType(), to, occ)&ksq.Bitboard() != 0
	case EnPassant:
		capSq := MakeSquare(to.File(), from.Rank())
		occ := (pos.Pieces() ^ from.Bitboard() ^ capSq.Bitboard()) | to.Bitboard()
		return (AttacksBB(Rook, ksq, occ)&(pos.byType[Rook]|pos.byType[Queen])&pos.byColor[p.Color()] != 0) ||
			(AttacksBB(Bishop, ksq, occ)&(pos.byType[Bishop]|pos.byType[Queen])&pos.byColor[p.Color()] != 0)
	case Castling:
		kto := pos.CastlingKingTo(m)
		rto := pos.CastlingRookTo(m)
		occ := (pos.Pieces() &^ from.Bitboard() &^ to.Bitboard()) | kto.Bitboard() | rto.Bitboard()
		return AttacksBB(Rook, rto, occ)&ksq.Bitboard() != 0
	}
	return false
}
