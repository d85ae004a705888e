package position

// Position is the persistent part of a chess position: piece placement,
// side to move, castling configuration, game ply, node counter, and a
// borrowed pointer to the current StateInfo (§3). Position exclusively
// owns board, pieceList and the bitboards and castling structures; the
// StateInfo stack itself is allocated by the caller (see StateStack).
type Position struct {
	board    [64]Piece
	byType   [7]Bitboard // indexed by PieceType, NoPieceType unused
	byColor  [2]Bitboard

	pieceCount [16]int
	pieceList  [16][16]Square
	index      [64]int

	castlingRightsMask [64]CastlingRight
	castlingRookSquare [4]Square   // indexed by single-bit right (bits.TrailingZeros of WhiteOO..BlackOOO)
	castlingPath       [4]Bitboard

	sideToMove Color
	gamePly    int
	variant    Variant
	nodes      uint64

	st *StateInfo

	// prefetch hooks: advisory, best-effort, never required for
	// correctness (§5, §6). nil means "nothing to prefetch".
	ttPrefetch       Prefetcher
	pawnPrefetch     Prefetcher
	materialPrefetch Prefetcher
}

// Prefetcher is the collaborator contract for the transposition table and
// the material/pawn caches (§6): Position calls Prefetch(key) as an
// advisory hint after updating the relevant key, with no ordering
// requirement and no guarantee the call happens at all.
type Prefetcher interface {
	Prefetch(key Bitboard64)
}

// SetPrefetchers wires optional prefetch collaborators. Any of the three
// may be nil.
func (pos *Position) SetPrefetchers(tt, pawn, material Prefetcher) {
	pos.ttPrefetch = tt
	pos.pawnPrefetch = pawn
	pos.materialPrefetch = material
}

// SideToMove returns the color to move.
func (pos *Position) SideToMove() Color { return pos.sideToMove }

// Variant returns the active rule variant bitmask.
func (pos *Position) Variant() Variant { return pos.variant }

// GamePly returns the current ply count (0-based, 2 plies per full move).
func (pos *Position) GamePly() int { return pos.gamePly }

// Nodes returns the number of positions visited via DoMove since Set.
func (pos *Position) Nodes() uint64 { return pos.nodes }

// State returns the current (borrowed) StateInfo.
func (pos *Position) State() *StateInfo { return pos.st }

// PieceOn returns the piece occupying sq (NoPiece if empty).
func (pos *Position) PieceOn(sq Square) Piece { return pos.board[sq] }

// Pieces returns the union of all occupied squares.
func (pos *Position) Pieces() Bitboard { return pos.byColor[White] | pos.byColor[Black] }

// PiecesOf returns the occupancy of one color.
func (pos *Position) PiecesOf(c Color) Bitboard { return pos.byColor[c] }

// PiecesOfType returns the bitboard of all pieces of type pt (both colors).
func (pos *Position) PiecesOfType(pt PieceType) Bitboard { return pos.byType[pt] }

// PiecesOfColorType returns the bitboard of pieces of type pt belonging to c.
func (pos *Position) PiecesOfColorType(c Color, pt PieceType) Bitboard {
	return pos.byColor[c] & pos.byType[pt]
}

// CastlingRights returns the current castling rights mask.
func (pos *Position) CastlingRights() CastlingRight { return pos.st.CastlingRights }

// CanCastle reports whether any right in cr is currently held.
func (pos *Position) CanCastle(cr CastlingRight) bool { return pos.st.CastlingRights&cr != 0 }

// EpSquare returns the current en-passant target square, or NoSquare.
func (pos *Position) EpSquare() Square { return pos.st.EpSquare }

// kingSquare returns the square of c's king, or NoSquare if it has none
// (Horde's white side, or a king lost to Atomic/Antichess terminal play).
func (pos *Position) kingSquare(c Color) Square {
	bb := pos.PiecesOfColorType(c, King)
	if bb == 0 {
		return NoSquare
	}
	return LSB(bb)
}

// KingSquare is the exported form of kingSquare, for collaborators (move
// ordering, eval) that need to locate a king without reimplementing the
// "Horde may have none" special case.
func (pos *Position) KingSquare(c Color) Square { return pos.kingSquare(c) }

func castlingRightIndex(cr CastlingRight) int {
	switch cr {
	case WhiteOO:
		return 0
	case WhiteOOO:
		return 1
	case BlackOO:
		return 2
	case BlackOOO:
		return 3
	default:
		return -1
	}
}

// CastlingRookSquare returns the starting square of the rook associated
// with a single castling right.
func (pos *Position) CastlingRookSquare(cr CastlingRight) Square {
	return pos.castlingRookSquare[castlingRightIndex(cr)]
}

// CastlingPath returns the squares that must be unoccupied (other than
// by the castling king and rook themselves) for cr to be pseudo-legal.
func (pos *Position) CastlingPath(cr CastlingRight) Bitboard {
	return pos.castlingPath[castlingRightIndex(cr)]
}

// ---- piece placement primitives (§4.4) ----
//
// None of these touch hash keys, psq or material: callers (do_move,
// Set) update those explicitly so the hot make-move path can batch its
// XORs instead of recomputing them piecemeal.

// PutPiece places p on sq, which must currently be empty.
func (pos *Position) PutPiece(p Piece, sq Square) {
	pos.board[sq] = p
	bb := sq.Bitboard()
	pos.byType[p.Type()] |= bb
	pos.byColor[p.Color()] |= bb

	idx := pos.pieceCount[p]
	pos.pieceList[p][idx] = sq
	pos.index[sq] = idx
	pos.pieceCount[p]++
}

// RemovePiece removes the piece on sq (which must be occupied) using the
// swap-with-last-element trick on pieceList (§4.4 invariant 3).
func (pos *Position) RemovePiece(sq Square) {
	p := pos.board[sq]
	bb := sq.Bitboard()
	pos.byType[p.Type()] ^= bb
	pos.byColor[p.Color()] ^= bb
	pos.board[sq] = NoPiece

	lastIdx := pos.pieceCount[p] - 1
	removedIdx := pos.index[sq]
	lastSquare := pos.pieceList[p][lastIdx]
	pos.pieceList[p][removedIdx] = lastSquare
	pos.index[lastSquare] = removedIdx
	pos.pieceCount[p]--
}

// MovePiece relocates the piece on from to to, which must be empty.
func (pos *Position) MovePiece(from, to Square) {
	p := pos.board[from]
	fromTo := from.Bitboard() | to.Bitboard()
	pos.byType[p.Type()] ^= fromTo
	pos.byColor[p.Color()] ^= fromTo
	pos.board[from] = NoPiece
	pos.board[to] = p

	idx := pos.index[from]
	pos.pieceList[p][idx] = to
	pos.index[to] = idx
}

// ---- derived-state rebuild (§4.5) ----

// SetCheckInfo (re)computes blockers-for-king and check-squares for the
// side to move's opponent king, as used by gives_check and move ordering.
func (pos *Position) SetCheckInfo(si *StateInfo) {
	wk, bk := pos.kingSquare(White), pos.kingSquare(Black)
	if wk != NoSquare {
		si.BlockersForKing[White] = pos.sliderBlockers(pos.byColor[Black], wk, &si.Pinners[White])
	} else {
		si.BlockersForKing[White] = 0
	}
	if bk != NoSquare {
		si.BlockersForKing[Black] = pos.sliderBlockers(pos.byColor[White], bk, &si.Pinners[Black])
	} else {
		si.BlockersForKing[Black] = 0
	}

	them := pos.sideToMove.Other()
	ksq := pos.kingSquare(them)
	if ksq == NoSquare || pos.variant.IsAntichess() {
		// Antichess has no check concept at all; a missing king (Horde,
		// Atomic, Antichess endgames) likewise gives nothing to check.
		si.CheckSquares = [7]Bitboard{}
		return
	}
	occ := pos.Pieces()
	si.CheckSquares[Pawn] = PawnAttacksFrom(ksq, them)
	si.CheckSquares[Knight] = AttacksFrom(Knight, ksq)
	si.CheckSquares[Bishop] = AttacksBB(Bishop, ksq, occ)
	si.CheckSquares[Rook] = AttacksBB(Rook, ksq, occ)
	si.CheckSquares[Queen] = si.CheckSquares[Bishop] | si.CheckSquares[Rook]
	si.CheckSquares[King] = 0
}

// SetState walks every occupied square once and rebuilds Key, PawnKey,
// MaterialKey, Psq, NonPawnMaterial and CheckersBB from scratch (§4.5).
// It is the oracle IsOk() re-derives and compares against, and the only
// path that computes these fields non-incrementally.
func (pos *Position) SetState(si *StateInfo) {
	si.Key = variantKey(pos.variant)
	si.PawnKey = variantKey(pos.variant)
	si.MaterialKey = variantKey(pos.variant)
	si.Psq = 0
	si.NonPawnMaterial = [2]int{}

	pos.SetCheckInfo(si)
	si.CheckersBB = pos.computeCheckers()

	for bb := pos.Pieces(); bb != 0; {
		sq := PopLSB(&bb)
		p := pos.board[sq]
		si.Key ^= zobristPiece[p][sq]
		si.Psq += psqt[p][sq]
		if p.Type() == Pawn {
			si.PawnKey ^= zobristPiece[p][sq]
		}
	}

	if si.EpSquare != NoSquare {
		si.Key ^= zobristEnPassant[si.EpSquare.File()]
	}
	if pos.sideToMove == Black {
		si.Key ^= zobristSide
	}
	si.Key ^= zobristCastling[si.CastlingRights]

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			for cnt := 0; cnt < pos.pieceCount[p]; cnt++ {
				si.MaterialKey ^= zobristPiece[p][cnt]
			}
		}
		for pt := Knight; pt <= Queen; pt++ {
			si.NonPawnMaterial[c] += pos.pieceCount[MakePiece(c, pt)] * PieceValue[pt]
		}
	}

	if pos.variant.IsThreeCheck() {
		for c := White; c <= Black; c++ {
			for n := 1; n <= si.ChecksGiven[c] && n <= 3; n++ {
				si.Key ^= zobristChecks[c][n]
			}
		}
	}
}

// computeCheckers determines CheckersBB for the side to move, handling
// every variant's deviation from "attackers of my king" in one place so
// both SetState (full rebuild) and DoMove (incremental) agree (§4.5,
// §4.9 variant check rules): Racing Kings and Antichess never check at
// all, Horde's kingless side can't be in check, and Atomic kings may
// stand adjacent without threatening each other.
func (pos *Position) computeCheckers() Bitboard {
	switch {
	case pos.variant.IsRacingKings(), pos.variant.IsAntichess():
		return 0
	case pos.variant.IsHorde() && pos.kingSquare(pos.sideToMove) == NoSquare:
		return 0
	}
	ksq := pos.kingSquare(pos.sideToMove)
	if ksq == NoSquare {
		return 0
	}
	if pos.variant.IsAtomic() {
		other := pos.kingSquare(pos.sideToMove.Other())
		if other != NoSquare && AttacksFrom(King, ksq)&other.Bitboard() != 0 {
			return 0
		}
	}
	return pos.attackersTo(ksq, pos.Pieces()) & pos.byColor[pos.sideToMove.Other()]
}

// sliderBlockers returns the union (both colors) of pieces whose removal
// would expose s to an attack from a slider in `sliders`, and records in
// *pinners the subset of `sliders` doing the pinning (§4.5). A blocker is
// pinned if it is the opposite color of its pinner, or a discovered-check
// candidate if it shares the pinner's color.
func (pos *Position) sliderBlockers(sliders Bitboard, s Square, pinners *Bitboard) Bitboard {
	var result Bitboard
	if pinners != nil {
		*pinners = 0
	}
	if s == NoSquare {
		return 0
	}
	occ := pos.Pieces()

	snipers := ((PseudoAttacks(Rook, s) & pos.byType[Rook]) |
		(PseudoAttacks(Bishop, s) & pos.byType[Bishop]) |
		(PseudoAttacks(Rook, s) & pos.byType[Queen]) |
		(PseudoAttacks(Bishop, s) & pos.byType[Queen])) & sliders

	occExceptSnipers := occ &^ snipers
	for snipers != 0 {
		sniperSq := PopLSB(&snipers)
		between := BetweenBB(s, sniperSq) & occExceptSnipers
		if between != 0 && !MoreThanOne(between) {
			result |= between
			if pinners != nil {
				*pinners |= sniperSq.Bitboard()
			}
		}
	}
	return result
}

// SliderBlockers is the exported form of sliderBlockers.
func (pos *Position) SliderBlockers(sliders Bitboard, s Square) Bitboard {
	return pos.sliderBlockers(sliders, s, nil)
}

// attackersTo returns the union, over all piece types, of the pieces in
// occ that attack s (§4.5). Pawn attackers use the reversed pawn-attack
// table: "who attacks s" is the same shape as "what would a pawn *of the
// opposite color* standing on s attack".
func (pos *Position) attackersTo(s Square, occ Bitboard) Bitboard {
	return (PawnAttacksFrom(s, Black)&pos.byColor[White]&pos.byType[Pawn] |
		PawnAttacksFrom(s, White)&pos.byColor[Black]&pos.byType[Pawn]) |
		(AttacksFrom(Knight, s) & pos.byType[Knight]) |
		(AttacksBB(Bishop, s, occ) & (pos.byType[Bishop] | pos.byType[Queen])) |
		(AttacksBB(Rook, s, occ) & (pos.byType[Rook] | pos.byType[Queen])) |
		(AttacksFrom(King, s) & pos.byType[King])
}

// AttackersTo is the exported form of attackersTo.
func (pos *Position) AttackersTo(s Square, occ Bitboard) Bitboard { return pos.attackersTo(s, occ) }

// InCheck reports whether the side to move's king is currently attacked.
func (pos *Position) InCheck() bool { return pos.st.CheckersBB != 0 }

// NonPawnMaterial returns the sum of non-pawn piece values for c, kept
// incrementally in StateInfo (see SPEC_FULL.md §4 for the rationale).
func (pos *Position) NonPawnMaterial(c Color) int { return pos.st.NonPawnMaterial[c] }
