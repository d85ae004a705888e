package position

// This file implements the incremental make/unmake pair (§4.7). Key,
// PawnKey and Psq are updated by XOR/add as pieces move, rather than
// recomputed; MaterialKey is recomputed from the piece counts in DoMove.
// SetState (§4.5) remains the non-incremental oracle pos_is_ok.go checks
// against.

func (pos *Position) putWithKeys(p Piece, sq Square, si *StateInfo) {
	pos.PutPiece(p, sq)
	si.Key ^= zobristPiece[p][sq]
	si.Psq += psqt[p][sq]
	if p.Type() == Pawn {
		si.PawnKey ^= zobristPiece[p][sq]
	} else if p.Type() != King {
		si.NonPawnMaterial[p.Color()] += PieceValue[p.Type()]
	}
}

func (pos *Position) removeWithKeys(sq Square, si *StateInfo) Piece {
	p := pos.board[sq]
	pos.RemovePiece(sq)
	si.Key ^= zobristPiece[p][sq]
	si.Psq -= psqt[p][sq]
	if p.Type() == Pawn {
		si.PawnKey ^= zobristPiece[p][sq]
	} else if p.Type() != King {
		si.NonPawnMaterial[p.Color()] -= PieceValue[p.Type()]
	}
	return p
}

func (pos *Position) movePieceWithKeys(from, to Square, si *StateInfo) {
	p := pos.board[from]
	pos.MovePiece(from, to)
	si.Key ^= zobristPiece[p][from] ^ zobristPiece[p][to]
	si.Psq += psqt[p][to] - psqt[p][from]
	if p.Type() == Pawn {
		si.PawnKey ^= zobristPiece[p][from] ^ zobristPiece[p][to]
	}
}

// DoMove applies m, the caller having already determined whether it
// gives check (§4.7's do_move takes this as a precomputed argument so
// GivesCheck need not be evaluated twice against the pre-move position).
// newSt becomes the new current state; st.Previous links back for
// UndoMove.
func (pos *Position) DoMove(m Move, newSt *StateInfo, givesCheck bool) {
	st := pos.st
	us := pos.sideToMove
	them := us.Other()

	*newSt = StateInfo{
		Key:             st.Key,
		PawnKey:         st.PawnKey,
		MaterialKey:     st.MaterialKey,
		Psq:             st.Psq,
		NonPawnMaterial: st.NonPawnMaterial,
		Rule50:          st.Rule50 + 1,
		PliesFromNull:   st.PliesFromNull + 1,
		EpSquare:        NoSquare,
		CastlingRights:  st.CastlingRights,
		CapturedPiece:   NoPiece,
		ChecksGiven:     st.ChecksGiven,
		Previous:        st,
	}
	pos.st = newSt
	newSt.Key ^= zobristSide
	if st.EpSquare != NoSquare {
		newSt.Key ^= zobristEnPassant[st.EpSquare.File()]
	}

	from, to := m.From(), m.To()
	pc := pos.board[from]
	pt := pc.Type()

	switch m.Type() {
	case Castling:
		pos.doCastling(us, from, to, newSt)

	case EnPassant:
		capSq := MakeSquare(to.File(), from.Rank())
		newSt.CapturedPiece = pos.removeWithKeys(capSq, newSt)
		newSt.Rule50 = 0
		pos.movePieceWithKeys(from, to, newSt)

	default:
		captured := pos.board[to]
		if captured != NoPiece {
			newSt.Rule50 = 0
			if pos.variant.IsAtomic() {
				pos.doAtomicExplosion(us, from, to, captured, newSt)
			} else {
				newSt.CapturedPiece = pos.removeWithKeys(to, newSt)
			}
		}
		if pt == Pawn {
			newSt.Rule50 = 0
		}
		if !(pos.variant.IsAtomic() && captured != NoPiece) {
			if m.Type() == Promotion {
				pos.removeWithKeys(from, newSt)
				pos.putWithKeys(MakePiece(us, m.PromotionType()), to, newSt)
			} else {
				pos.movePieceWithKeys(from, to, newSt)
			}
			if pt == Pawn && abs(int(to)-int(from)) == 16 {
				epCandidate := Square((int(from) + int(to)) / 2)
				if PawnAttacksFrom(epCandidate, us)&pos.byColor[them]&pos.byType[Pawn] != 0 {
					newSt.EpSquare = epCandidate
					newSt.Key ^= zobristEnPassant[epCandidate.File()]
				}
			}
		}
	}

	lostRights := newSt.CastlingRights & (pos.castlingRightsMask[from] | pos.castlingRightsMask[to])
	if lostRights != 0 {
		newSt.Key ^= zobristCastling[newSt.CastlingRights]
		newSt.CastlingRights &^= lostRights
		newSt.Key ^= zobristCastling[newSt.CastlingRights]
	}

	// MaterialKey depends only on per-piece-type counts, not square
	// identity, so it's cheapest to recompute fresh here rather than
	// track an incremental update through every put/remove call above.
	newSt.MaterialKey = variantKey(pos.variant)
	for c := White; c <= Black; c++ {
		for ptp := Pawn; ptp <= King; ptp++ {
			p := MakePiece(c, ptp)
			for cnt := 0; cnt < pos.pieceCount[p]; cnt++ {
				newSt.MaterialKey ^= zobristPiece[p][cnt]
			}
		}
	}

	pos.sideToMove = them
	pos.gamePly++
	pos.nodes++

	if pos.variant.IsThreeCheck() && givesCheck {
		newSt.ChecksGiven[us]++
		if newSt.ChecksGiven[us] <= 3 {
			newSt.Key ^= zobristChecks[us][newSt.ChecksGiven[us]]
		}
	}

	pos.SetCheckInfo(newSt)
	newSt.CheckersBB = pos.computeCheckers()

	pos.notifyPrefetchers(newSt)
}

func (pos *Position) notifyPrefetchers(si *StateInfo) {
	if pos.ttPrefetch != nil {
		pos.ttPrefetch.Prefetch(si.Key)
	}
	if pos.pawnPrefetch != nil {
		pos.pawnPrefetch.Prefetch(si.PawnKey)
	}
	if pos.materialPrefetch != nil {
		pos.materialPrefetch.Prefetch(si.MaterialKey)
	}
}

// doCastling relocates king and rook for a castling move encoded as
// king-captures-own-rook (§4.3, §4.7). It clears both origin squares
// before placing either piece on its destination, since in Chess960 the
// king's destination may coincide with the rook's origin and vice versa.
func (pos *Position) doCastling(us Color, kfrom, rfrom Square, si *StateInfo) {
	var cr CastlingRight
	oo, ooo := rightsOf(us)
	if rfrom > kfrom {
		cr = oo
	} else {
		cr = ooo
	}
	kto := MakeSquare(fileFor(cr, true), kfrom.Rank())
	rto := MakeSquare(fileFor(cr, false), kfrom.Rank())

	king := pos.removeWithKeys(kfrom, si)
	rook := pos.removeWithKeys(rfrom, si)
	pos.putWithKeys(king, kto, si)
	pos.putWithKeys(rook, rto, si)
}

// doAtomicExplosion implements Atomic's capture rule: the captured piece,
// the capturing piece, and every non-pawn piece on a king-step-adjacent
// square to the capture square are removed from the board (§1 variant
// list, Atomic). The capturing piece never survives a capture in Atomic,
// even when it is itself a pawn; only bystander pawns caught in the
// blast radius are spared.
func (pos *Position) doAtomicExplosion(us Color, from, to Square, captured Piece, si *StateInfo) {
	si.CapturedPiece = captured
	blastRadius := AttacksFrom(King, to) | to.Bitboard()
	toRemove := (blastRadius & pos.Pieces()) | from.Bitboard()

	for bb := toRemove; bb != 0; {
		sq := PopLSB(&bb)
		p := pos.board[sq]
		if sq != to && sq != from && p.Type() == Pawn {
			continue
		}
		si.Blast[sq] = p
		si.BlastBB |= sq.Bitboard()
		pos.removeWithKeys(sq, si)
	}
	_ = us
}

// UndoMove reverses the most recent DoMove, restoring pos to exactly the
// position it was in before. m must be the same move passed to the
// matching DoMove call.
func (pos *Position) UndoMove(m Move) {
	them := pos.sideToMove
	us := them.Other()
	pos.sideToMove = us
	pos.gamePly--

	from, to := m.From(), m.To()
	st := pos.st

	switch m.Type() {
	case Castling:
		pos.undoCastling(us, from, to)

	case EnPassant:
		pos.MovePiece(to, from)
		capSq := MakeSquare(to.File(), from.Rank())
		pos.PutPiece(st.CapturedPiece, capSq)

	default:
		if pos.variant.IsAtomic() && st.CapturedPiece != NoPiece {
			pos.undoAtomicExplosion(us, from, to, st)
		} else {
			if m.Type() == Promotion {
				pos.RemovePiece(to)
				pos.PutPiece(MakePiece(us, Pawn), from)
			} else {
				pos.MovePiece(to, from)
			}
			if st.CapturedPiece != NoPiece {
				pos.PutPiece(st.CapturedPiece, to)
			}
		}
	}

	pos.st = st.Previous
}

func (pos *Position) undoCastling(us Color, kfrom, rfrom Square) {
	var cr CastlingRight
	oo, ooo := rightsOf(us)
	if rfrom > kfrom {
		cr = oo
	} else {
		cr = ooo
	}
	kto := MakeSquare(fileFor(cr, true), kfrom.Rank())
	rto := MakeSquare(fileFor(cr, false), kfrom.Rank())

	king := pos.board[kto]
	rook := pos.board[rto]
	pos.RemovePiece(kto)
	pos.RemovePiece(rto)
	pos.PutPiece(rook, rfrom)
	pos.PutPiece(king, kfrom)
}

// undoAtomicExplosion restores every piece removed by the blast, reading
// purely from st.Blast: DoMove never relocates the capturing piece to its
// destination in Atomic, so there is nothing else on the board to move
// back first.
func (pos *Position) undoAtomicExplosion(us Color, from, to Square, st *StateInfo) {
	for bb := st.BlastBB; bb != 0; {
		sq := PopLSB(&bb)
		pos.PutPiece(st.Blast[sq], sq)
	}
	_ = us
	_ = from
	_ = to
}

// DoNullMove flips the side to move without moving a piece, for null-move
// pruning collaborators (§4.7). newSt carries forward Rule50 unchanged
// but resets PliesFromNull, matching Stockfish's do_null_move semantics.
func (pos *Position) DoNullMove(newSt *StateInfo) {
	st := pos.st
	*newSt = *st
	newSt.Previous = st
	newSt.PliesFromNull = 0
	newSt.CapturedPiece = NoPiece
	newSt.Key ^= zobristSide
	if st.EpSquare != NoSquare {
		newSt.Key ^= zobristEnPassant[st.EpSquare.File()]
		newSt.EpSquare = NoSquare
	}
	pos.st = newSt
	pos.sideToMove = pos.sideToMove.Other()
	pos.gamePly++
	pos.SetCheckInfo(newSt)
	newSt.CheckersBB = pos.computeCheckers()
	pos.notifyPrefetchers(newSt)
}

// UndoNullMove reverses DoNullMove.
func (pos *Position) UndoNullMove() {
	pos.sideToMove = pos.sideToMove.Other()
	pos.gamePly--
	pos.st = pos.st.Previous
}
