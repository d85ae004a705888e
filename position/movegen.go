package position

import "golang.org/x/exp/slices"

// PseudoMoves appends every pseudo-legal move (obeys piece movement and
// occupancy, may leave the mover's own king in check) to dst and returns
// the extended slice. It is the generator LegalMoves filters; PseudoLegal
// reaches it through LegalMoves for castling and en-passant moves (§4.6).
func (pos *Position) PseudoMoves(dst []Move) []Move {
	us := pos.sideToMove
	them := us.Other()
	occ := pos.Pieces()
	ourPieces := pos.byColor[us]
	theirPieces := pos.byColor[them]
	empty := ^occ

	dst = pos.pseudoPawnMoves(dst, us, theirPieces, empty)

	for _, pt := range [3]PieceType{Knight, Bishop, Rook} {
		bb := pos.PiecesOfColorType(us, pt)
		for bb != 0 {
			from := PopLSB(&bb)
			var targets Bitboard
			if pt == Knight {
				targets = AttacksFrom(Knight, from)
			} else {
				targets = AttacksBB(pt, from, occ)
			}
			targets &^= ourPieces
			dst = appendTargets(dst, from, targets)
		}
	}
	queens := pos.PiecesOfColorType(us, Queen)
	for queens != 0 {
		from := PopLSB(&queens)
		targets := AttacksBB(Queen, from, occ) &^ ourPieces
		dst = appendTargets(dst, from, targets)
	}

	if ksq := pos.kingSquare(us); ksq != NoSquare {
		targets := AttacksFrom(King, ksq) &^ ourPieces
		dst = appendTargets(dst, ksq, targets)
		dst = pos.pseudoCastling(dst, us, ksq, occ)
	}

	return dst
}

func appendTargets(dst []Move, from Square, targets Bitboard) []Move {
	for targets != 0 {
		to := PopLSB(&targets)
		dst = append(dst, NewMove(from, to))
	}
	return dst
}

func (pos *Position) pseudoPawnMoves(dst []Move, us Color, theirPieces, empty Bitboard) []Move {
	them := us.Other()
	pawns := pos.PiecesOfColorType(us, Pawn)
	forward := 8
	startRank, lastRank := 1, 7
	if us == Black {
		forward = -8
		startRank, lastRank = 6, 0
	}
	allowDoublePushRank := func(r int) bool {
		if !pos.variant.IsHorde() {
			return r == startRank
		}
		// Horde's dense white pawn wall may double-push from any of its
		// crowded starting ranks, not just the second; see SPEC_FULL.md §4.
		return us == White && r <= 3
	}

	for bb := pawns; bb != 0; {
		from := PopLSB(&bb)
		rank := from.Rank()
		to1 := Square(int(from) + forward)
		if to1 < 0 || to1 > 63 {
			continue
		}
		if empty&to1.Bitboard() != 0 {
			if to1.Rank() == lastRank {
				dst = appendPromotions(dst, from, to1)
			} else {
				dst = append(dst, NewMove(from, to1))
				if allowDoublePushRank(rank) {
					to2 := Square(int(to1) + forward)
					if to2 >= 0 && to2 <= 63 && empty&to2.Bitboard() != 0 {
						dst = append(dst, NewMove(from, to2))
					}
				}
			}
		}
		caps := PawnAttacksFrom(from, us) & theirPieces
		for caps != 0 {
			to := PopLSB(&caps)
			if to.Rank() == lastRank {
				dst = appendPromotions(dst, from, to)
			} else {
				dst = append(dst, NewMove(from, to))
			}
		}
		if pos.st.EpSquare != NoSquare && PawnAttacksFrom(from, us)&pos.st.EpSquare.Bitboard() != 0 {
			dst = append(dst, NewEnPassantMove(from, pos.st.EpSquare))
		}
	}
	_ = them
	return dst
}

func appendPromotions(dst []Move, from, to Square) []Move {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		dst = append(dst, NewPromotionMove(from, to, pt))
	}
	return dst
}

// pseudoCastling appends a Castling move (encoded king-captures-rook) for
// each currently-held right whose path is clear, without yet checking
// whether the king passes through check (that belongs to Legal, since it
// requires attackersTo queries the generator doesn't otherwise need).
func (pos *Position) pseudoCastling(dst []Move, us Color, ksq Square, occ Bitboard) []Move {
	if pos.InCheck() || pos.variant.IsAntichess() || pos.variant.IsRacingKings() {
		return dst
	}
	oo, ooo := rightsOf(us)
	for _, cr := range [2]CastlingRight{oo, ooo} {
		if !pos.CanCastle(cr) {
			continue
		}
		rfrom := pos.CastlingRookSquare(cr)
		if occ&pos.CastlingPath(cr) != 0 {
			continue
		}
		dst = append(dst, NewCastlingMove(ksq, rfrom))
	}
	return dst
}

// CastlingKingTo and CastlingRookTo return the actual landing squares for
// a Castling move, derived from the right it corresponds to.
func (pos *Position) CastlingKingTo(m Move) Square {
	cr := pos.castlingRightOf(m)
	return MakeSquare(fileFor(cr, true), m.From().Rank())
}

func (pos *Position) CastlingRookTo(m Move) Square {
	cr := pos.castlingRightOf(m)
	return MakeSquare(fileFor(cr, false), m.From().Rank())
}

func (pos *Position) castlingRightOf(m Move) CastlingRight {
	kfrom, rfrom := m.From(), m.To()
	us := pos.board[kfrom].Color()
	oo, ooo := rightsOf(us)
	if rfrom > kfrom {
		return oo
	}
	_ = ooo
	return ooo
}

// LegalMoves returns every legal move in the position (§4.6, collaborator
// "Move generator" of §6), applying variant-specific restrictions after
// the base pseudo-legal-then-legal filter: Antichess forces captures when
// available, Racing Kings forbids any move that gives check.
func (pos *Position) LegalMoves() []Move {
	pseudo := pos.PseudoMoves(make([]Move, 0, 64))
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if pos.Legal(m) {
			legal = append(legal, m)
		}
	}

	if pos.variant.IsRacingKings() {
		filtered := legal[:0]
		for _, m := range legal {
			if !pos.GivesCheck(m) {
				filtered = append(filtered, m)
			}
		}
		legal = filtered
	}

	if pos.variant.IsAntichess() {
		captures := legal[:0:0]
		for _, m := range legal {
			if pos.IsCapture(m) {
				captures = append(captures, m)
			}
		}
		if len(captures) > 0 {
			legal = captures
		}
	}

	return legal
}

// IsCapture reports whether m removes an enemy piece (including en passant).
func (pos *Position) IsCapture(m Move) bool {
	if m.Type() == EnPassant {
		return true
	}
	if m.Type() == Castling {
		return false
	}
	return pos.board[m.To()] != NoPiece
}

// containsMove reports whether m appears in the legal move list, used by
// PseudoLegal's fallback for castling and en-passant moves (§4.6).
func (pos *Position) containsMove(m Move) bool {
	return slices.ContainsFunc(pos.LegalMoves(), func(o Move) bool { return o == m })
}
