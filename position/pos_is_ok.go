package position

import "fmt"

// IsOk re-derives every incrementally-maintained field from scratch and
// compares it against what Position currently holds, returning the
// first disagreement found (§7). It is a debugging/test oracle, not
// something DoMove calls on the hot path.
func (pos *Position) IsOk() error {
	var fromBoardColor [2]Bitboard
	var fromBoardType [7]Bitboard
	for sq := Square(0); sq < 64; sq++ {
		p := pos.board[sq]
		if p == NoPiece {
			continue
		}
		fromBoardColor[p.Color()] |= sq.Bitboard()
		fromBoardType[p.Type()] |= sq.Bitboard()
	}
	for c := White; c <= Black; c++ {
		if fromBoardColor[c] != pos.byColor[c] {
			return fmt.Errorf("position: byColor[%d] disagrees with board", c)
		}
	}
	for pt := Pawn; pt <= King; pt++ {
		if fromBoardType[pt] != pos.byType[pt] {
			return fmt.Errorf("position: byType[%d] disagrees with board", pt)
		}
	}

	for p := Piece(0); p < 16; p++ {
		for i := 0; i < pos.pieceCount[p]; i++ {
			sq := pos.pieceList[p][i]
			if pos.board[sq] != p {
				return fmt.Errorf("position: pieceList[%d][%d]=%d but board[%d]=%d", p, i, sq, sq, pos.board[sq])
			}
			if pos.index[sq] != i {
				return fmt.Errorf("position: index[%d]=%d, want %d", sq, pos.index[sq], i)
			}
		}
	}
	if PopCount(pos.PiecesOfColorType(White, King)) > 1 || PopCount(pos.PiecesOfColorType(Black, King)) > 1 {
		return fmt.Errorf("position: more than one king for a color")
	}

	var scratch StateInfo
	scratch.EpSquare = pos.st.EpSquare
	scratch.CastlingRights = pos.st.CastlingRights
	scratch.ChecksGiven = pos.st.ChecksGiven
	pos.SetState(&scratch)

	switch {
	case scratch.Key != pos.st.Key:
		return fmt.Errorf("position: Key mismatch: have %#x want %#x", pos.st.Key, scratch.Key)
	case scratch.PawnKey != pos.st.PawnKey:
		return fmt.Errorf("position: PawnKey mismatch")
	case scratch.MaterialKey != pos.st.MaterialKey:
		return fmt.Errorf("position: MaterialKey mismatch")
	case scratch.NonPawnMaterial != pos.st.NonPawnMaterial:
		return fmt.Errorf("position: NonPawnMaterial mismatch")
	case scratch.CheckersBB != pos.st.CheckersBB:
		return fmt.Errorf("position: CheckersBB mismatch: have %#x want %#x", pos.st.CheckersBB, scratch.CheckersBB)
	}

	them := pos.sideToMove.Other()
	if ksq := pos.kingSquare(them); ksq != NoSquare && !pos.variant.IsAtomic() && !pos.variant.IsAntichess() {
		if pos.attackersTo(ksq, pos.Pieces())&pos.byColor[pos.sideToMove] != 0 {
			return fmt.Errorf("position: side not to move is in check")
		}
	}

	return nil
}
