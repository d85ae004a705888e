package position

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceChars = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

func pieceLetter(p Piece) byte {
	for ch, pc := range pieceChars {
		if pc == p {
			return ch
		}
	}
	return '?'
}

// Set parses fen under the given variant and initializes pos, linking si
// as the current (bottom-of-stack) StateInfo (§4.3). On error pos is left
// partially written — per §7 the core trusts its caller to supply valid
// FEN, so this is a convenience check, not a hardened parser.
func (pos *Position) Set(fen string, variant Variant, si *StateInfo) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: FEN %q: need at least 4 fields", fen)
	}

	*pos = Position{variant: variant}
	*si = StateInfo{EpSquare: NoSquare}
	pos.st = si

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				p, ok := pieceChars[byte(ch)]
				if !ok || file >= 8 {
					return fmt.Errorf("position: FEN %q: bad piece char %q", fen, ch)
				}
				pos.PutPiece(p, MakeSquare(file, rank))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("position: FEN %q: rank %d has %d files", fen, rank, file)
		}
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return fmt.Errorf("position: FEN %q: bad side to move %q", fen, fields[1])
	}

	if err := pos.setCastling(fields[2]); err != nil {
		return err
	}

	if fields[3] != "-" {
		ep, err := parseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("position: FEN %q: %w", fen, err)
		}
		si.EpSquare = ep
	}
	pos.validateEpSquare()

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		halfmove, _ = strconv.Atoi(fields[4])
	}
	if len(fields) > 5 {
		fullmove, _ = strconv.Atoi(fields[5])
	}
	si.Rule50 = halfmove
	if fullmove < 1 {
		fullmove = 1
	}
	pos.gamePly = max0(2*(fullmove-1)) + boolToInt(pos.sideToMove == Black)

	if variant.IsThreeCheck() && len(fields) > 6 {
		// Accepts the "+w+b" suffix appended after fullmove, as written by Fen().
		suffix := strings.Join(fields[6:], "")
		fmt.Sscanf(suffix, "+%d+%d", &si.ChecksGiven[White], &si.ChecksGiven[Black])
	}

	pos.SetState(si)
	return nil
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	return MakeSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// setCastling parses the castling field, accepting standard KQkq,
// Shredder-FEN rook-file letters (ABCDEFGHabcdefgh), and X-FEN (where a
// file letter is used only when ambiguous). For each token it scans
// outward from that side's king along the back rank to find the
// associated rook, then records the rook square and derives the king and
// rook destination squares from the standard endpoints (king->g/c file,
// rook->f/d file), per §4.3.
func (pos *Position) setCastling(field string) error {
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		var c Color
		if ch >= 'a' && ch <= 'z' {
			c = Black
		} else {
			c = White
		}
		ksq := pos.kingSquare(c)
		if ksq == NoSquare {
			continue // Horde's white side, e.g., legitimately has no king
		}
		backRank := ksq.Rank()
		var rfrom Square
		switch ch {
		case 'K', 'k':
			rfrom = pos.findRook(c, backRank, ksq, +1)
		case 'Q', 'q':
			rfrom = pos.findRook(c, backRank, ksq, -1)
		default:
			file := strings.ToLower(string(ch))[0] - 'a'
			rfrom = MakeSquare(int(file), backRank)
		}
		if rfrom == NoSquare {
			return fmt.Errorf("position: castling token %q: no rook found", string(ch))
		}
		pos.setCastlingRight(c, ksq, rfrom)
	}
	return nil
}

// findRook scans outward from the king along the back rank in direction
// dir (+1 toward h-file, -1 toward a-file) for the first rook.
func (pos *Position) findRook(c Color, rank int, ksq Square, dir int) Square {
	rook := MakePiece(c, Rook)
	for f := ksq.File() + dir; f >= 0 && f < 8; f += dir {
		sq := MakeSquare(f, rank)
		if pos.board[sq] == rook {
			return sq
		}
	}
	return NoSquare
}

func (pos *Position) setCastlingRight(c Color, kfrom, rfrom Square) {
	oo, ooo := rightsOf(c)
	var cr CastlingRight
	if rfrom > kfrom {
		cr = oo
	} else {
		cr = ooo
	}

	pos.st.CastlingRights |= cr
	pos.castlingRightsMask[kfrom] |= cr
	pos.castlingRightsMask[rfrom] |= cr

	idx := castlingRightIndex(cr)
	pos.castlingRookSquare[idx] = rfrom

	kto := MakeSquare(fileFor(cr, true), kfrom.Rank())
	rto := MakeSquare(fileFor(cr, false), kfrom.Rank())

	lo, hi := rfrom, rto
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		if s != kfrom && s != rfrom {
			pos.castlingPath[idx] |= s.Bitboard()
		}
	}
	lo, hi = kfrom, kto
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		if s != kfrom && s != rfrom {
			pos.castlingPath[idx] |= s.Bitboard()
		}
	}
}

// fileFor returns the standard castling destination file: king->g(6)/c(2),
// rook->f(5)/d(3), selected by whether cr is a king-side right.
func fileFor(cr CastlingRight, king bool) int {
	isKingSide := cr == WhiteOO || cr == BlackOO
	if king {
		if isKingSide {
			return 6
		}
		return 2
	}
	if isKingSide {
		return 5
	}
	return 3
}

// validateEpSquare clears EpSquare unless a pawn of the side to move
// could actually capture there: an adjacent enemy pawn must exist behind
// it, the square and the square in front of it must be empty (§4.3 step 4,
// §8 scenario 4). This keeps Zobrist keys equal across positions that
// differ only in a textually-present but tactically-dead ep square.
func (pos *Position) validateEpSquare() {
	ep := pos.st.EpSquare
	if ep == NoSquare {
		return
	}
	us := pos.sideToMove
	them := us.Other()

	var pawnRank, dir int
	if us == White {
		pawnRank, dir = 4, 1
	} else {
		pawnRank, dir = 3, -1
	}
	if ep.Rank() != pawnRank+dir {
		pos.st.EpSquare = NoSquare
		return
	}
	if pos.board[ep] != NoPiece {
		pos.st.EpSquare = NoSquare
		return
	}
	behind := MakeSquare(ep.File(), ep.Rank()-dir)
	if pos.board[behind] != MakePiece(them, Pawn) {
		pos.st.EpSquare = NoSquare
		return
	}
	inFront := MakeSquare(ep.File(), ep.Rank()+dir)
	if pos.board[inFront] != NoPiece {
		pos.st.EpSquare = NoSquare
		return
	}
	attackerExists := false
	if ep.File() > 0 && pos.board[MakeSquare(ep.File()-1, pawnRank)] == MakePiece(us, Pawn) {
		attackerExists = true
	}
	if ep.File() < 7 && pos.board[MakeSquare(ep.File()+1, pawnRank)] == MakePiece(us, Pawn) {
		attackerExists = true
	}
	if !attackerExists {
		pos.st.EpSquare = NoSquare
	}
}

// Fen renders the position back to FEN text. Shredder-FEN castling-file
// letters are used iff the position is Chess960; a Three-Check suffix
// ("+w+b") is appended when the variant is active (§6).
func (pos *Position) Fen() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.board[MakeSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pieceLetter(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if pos.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	wrote := false
	chess960 := pos.variant.IsChess960()
	writeRight := func(cr CastlingRight, upper bool) {
		if !pos.CanCastle(cr) {
			return
		}
		wrote = true
		if chess960 {
			f := byte('a' + pos.CastlingRookSquare(cr).File())
			if upper {
				f = byte('A' + pos.CastlingRookSquare(cr).File())
			}
			sb.WriteByte(f)
			return
		}
		switch cr {
		case WhiteOO:
			sb.WriteByte('K')
		case WhiteOOO:
			sb.WriteByte('Q')
		case BlackOO:
			sb.WriteByte('k')
		case BlackOOO:
			sb.WriteByte('q')
		}
	}
	writeRight(WhiteOO, true)
	writeRight(WhiteOOO, true)
	writeRight(BlackOO, false)
	writeRight(BlackOOO, false)
	if !wrote {
		sb.WriteByte('-')
	}

	if pos.st.EpSquare != NoSquare {
		sb.WriteByte(' ')
		sb.WriteString(squareName(pos.st.EpSquare))
	} else {
		sb.WriteString(" -")
	}

	fmt.Fprintf(&sb, " %d %d", pos.st.Rule50, 1+(pos.gamePly-boolToInt(pos.sideToMove == Black))/2)

	if pos.variant.IsThreeCheck() {
		fmt.Fprintf(&sb, " +%d+%d", pos.st.ChecksGiven[White], pos.st.ChecksGiven[Black])
	}

	return sb.String()
}
