package position

import "strings"

// Move is a 16-bit encoding of from (6 bits), to (6 bits), promotion piece
// type (2 bits: Knight..Queen) and move type (2 bits). Castling is encoded
// as "king captures its own rook", which is Chess960-friendly and avoids a
// separate king-destination computation at generation time (§3, Move).
type Move uint16

// MoveType is the 2-bit move-kind tag carried by a Move.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

const (
	moveFromMask  = 0x3F
	moveToShift   = 6
	moveToMask    = 0x3F
	movePromoSft  = 12
	movePromoMask = 0x3
	moveTypeShift = 14
	moveTypeMask  = 0x3
)

// promoTable/promoCode map the 2-bit promotion field to/from PieceType
// (Knight=0 .. Queen=3), since Promotion needs only the four non-pawn,
// non-king pieces.
var promoTable = [4]PieceType{Knight, Bishop, Rook, Queen}

func promoCode(pt PieceType) uint16 {
	switch pt {
	case Knight:
		return 0
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 3
	}
}

// NewMove builds a Normal move (use NewEnPassantMove for en passant).
func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<moveToShift)
}

// NewPromotionMove builds a promotion move to the given piece type.
func NewPromotionMove(from, to Square, promotes PieceType) Move {
	return Move(uint16(from) | uint16(to)<<moveToShift |
		promoCode(promotes)<<movePromoSft | uint16(Promotion)<<moveTypeShift)
}

// NewEnPassantMove builds an en-passant capture move.
func NewEnPassantMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<moveToShift | uint16(EnPassant)<<moveTypeShift)
}

// NewCastlingMove builds a castling move encoded as "king captures rook":
// from is the king's square, to is the rook's starting square.
func NewCastlingMove(kingFrom, rookFrom Square) Move {
	return Move(uint16(kingFrom) | uint16(rookFrom)<<moveToShift | uint16(Castling)<<moveTypeShift)
}

// NullMove is the zero move (a1a1), used as a "no move" sentinel by callers;
// Position itself never produces it from move generation.
const NullMove Move = 0

// From returns the origin square.
func (m Move) From() Square { return Square(uint16(m) & moveFromMask) }

// To returns the destination square. For Castling moves this is the
// starting square of the rook being "captured", not the king's landing
// square — use CastlingKingTo/CastlingRookTo for the actual endpoints.
func (m Move) To() Square { return Square((uint16(m) >> moveToShift) & moveToMask) }

// PromotionType returns the promoted-to piece type; only meaningful when Type() == Promotion.
func (m Move) PromotionType() PieceType { return promoTable[(uint16(m)>>movePromoSft)&movePromoMask] }

// Type returns the move's MoveType tag.
func (m Move) Type() MoveType { return MoveType((uint16(m) >> moveTypeShift) & moveTypeMask) }

// IsNull reports whether this is the zero/null move.
func (m Move) IsNull() bool { return m == NullMove }

// String renders the move in UCI long algebraic form (e2e4, e7e8q). For
// Castling moves it renders the king's actual destination rather than the
// encoded rook square, matching what a GUI expects to see.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	from := m.From()
	to := m.To()
	if m.Type() == Castling {
		// The caller-visible destination is the king's landing square; we
		// don't know the castling side here without Position context, so
		// CastlingKingTo on Position is the authoritative renderer. This
		// fallback assumes standard board geometry (kingside iff to > from).
		if to > from {
			to = MakeSquare(6, from.Rank())
		} else {
			to = MakeSquare(2, from.Rank())
		}
	}
	s := squareName(from) + squareName(to)
	if m.Type() == Promotion {
		s += strings.ToLower(string(pieceLetter(MakePiece(Black, m.PromotionType()))))
	}
	return s
}

func squareName(s Square) string {
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}
