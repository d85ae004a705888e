package position

import "math/rand"

// Zobrist tables, filled once at process start by a fixed-seed PRNG so
// that keys are reproducible across runs and across processes (§4.2).
// A key of zero means "empty" in the sense that Position.Set seeds
// StateInfo.Key with the variant id first, so two positions that are
// identical except for variant never alias.
var (
	zobristPiece     [16][64]Bitboard64 // indexed by Piece (0..15), Square
	zobristEnPassant [8]Bitboard64      // indexed by file
	zobristCastling  [16]Bitboard64     // indexed by CastlingRight subset (0..15)
	zobristSide      Bitboard64
	zobristChecks    [2][4]Bitboard64 // Three-Check: [color][checksGiven], 1..3
)

// Bitboard64 is a plain uint64 hash key (kept distinct from Bitboard, a
// square set, even though the representation coincides — the two are
// never interchangeable).
type Bitboard64 = uint64

// zobristSeedBits is fixed so Keys are exactly reproducible between runs, as
// required by §4.2 and the Design Notes' "exact Zobrist reproducibility"
// remark. Any fixed value works; this one has no special meaning.
var zobristSeedBits uint64 = 0x9E3779B97F4A7C15

func init() {
	rnd := rand.New(rand.NewSource(int64(zobristSeedBits)))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	// castling[cr] is the XOR of the keys of cr's single-right subsets, so
	// that flipping exactly one right in or out of `rights` is a single
	// incremental XOR with zobristCastling[old]^zobristCastling[new].
	var singleRight [4]Bitboard64
	for i := range singleRight {
		singleRight[i] = rnd.Uint64()
	}
	for cr := 0; cr < 16; cr++ {
		var key Bitboard64
		for bit := 0; bit < 4; bit++ {
			if cr&(1<<bit) != 0 {
				key ^= singleRight[bit]
			}
		}
		zobristCastling[cr] = key
	}
	zobristSide = rnd.Uint64()
	for c := 0; c < 2; c++ {
		for n := 0; n < 4; n++ {
			zobristChecks[c][n] = rnd.Uint64()
		}
	}
}

// variantKey returns the seed XORed into a freshly-set StateInfo.Key so
// that different variants of the same piece placement never produce the
// same hash (§4.2, §6 "variant bits flow into the initial key").
func variantKey(v Variant) Bitboard64 {
	return Bitboard64(v) * 0x2545F4914F6CDD1D
}
