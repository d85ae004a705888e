// Package cache provides a clustered, direct-mapped hash table keyed on
// a Zobrist key, the storage discipline a transposition, pawn, or
// material cache would sit on top of. It satisfies
// github.com/ollins/chesscore/position's Prefetcher contract so a
// Position can notify it after every key update, but carries no search
// or evaluation semantics of its own — what a caller stores in a Slot's
// Payload (a packed score, a best move, a pawn-structure eval) is that
// caller's concern, not this package's (search and evaluation are out of
// scope; see SPEC_FULL.md).
package cache

// DefaultClusterSize mirrors the teacher's transposition table: probing
// and replacement work within a small cluster of slots sharing one hash
// bucket, rather than one slot per bucket, so near-collisions don't
// immediately evict each other.
const DefaultClusterSize = 4

// Slot is one cache line: a hash tag, an opaque payload, and a Depth used
// only to pick a replacement victim (deeper entries are worth more to
// keep). A zero Key means "empty".
type Slot struct {
	Key     uint64
	Payload uint64
	Depth   int8
}

const slotApproxBytes = 24

// Table is a clustered key/payload cache sized in bytes. Replacement
// within a cluster is: update an existing entry for the same key,
// else fill an empty slot, else evict the shallowest entry — the same
// always-replace-the-shallowest policy as the teacher's TransTable.
type Table struct {
	slots        []Slot
	clusterCount uint64
	clusterSize  int
}

// NewTable allocates a table sized to approximately sizeBytes, clustered
// clusterSize slots per bucket (DefaultClusterSize if clusterSize < 1).
func NewTable(sizeBytes int, clusterSize int) *Table {
	if clusterSize < 1 {
		clusterSize = DefaultClusterSize
	}
	clusterBytes := slotApproxBytes * clusterSize
	clusterCount := max(uint64(sizeBytes/clusterBytes), 1)
	return &Table{
		slots:        make([]Slot, clusterCount*uint64(clusterSize)),
		clusterCount: clusterCount,
		clusterSize:  clusterSize,
	}
}

func (t *Table) base(key uint64) int {
	return int(key%t.clusterCount) * t.clusterSize
}

// Prefetch satisfies position.Prefetcher. Go has no portable, safe way
// to issue a PREFETCH instruction from pure Go, so this is a documented
// no-op: it exists so Position's prefetch call sites have somewhere real
// to go, and so a build that does wire in a cgo/asm prefetch only needs
// to swap this method's body, not Position's.
func (t *Table) Prefetch(key uint64) {}

// Probe looks up key within its cluster.
func (t *Table) Probe(key uint64) (Slot, bool) {
	base := t.base(key)
	for i := 0; i < t.clusterSize; i++ {
		if s := t.slots[base+i]; s.Key == key {
			return s, true
		}
	}
	return Slot{}, false
}

// Store writes or replaces the slot for key.
func (t *Table) Store(key uint64, payload uint64, depth int8) {
	base := t.base(key)
	target := -1
	for i := 0; i < t.clusterSize; i++ {
		if t.slots[base+i].Key == key {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < t.clusterSize; i++ {
			if t.slots[base+i].Key == 0 {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
		minDepth := t.slots[base].Depth
		for i := 1; i < t.clusterSize; i++ {
			if t.slots[base+i].Depth < minDepth {
				minDepth = t.slots[base+i].Depth
				target = base + i
			}
		}
	}
	t.slots[target] = Slot{Key: key, Payload: payload, Depth: depth}
}

// Clear resets every slot, e.g. between games or "ucinewgame".
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = Slot{}
	}
}
