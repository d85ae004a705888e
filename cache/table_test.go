package cache

import "testing"

func TestStoreAndProbeRoundTrip(t *testing.T) {
	tbl := NewTable(1<<16, 4)
	tbl.Store(12345, 999, 7)
	got, ok := tbl.Probe(12345)
	if !ok {
		t.Fatalf("expected to find stored entry")
	}
	if got.Payload != 999 || got.Depth != 7 {
		t.Fatalf("got %+v, want payload=999 depth=7", got)
	}
}

func TestProbeMissReturnsFalse(t *testing.T) {
	tbl := NewTable(1<<16, 4)
	if _, ok := tbl.Probe(42); ok {
		t.Fatalf("expected a miss on an empty table")
	}
}

func TestStoreReplacesShallowestWhenClusterFull(t *testing.T) {
	tbl := NewTable(slotApproxBytes*DefaultClusterSize, DefaultClusterSize)
	// All four keys below hash to the same single-cluster table. Key 0 is
	// avoided because a zero Key marks an empty slot.
	tbl.Store(uint64(tbl.clusterCount), 1, 1)
	tbl.Store(uint64(tbl.clusterCount)*2, 2, 5)
	tbl.Store(uint64(tbl.clusterCount)*3, 3, 2)
	tbl.Store(uint64(tbl.clusterCount)*4, 4, 9)
	// Cluster is now full (clusterSize=4); a fifth distinct key must evict
	// the shallowest entry (Depth=1, the first Store).
	tbl.Store(uint64(tbl.clusterCount)*5, 5, 3)
	if _, ok := tbl.Probe(uint64(tbl.clusterCount)); ok {
		t.Fatalf("expected the depth-1 entry to have been evicted")
	}
}

func TestPrefetchIsANoOpThatSatisfiesTheInterface(t *testing.T) {
	var tbl Table
	tbl.Prefetch(7) // must not panic
}
