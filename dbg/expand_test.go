package dbg

import (
	"testing"

	"github.com/exascience/dbgcore/kmer"
)

func TestDummyBufferLen(t *testing.T) {
	if got, want := DummyBufferLen(2, 3), 6; got != want {
		t.Errorf("DummyBufferLen(2,3) = %d, want %d", got, want)
	}
	if got, want := DummyBufferLen(0, 5), 0; got != want {
		t.Errorf("DummyBufferLen(0,5) = %d, want %d", got, want)
	}
}

func TestExpandDummiesSingleSeed(t *testing.T) {
	// Scenario 1's seed: start_node "AC" at k=3 expands to the seed
	// record plus two descendants, "$AC" and "$$A".
	seed := enc(t, "AC").StartNode(3)
	k := uint8(3)
	seeds := []kmer.Kmer{seed}
	dummies := make([]kmer.Kmer, DummyBufferLen(1, k))
	lengths := make([]uint8, len(dummies))
	ExpandDummies(seeds, k, dummies, lengths)

	if len(dummies) != 3 {
		t.Fatalf("len(dummies) = %d, want 3", len(dummies))
	}
	if lengths[0] != 3 || dummies[0] != seed {
		t.Errorf("record 0 = (%d, len %d), want seed (%d, len 3)", dummies[0], lengths[0], seed)
	}
	if lengths[1] != 2 || dummies[1].DummyString(2, 3) != "$AC" {
		t.Errorf("record 1 = (%s, len %d), want ($AC, len 2)", dummies[1].DummyString(lengths[1], 3), lengths[1])
	}
	if lengths[2] != 1 || dummies[2].DummyString(1, 3) != "$$A" {
		t.Errorf("record 2 = (%s, len %d), want ($$A, len 1)", dummies[2].DummyString(lengths[2], 3), lengths[2])
	}
}

func TestExpandDummiesPanicsOnBadBufferSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a mis-sized buffer")
		}
	}()
	ExpandDummies([]kmer.Kmer{0}, 3, make([]kmer.Kmer, 1), make([]uint8, 1))
}

func TestDummyBufferLenPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when numSeeds*k overflows int")
		}
	}()
	DummyBufferLen(maxInt, 2)
}
