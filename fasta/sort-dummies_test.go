package fasta

import (
	"testing"

	"github.com/exascience/dbgcore/kmer"
)

func TestSortDummies(t *testing.T) {
	k := uint8(3)
	seed, err := kmer.Encode([]byte("AC"))
	if err != nil {
		t.Fatal(err)
	}
	d1 := seed.ShiftLeftOneSymbol() // declared length 2, "$AC"
	d2 := d1.ShiftLeftOneSymbol()   // declared length 1, "$$A"

	// Deliberately unsorted: seed, then the shorter descendant, then the
	// longer one.
	dummies := []kmer.Kmer{seed, d2, d1}
	lengths := []uint8{3, 1, 2}

	SortDummies(dummies, lengths, k)

	wantLens := []uint8{1, 2, 3}
	wantStrings := []string{"$$A", "$AC", "AC$"}
	for i := range dummies {
		var got string
		if lengths[i] == k {
			got = dummies[i].DummyString(k, k)
		} else {
			got = dummies[i].DummyString(lengths[i], k)
		}
		if lengths[i] != wantLens[i] || got != wantStrings[i] {
			t.Errorf("record %d = (%s, len %d), want (%s, len %d)", i, got, lengths[i], wantStrings[i], wantLens[i])
		}
	}
}

func TestSortDummiesMultipleSeeds(t *testing.T) {
	k := uint8(3)
	acSeed, _ := kmer.Encode([]byte("AC"))
	taSeed, _ := kmer.Encode([]byte("TA"))

	dummies := []kmer.Kmer{
		taSeed, taSeed.ShiftLeftOneSymbol(), taSeed.ShiftLeftOneSymbol().ShiftLeftOneSymbol(),
		acSeed, acSeed.ShiftLeftOneSymbol(), acSeed.ShiftLeftOneSymbol().ShiftLeftOneSymbol(),
	}
	lengths := []uint8{3, 2, 1, 3, 2, 1}

	SortDummies(dummies, lengths, k)

	// Records must come out ordered by start_node at k, and by declared
	// length ascending (shorter, more-$-padded first) within an equal
	// start_node. Records of the two chains interleave: both length-1
	// descendants mask to start_node 0.
	for i := 1; i < len(dummies); i++ {
		ki, kj := dummies[i-1].StartNode(k), dummies[i].StartNode(k)
		if ki.Less(kj) {
			continue
		}
		if ki == kj && lengths[i-1] <= lengths[i] {
			continue
		}
		t.Errorf("dummies not correctly ordered at index %d: %v / %v", i, dummies, lengths)
	}
}
