package fasta

import (
	psort "github.com/exascience/pargo/sort"

	"github.com/exascience/dbgcore/kmer"
)

// dummyPairSorter sorts a (dummies, lengths) pair by each record's
// start_node at the full edge width k, breaking ties by declared length
// ascending, carrying lengths along in lockstep, using pargo's parallel
// stable sort. Its shape follows intervals.stableIntervalSorter and this
// package's startNodeSorter/endNodeSorter, extended to two parallel
// slices instead of one.
//
// Comparing raw record values directly does not work: a descendant
// record's real content is shifted into its top slots by
// dbg.ExpandDummies (see kmer.Kmer.DummyString), so two descendants of a
// chain that share every real symbol but differ in how much '$' padding
// they carry can tie or invert under raw comparison. Masking every
// record down to its start_node at k first strips the shift back out,
// and length breaks the remaining tie the same way a '$' sorts before
// any real symbol: the shorter, more-padded record comes first.
type dummyPairSorter struct {
	dummies []kmer.Kmer
	lengths []uint8
	k       uint8
}

func (s dummyPairSorter) less(a, b int) bool {
	ka, kb := s.dummies[a].StartNode(s.k), s.dummies[b].StartNode(s.k)
	if ka != kb {
		return ka.Less(kb)
	}
	return s.lengths[a] < s.lengths[b]
}

func (s dummyPairSorter) SequentialSort(i, j int) {
	d, l, k := s.dummies[i:j], s.lengths[i:j], s.k
	insertionSortStable(len(d), func(a, b int) bool {
		ka, kb := d[a].StartNode(k), d[b].StartNode(k)
		if ka != kb {
			return ka.Less(kb)
		}
		return l[a] < l[b]
	}, func(a, b int) {
		d[a], d[b] = d[b], d[a]
		l[a], l[b] = l[b], l[a]
	})
}

func (s dummyPairSorter) NewTemp() psort.StableSorter {
	return dummyPairSorter{
		dummies: make([]kmer.Kmer, len(s.dummies)),
		lengths: make([]uint8, len(s.lengths)),
		k:       s.k,
	}
}

func (s dummyPairSorter) Len() int {
	return len(s.dummies)
}

func (s dummyPairSorter) Less(i, j int) bool {
	return s.less(i, j)
}

func (s dummyPairSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(dummyPairSorter)
	return func(i, j, len int) {
		copy(dst.dummies[i:i+len], src.dummies[j:j+len])
		copy(dst.lengths[i:i+len], src.lengths[j:j+len])
	}
}

// SortDummies sorts the incoming-dummy chain produced by
// dbg.ExpandDummies into the colex order dbg.Merge requires, carrying
// each record's declared length along with its value. k is the edge
// width of the graph being built.
func SortDummies(dummies []kmer.Kmer, lengths []uint8, k uint8) {
	psort.StableSort(dummyPairSorter{dummies: dummies, lengths: lengths, k: k})
}
