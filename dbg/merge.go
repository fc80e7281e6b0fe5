package dbg

import (
	"log"

	"github.com/exascience/dbgcore/kmer"
)

// Merge performs the three-way interleave that reconciles table A
// (edges sorted primarily by start_node, then edge), table B (the same
// edge multiset sorted primarily by end_node, then edge) and the
// pre-expanded, colex-sorted incoming-dummy sequence (dummies/lengths,
// as produced by ExpandDummies and then sorted, e.g. by
// fasta.SortDummies) into the single canonical event stream a succinct
// de Bruijn graph representation is built from.
//
// a and b must have equal length and represent the same edge multiset.
// dummies and lengths must have equal length. k must be at least 2.
// Every emitted event passes through Uniquify(FirstFlagger(EdgeLabelFlagger(v)))
// before reaching v, so v observes a deduplicated stream already
// annotated with both flags.
func Merge(a, b []kmer.Kmer, k uint8, dummies []kmer.Kmer, lengths []uint8, v Visitor) error {
	if k < 2 {
		log.Panicf("dbg.Merge: k must be at least 2, got %d", k)
	}
	if len(a) != len(b) {
		log.Panicf("dbg.Merge: table A and table B must have equal length, got %d and %d", len(a), len(b))
	}
	if len(dummies) != len(lengths) {
		log.Panicf("dbg.Merge: dummies and lengths must have equal length, got %d and %d", len(dummies), len(lengths))
	}

	visit := NewUniquify(NewFirstFlagger(NewEdgeLabelFlagger(v, k), k))

	numRecords := len(a)
	numDummies := len(dummies)
	aIdx, bIdx, dIdx := 0, 0, 0

	// getA/getB project each table's row down to its node value, at the
	// same natural (k-1)-symbol scale on both sides, so a plain
	// unsigned comparison of the two decides the three-way merge.
	getA := func(i int) kmer.Kmer { return a[i].StartNode(k) }
	getB := func(i int) kmer.Kmer { return b[i].EndNode(k) }
	incB := func() {
		cur := getB(bIdx)
		bIdx++
		for bIdx < numRecords && getB(bIdx) == cur {
			bIdx++
		}
	}
	// checkForInDummies flushes every pending dummy that sorts at or
	// before threshold: dummies always sort before any standard or
	// outgoing edge tied with them at the same node, per the merge's
	// tie-break rule. Dummies are compared at their own start_node,
	// taken at the full edge width k, not at their raw stored value:
	// a descendant record's real content sits in its top slots, so its
	// raw value does not sit at the same scale as threshold.
	checkForInDummies := func(threshold kmer.Kmer) error {
		for dIdx < numDummies {
			d := dummies[dIdx]
			length := lengths[dIdx]
			if d.StartNode(k) > threshold {
				break
			}
			if err := visit.Visit(InDummy, d, length, false, false); err != nil {
				return err
			}
			dIdx++
		}
		return nil
	}

	for aIdx < numRecords && bIdx < numRecords {
		x := a[aIdx]
		aKey := getA(aIdx)
		bKey := getB(bIdx)
		switch {
		case bKey < aKey:
			if err := checkForInDummies(bKey); err != nil {
				return err
			}
			if err := visit.Visit(OutDummy, bKey, k, false, false); err != nil {
				return err
			}
			incB()
		case aKey < bKey:
			if err := checkForInDummies(aKey); err != nil {
				return err
			}
			if err := visit.Visit(Standard, x, k, false, false); err != nil {
				return err
			}
			aIdx++
		default:
			if err := checkForInDummies(aKey); err != nil {
				return err
			}
			if err := visit.Visit(Standard, x, k, false, false); err != nil {
				return err
			}
			aIdx++
			incB()
		}
	}

	for aIdx < numRecords {
		x := a[aIdx]
		aKey := getA(aIdx)
		aIdx++
		if err := checkForInDummies(aKey); err != nil {
			return err
		}
		if err := visit.Visit(Standard, x, k, false, false); err != nil {
			return err
		}
	}

	for bIdx < numRecords {
		bKey := getB(bIdx)
		bIdx++
		if err := checkForInDummies(bKey); err != nil {
			return err
		}
		if err := visit.Visit(OutDummy, bKey, k, false, false); err != nil {
			return err
		}
	}

	for dIdx < numDummies {
		if err := visit.Visit(InDummy, dummies[dIdx], lengths[dIdx], false, false); err != nil {
			return err
		}
		dIdx++
	}

	return nil
}
