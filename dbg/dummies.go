package dbg

import (
	"log"

	"github.com/exascience/dbgcore/kmer"
)

// CountIncomingDummies computes the number of nodes that appear as a
// start_node in a but never as an end_node in b: the size of the
// incoming-dummy seed set. a must be sorted primarily by start_node(a[i])
// (see fasta.BuildEdgeTables); b must be sorted primarily by
// end_node(b[i], k). Both may contain adjacent duplicates from repeated
// edges out of, or into, the same node.
//
// This is the counting half of the two-pass discipline used throughout
// this package: callers size a buffer from this count before calling
// FindIncomingDummies to fill it, the same discipline DummyBufferLen and
// ExpandDummies use for the expanded dummy buffers.
func CountIncomingDummies(a, b []kmer.Kmer, k uint8) int {
	count := 0
	walkSetDifference(a, b, k, func(kmer.Kmer) { count++ })
	return count
}

// FindIncomingDummies writes the incoming-dummy seed set (start nodes in a
// with no matching end node in b) into seeds, which must have length at
// least CountIncomingDummies(a, b, k). It visits inputs in the same order
// CountIncomingDummies does, so the two calls agree on both count and
// content.
func FindIncomingDummies(a, b []kmer.Kmer, k uint8, seeds []kmer.Kmer) {
	i := 0
	walkSetDifference(a, b, k, func(x kmer.Kmer) {
		if i >= len(seeds) {
			log.Panicf("dbg.FindIncomingDummies: seeds buffer of length %d is too small", len(seeds))
		}
		seeds[i] = x
		i++
	})
}

// walkSetDifference computes {start_node(a[i])} \ {end_node(b[i], k)} as a
// uniqued set difference over two already node-major-sorted tables, in a
// single O(len(a)+len(b)) pass, and calls emit once per element of the
// difference, in ascending order.
func walkSetDifference(a, b []kmer.Kmer, k uint8, emit func(kmer.Kmer)) {
	i, j := 0, 0
	for i < len(a) {
		x := a[i].StartNode(k)
		for i+1 < len(a) && a[i+1].StartNode(k) == x {
			i++
		}
		i++

		for j < len(b) {
			y := b[j].EndNode(k)
			for j+1 < len(b) && b[j+1].EndNode(k) == y {
				j++
			}
			if y.Less(x) {
				j++
				continue
			}
			break
		}

		found := false
		if j < len(b) {
			y := b[j].EndNode(k)
			if y == x {
				found = true
			}
		}
		if !found {
			emit(x)
		}
	}
}
