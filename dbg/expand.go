package dbg

import (
	"log"

	"github.com/exascience/dbgcore/kmer"
)

// ExpandDummies turns a set of incoming-dummy seed nodes into the full
// chain of shortened, $-padded records the merge step needs, and writes
// the result into dummies/lengths. Both buffers must have length exactly
// len(seeds)*int(k); DummyBufferLen computes that size.
//
// The layout mirrors the source this is ported from: the first
// len(seeds) slots hold the seeds themselves, declared length k, in the
// same order as seeds. The remaining len(seeds)*(k-1) slots hold each
// seed's k-1 descendants, grouped by seed (seed i's descendants occupy
// slots len(seeds)+i*(k-1) through len(seeds)+(i+1)*(k-1)-1), each one
// symbol shorter than the last: declared lengths k-1, k-2, ..., 1.
// Descendant j of seed i is seeds[i] shifted left by (j+1) symbol
// widths.
//
// The result is not sorted: dummies produced this way are grouped by
// seed, not by value. Merge requires a colex-sorted, length-paired
// dummy sequence, so callers must sort dummies (carrying lengths along
// with it) before passing it to Merge; SortDummies in package fasta
// does this.
//
// ExpandDummies panics if k < 2, if dummies/lengths are not exactly
// DummyBufferLen(len(seeds), k) long, or (via DummyBufferLen) if
// len(seeds)*k would overflow the platform's int.
func ExpandDummies(seeds []kmer.Kmer, k uint8, dummies []kmer.Kmer, lengths []uint8) {
	if k < 2 {
		log.Panicf("dbg.ExpandDummies: k must be at least 2, got %d", k)
	}
	want := DummyBufferLen(len(seeds), k)
	if len(dummies) != want || len(lengths) != want {
		log.Panicf("dbg.ExpandDummies: buffers must have length %d, got dummies=%d lengths=%d", want, len(dummies), len(lengths))
	}

	n := len(seeds)
	for i, seed := range seeds {
		dummies[i] = seed
		lengths[i] = k
	}

	out := dummies[n:]
	outLen := lengths[n:]
	for i, seed := range seeds {
		x := seed
		block := out[i*int(k-1) : (i+1)*int(k-1)]
		blockLen := outLen[i*int(k-1) : (i+1)*int(k-1)]
		for j := uint8(0); j < k-1; j++ {
			x = x.ShiftLeftOneSymbol()
			block[j] = x
			blockLen[j] = k - 1 - j
		}
	}
}

// maxInt is the largest value the platform's int can hold, computed
// without assuming a Go version new enough to export math.MaxInt.
const maxInt = int(^uint(0) >> 1)

// DummyBufferLen returns the buffer length ExpandDummies requires for
// numSeeds incoming-dummy seed nodes at edge width k: one seed record
// plus k-1 descendant records per seed. It panics if numSeeds*k would
// not fit in the platform's int.
func DummyBufferLen(numSeeds int, k uint8) int {
	if numSeeds < 0 {
		log.Panicf("dbg.DummyBufferLen: numSeeds must be non-negative, got %d", numSeeds)
	}
	if int(k) != 0 && numSeeds > maxInt/int(k) {
		log.Panicf("dbg.DummyBufferLen: numSeeds=%d * k=%d overflows the platform's int", numSeeds, k)
	}
	return numSeeds * int(k)
}
