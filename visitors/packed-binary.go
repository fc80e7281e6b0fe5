package visitors

import (
	"github.com/willf/bitset"

	"github.com/exascience/dbgcore/dbg"
	"github.com/exascience/dbgcore/kmer"
)

// recordBits is the width of one packed record: tag (2 bits) + first
// flag (1 bit) + edge-label flag (1 bit) + terminator flag (1 bit).
const recordBits = 5

type pendingRecord struct {
	tag      dbg.EdgeTag
	first    bool
	edgeFlag bool
}

// PackedBinary encodes the merged event stream at 5 bits per record
// (tag, first flag, edge-label flag, and a terminator flag marking the
// last edge of each node-group) into a bitset.BitSet. It needs one
// record of lookahead to know when a group ends, so it buffers a whole
// node-group before appending it to the bitset; callers must call Close
// after the last Visit call to flush the final buffered group.
type PackedBinary struct {
	bits    *bitset.BitSet
	n       uint
	pending []pendingRecord
}

// NewPackedBinary returns an empty PackedBinary visitor.
func NewPackedBinary() *PackedBinary {
	return &PackedBinary{bits: bitset.New(0)}
}

// Visit buffers the event, flushing the previously buffered node-group
// first if this event starts a new one.
func (v *PackedBinary) Visit(tag dbg.EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
	if first && len(v.pending) > 0 {
		v.flush()
	}
	v.pending = append(v.pending, pendingRecord{tag: tag, first: first, edgeFlag: edgeFlag})
	return nil
}

// Close flushes any buffered final node-group. Callers must call it
// after the last Visit call.
func (v *PackedBinary) Close() error {
	v.flush()
	return nil
}

func (v *PackedBinary) flush() {
	for i, r := range v.pending {
		terminator := i == len(v.pending)-1
		v.appendRecord(r.tag, r.first, r.edgeFlag, terminator)
	}
	v.pending = v.pending[:0]
}

func (v *PackedBinary) appendRecord(tag dbg.EdgeTag, first, edgeFlag, terminator bool) {
	base := v.n
	v.setBit(base+0, uint(tag)&0x1 != 0)
	v.setBit(base+1, uint(tag)&0x2 != 0)
	v.setBit(base+2, first)
	v.setBit(base+3, edgeFlag)
	v.setBit(base+4, terminator)
	v.n += recordBits
}

func (v *PackedBinary) setBit(i uint, on bool) {
	if on {
		v.bits.Set(i)
	} else {
		v.bits.Clear(i)
	}
}

// Len returns the number of records appended so far.
func (v *PackedBinary) Len() int {
	return int(v.n / recordBits)
}

// Bits returns the underlying bitset. Callers must not mutate it.
func (v *PackedBinary) Bits() *bitset.BitSet {
	return v.bits
}
