// Package visitors provides concrete dbg.Visitor implementations: two
// human-readable ASCII renderings and one packed binary encoding.
package visitors

import (
	"bufio"
	"fmt"
	"io"

	"github.com/exascience/dbgcore/dbg"
	"github.com/exascience/dbgcore/kmer"
)

// labelByte renders the display character for one event's trailing
// symbol: the outgoing edge label for a standard edge, '$' for an
// outgoing dummy (its destination is the sentinel by definition), and
// the last real symbol still present in an incoming dummy's declared
// length (or '$' for a declared length of k, whose only unset slot is
// the seed's cleared edge-label slot).
func labelByte(tag dbg.EdgeTag, x kmer.Kmer, length, k uint8) byte {
	switch tag {
	case dbg.OutDummy:
		return '$'
	case dbg.InDummy:
		if length == k {
			return '$'
		}
		return x.DummyString(length, k)[k-1]
	default:
		return x.EdgeLabel(length).String()[0]
	}
}

// nodeString renders an event's node/edge value using the same
// convention labelByte uses to pick the trailing character:
// kmer.Kmer.String for a standard edge (a plain length-symbol k-mer),
// kmer.Kmer.DummyString for an incoming-dummy event (whose value
// carries $-padding that String does not know how to render), and the
// (k-1)-symbol end-node plus a trailing '$' for an outgoing-dummy
// event, whose value only fills slots [0, k-1) and would otherwise
// have its unset top slot misdecoded as 'A'.
func nodeString(tag dbg.EdgeTag, x kmer.Kmer, length, k uint8) string {
	switch tag {
	case dbg.InDummy:
		return x.DummyString(length, k)
	case dbg.OutDummy:
		return x.String(k-1) + "$"
	default:
		return x.String(length)
	}
}

// AsciiFullEdge writes one line per event: tag, the full node/edge
// text, its declared length, and the first/edge-label flags, in the
// style of a debug dump rather than a wire format.
type AsciiFullEdge struct {
	w io.Writer
	k uint8
}

// NewAsciiFullEdge returns an AsciiFullEdge visitor writing to w for
// edges of width k.
func NewAsciiFullEdge(w io.Writer, k uint8) *AsciiFullEdge {
	return &AsciiFullEdge{w: w, k: k}
}

// Visit writes one line describing the event.
func (v *AsciiFullEdge) Visit(tag dbg.EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
	_, err := fmt.Fprintf(v.w, "%-8s %-*s len=%d first=%t edge=%t\n",
		tag, int(v.k), nodeString(tag, x, length, v.k), length, first, edgeFlag)
	return err
}

// AsciiEdgeLabelOnly writes one line per event containing only the
// edge-label character and the first/edge-label flags, a terser
// rendering suited to eyeballing the flag pattern across a node-group.
type AsciiEdgeLabelOnly struct {
	w *bufio.Writer
	k uint8
}

// NewAsciiEdgeLabelOnly returns an AsciiEdgeLabelOnly visitor writing to
// w for edges of width k.
func NewAsciiEdgeLabelOnly(w io.Writer, k uint8) *AsciiEdgeLabelOnly {
	return &AsciiEdgeLabelOnly{w: bufio.NewWriter(w), k: k}
}

// Visit writes one line containing the event's label byte and flags.
func (v *AsciiEdgeLabelOnly) Visit(tag dbg.EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
	label := labelByte(tag, x, length, v.k)
	_, err := fmt.Fprintf(v.w, "%c first=%t edge=%t\n", label, first, edgeFlag)
	return err
}

// Flush flushes buffered output. Callers must call it after the last
// Visit call.
func (v *AsciiEdgeLabelOnly) Flush() error {
	return v.w.Flush()
}
