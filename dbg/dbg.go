// Package dbg builds the canonical interleaved sequence of standard,
// incoming-dummy and outgoing-dummy edges that a succinct (BOSS-style) de
// Bruijn graph representation is encoded from, given two differently
// sorted tables of the same edge multiset. It performs no graph traversal,
// no rank/select index construction and no bitvector compression, and it
// never touches disk: callers own input construction and output
// consumption.
package dbg

import "github.com/exascience/dbgcore/kmer"

// EdgeTag classifies one emitted event.
type EdgeTag int

const (
	// Standard marks an edge present verbatim in the input tables.
	Standard EdgeTag = iota
	// InDummy marks a synthesized edge from the sentinel into a node that
	// otherwise has no incoming edge.
	InDummy
	// OutDummy marks a synthesized edge from a node with no outgoing edge
	// to the sentinel.
	OutDummy
)

func (t EdgeTag) String() string {
	switch t {
	case Standard:
		return "standard"
	case InDummy:
		return "in_dummy"
	case OutDummy:
		return "out_dummy"
	default:
		return "unknown"
	}
}

// Visitor receives one emitted event at a time from Merge, already
// annotated with the first-flag (set on the first event of each run
// sharing a start node and declared length) and the edge-label flag
// (set when the edge's label has already appeared earlier in the same
// node-group). A visitor implementation
// owns everything it does with an event; Merge retains nothing once
// Visit returns.
type Visitor interface {
	Visit(tag EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(tag EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error

// Visit calls f.
func (f VisitorFunc) Visit(tag EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
	return f(tag, x, length, first, edgeFlag)
}

// Event is one recorded call to Visit, used by RecordingVisitor and by
// tests that need to assert on the full emitted sequence.
type Event struct {
	Tag      EdgeTag
	Kmer     kmer.Kmer
	Length   uint8
	First    bool
	EdgeFlag bool
}

// RecordingVisitor is a Visitor that appends every event to a slice,
// for tests and callers that want to inspect or replay the full
// emitted sequence rather than consume it as it streams.
type RecordingVisitor struct {
	Events []Event
}

// Visit appends the event to v.Events.
func (v *RecordingVisitor) Visit(tag EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
	v.Events = append(v.Events, Event{Tag: tag, Kmer: x, Length: length, First: first, EdgeFlag: edgeFlag})
	return nil
}
