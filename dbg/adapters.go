package dbg

import "github.com/exascience/dbgcore/kmer"

// Uniquify suppresses an event that is identical to the immediately
// preceding non-suppressed event on tag, kmer value and length. State is
// held on the struct rather than in function-scope statics, so a Uniquify
// value is safe to use once per merge and discard afterwards.
type Uniquify struct {
	next     Visitor
	haveLast bool
	lastTag  EdgeTag
	lastKmer kmer.Kmer
	lastLen  uint8
}

// NewUniquify wraps next in a Uniquify transducer.
func NewUniquify(next Visitor) *Uniquify {
	return &Uniquify{next: next}
}

// Visit forwards the event to the wrapped visitor unless it repeats the
// previous forwarded event exactly.
func (u *Uniquify) Visit(tag EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
	if u.haveLast && tag == u.lastTag && x == u.lastKmer && length == u.lastLen {
		return nil
	}
	u.haveLast = true
	u.lastTag, u.lastKmer, u.lastLen = tag, x, length
	return u.next.Visit(tag, x, length, first, edgeFlag)
}

// FirstFlagger computes the first-flag: true for the very first event,
// for the event immediately following a seed incoming-dummy record (a
// seed carries the same length-k, unshifted representation of its node
// as a real edge sharing that start_node would, so without this rule a
// real edge would incorrectly inherit first=false from the seed that
// happens to precede it), or whenever (start_node(x), length) differs
// from the previous event's.
//
// start_node is always computed at the full edge width k, never at a
// record's own declared length: an incoming-dummy record's real content
// sits in its top slots (see kmer.Kmer.DummyString), so masking with
// anything shorter than k reads the wrong bits. One consequence of that
// masking is that every declared-length-1 descendant, regardless of
// which seed produced it, masks to start_node(k)==0: its one real
// symbol sits in the single slot start_node always clears. A run of
// such descendants from different seeds is still exactly one group
// under the (start_node, length) rule above, so only the first of them
// carries first=true, same as any other run sharing that pair.
type FirstFlagger struct {
	next          Visitor
	k             uint8
	haveLast      bool
	lastTag       EdgeTag
	lastStartNode kmer.Kmer
	lastLen       uint8
}

// NewFirstFlagger wraps next in a FirstFlagger transducer. k is the edge
// width of the graph being built.
func NewFirstFlagger(next Visitor, k uint8) *FirstFlagger {
	return &FirstFlagger{next: next, k: k}
}

// Visit computes the first-flag for x and forwards to the wrapped
// visitor. The incoming first/edgeFlag arguments are ignored: FirstFlagger
// owns the first-flag decision.
func (f *FirstFlagger) Visit(tag EdgeTag, x kmer.Kmer, length uint8, _, edgeFlag bool) error {
	startNode := x.StartNode(f.k)
	followsSeed := f.haveLast && f.lastTag == InDummy && f.lastLen == f.k
	first := !f.haveLast || followsSeed ||
		startNode != f.lastStartNode || length != f.lastLen
	f.haveLast = true
	f.lastTag, f.lastStartNode, f.lastLen = tag, startNode, length
	return f.next.Visit(tag, x, length, first, edgeFlag)
}

// EdgeLabelFlagger computes the edge-label flag: within a node-group
// (delineated by the first-flag reported by the enclosing FirstFlagger),
// the first occurrence of a given outgoing edge label carries
// edgeFlag=false, and every later occurrence of that same label within
// the same group carries edgeFlag=true. It is stacked innermost, between
// FirstFlagger and the wrapped visitor: Uniquify(FirstFlagger(EdgeLabelFlagger(v))).
type EdgeLabelFlagger struct {
	next Visitor
	k    uint8
	seen [4]bool
}

// NewEdgeLabelFlagger wraps next in an EdgeLabelFlagger transducer. k is
// the edge width of the graph being built.
func NewEdgeLabelFlagger(next Visitor, k uint8) *EdgeLabelFlagger {
	return &EdgeLabelFlagger{next: next, k: k}
}

// Visit computes the edge-label flag for x and forwards to the wrapped
// visitor. first must be the first-flag already computed by the enclosing
// FirstFlagger; a true value resets the seen-label table before this
// edge's label is recorded. The label is always read at the full edge
// width k, for the same reason FirstFlagger always computes start_node
// at k: an incoming-dummy record's last real symbol sits at slot k-1,
// not at slot length-1.
func (e *EdgeLabelFlagger) Visit(tag EdgeTag, x kmer.Kmer, length uint8, first, _ bool) error {
	if first {
		e.seen = [4]bool{}
	}
	label := x.EdgeLabel(e.k)
	edgeFlag := e.seen[label]
	e.seen[label] = true
	return e.next.Visit(tag, x, length, first, edgeFlag)
}
