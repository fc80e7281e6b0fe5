// Package kmer implements the packed k-mer value type shared by the
// de Bruijn graph construction and merge core.
//
// A Kmer packs up to MaxK nucleotides from the alphabet {A, C, G, T} into a
// single uint64, two bits per symbol, using a "reversed" convention: the
// rightmost symbol in logical (5'->3') order occupies the most significant
// bit-pair. That convention makes a logical right-shift by one nucleotide
// equal to the machine operation x <<= NTWidth, and makes colexicographic
// order on the logical symbol sequence equal to native unsigned integer
// comparison on the packed value. Both properties are relied on throughout
// package dbg.
package kmer

import "fmt"

// NTWidth is the number of bits used to encode one nucleotide.
const NTWidth = 2

// MaxK is the largest k-mer length representable in a single Kmer.
const MaxK = 32

// Symbol is one packed nucleotide code. Only two bits are ever stored, so a
// Symbol decoded from a Kmer is always one of A, C, G, T.
type Symbol byte

// The four nucleotide codes.
const (
	A Symbol = 0
	C Symbol = 1
	G Symbol = 2
	T Symbol = 3
)

var symbolBytes = [4]byte{A: 'A', C: 'C', G: 'G', T: 'T'}

// String returns the ASCII rendering of a symbol.
func (s Symbol) String() string {
	if int(s) >= len(symbolBytes) {
		return "?"
	}
	return string(symbolBytes[s])
}

// Complement returns the Watson-Crick complement of a nucleotide symbol.
func (s Symbol) Complement() Symbol {
	switch s {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	default:
		return C
	}
}

// symbolCode maps an ASCII nucleotide byte to its packed code. Anything
// not in {A,C,G,T,a,c,g,t} maps to ok=false.
func symbolCode(b byte) (Symbol, bool) {
	switch b {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	default:
		return 0, false
	}
}

// Kmer is an immutable, fixed-width packed k-mer value. The length of the
// logical symbol sequence a Kmer represents is not stored in the value
// itself: callers track it alongside the value, exactly as the merge core
// and dummy expansion both do (see package dbg).
type Kmer uint64

// mask returns a mask covering the low NTWidth*n bits.
func mask(n uint8) uint64 {
	if n >= 32 {
		return ^uint64(0)
	}
	return (uint64(1) << (NTWidth * n)) - 1
}

// StartNode returns the k-mer formed by the first (length-1) symbols of a
// length-symbol edge k-mer: the source node of the edge. Per the reversed
// packing, the last logical symbol occupies bit-slot (length-1); StartNode
// keeps only bit-slots [0, length-1) and clears everything from bit-slot
// (length-1) up, not just that one slot.
//
// Clearing only the exact slot is not enough for a value produced by
// repeated ShiftLeftOneSymbol (see dbg.ExpandDummies): each shift pushes
// real content up by one slot, and by the second shift the oldest symbol
// has been pushed past bit-slot (length-1) entirely, landing above the
// window this function is supposed to mask away. A plain natural k-mer
// never has bits set above its own top slot, so keeping only the low
// bits changes nothing for it; it only matters once values start
// carrying that kind of shifted-out residue.
func (x Kmer) StartNode(length uint8) Kmer {
	if length == 0 {
		return x
	}
	return x & Kmer(mask(length-1))
}

// EndNode returns the k-mer formed by the last (length-1) symbols of a
// length-symbol edge k-mer: the destination node of the edge. Dropping the
// logical first symbol (bit-slot 0) and re-indexing every later symbol down
// by one slot is a single right shift.
func (x Kmer) EndNode(length uint8) Kmer {
	if length == 0 {
		return x
	}
	return x >> NTWidth
}

// EdgeLabel returns the final logical symbol of a length-symbol edge
// k-mer: the symbol occupying bit-slot (length-1).
func (x Kmer) EdgeLabel(length uint8) Symbol {
	if length == 0 {
		return A
	}
	return Symbol((x >> (NTWidth * (length - 1))) & 0x3)
}

// NodeSuffix returns the (length-2)-symbol suffix shared by every edge
// leaving the same node as a length-symbol edge k-mer: drop the first
// symbol (EndNode) and then the new last symbol (StartNode).
func (x Kmer) NodeSuffix(length uint8) Kmer {
	return x.StartNode(length).EndNode(length - 1)
}

// ShiftLeftOneSymbol appends the sentinel symbol '$' on the logical left of
// a k-mer: every existing symbol moves up one bit-slot (towards the most
// significant end) and bit-slot 0 becomes zero. This is the sole primitive
// dummy expansion needs (see dbg.ExpandDummies): applying it repeatedly to
// a seed node turns it into its chain of shortened, $-padded descendants.
func (x Kmer) ShiftLeftOneSymbol() Kmer {
	return x << NTWidth
}

// Less reports whether x sorts strictly before y under colexicographic
// order, which for this packing is native unsigned integer order.
func (x Kmer) Less(y Kmer) bool {
	return x < y
}

// Encode packs an ASCII nucleotide sequence (A/C/G/T, case-insensitive,
// given in logical 5'->3' order) into a Kmer. len(seq) must be <= MaxK.
// Encode reports an error rather than panicking: unlike the dbg core,
// callers building tables from external FASTA input cannot assume
// pre-validated data.
func Encode(seq []byte) (Kmer, error) {
	if len(seq) > MaxK {
		return 0, fmt.Errorf("kmer.Encode: sequence length %d exceeds MaxK %d", len(seq), MaxK)
	}
	var x Kmer
	for i, b := range seq {
		code, ok := symbolCode(b)
		if !ok {
			return 0, fmt.Errorf("kmer.Encode: invalid nucleotide %q", b)
		}
		x |= Kmer(code) << (NTWidth * uint(i))
	}
	return x, nil
}

// ReverseComplement returns the reverse complement of a length-symbol
// k-mer: complement every symbol and reverse the logical order. Used by
// package fasta to canonicalize k-mers extracted from double-stranded
// input before they enter tables A and B.
func (x Kmer) ReverseComplement(length uint8) Kmer {
	var out Kmer
	for i := uint8(0); i < length; i++ {
		sym := Symbol((x >> (NTWidth * i)) & 0x3)
		out |= Kmer(sym.Complement()) << (NTWidth * (length - 1 - i))
	}
	return out
}

// String renders a length-symbol Kmer as an ASCII nucleotide string in
// logical (5'->3') order, symbol i taken from bit-slot i. It assumes every
// slot in [0, length) holds a real nucleotide; it must not be used on a
// dummy value produced by ShiftLeftOneSymbol without first accounting for
// the $-padding those values carry (see DummyString).
func (x Kmer) String(length uint8) string {
	buf := make([]byte, length)
	for i := uint8(0); i < length; i++ {
		sym := Symbol((x >> (NTWidth * i)) & 0x3)
		buf[i] = symbolBytes[sym]
	}
	return string(buf)
}

// DummyString renders an incoming-dummy record for display at edge width k,
// given the record's declared length field as produced by
// dbg.ExpandDummies. Expansion builds each descendant by shifting the seed
// node left by one symbol width per step, which pushes real content toward
// the most significant slots and introduces (k-declaredLength) zero slots
// at the least significant end; DummyString renders those as leading '$'
// and decodes the rest normally.
//
// The seed record is the one exception: it carries declaredLength == k but
// has never been shifted, so its real content is the k-1 symbols of
// start_node(a) in slots [0, k-1), with slot (k-1) left as the cleared
// edge-label slot from StartNode. DummyString renders that cleared slot as
// a trailing '$' rather than a leading one, matching the fact that an
// unshifted seed has not yet acquired any left padding.
func (x Kmer) DummyString(declaredLength, k uint8) string {
	if declaredLength == k {
		buf := make([]byte, k)
		for i := uint8(0); i < k-1; i++ {
			sym := Symbol((x >> (NTWidth * i)) & 0x3)
			buf[i] = symbolBytes[sym]
		}
		buf[k-1] = '$'
		return string(buf)
	}
	shiftCount := k - declaredLength
	buf := make([]byte, k)
	for i := uint8(0); i < shiftCount; i++ {
		buf[i] = '$'
	}
	for i := shiftCount; i < k; i++ {
		sym := Symbol((x >> (NTWidth * i)) & 0x3)
		buf[i] = symbolBytes[sym]
	}
	return string(buf)
}
