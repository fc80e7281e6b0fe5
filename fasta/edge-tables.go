package fasta

import (
	psort "github.com/exascience/pargo/sort"

	"github.com/exascience/dbgcore/kmer"
)

// usableRuns calls emit with the start offset of every length-k window of
// an already-upper-cased FASTA sequence that lies entirely inside a run of
// A/C/G/T bases, mirroring filters.HaplotypeCaller.baseUseableForAssembly's
// distinction between usable and unusable bases: any byte outside
// {A,C,G,T} (typically 'N') breaks a k-mer window rather than being
// encoded.
func usableRuns(seq []byte, k int, emit func(start int)) {
	run := 0
	for i, b := range seq {
		switch b {
		case 'A', 'C', 'G', 'T':
			run++
			if run >= k {
				emit(i - k + 1)
			}
		default:
			run = 0
		}
	}
}

// BuildEdgeTables reads a FASTA file, slides a window of length k over
// every maximal run of unambiguous bases in every contig (skipping
// windows that would touch an 'N' or other ambiguity code, the same
// discipline filters.HaplotypeCaller.addSequencesForKmers applies when
// collecting k-mers for local assembly), and canonicalizes each packed
// window to the smaller of itself and its reverse complement under
// kmer.Kmer.Less (colex order). It returns the same edge multiset sorted two ways:
// a primarily by start_node(edge), b primarily by end_node(edge, k), the
// node-major order package dbg's merge requires.
func BuildEdgeTables(path string, k uint8) (a, b []kmer.Kmer, err error) {
	fai := (map[string]FaiReference)(nil)
	contigs := ParseFasta(path, fai)

	var edges []kmer.Kmer
	kk := int(k)
	for _, seq := range contigs {
		usableRuns(seq, kk, func(start int) {
			x, encErr := kmer.Encode(seq[start : start+kk])
			if encErr != nil {
				err = encErr
				return
			}
			rc := x.ReverseComplement(k)
			if rc.Less(x) {
				x = rc
			}
			edges = append(edges, x)
		})
		if err != nil {
			return nil, nil, err
		}
	}

	a = make([]kmer.Kmer, len(edges))
	copy(a, edges)
	b = make([]kmer.Kmer, len(edges))
	copy(b, edges)

	psort.StableSort(startNodeSorter{kmers: a, k: k})
	psort.StableSort(endNodeSorter{kmers: b, k: k})

	return a, b, nil
}

// startNodeSorter sorts a []kmer.Kmer primarily by start_node(x, k), then
// by the full edge value, using pargo's parallel stable sort. Its shape
// (a slice wrapper implementing SequentialSort/NewTemp/Len/Less/Assign)
// follows intervals.stableIntervalSorter.
type startNodeSorter struct {
	kmers []kmer.Kmer
	k     uint8
}

func (s startNodeSorter) sequentialSortRange(lo, hi int) {
	slice := s.kmers[lo:hi]
	k := s.k
	insertionSortStable(len(slice), func(i, j int) bool {
		xi, xj := slice[i].StartNode(k), slice[j].StartNode(k)
		if xi != xj {
			return xi.Less(xj)
		}
		return slice[i].Less(slice[j])
	}, func(i, j int) {
		slice[i], slice[j] = slice[j], slice[i]
	})
}

func (s startNodeSorter) SequentialSort(i, j int) {
	s.sequentialSortRange(i, j)
}

func (s startNodeSorter) NewTemp() psort.StableSorter {
	return startNodeSorter{kmers: make([]kmer.Kmer, len(s.kmers)), k: s.k}
}

func (s startNodeSorter) Len() int {
	return len(s.kmers)
}

func (s startNodeSorter) Less(i, j int) bool {
	xi, xj := s.kmers[i].StartNode(s.k), s.kmers[j].StartNode(s.k)
	if xi != xj {
		return xi.Less(xj)
	}
	return s.kmers[i].Less(s.kmers[j])
}

func (s startNodeSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(startNodeSorter)
	return func(i, j, len int) {
		copy(dst.kmers[i:i+len], src.kmers[j:j+len])
	}
}

// endNodeSorter sorts a []kmer.Kmer primarily by end_node(x, k), then by
// the full edge value.
type endNodeSorter struct {
	kmers []kmer.Kmer
	k     uint8
}

func (s endNodeSorter) SequentialSort(i, j int) {
	slice := s.kmers[i:j]
	k := s.k
	insertionSortStable(len(slice), func(a, b int) bool {
		xa, xb := slice[a].EndNode(k), slice[b].EndNode(k)
		if xa != xb {
			return xa.Less(xb)
		}
		return slice[a].Less(slice[b])
	}, func(a, b int) {
		slice[a], slice[b] = slice[b], slice[a]
	})
}

func (s endNodeSorter) NewTemp() psort.StableSorter {
	return endNodeSorter{kmers: make([]kmer.Kmer, len(s.kmers)), k: s.k}
}

func (s endNodeSorter) Len() int {
	return len(s.kmers)
}

func (s endNodeSorter) Less(i, j int) bool {
	xi, xj := s.kmers[i].EndNode(s.k), s.kmers[j].EndNode(s.k)
	if xi != xj {
		return xi.Less(xj)
	}
	return s.kmers[i].Less(s.kmers[j])
}

func (s endNodeSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(endNodeSorter)
	return func(i, j, len int) {
		copy(dst.kmers[i:i+len], src.kmers[j:j+len])
	}
}

// insertionSortStable is a small stable sort used as the sequential base
// case pargo's parallel merge sort falls back to on small ranges,
// avoiding a dependency on sort.SliceStable's reflection-based swapping
// for a type this hot.
func insertionSortStable(n int, less func(i, j int) bool, swap func(i, j int)) {
	for i := 1; i < n; i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			swap(j, j-1)
		}
	}
}
