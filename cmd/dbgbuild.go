package cmd

import (
	"encoding/binary"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/exascience/dbgcore/dbg"
	"github.com/exascience/dbgcore/fasta"
	"github.com/exascience/dbgcore/internal"
	"github.com/exascience/dbgcore/kmer"
	"github.com/exascience/dbgcore/report"
	"github.com/exascience/dbgcore/visitors"
)

// DBGBuildHelp documents the dbgbuild command.
const DBGBuildHelp = "Build a succinct de Bruijn graph edge sequence from a reference FASTA file:\n" +
	"dbgbuild fasta-file [--k k] [--format ascii-full|ascii-label|packed] [--output file] [--timed] [--log-path path]\n" +
	HelpMessage

var errSanityCheckFailed = errors.New("dbgbuild: sanity checks failed")

// DBGBuild implements the dbgbuild command: reads a FASTA file, builds
// tables A and B, discovers and expands incoming dummies, merges
// everything into the canonical event sequence while driving it through
// the requested output visitor, and prints a summary report.
func DBGBuild() error {
	var (
		k       int
		format  string
		output  string
		timed   bool
		profile string
		logPath string
	)

	var flags flag.FlagSet
	flags.IntVar(&k, "k", 31, "k-mer edge width")
	flags.StringVar(&format, "format", "ascii-full", "output format: ascii-full, ascii-label, or packed")
	flags.StringVar(&output, "output", "", "output file (defaults to stdout)")
	flags.BoolVar(&timed, "timed", false, "measure the runtime of each phase")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 3, DBGBuildHelp)

	input := getFilename(os.Args[2], DBGBuildHelp)

	setLogOutput(logPath)
	log.Println("Run ID:", uuid.New())

	var sanityChecksFailed bool
	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if output != "" && !checkCreate("--output", output) {
		sanityChecksFailed = true
	}
	if k < 2 || k > int(kmer.MaxK) {
		log.Printf("Error: --k must be between 2 and %d.\n", kmer.MaxK)
		sanityChecksFailed = true
	}
	switch format {
	case "ascii-full", "ascii-label", "packed":
	default:
		log.Printf("Error: unknown --format %v.\n", format)
		sanityChecksFailed = true
	}
	if sanityChecksFailed {
		return errSanityCheckFailed
	}

	kk := uint8(k)

	var tableA, tableB []kmer.Kmer
	timedRun(timed, profile, "Reading FASTA and building edge tables.", 1, func() {
		var err error
		tableA, tableB, err = fasta.BuildEdgeTables(input, kk)
		if err != nil {
			log.Panic(err)
		}
	})

	var w io.Writer = os.Stdout
	if output != "" {
		f := internal.FileCreate(output)
		defer internal.Close(f)
		w = f
	}

	recorder := &dbg.RecordingVisitor{}
	sink, flush := buildSink(format, w, kk)
	target := multiVisitor{recorder, sink}

	timedRun(timed, profile, "Discovering, expanding, and merging dummy edges.", 2, func() {
		numSeeds := dbg.CountIncomingDummies(tableA, tableB, kk)
		seeds := make([]kmer.Kmer, numSeeds)
		dbg.FindIncomingDummies(tableA, tableB, kk, seeds)

		dummyLen := dbg.DummyBufferLen(numSeeds, kk)
		dummies := make([]kmer.Kmer, dummyLen)
		lengths := make([]uint8, dummyLen)
		dbg.ExpandDummies(seeds, kk, dummies, lengths)
		fasta.SortDummies(dummies, lengths, kk)

		if err := dbg.Merge(tableA, tableB, kk, dummies, lengths, target); err != nil {
			log.Panic(err)
		}
	})

	if flush != nil {
		if err := flush(); err != nil {
			log.Panic(err)
		}
	}

	summary := report.Summarize(recorder.Events)
	log.Println("Summary:", summary.String())

	return nil
}

// multiVisitor fans a single event out to every wrapped visitor, in
// order, stopping at the first error.
type multiVisitor []dbg.Visitor

func (m multiVisitor) Visit(tag dbg.EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
	for _, v := range m {
		if err := v.Visit(tag, x, length, first, edgeFlag); err != nil {
			return err
		}
	}
	return nil
}

// writePackedWords serializes the packed binary bitset's backing words
// as little-endian uint64s.
func writePackedWords(w io.Writer, words []uint64) error {
	buf := make([]byte, 8*len(words))
	for i, word := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], word)
	}
	_, err := w.Write(buf)
	return err
}

// buildSink constructs the concrete output visitor for the requested
// format, plus a flush function to call once after the merge completes
// (nil if the format needs no flush).
func buildSink(format string, w io.Writer, k uint8) (dbg.Visitor, func() error) {
	switch format {
	case "ascii-label":
		v := visitors.NewAsciiEdgeLabelOnly(w, k)
		return v, v.Flush
	case "packed":
		v := visitors.NewPackedBinary()
		return v, func() error {
			if err := v.Close(); err != nil {
				return err
			}
			return writePackedWords(w, v.Bits().Bytes())
		}
	default:
		return visitors.NewAsciiFullEdge(w, k), nil
	}
}
