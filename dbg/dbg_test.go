package dbg

import (
	"testing"

	"github.com/exascience/dbgcore/kmer"
)

func TestEdgeTagString(t *testing.T) {
	cases := map[EdgeTag]string{
		Standard: "standard",
		InDummy:  "in_dummy",
		OutDummy: "out_dummy",
		EdgeTag(99): "unknown",
	}
	for tag, want := range cases {
		if got := tag.String(); got != want {
			t.Errorf("EdgeTag(%d).String() = %q, want %q", tag, got, want)
		}
	}
}

func TestVisitorFunc(t *testing.T) {
	var calls []EdgeTag
	var v Visitor = VisitorFunc(func(tag EdgeTag, x kmer.Kmer, length uint8, first, edgeFlag bool) error {
		calls = append(calls, tag)
		return nil
	})
	if err := v.Visit(Standard, 0, 3, true, false); err != nil {
		t.Fatal(err)
	}
	if err := v.Visit(OutDummy, 0, 3, false, false); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 || calls[0] != Standard || calls[1] != OutDummy {
		t.Errorf("calls = %v, want [Standard OutDummy]", calls)
	}
}
