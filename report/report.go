// Package report computes post-merge summary statistics over a
// recorded dbg event stream: how much of the emitted graph is dummy
// padding, and the shape of the out-degree distribution.
package report

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/exascience/dbgcore/dbg"
)

// Summary holds the statistics Summarize computes over one merge run.
type Summary struct {
	TotalEvents      int
	StandardEvents   int
	InDummyEvents    int
	OutDummyEvents   int
	NodeGroups       int
	DummyFraction    float64
	OutDegreeMean    float64
	OutDegreeStdDev  float64
	OutDegreeHistMax int
}

// Summarize computes a Summary over a recorded event sequence, in the
// same order dbg.Merge emitted it. events is typically
// dbg.RecordingVisitor.Events from a run wired ahead of the concrete
// output visitor (see cmd.DBGBuild).
func Summarize(events []dbg.Event) Summary {
	var s Summary
	s.TotalEvents = len(events)

	outDegrees := make([]float64, 0)
	var currentGroupDegree float64

	flushGroup := func() {
		if currentGroupDegree > 0 {
			outDegrees = append(outDegrees, currentGroupDegree)
		}
	}

	for _, e := range events {
		switch e.Tag {
		case dbg.Standard:
			s.StandardEvents++
		case dbg.InDummy:
			s.InDummyEvents++
		case dbg.OutDummy:
			s.OutDummyEvents++
		}

		if e.First {
			flushGroup()
			s.NodeGroups++
			currentGroupDegree = 0
		}
		if e.Tag == dbg.Standard {
			currentGroupDegree++
		}
	}
	flushGroup()

	if s.TotalEvents > 0 {
		s.DummyFraction = float64(s.InDummyEvents+s.OutDummyEvents) / float64(s.TotalEvents)
	}
	if len(outDegrees) > 0 {
		s.OutDegreeMean, s.OutDegreeStdDev = stat.MeanStdDev(outDegrees, nil)
		max := outDegrees[0]
		for _, d := range outDegrees {
			if d > max {
				max = d
			}
		}
		s.OutDegreeHistMax = int(max)
	}

	return s
}

// String renders the summary as a short human-readable report.
func (s Summary) String() string {
	return fmt.Sprintf(
		"events=%d standard=%d in_dummy=%d out_dummy=%d node_groups=%d dummy_fraction=%.4f out_degree_mean=%.4f out_degree_stddev=%.4f out_degree_max=%d",
		s.TotalEvents, s.StandardEvents, s.InDummyEvents, s.OutDummyEvents, s.NodeGroups,
		s.DummyFraction, s.OutDegreeMean, s.OutDegreeStdDev, s.OutDegreeHistMax,
	)
}
