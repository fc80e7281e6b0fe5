package report

import (
	"math"
	"testing"

	"github.com/exascience/dbgcore/dbg"
)

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize(t *testing.T) {
	events := []dbg.Event{
		{Tag: dbg.Standard, First: true},
		{Tag: dbg.Standard, First: false},
		{Tag: dbg.Standard, First: true},
		{Tag: dbg.InDummy, First: true},
		{Tag: dbg.OutDummy, First: false},
	}

	s := Summarize(events)

	if s.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", s.TotalEvents)
	}
	if s.StandardEvents != 3 {
		t.Errorf("StandardEvents = %d, want 3", s.StandardEvents)
	}
	if s.InDummyEvents != 1 {
		t.Errorf("InDummyEvents = %d, want 1", s.InDummyEvents)
	}
	if s.OutDummyEvents != 1 {
		t.Errorf("OutDummyEvents = %d, want 1", s.OutDummyEvents)
	}
	if s.NodeGroups != 3 {
		t.Errorf("NodeGroups = %d, want 3", s.NodeGroups)
	}
	if !closeEnough(s.DummyFraction, 0.4) {
		t.Errorf("DummyFraction = %v, want 0.4", s.DummyFraction)
	}
	// Two completed standard-edge groups had out-degree 2 and 1; the
	// third (in_dummy) group's zero out-degree is excluded.
	if !closeEnough(s.OutDegreeMean, 1.5) {
		t.Errorf("OutDegreeMean = %v, want 1.5", s.OutDegreeMean)
	}
	wantStdDev := math.Sqrt(0.5)
	if !closeEnough(s.OutDegreeStdDev, wantStdDev) {
		t.Errorf("OutDegreeStdDev = %v, want %v", s.OutDegreeStdDev, wantStdDev)
	}
	if s.OutDegreeHistMax != 2 {
		t.Errorf("OutDegreeHistMax = %d, want 2", s.OutDegreeHistMax)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalEvents != 0 || s.NodeGroups != 0 {
		t.Errorf("Summarize(nil) = %+v, want all zero", s)
	}
	if s.DummyFraction != 0 {
		t.Errorf("DummyFraction = %v, want 0 for empty input", s.DummyFraction)
	}
}

func TestSummarizeString(t *testing.T) {
	s := Summarize([]dbg.Event{{Tag: dbg.Standard, First: true}})
	str := s.String()
	if str == "" {
		t.Error("String() returned empty string")
	}
}
