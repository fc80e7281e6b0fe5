package kmer

import "testing"

func encode(t *testing.T, seq string) Kmer {
	t.Helper()
	x, err := Encode([]byte(seq))
	if err != nil {
		t.Fatalf("Encode(%q): %v", seq, err)
	}
	return x
}

func TestEncodeString(t *testing.T) {
	for _, seq := range []string{"A", "ACGT", "TTTTAAAACCCCGGGG", "acgt"} {
		x := encode(t, seq)
		want := seq
		if seq == "acgt" {
			want = "ACGT"
		}
		if got := x.String(uint8(len(seq))); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestEncodeInvalid(t *testing.T) {
	if _, err := Encode([]byte("ACGN")); err == nil {
		t.Error("Encode with N: expected error, got nil")
	}
	long := make([]byte, MaxK+1)
	for i := range long {
		long[i] = 'A'
	}
	if _, err := Encode(long); err == nil {
		t.Error("Encode over MaxK: expected error, got nil")
	}
}

func TestLessIsColex(t *testing.T) {
	// Colex order compares from the last symbol first: AC and GC share
	// their last symbol C, so the first symbol decides, and A < G.
	ac := encode(t, "AC")
	gc := encode(t, "GC")
	if !ac.Less(gc) {
		t.Error("AC should sort before GC in colex order")
	}
	aa := encode(t, "AA")
	ca := encode(t, "CA")
	if !aa.Less(ca) {
		t.Error("AA should sort before CA in colex order")
	}
}

func TestStartNodeEndNode(t *testing.T) {
	acg := encode(t, "ACG")
	if got, want := acg.StartNode(3).String(2), "AC"; got != want {
		t.Errorf("StartNode(ACG) = %q, want %q", got, want)
	}
	if got, want := acg.EndNode(3).String(2), "CG"; got != want {
		t.Errorf("EndNode(ACG) = %q, want %q", got, want)
	}
	if got, want := acg.EdgeLabel(3), G; got != want {
		t.Errorf("EdgeLabel(ACG) = %v, want %v", got, want)
	}
}

func TestNodeSuffix(t *testing.T) {
	acgt := encode(t, "ACGT")
	if got, want := acgt.NodeSuffix(4).String(2), "CG"; got != want {
		t.Errorf("NodeSuffix(ACGT) = %q, want %q", got, want)
	}
}

func TestShiftLeftOneSymbol(t *testing.T) {
	// "AC" is the seed node for k=3 (declaredLength 3, unshifted). One
	// shift produces the declaredLength-2 descendant "$AC"; a second
	// shift produces the declaredLength-1 descendant "$$A", which has
	// dropped the node's last real symbol C off the end of the k-window.
	ac := encode(t, "AC")
	d1 := ac.ShiftLeftOneSymbol()
	if got, want := d1.DummyString(2, 3), "$AC"; got != want {
		t.Errorf("DummyString after one shift = %q, want %q", got, want)
	}
	d2 := d1.ShiftLeftOneSymbol()
	if got, want := d2.DummyString(1, 3), "$$A"; got != want {
		t.Errorf("DummyString after two shifts = %q, want %q", got, want)
	}
}

func TestReverseComplement(t *testing.T) {
	acgt := encode(t, "ACGT")
	if got, want := acgt.ReverseComplement(4).String(4), "ACGT"; got != want {
		t.Errorf("ReverseComplement(ACGT) = %q, want %q (ACGT is its own reverse complement)", got, want)
	}
	acg := encode(t, "ACG")
	if got, want := acg.ReverseComplement(3).String(3), "CGT"; got != want {
		t.Errorf("ReverseComplement(ACG) = %q, want %q", got, want)
	}
}

func TestDummyStringSeed(t *testing.T) {
	// The seed record for start_node "AC" at k=3: declaredLength==k, no
	// shift has been applied, real content in slots [0,k-1), trailing '$'.
	ac := encode(t, "AC")
	if got, want := ac.DummyString(3, 3), "AC$"; got != want {
		t.Errorf("seed DummyString = %q, want %q", got, want)
	}
}

func TestDummyStringDescendants(t *testing.T) {
	ac := encode(t, "AC")
	d1 := ac.ShiftLeftOneSymbol() // declaredLength 2
	d2 := d1.ShiftLeftOneSymbol() // declaredLength 1
	if got, want := d1.DummyString(2, 3), "$AC"; got != want {
		t.Errorf("descendant0 DummyString = %q, want %q", got, want)
	}
	if got, want := d2.DummyString(1, 3), "$$A"; got != want {
		t.Errorf("descendant1 DummyString = %q, want %q", got, want)
	}
}

func TestStartNodeMasksDescendantAtFullWidth(t *testing.T) {
	// A descendant's real content lives in its top slots; StartNode must
	// be taken at the full edge width k to read it correctly. The seed
	// (declaredLength == k, never shifted) and its one-shift descendant
	// ("$AC") must mask to different start_node values at k=3: the seed
	// masks to node "AC", the descendant to node "$A".
	seed := encode(t, "AC")             // seed record for start_node "AC"
	d1 := seed.ShiftLeftOneSymbol()     // "$AC", declaredLength 2
	if got, want := seed.StartNode(3), seed; got != want {
		t.Errorf("seed.StartNode(3) = %d, want %d (unshifted, mask is a no-op)", got, want)
	}
	if got := d1.StartNode(3); got == seed.StartNode(3) {
		t.Errorf("descendant start_node(3) = %d must not equal seed start_node(3) = %d: they address different virtual nodes", got, seed.StartNode(3))
	}
}
