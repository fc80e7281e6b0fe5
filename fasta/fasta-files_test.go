package fasta

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func TestToUpperAndN(t *testing.T) {
	cases := map[byte]byte{
		'a': 'A', 'C': 'C', 'g': 'G', 'T': 'T',
		'n': 'N', 'R': 'N', 'y': 'N',
	}
	for in, want := range cases {
		if got := ToUpperAndN(in); got != want {
			t.Errorf("ToUpperAndN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseFastaSingleContig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "one.fa", ">chr1 some description\nACGTacgt\nNNACGT\n")

	fasta := ParseFasta(path, nil)
	seq, ok := fasta["chr1"]
	if !ok {
		t.Fatalf("contig %q not found, got %v", "chr1", fasta)
	}
	if got, want := string(seq), "ACGTACGTNNACGT"; got != want {
		t.Errorf("sequence = %q, want %q", got, want)
	}
}

func TestParseFastaMultiContig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "two.fa", ">a\nACGT\n>b\nTTTT\n\n>c\nGGGG\n")

	fasta := ParseFasta(path, nil)
	if got, want := string(fasta["a"]), "ACGT"; got != want {
		t.Errorf("contig a = %q, want %q", got, want)
	}
	if got, want := string(fasta["b"]), "TTTT"; got != want {
		t.Errorf("contig b = %q, want %q", got, want)
	}
	if got, want := string(fasta["c"]), "GGGG"; got != want {
		t.Errorf("contig c = %q, want %q", got, want)
	}
}

func TestParseFai(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ref.fa.fai", "chr1\t248956422\t6\t60\t61\nchr2\t242193529\t253404903\t60\t61\n")

	fai := ParseFai(path)
	ref, ok := fai["chr1"]
	if !ok {
		t.Fatal("chr1 entry not found")
	}
	if ref.Length != 248956422 || ref.Offset != 6 || ref.LineBases != 60 || ref.LineWidth != 61 {
		t.Errorf("chr1 = %+v, unexpected values", ref)
	}
	if _, ok := fai["chr2"]; !ok {
		t.Error("chr2 entry not found")
	}
}
