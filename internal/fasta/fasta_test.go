package fasta

import (
	"strings"
	"testing"
)

const testFasta = `>1 assembled
GGGCAAAAA
CTG
>2
ACGT
`

func testReference(t *testing.T) *Reference {
	t.Helper()
	ref, err := Parse(strings.NewReader(testFasta))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return ref
}

func TestParseContigs(t *testing.T) {
	ref := testReference(t)

	if got := ref.ContigCount(); got != 2 {
		t.Fatalf("ContigCount() = %d, want 2", got)
	}
	if !ref.HasContig("1") || !ref.HasContig("2") {
		t.Error("expected contigs 1 and 2")
	}
	if ref.HasContig("3") {
		t.Error("HasContig(3) = true")
	}

	// Header description after the first token is not part of the name.
	if ref.HasContig("1 assembled") {
		t.Error("contig name should stop at the first whitespace")
	}
}

func TestSequenceJoinsWrappedLines(t *testing.T) {
	ref := testReference(t)

	got, err := ref.Sequence("1", 1, 12)
	if err != nil {
		t.Fatalf("Sequence: %v", err)
	}
	if got != "GGGCAAAAACTG" {
		t.Errorf("Sequence(1, 1, 12) = %q, want %q", got, "GGGCAAAAACTG")
	}
}

func TestSequenceSubrange(t *testing.T) {
	ref := testReference(t)

	tests := []struct {
		name       string
		contig     string
		start, end int64
		want       string
	}{
		{"single base", "1", 4, 4, "C"},
		{"inner span", "1", 4, 9, "CAAAAA"},
		{"across line break", "1", 9, 11, "ACT"},
		{"whole short contig", "2", 1, 4, "ACGT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ref.Sequence(tt.contig, tt.start, tt.end)
			if err != nil {
				t.Fatalf("Sequence: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sequence(%s, %d, %d) = %q, want %q", tt.contig, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSequenceErrors(t *testing.T) {
	ref := testReference(t)

	tests := []struct {
		name       string
		contig     string
		start, end int64
	}{
		{"unknown contig", "99", 1, 4},
		{"start below one", "1", 0, 4},
		{"end before start", "1", 5, 4},
		{"end past contig", "1", 1, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ref.Sequence(tt.contig, tt.start, tt.end); err == nil {
				t.Errorf("Sequence(%s, %d, %d) did not return an error", tt.contig, tt.start, tt.end)
			}
		})
	}
}

func TestContigLength(t *testing.T) {
	ref := testReference(t)

	if n, ok := ref.ContigLength("1"); !ok || n != 12 {
		t.Errorf("ContigLength(1) = %d, %v; want 12, true", n, ok)
	}
	if _, ok := ref.ContigLength("99"); ok {
		t.Error("ContigLength(99) should report absence")
	}
}
