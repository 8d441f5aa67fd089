// Package fasta loads reference sequences from FASTA files.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reference holds reference sequences indexed by contig name.
type Reference struct {
	sequences map[string]string
}

// Load reads a FASTA file (plain or gzipped) into memory. Contigs are
// keyed by the first whitespace-delimited token of their header line.
func Load(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return Parse(reader)
}

// Parse reads FASTA content from a reader.
func Parse(reader io.Reader) (*Reference, error) {
	ref := &Reference{sequences: make(map[string]string)}

	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long sequence lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var currentID string
	var currentSeq strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, ">") {
			if currentID != "" && currentSeq.Len() > 0 {
				ref.sequences[currentID] = currentSeq.String()
			}
			currentID = parseHeader(line)
			currentSeq.Reset()
		} else {
			currentSeq.WriteString(strings.TrimSpace(line))
		}
	}

	if currentID != "" && currentSeq.Len() > 0 {
		ref.sequences[currentID] = currentSeq.String()
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan FASTA: %w", err)
	}

	return ref, nil
}

// parseHeader extracts the contig name from a FASTA header line.
func parseHeader(header string) string {
	header = strings.TrimPrefix(header, ">")
	if idx := strings.IndexAny(header, " \t"); idx != -1 {
		return header[:idx]
	}
	return header
}

// Sequence returns the subsequence [start, end] (1-based, inclusive) of a
// contig. Unknown contigs and out-of-range coordinates are errors.
func (r *Reference) Sequence(contig string, start, end int64) (string, error) {
	seq, ok := r.sequences[contig]
	if !ok {
		return "", fmt.Errorf("contig %q not in reference", contig)
	}
	if start < 1 || end < start || end > int64(len(seq)) {
		return "", fmt.Errorf("range %d-%d out of bounds for contig %q (length %d)",
			start, end, contig, len(seq))
	}
	return seq[start-1 : end], nil
}

// ContigLength returns the length of a contig and whether it is present.
func (r *Reference) ContigLength(contig string) (int64, bool) {
	seq, ok := r.sequences[contig]
	if !ok {
		return 0, false
	}
	return int64(len(seq)), true
}

// ContigCount returns the number of loaded contigs.
func (r *Reference) ContigCount() int {
	return len(r.sequences)
}

// HasContig checks if a contig is present in the reference.
func (r *Reference) HasContig(contig string) bool {
	_, ok := r.sequences[contig]
	return ok
}
