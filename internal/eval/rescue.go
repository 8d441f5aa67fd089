package eval

import (
	"sort"
	"strings"

	"github.com/varbench/varbench/internal/vcf"
)

// Reference serves read-only reference subsequences. Start and end are
// 1-based inclusive genomic coordinates.
type Reference interface {
	Sequence(contig string, start, end int64) (string, error)
	ContigLength(contig string) (int64, bool)
}

// rescueDelta is the outcome of one successful window rescue, computed in
// full before any counter is touched so a failed attempt leaves the stats
// untouched.
type rescueDelta struct {
	newTruePositives     []*vcf.Variant // truth records leaving FalseNegatives
	removeFalsePositives []*vcf.Variant // predicted records leaving FalsePositives
}

// rescue re-examines non-structural false negatives for window-based
// equivalence: two call sets that spell the same local haplotype once
// applied to the reference are the same edit in different clothes. Each
// successful window moves its truth records out of FalseNegatives and its
// predicted records out of FalsePositives, with count deltas applied as
// one update.
func (s *ContigStats) rescue(ref Reference, windowSize, maxIndelLength int) {
	seeds := append([]int64(nil), s.FalseNegatives.Positions()...)
	rescued := EmptyPositionIndex()
	for _, pos := range seeds {
		// An earlier window may have already rescued this seed.
		if !s.FalseNegatives.Has(pos) {
			continue
		}
		seed := s.FalseNegatives.Get(pos)
		if ClassifyVariant(seed).IsStructuralVariant() {
			continue
		}
		delta, ok := s.attemptRescue(ref, seed, windowSize, maxIndelLength)
		if !ok {
			continue
		}
		for _, truthVariant := range delta.newTruePositives {
			t := ClassifyVariant(truthVariant)
			s.FalseNegatives.Delete(truthVariant.Pos)
			s.FalseNegativeCounts.Add(t, -1)
			s.TruePositiveCounts.Add(t, 1)
		}
		for _, predictedVariant := range delta.removeFalsePositives {
			t := ClassifyVariant(predictedVariant)
			s.FalsePositives.Delete(predictedVariant.Pos)
			s.FalsePositiveCounts.Add(t, -1)
			rescued.Put(predictedVariant)
		}
	}
	counts := rescued.CountByType()
	s.RescuedVariants = rescued
	s.RescuedVariantCounts = &counts
}

// attemptRescue builds the truth and predicted windows around a seed and
// tests them for sequence equivalence against the reference.
func (s *ContigStats) attemptRescue(ref Reference, seed *vcf.Variant, windowSize, maxIndelLength int) (rescueDelta, bool) {
	contigLen, ok := ref.ContigLength(seed.Chrom)
	if !ok {
		return rescueDelta{}, false
	}

	lo := seed.Pos - int64(windowSize)
	if lo < 1 {
		lo = 1
	}
	hi := seed.Pos + int64(windowSize)
	if hi > contigLen {
		hi = contigLen
	}

	truthWindow := windowVariants(s.FalseNegatives, lo, hi, maxIndelLength)
	predictedWindow := windowVariants(s.FalsePositives, lo, hi, maxIndelLength)
	if len(truthWindow) == 0 || len(predictedWindow) == 0 {
		return rescueDelta{}, false
	}

	// The reference slice must cover the rightmost edit end. An edit
	// running past the contig cannot match the reference anyway.
	end := hi
	for _, v := range append(append([]*vcf.Variant(nil), truthWindow...), predictedWindow...) {
		if e := v.Pos + int64(len(v.Ref)) - 1; e > end {
			end = e
		}
	}
	if end > contigLen {
		return rescueDelta{}, false
	}
	refSeq, err := ref.Sequence(seed.Chrom, lo, end)
	if err != nil {
		return rescueDelta{}, false
	}

	truthSeq, ok := applyEdits(refSeq, lo, truthWindow)
	if !ok {
		return rescueDelta{}, false
	}
	predictedSeq, ok := applyEdits(refSeq, lo, predictedWindow)
	if !ok {
		return rescueDelta{}, false
	}
	if truthSeq != predictedSeq {
		return rescueDelta{}, false
	}

	return rescueDelta{
		newTruePositives:     truthWindow,
		removeFalsePositives: predictedWindow,
	}, true
}

// windowVariants collects the rescue-eligible records of an index within
// [lo, hi]: non-structural, single-alternate, and with both alleles no
// longer than maxIndelLength.
func windowVariants(idx *PositionIndex, lo, hi int64, maxIndelLength int) []*vcf.Variant {
	var variants []*vcf.Variant
	for _, pos := range idx.Range(lo, hi) {
		v := idx.Get(pos)
		if ClassifyVariant(v).IsStructuralVariant() {
			continue
		}
		if !v.HasSingleAlt() {
			return nil
		}
		if len(v.Ref) > maxIndelLength || len(v.FirstAlt()) > maxIndelLength {
			return nil
		}
		variants = append(variants, v)
	}
	return variants
}

// applyEdits replaces each variant's reference span with its first
// alternate inside a reference slice starting at spanStart (1-based).
// Fails when an edit disagrees with the reference bases, overlaps the
// previous edit, or runs past the slice.
func applyEdits(refSeq string, spanStart int64, variants []*vcf.Variant) (string, bool) {
	edits := append([]*vcf.Variant(nil), variants...)
	sort.Slice(edits, func(i, j int) bool { return edits[i].Pos < edits[j].Pos })

	var b strings.Builder
	cursor := int64(0) // 0-based offset into refSeq
	for _, v := range edits {
		offset := v.Pos - spanStart
		if offset < cursor {
			return "", false
		}
		refEnd := offset + int64(len(v.Ref))
		if refEnd > int64(len(refSeq)) {
			return "", false
		}
		if refSeq[offset:refEnd] != v.Ref {
			return "", false
		}
		b.WriteString(refSeq[cursor:offset])
		b.WriteString(v.FirstAlt())
		cursor = refEnd
	}
	b.WriteString(refSeq[cursor:])
	return b.String(), true
}
