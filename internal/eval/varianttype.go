// Package eval implements truth-vs-predicted variant call comparison:
// per-contig classification into true/false positives and negatives,
// genotype concordance, breakpoint-tolerant structural matching and
// reference-guided indel rescue.
package eval

import "github.com/varbench/varbench/internal/vcf"

// VariantType classifies a variant record into one of eight categories.
type VariantType int

const (
	SNP VariantType = iota
	IndelInsertion
	IndelDeletion
	IndelInversion
	IndelOther
	SVInsertion
	SVDeletion
	SVOther
)

// AllVariantTypes lists every type in a fixed order, for deterministic
// iteration over count tables.
var AllVariantTypes = []VariantType{
	SNP,
	IndelInsertion,
	IndelDeletion,
	IndelInversion,
	IndelOther,
	SVInsertion,
	SVDeletion,
	SVOther,
}

// svTypeKey is the INFO key that marks a record as a structural variant.
const svTypeKey = "SVTYPE"

// facets holds the fixed boolean properties of a variant type.
type facets struct {
	snp       bool
	indel     bool
	sv        bool
	insertion bool
	deletion  bool
	inversion bool
	other     bool
}

var typeFacets = [...]facets{
	SNP:            {snp: true},
	IndelInsertion: {indel: true, insertion: true},
	IndelDeletion:  {indel: true, deletion: true},
	IndelInversion: {indel: true, inversion: true},
	IndelOther:     {indel: true, other: true},
	SVInsertion:    {sv: true, insertion: true},
	SVDeletion:     {sv: true, deletion: true},
	SVOther:        {sv: true, other: true},
}

var typeNames = [...]string{
	SNP:            "SNP",
	IndelInsertion: "INDEL_INSERTION",
	IndelDeletion:  "INDEL_DELETION",
	IndelInversion: "INDEL_INVERSION",
	IndelOther:     "INDEL_OTHER",
	SVInsertion:    "SV_INSERTION",
	SVDeletion:     "SV_DELETION",
	SVOther:        "SV_OTHER",
}

func (t VariantType) String() string { return typeNames[t] }

// IsSNP returns true for single-nucleotide polymorphisms.
func (t VariantType) IsSNP() bool { return typeFacets[t].snp }

// IsIndel returns true for non-structural insertions, deletions,
// inversions and other non-SNP variants.
func (t VariantType) IsIndel() bool { return typeFacets[t].indel }

// IsStructuralVariant returns true for SVTYPE-flagged variants.
func (t VariantType) IsStructuralVariant() bool { return typeFacets[t].sv }

// IsInsertion returns true for insertions of either scale.
func (t VariantType) IsInsertion() bool { return typeFacets[t].insertion }

// IsDeletion returns true for deletions of either scale.
func (t VariantType) IsDeletion() bool { return typeFacets[t].deletion }

// IsInversion returns true for indel inversions.
func (t VariantType) IsInversion() bool { return typeFacets[t].inversion }

// IsOther returns true for variants that fit no more specific category.
func (t VariantType) IsOther() bool { return typeFacets[t].other }

// ClassifyVariant derives the VariantType of a record. It is a total
// function: every well-formed record (non-empty alternate list) maps to
// exactly one type.
//
// Priority: SNP shape first, then the SVTYPE marker, then indel shape.
func ClassifyVariant(v *vcf.Variant) VariantType {
	if isSNP(v) {
		return SNP
	}
	if v.HasInfoKey(svTypeKey) {
		if !v.HasSingleAlt() {
			return SVOther
		}
		switch alt := v.FirstAlt(); {
		case len(alt) < len(v.Ref):
			return SVDeletion
		case len(alt) > len(v.Ref):
			return SVInsertion
		default:
			return SVOther
		}
	}
	if !v.HasSingleAlt() {
		return IndelOther
	}
	switch alt := v.FirstAlt(); {
	case len(alt) < len(v.Ref):
		return IndelDeletion
	case len(alt) > len(v.Ref):
		return IndelInsertion
	case isReverse(v.Ref, alt):
		return IndelInversion
	default:
		return IndelOther
	}
}

// isSNP reports whether the reference and every alternate are single bases.
func isSNP(v *vcf.Variant) bool {
	if len(v.Ref) != 1 {
		return false
	}
	for _, alt := range v.Alts {
		if len(alt) != 1 {
			return false
		}
	}
	return true
}

// isReverse reports whether alt is ref reversed. Both strings must have
// equal length; callers guarantee that.
func isReverse(ref, alt string) bool {
	n := len(ref)
	for i := 0; i < n; i++ {
		if ref[i] != alt[n-i-1] {
			return false
		}
	}
	return true
}
