// Package vcf provides VCF file parsing functionality.
package vcf

// Variant represents a single genomic variant from a VCF file.
type Variant struct {
	Chrom    string                 // Chromosome / contig name (e.g., "12", "chr12")
	Pos      int64                  // 1-based genomic position
	ID       string                 // Variant identifier (e.g., rs ID)
	Ref      string                 // Reference allele
	Alts     []string               // Alternate alleles, in VCF order
	Qual     float64                // Quality score
	Filter   string                 // Filter status (PASS or filter name)
	Info     map[string]interface{} // INFO field key-value pairs
	Genotype string                 // Raw GT value of the first sample (e.g., "0/1"), "" if absent
}

// FirstAlt returns the first alternate allele. Callers must only use this
// on variants known to carry at least one alternate.
func (v *Variant) FirstAlt() string {
	return v.Alts[0]
}

// HasSingleAlt returns true if the variant has exactly one alternate allele.
func (v *Variant) HasSingleAlt() bool {
	return len(v.Alts) == 1
}

// HasInfoKey returns true if the INFO field contains the given key.
func (v *Variant) HasInfoKey(key string) bool {
	_, ok := v.Info[key]
	return ok
}

// AltsEqual returns true if the alternate allele lists of both variants are
// identical, respecting order.
func (v *Variant) AltsEqual(o *Variant) bool {
	if len(v.Alts) != len(o.Alts) {
		return false
	}
	for i, alt := range v.Alts {
		if alt != o.Alts[i] {
			return false
		}
	}
	return true
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (v *Variant) NormalizeChrom() string {
	if len(v.Chrom) > 3 && v.Chrom[:3] == "chr" {
		return v.Chrom[3:]
	}
	return v.Chrom
}
