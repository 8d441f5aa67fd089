package eval

import "github.com/varbench/varbench/internal/vcf"

// testVariant builds a minimal record for matcher and evaluator tests.
func testVariant(chrom string, pos int64, ref string, alts ...string) *vcf.Variant {
	return &vcf.Variant{
		Chrom: chrom,
		Pos:   pos,
		Ref:   ref,
		Alts:  alts,
		Info:  map[string]interface{}{},
	}
}

// testSV builds a record flagged as a structural variant.
func testSV(chrom string, pos int64, ref string, alts ...string) *vcf.Variant {
	v := testVariant(chrom, pos, ref, alts...)
	v.Info["SVTYPE"] = "DEL"
	return v
}

// withGenotype sets the raw genotype string.
func withGenotype(v *vcf.Variant, gt string) *vcf.Variant {
	v.Genotype = gt
	return v
}

// mapReference is an in-memory Reference for rescue tests.
type mapReference map[string]string

func (m mapReference) Sequence(contig string, start, end int64) (string, error) {
	seq, ok := m[contig]
	if !ok || start < 1 || end < start || end > int64(len(seq)) {
		return "", errOutOfRange
	}
	return seq[start-1 : end], nil
}

func (m mapReference) ContigLength(contig string) (int64, bool) {
	seq, ok := m[contig]
	if !ok {
		return 0, false
	}
	return int64(len(seq)), true
}

type rangeError string

func (e rangeError) Error() string { return string(e) }

const errOutOfRange = rangeError("out of range")
