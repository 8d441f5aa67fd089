package eval

import "github.com/varbench/varbench/internal/vcf"

// Genotype categorizes the called allele combination at a locus.
type Genotype int

const (
	Het Genotype = iota
	HomRef
	HomVar
	NoCall
)

// AllGenotypes lists every genotype in a fixed order, for deterministic
// iteration over the concordance matrix.
var AllGenotypes = []Genotype{Het, HomRef, HomVar, NoCall}

var genotypeNames = [...]string{
	Het:    "HET",
	HomRef: "HOM_REF",
	HomVar: "HOM_VAR",
	NoCall: "NO_CALL",
}

func (g Genotype) String() string { return genotypeNames[g] }

// ParseGenotype derives the genotype category from a raw GT string of
// `/`- or `|`-delimited allele indices. Unparseable input degrades to
// NoCall rather than failing.
func ParseGenotype(raw string) Genotype {
	first := -1
	i := 0
	for i < len(raw) {
		// Scan one allele index; anything non-numeric (".", malformed) stops
		// the current token.
		start := i
		val := 0
		for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
			val = val*10 + int(raw[i]-'0')
			i++
		}
		if i == start {
			break
		}
		if first < 0 {
			first = val
		} else if first != val {
			return Het
		}
		if i < len(raw) && (raw[i] == '/' || raw[i] == '|') {
			i++
			continue
		}
		break
	}
	switch {
	case first < 0:
		return NoCall
	case first == 0:
		return HomRef
	default:
		return HomVar
	}
}

// GenotypeOf extracts and parses the genotype of a variant record.
// Records without a genotype field yield NoCall.
func GenotypeOf(v *vcf.Variant) Genotype {
	if v.Genotype == "" {
		return NoCall
	}
	return ParseGenotype(v.Genotype)
}
