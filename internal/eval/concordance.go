package eval

// GenotypeConcordance counts occurrences of (variant type, truth genotype,
// predicted genotype) triples over matched calls. Every combination starts
// at zero and is only ever incremented.
type GenotypeConcordance struct {
	counts [len(typeNames)][len(genotypeNames)][len(genotypeNames)]int
}

// NewGenotypeConcordance returns a zeroed concordance matrix.
func NewGenotypeConcordance() *GenotypeConcordance {
	return &GenotypeConcordance{}
}

// Get returns the count for one (type, truth, predicted) cell.
func (c *GenotypeConcordance) Get(t VariantType, truth, predicted Genotype) int {
	return c.counts[t][truth][predicted]
}

// Increment adds one occurrence to a cell.
func (c *GenotypeConcordance) Increment(t VariantType, truth, predicted Genotype) {
	c.counts[t][truth][predicted]++
}

// ConcordanceCell is one nonzero matrix entry.
type ConcordanceCell struct {
	Type      VariantType
	Truth     Genotype
	Predicted Genotype
	Count     int
}

// NonzeroCells returns all cells with a nonzero count, in fixed
// type/truth/predicted order.
func (c *GenotypeConcordance) NonzeroCells() []ConcordanceCell {
	var cells []ConcordanceCell
	for _, t := range AllVariantTypes {
		for _, truth := range AllGenotypes {
			for _, predicted := range AllGenotypes {
				if n := c.counts[t][truth][predicted]; n > 0 {
					cells = append(cells, ConcordanceCell{t, truth, predicted, n})
				}
			}
		}
	}
	return cells
}
