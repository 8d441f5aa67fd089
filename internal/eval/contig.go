package eval

// ContigStats is the evaluation result for one contig.
//
// Partition invariants: every predicted position appears in exactly one of
// {TruePositives, FalsePositives} (incorrect predictions live in
// FalsePositives); every truth position appears in exactly one of
// {TruePositives, FalseNegatives, values of StructuralMatches keys},
// except entries later removed by rescue. The only permitted mutations
// after construction are the rescue step and the known-false-positive
// reconciliation step, in that order.
type ContigStats struct {
	Contig string

	TrueVariants      *PositionIndex
	PredictedVariants *PositionIndex

	TruePositives  *PositionIndex // matched predicted records, keyed by predicted position
	FalsePositives *PositionIndex // unmatched + incorrect predicted records
	FalseNegatives *PositionIndex // unmatched + incorrect truth records

	// StructuralMatches maps the truth position of each breakpoint-matched
	// structural variant to the predicted position it matched.
	StructuralMatches map[int64]int64

	// IncorrectPredictions holds loci where truth and predicted records
	// co-locate but disagree on type or alternates, keyed by position with
	// the predicted record's type.
	IncorrectPredictions map[int64]VariantType

	Concordance *GenotypeConcordance

	TrueVariantCounts      TypeCounts
	PredictedVariantCounts TypeCounts
	TruePositiveCounts     TypeCounts
	FalsePositiveCounts    TypeCounts
	FalseNegativeCounts    TypeCounts

	// Rescue results; nil until the rescue step has run.
	RescuedVariants      *PositionIndex
	RescuedVariantCounts *TypeCounts

	// Known-false-positive reconciliation results; nil unless a known
	// false positive set was supplied.
	KnownFalsePositives             *PositionIndex
	CorrectKnownFalsePositiveCounts *TypeCounts
	AllKnownFalsePositiveCounts     *TypeCounts
}

// evaluateContig runs the matching algorithm for one contig.
func (e *Evaluator) evaluateContig(contig string, truth, predicted *PositionIndex, knownFP *PositionIndex) *ContigStats {
	stats := &ContigStats{
		Contig:               contig,
		TrueVariants:         truth,
		PredictedVariants:    predicted,
		TruePositives:        EmptyPositionIndex(),
		FalsePositives:       EmptyPositionIndex(),
		FalseNegatives:       EmptyPositionIndex(),
		StructuralMatches:    make(map[int64]int64),
		IncorrectPredictions: make(map[int64]VariantType),
		Concordance:          NewGenotypeConcordance(),
	}

	// Exact-position pass over the truth/predicted intersection. A shared
	// locus is a true positive when the types agree and, for non-structural
	// types, the alternate lists are identical.
	for _, pos := range truth.Positions() {
		predictedVariant := predicted.Get(pos)
		if predictedVariant == nil {
			continue
		}
		truthVariant := truth.Get(pos)
		truthType := ClassifyVariant(truthVariant)
		if truthType == ClassifyVariant(predictedVariant) &&
			(truthType.IsStructuralVariant() || truthVariant.AltsEqual(predictedVariant)) {
			stats.TruePositives.Put(predictedVariant)
			stats.Concordance.Increment(truthType, GenotypeOf(truthVariant), GenotypeOf(predictedVariant))
		} else {
			stats.IncorrectPredictions[pos] = ClassifyVariant(predictedVariant)
		}
	}

	// Initial set differences.
	for _, pos := range predicted.Positions() {
		if !truth.Has(pos) {
			stats.FalsePositives.Put(predicted.Get(pos))
		}
	}
	for _, pos := range truth.Positions() {
		if !predicted.Has(pos) {
			stats.FalseNegatives.Put(truth.Get(pos))
		}
	}

	// Breakpoint pass: structural truth variants still unmatched may pair
	// with a nearby predicted call of compatible type and length. Runs
	// after the exact pass so incorrect predictions are settled first.
	for _, pos := range append([]int64(nil), stats.FalseNegatives.Positions()...) {
		truthVariant := truth.Get(pos)
		truthType := ClassifyVariant(truthVariant)
		if !truthType.IsStructuralVariant() {
			continue
		}
		match, ok := structuralMatch(truthVariant, predicted, e.maxSvBreakpointDistance, e.maxVariantLengthDifference)
		if !ok || !stats.FalsePositives.Has(match) {
			continue
		}
		matched := predicted.Get(match)
		stats.TruePositives.Put(matched)
		stats.FalsePositives.Delete(match)
		stats.FalseNegatives.Delete(pos)
		stats.StructuralMatches[pos] = match
		stats.Concordance.Increment(truthType, GenotypeOf(truthVariant), GenotypeOf(matched))
	}

	// An incorrect prediction is simultaneously a truth call not recovered
	// and a predicted call not correct.
	for pos := range stats.IncorrectPredictions {
		stats.FalsePositives.Put(predicted.Get(pos))
		stats.FalseNegatives.Put(truth.Get(pos))
	}

	stats.TrueVariantCounts = truth.CountByType()
	stats.PredictedVariantCounts = predicted.CountByType()
	stats.TruePositiveCounts = stats.TruePositives.CountByType()
	stats.FalsePositiveCounts = stats.FalsePositives.CountByType()
	stats.FalseNegativeCounts = stats.FalseNegatives.CountByType()

	if e.reference != nil {
		stats.rescue(e.reference, e.rescueWindowSize, e.maxIndelLength)
	}
	if knownFP != nil {
		stats.reconcileKnownFalsePositives(knownFP)
	}

	return stats
}

// reconcileKnownFalsePositives intersects a previously-known false
// positive site list with the predicted calls. A site is correct when the
// known record's reference bases equal the predicted record's, and known
// regardless. Purely additive; classification sets are untouched.
func (s *ContigStats) reconcileKnownFalsePositives(knownFP *PositionIndex) {
	correct := TypeCounts{}
	all := TypeCounts{}
	for _, pos := range knownFP.Positions() {
		predictedVariant := s.PredictedVariants.Get(pos)
		if predictedVariant == nil {
			continue
		}
		known := knownFP.Get(pos)
		knownType := ClassifyVariant(known)
		if known.Ref == predictedVariant.Ref {
			correct.Add(knownType, 1)
		}
		all.Add(knownType, 1)
	}
	s.KnownFalsePositives = knownFP
	s.CorrectKnownFalsePositiveCounts = &correct
	s.AllKnownFalsePositiveCounts = &all
}
