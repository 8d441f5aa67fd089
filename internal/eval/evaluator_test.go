package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varbench/varbench/internal/vcf"
)

func TestEvaluateSingleSNP(t *testing.T) {
	truth := []*vcf.Variant{withGenotype(testVariant("1", 100, "A", "T"), "0/1")}
	predicted := []*vcf.Variant{withGenotype(testVariant("1", 100, "A", "T"), "0/1")}

	results := NewEvaluator().Evaluate(truth, predicted, nil)
	require.Len(t, results, 1)

	stats := results["1"]
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TruePositiveCounts.Get(SNP))
	assert.Equal(t, 0, stats.FalsePositives.Len())
	assert.Equal(t, 0, stats.FalseNegatives.Len())
	assert.Equal(t, 1, stats.Concordance.Get(SNP, Het, Het))
}

func TestEvaluatePartitionsByContig(t *testing.T) {
	truth := []*vcf.Variant{
		testVariant("1", 100, "A", "T"),
		testVariant("2", 100, "A", "T"),
		testVariant("X", 50, "C", "G"),
	}
	predicted := []*vcf.Variant{
		testVariant("1", 100, "A", "T"),
		testVariant("3", 100, "A", "T"),
	}

	results := NewEvaluator().Evaluate(truth, predicted, nil)
	require.Len(t, results, 4)

	assert.Equal(t, 1, results["1"].TruePositives.Len())
	assert.Equal(t, 1, results["2"].FalseNegatives.Len())
	assert.Equal(t, 1, results["X"].FalseNegatives.Len())
	assert.Equal(t, 1, results["3"].FalsePositives.Len())

	// Positions on different contigs never match each other.
	assert.Equal(t, 0, results["3"].TruePositives.Len())
}

func TestEvaluateIdempotent(t *testing.T) {
	truth := []*vcf.Variant{
		withGenotype(testVariant("1", 100, "A", "T"), "0/1"),
		withGenotype(testVariant("1", 200, "AT", "A"), "1/1"),
		testVariant("1", 300, "A", "G"),
	}
	predicted := []*vcf.Variant{
		withGenotype(testVariant("1", 100, "A", "T"), "1/1"),
		testVariant("1", 300, "A", "C"), // allele mismatch
		testVariant("1", 400, "C", "G"),
	}

	e := NewEvaluator()
	first := e.Evaluate(truth, predicted, nil)
	second := e.Evaluate(truth, predicted, nil)

	require.Len(t, second, len(first))
	for contig, a := range first {
		b := second[contig]
		require.NotNil(t, b)
		assert.Equal(t, a.TruePositiveCounts, b.TruePositiveCounts)
		assert.Equal(t, a.FalsePositiveCounts, b.FalsePositiveCounts)
		assert.Equal(t, a.FalseNegativeCounts, b.FalseNegativeCounts)
		assert.Equal(t, a.IncorrectPredictions, b.IncorrectPredictions)
		assert.Equal(t, a.TruePositives.Positions(), b.TruePositives.Positions())
		assert.Equal(t, a.FalsePositives.Positions(), b.FalsePositives.Positions())
		assert.Equal(t, a.FalseNegatives.Positions(), b.FalseNegatives.Positions())
	}
}

func TestEvaluateEveryRecordLandsInOneBucket(t *testing.T) {
	truth := []*vcf.Variant{
		testVariant("1", 100, "A", "T"),
		testVariant("1", 200, "AT", "A"),
		testVariant("1", 300, "A", "G"),
		testVariant("1", 500, "C", "G"),
	}
	predicted := []*vcf.Variant{
		testVariant("1", 100, "A", "T"),
		testVariant("1", 300, "A", "C"), // incorrect at a shared locus
		testVariant("1", 400, "C", "G"),
	}

	stats := NewEvaluator().Evaluate(truth, predicted, nil)["1"]
	require.NotNil(t, stats)

	for _, pos := range stats.PredictedVariants.Positions() {
		inTP := stats.TruePositives.Has(pos)
		inFP := stats.FalsePositives.Has(pos)
		assert.NotEqual(t, inTP, inFP, "predicted position %d must be in exactly one of TP/FP", pos)
	}
	for _, pos := range stats.TrueVariants.Positions() {
		inTP := stats.TruePositives.Has(pos)
		inFN := stats.FalseNegatives.Has(pos)
		assert.NotEqual(t, inTP, inFN, "truth position %d must be in exactly one of TP/FN", pos)
	}

	// Incorrect predictions are the overlap between FP and FN.
	assert.Len(t, stats.IncorrectPredictions, 1)
	assert.True(t, stats.FalsePositives.Has(300))
	assert.True(t, stats.FalseNegatives.Has(300))
}

func TestEvaluateSingleWorkerMatchesParallel(t *testing.T) {
	var truth, predicted []*vcf.Variant
	contigs := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	for _, contig := range contigs {
		truth = append(truth,
			testVariant(contig, 100, "A", "T"),
			testVariant(contig, 200, "AT", "A"))
		predicted = append(predicted,
			testVariant(contig, 100, "A", "T"),
			testVariant(contig, 250, "C", "G"))
	}

	serial := NewEvaluator(WithWorkers(1)).Evaluate(truth, predicted, nil)
	parallel := NewEvaluator(WithWorkers(8)).Evaluate(truth, predicted, nil)

	require.Len(t, parallel, len(serial))
	for contig, a := range serial {
		b := parallel[contig]
		require.NotNil(t, b, "missing contig %s in parallel result", contig)
		assert.Equal(t, a.TruePositiveCounts, b.TruePositiveCounts, "contig %s", contig)
		assert.Equal(t, a.FalsePositiveCounts, b.FalsePositiveCounts, "contig %s", contig)
		assert.Equal(t, a.FalseNegativeCounts, b.FalseNegativeCounts, "contig %s", contig)
	}
}

func TestEvaluateEmptyInputs(t *testing.T) {
	results := NewEvaluator().Evaluate(nil, nil, nil)
	assert.Empty(t, results)
}
