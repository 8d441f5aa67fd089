package eval

import (
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/varbench/varbench/internal/vcf"
)

// Default tunables.
const (
	DefaultMaxIndelLength             = 50
	DefaultMaxSvBreakpointDistance    = 100
	DefaultMaxVariantLengthDifference = 100
	DefaultRescueWindowSize           = 50
)

// Evaluator compares truth and predicted variant sets contig by contig.
type Evaluator struct {
	maxIndelLength             int
	maxSvBreakpointDistance    int
	maxVariantLengthDifference int
	rescueWindowSize           int
	reference                  Reference
	workers                    int
	logger                     *zap.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxIndelLength bounds the allele length of rescue-eligible indels.
func WithMaxIndelLength(n int) Option {
	return func(e *Evaluator) { e.maxIndelLength = n }
}

// WithMaxSvBreakpointDistance sets the structural match search radius.
func WithMaxSvBreakpointDistance(n int) Option {
	return func(e *Evaluator) { e.maxSvBreakpointDistance = n }
}

// WithMaxVariantLengthDifference sets the structural match length-gain tolerance.
func WithMaxVariantLengthDifference(n int) Option {
	return func(e *Evaluator) { e.maxVariantLengthDifference = n }
}

// WithRescueWindowSize sets the half-width of the rescue window.
func WithRescueWindowSize(n int) Option {
	return func(e *Evaluator) { e.rescueWindowSize = n }
}

// WithReference supplies a reference sequence and thereby enables the
// rescue step.
func WithReference(ref Reference) Option {
	return func(e *Evaluator) { e.reference = ref }
}

// WithWorkers sets the number of concurrent contig evaluations.
// Zero or negative means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Evaluator) { e.workers = n }
}

// NewEvaluator creates an evaluator with the given options.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		maxIndelLength:             DefaultMaxIndelLength,
		maxSvBreakpointDistance:    DefaultMaxSvBreakpointDistance,
		maxVariantLengthDifference: DefaultMaxVariantLengthDifference,
		rescueWindowSize:           DefaultRescueWindowSize,
		logger:                     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetLogger sets the logger for progress and warning messages.
func (e *Evaluator) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Evaluate partitions both input sets (and the optional known false
// positive set, which may be nil) by contig and evaluates each contig
// independently. Contigs are processed by a worker pool; per-contig
// evaluations share no mutable state, the reference is read-only.
func (e *Evaluator) Evaluate(trueVariants, predictedVariants, knownFalsePositives []*vcf.Variant) map[string]*ContigStats {
	truthByContig := GroupByContig(trueVariants)
	predictedByContig := GroupByContig(predictedVariants)
	knownByContig := GroupByContig(knownFalsePositives)
	hasKnown := knownFalsePositives != nil

	contigs := contigUnion(truthByContig, predictedByContig, knownByContig)

	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(contigs) && len(contigs) > 0 {
		workers = len(contigs)
	}

	type contigResult struct {
		contig string
		stats  *ContigStats
	}

	jobs := make(chan string, len(contigs))
	results := make(chan contigResult, len(contigs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for contig := range jobs {
				truth := NewPositionIndex(truthByContig[contig])
				predicted := NewPositionIndex(predictedByContig[contig])
				var knownFP *PositionIndex
				if hasKnown {
					knownFP = NewPositionIndex(knownByContig[contig])
				}
				stats := e.evaluateContig(contig, truth, predicted, knownFP)
				e.logger.Debug("evaluated contig",
					zap.String("contig", contig),
					zap.Int("true_variants", truth.Len()),
					zap.Int("predicted_variants", predicted.Len()),
					zap.Int("true_positives", stats.TruePositives.Len()))
				results <- contigResult{contig, stats}
			}
		}()
	}

	for _, contig := range contigs {
		jobs <- contig
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	all := make(map[string]*ContigStats, len(contigs))
	for r := range results {
		all[r.contig] = r.stats
	}
	return all
}

// contigUnion returns the sorted union of the contig names of all groups.
func contigUnion(groups ...map[string][]*vcf.Variant) []string {
	seen := make(map[string]struct{})
	var contigs []string
	for _, group := range groups {
		for contig := range group {
			if _, ok := seen[contig]; !ok {
				seen[contig] = struct{}{}
				contigs = append(contigs, contig)
			}
		}
	}
	sort.Strings(contigs)
	return contigs
}
