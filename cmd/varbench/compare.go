package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/varbench/varbench/internal/eval"
	"github.com/varbench/varbench/internal/fasta"
	"github.com/varbench/varbench/internal/output"
	"github.com/varbench/varbench/internal/store"
	"github.com/varbench/varbench/internal/vcf"
)

func newCompareCmd() *cobra.Command {
	var (
		truthPath     string
		predictedPath string
		knownFPPath   string
		referencePath string
		outputPath    string
		storePath     string
		runLabel      string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a predicted variant set against a truth set",
		Example: `  varbench compare --truth truth.vcf --predicted calls.vcf
  varbench compare --truth truth.vcf.gz --predicted calls.vcf.gz --reference ref.fa -o report.tsv
  varbench compare --truth truth.vcf --predicted calls.vcf --known-fp known_fp.vcf --store results.duckdb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer logger.Sync()

			return runCompare(logger, compareOptions{
				truthPath:     truthPath,
				predictedPath: predictedPath,
				knownFPPath:   knownFPPath,
				referencePath: referencePath,
				outputPath:    outputPath,
				storePath:     storePath,
				runLabel:      runLabel,
			})
		},
	}

	cmd.Flags().StringVar(&truthPath, "truth", "", "truth VCF file (required)")
	cmd.Flags().StringVar(&predictedPath, "predicted", "", "predicted VCF file (required)")
	cmd.Flags().StringVar(&knownFPPath, "known-fp", "", "VCF of previously known false positive sites")
	cmd.Flags().StringVar(&referencePath, "reference", "", "reference FASTA; enables indel rescue")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "report output file (default: stdout)")
	cmd.Flags().StringVar(&storePath, "store", "", "DuckDB database to append results to")
	cmd.Flags().StringVar(&runLabel, "run-label", "", "label stored with persisted results (default: timestamp)")
	cmd.Flags().Int("max-indel-length", eval.DefaultMaxIndelLength, "maximum allele length for rescue-eligible indels")
	cmd.Flags().Int("sv-breakpoint-distance", eval.DefaultMaxSvBreakpointDistance, "structural match search radius")
	cmd.Flags().Int("length-difference", eval.DefaultMaxVariantLengthDifference, "structural match length-gain tolerance")
	cmd.Flags().Int("rescue-window", eval.DefaultRescueWindowSize, "rescue window half-width")
	cmd.Flags().Int("workers", 0, "concurrent contig evaluations (0 = all CPUs)")

	cmd.MarkFlagRequired("truth")
	cmd.MarkFlagRequired("predicted")

	viper.BindPFlag("max-indel-length", cmd.Flags().Lookup("max-indel-length"))
	viper.BindPFlag("sv-breakpoint-distance", cmd.Flags().Lookup("sv-breakpoint-distance"))
	viper.BindPFlag("length-difference", cmd.Flags().Lookup("length-difference"))
	viper.BindPFlag("rescue-window", cmd.Flags().Lookup("rescue-window"))
	viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))

	return cmd
}

type compareOptions struct {
	truthPath     string
	predictedPath string
	knownFPPath   string
	referencePath string
	outputPath    string
	storePath     string
	runLabel      string
}

func runCompare(logger *zap.Logger, opts compareOptions) error {
	truth, err := readVariants(opts.truthPath)
	if err != nil {
		return fmt.Errorf("read truth set: %w", err)
	}
	predicted, err := readVariants(opts.predictedPath)
	if err != nil {
		return fmt.Errorf("read predicted set: %w", err)
	}

	var knownFP []*vcf.Variant
	if opts.knownFPPath != "" {
		knownFP, err = readVariants(opts.knownFPPath)
		if err != nil {
			return fmt.Errorf("read known false positives: %w", err)
		}
		if knownFP == nil {
			// An empty site list still counts as a supplied set.
			knownFP = []*vcf.Variant{}
		}
	}

	evalOpts := []eval.Option{
		eval.WithMaxIndelLength(viper.GetInt("max-indel-length")),
		eval.WithMaxSvBreakpointDistance(viper.GetInt("sv-breakpoint-distance")),
		eval.WithMaxVariantLengthDifference(viper.GetInt("length-difference")),
		eval.WithRescueWindowSize(viper.GetInt("rescue-window")),
		eval.WithWorkers(viper.GetInt("workers")),
	}

	if opts.referencePath != "" {
		ref, err := fasta.Load(opts.referencePath)
		if err != nil {
			return fmt.Errorf("load reference: %w", err)
		}
		logger.Info("loaded reference", zap.Int("contigs", ref.ContigCount()))
		evalOpts = append(evalOpts, eval.WithReference(ref))
	}

	logger.Info("evaluating",
		zap.Int("true_variants", len(truth)),
		zap.Int("predicted_variants", len(predicted)),
		zap.Int("known_false_positives", len(knownFP)))

	evaluator := eval.NewEvaluator(evalOpts...)
	evaluator.SetLogger(logger)
	results := evaluator.Evaluate(truth, predicted, knownFP)

	out := os.Stdout
	if opts.outputPath != "" {
		out, err = os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	writer := output.NewReportWriter(out)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	if err := writer.WriteAll(results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}

	if opts.storePath != "" {
		label := opts.runLabel
		if label == "" {
			label = time.Now().UTC().Format(time.RFC3339)
		}
		db, err := store.Open(opts.storePath)
		if err != nil {
			return fmt.Errorf("open results store: %w", err)
		}
		defer db.Close()
		if err := db.WriteResults(label, results); err != nil {
			return fmt.Errorf("persist results: %w", err)
		}
		logger.Info("persisted results", zap.String("store", opts.storePath), zap.String("run", label))
	}

	return nil
}

// readVariants reads a whole VCF file into memory. Evaluation is a batch
// computation; the full per-contig sets are held in memory by design.
func readVariants(path string) ([]*vcf.Variant, error) {
	parser, err := vcf.NewParser(path)
	if err != nil {
		return nil, err
	}
	defer parser.Close()
	return parser.ReadAll()
}
