// Package output provides evaluation report formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/varbench/varbench/internal/eval"
)

// ReportWriter writes per-contig evaluation summaries in tab-delimited
// format: one counts block per contig followed by the nonzero genotype
// concordance cells.
type ReportWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewReportWriter creates a new tab-delimited report writer.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Contig",
			"Type",
			"True_variants",
			"Predicted_variants",
			"True_positives",
			"False_positives",
			"False_negatives",
			"Incorrect_predictions",
			"Rescued",
			"Known_FP_all",
			"Known_FP_correct",
		},
	}
}

// WriteHeader writes the header line.
func (rw *ReportWriter) WriteHeader() error {
	_, err := rw.w.WriteString(strings.Join(rw.columns, "\t") + "\n")
	return err
}

// WriteAll writes every contig's summary in contig name order.
func (rw *ReportWriter) WriteAll(all map[string]*eval.ContigStats) error {
	contigs := make([]string, 0, len(all))
	for contig := range all {
		contigs = append(contigs, contig)
	}
	sort.Strings(contigs)

	for _, contig := range contigs {
		if err := rw.WriteContig(all[contig]); err != nil {
			return err
		}
	}
	return nil
}

// WriteContig writes the per-type count rows and concordance cells of one
// contig. Types with no activity in any column are skipped.
func (rw *ReportWriter) WriteContig(stats *eval.ContigStats) error {
	incorrectByType := eval.TypeCounts{}
	for _, t := range stats.IncorrectPredictions {
		incorrectByType.Add(t, 1)
	}

	for _, t := range eval.AllVariantTypes {
		row := []int{
			stats.TrueVariantCounts.Get(t),
			stats.PredictedVariantCounts.Get(t),
			stats.TruePositiveCounts.Get(t),
			stats.FalsePositiveCounts.Get(t),
			stats.FalseNegativeCounts.Get(t),
			incorrectByType.Get(t),
		}
		rescued := 0
		if stats.RescuedVariantCounts != nil {
			rescued = stats.RescuedVariantCounts.Get(t)
		}
		knownAll, knownCorrect := 0, 0
		if stats.AllKnownFalsePositiveCounts != nil {
			knownAll = stats.AllKnownFalsePositiveCounts.Get(t)
			knownCorrect = stats.CorrectKnownFalsePositiveCounts.Get(t)
		}

		active := rescued+knownAll+knownCorrect > 0
		for _, n := range row {
			if n > 0 {
				active = true
			}
		}
		if !active {
			continue
		}

		values := []string{
			stats.Contig,
			t.String(),
			fmt.Sprintf("%d", row[0]),
			fmt.Sprintf("%d", row[1]),
			fmt.Sprintf("%d", row[2]),
			fmt.Sprintf("%d", row[3]),
			fmt.Sprintf("%d", row[4]),
			fmt.Sprintf("%d", row[5]),
			fmt.Sprintf("%d", rescued),
			fmt.Sprintf("%d", knownAll),
			fmt.Sprintf("%d", knownCorrect),
		}
		if _, err := rw.w.WriteString(strings.Join(values, "\t") + "\n"); err != nil {
			return err
		}
	}

	for _, cell := range stats.Concordance.NonzeroCells() {
		line := fmt.Sprintf("#concordance\t%s\t%s\t%s\t%s\t%d\n",
			stats.Contig, cell.Type, cell.Truth, cell.Predicted, cell.Count)
		if _, err := rw.w.WriteString(line); err != nil {
			return err
		}
	}

	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (rw *ReportWriter) Flush() error {
	return rw.w.Flush()
}
