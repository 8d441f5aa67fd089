// Package store persists evaluation results in DuckDB so runs can be
// compared and queried after the fact. Append-only.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/varbench/varbench/internal/eval"
)

// Store manages a DuckDB connection for evaluation results.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create results directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS contig_summary (
		run VARCHAR,
		contig VARCHAR,
		variant_type VARCHAR,
		true_variants INTEGER,
		predicted_variants INTEGER,
		true_positives INTEGER,
		false_positives INTEGER,
		false_negatives INTEGER,
		incorrect_predictions INTEGER,
		rescued INTEGER,
		known_fp_all INTEGER,
		known_fp_correct INTEGER
	)`); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS genotype_concordance (
		run VARCHAR,
		contig VARCHAR,
		variant_type VARCHAR,
		truth_genotype VARCHAR,
		predicted_genotype VARCHAR,
		occurrences INTEGER
	)`)
	return err
}

// WriteResults appends one row per (contig, variant type) with activity
// and the nonzero concordance cells, tagged with a run label.
func (s *Store) WriteResults(run string, all map[string]*eval.ContigStats) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	summary, err := tx.Prepare(`INSERT INTO contig_summary VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare summary insert: %w", err)
	}
	defer summary.Close()

	concordance, err := tx.Prepare(`INSERT INTO genotype_concordance VALUES
		(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare concordance insert: %w", err)
	}
	defer concordance.Close()

	contigs := make([]string, 0, len(all))
	for contig := range all {
		contigs = append(contigs, contig)
	}
	sort.Strings(contigs)

	for _, contig := range contigs {
		stats := all[contig]

		incorrectByType := eval.TypeCounts{}
		for _, t := range stats.IncorrectPredictions {
			incorrectByType.Add(t, 1)
		}

		for _, t := range eval.AllVariantTypes {
			rescued := 0
			if stats.RescuedVariantCounts != nil {
				rescued = stats.RescuedVariantCounts.Get(t)
			}
			knownAll, knownCorrect := 0, 0
			if stats.AllKnownFalsePositiveCounts != nil {
				knownAll = stats.AllKnownFalsePositiveCounts.Get(t)
				knownCorrect = stats.CorrectKnownFalsePositiveCounts.Get(t)
			}

			total := stats.TrueVariantCounts.Get(t) + stats.PredictedVariantCounts.Get(t) +
				stats.TruePositiveCounts.Get(t) + stats.FalsePositiveCounts.Get(t) +
				stats.FalseNegativeCounts.Get(t) + incorrectByType.Get(t) +
				rescued + knownAll + knownCorrect
			if total == 0 {
				continue
			}

			if _, err := summary.Exec(
				run, contig, t.String(),
				stats.TrueVariantCounts.Get(t),
				stats.PredictedVariantCounts.Get(t),
				stats.TruePositiveCounts.Get(t),
				stats.FalsePositiveCounts.Get(t),
				stats.FalseNegativeCounts.Get(t),
				incorrectByType.Get(t),
				rescued, knownAll, knownCorrect,
			); err != nil {
				return fmt.Errorf("insert summary row: %w", err)
			}
		}

		for _, cell := range stats.Concordance.NonzeroCells() {
			if _, err := concordance.Exec(
				run, contig, cell.Type.String(),
				cell.Truth.String(), cell.Predicted.String(), cell.Count,
			); err != nil {
				return fmt.Errorf("insert concordance row: %w", err)
			}
		}
	}

	return tx.Commit()
}
