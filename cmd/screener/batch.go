package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/export"
	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every résumé in a directory",
	Long: "Analyze all résumé files in a directory concurrently. One failing document does not stop the others; " +
		"results are written as JSON and optionally as an XLSX spreadsheet.",
	RunE: runBatch,
}

var (
	batchDir            string
	batchJobFile        string
	batchAssessmentFile string
	batchWorkers        int
	batchOutputFile     string
	batchXLSXFile       string
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of résumé files")
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job requirement file (enables scoring)")
	batchCmd.Flags().StringVarP(&batchAssessmentFile, "assessment", "a", "", "Path to assessment applied to every candidate")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent documents (default from config)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	batchCmd.Flags().StringVar(&batchXLSXFile, "xlsx", "", "Also write results to this XLSX file")

	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	opts, err := loadAnalyzeOptions(batchJobFile, batchAssessmentFile)
	if err != nil {
		return err
	}
	docs, err := readDir(batchDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no documents found in %s", batchDir)
	}

	cfg := *appConfig
	if batchWorkers > 0 {
		cfg.Workers = batchWorkers
	}
	svc, err := newService(ctx, &cfg)
	if err != nil {
		return err
	}

	log.Info("batch started", zap.Int("documents", len(docs)), zap.Int("workers", cfg.Workers))
	results := svc.Batch(ctx, docs, opts)

	if batchXLSXFile != "" {
		if err := writeXLSX(batchXLSXFile, results); err != nil {
			return err
		}
	}

	p := observability.NewPrinter(cmd.ErrOrStderr())
	p.PrintBatchSummary(summaryRows(results))
	if opts.Job != nil {
		p.PrintRanking(ranking.RankBatch(results))
	}
	return writeJSON(cmd.OutOrStdout(), batchOutputFile, results)
}

// readDir loads the regular, non-hidden files of dir in name order.
func readDir(dir string) ([]analysis.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var docs []analysis.Document
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		doc, err := readDocument(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func writeXLSX(path string, results []analysis.BatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteBatchXLSX(f, results); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func summaryRows(results []analysis.BatchResult) []observability.BatchRow {
	rows := make([]observability.BatchRow, 0, len(results))
	for _, r := range results {
		row := observability.BatchRow{Filename: r.Filename, Error: r.Error}
		if r.Analysis != nil {
			row.Name = r.Analysis.Profile.Name
			if r.Analysis.Score != nil {
				overall := r.Analysis.Score.OverallScore
				row.Score = &overall
			}
		}
		rows = append(rows, row)
	}
	return rows
}
