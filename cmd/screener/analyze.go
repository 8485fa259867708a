package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Store, extract and optionally score one résumé",
	Long: "Run the full pipeline on one résumé: upload the original to the configured blob store, " +
		"extract a profile and, when a job requirement is given, score it.",
	RunE: runAnalyze,
}

var (
	analyzeInputFile      string
	analyzeJobFile        string
	analyzeAssessmentFile string
	analyzeOutputFile     string
	analyzeVerbose        bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to résumé file")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job requirement file (enables scoring)")
	analyzeCmd.Flags().StringVarP(&analyzeAssessmentFile, "assessment", "a", "", "Path to assessed skill levels, seniority and cultural fit")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a summary to stderr")

	_ = analyzeCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	opts, err := loadAnalyzeOptions(analyzeJobFile, analyzeAssessmentFile)
	if err != nil {
		return err
	}
	doc, err := readDocument(analyzeInputFile)
	if err != nil {
		return err
	}

	svc, err := newService(ctx, appConfig)
	if err != nil {
		return err
	}
	result, err := svc.Analyze(ctx, doc, opts)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", doc.Filename, err)
	}

	if analyzeVerbose {
		p := observability.NewPrinter(cmd.ErrOrStderr())
		p.PrintProfile(&result.Profile)
		p.PrintScore(result.Score)
	}
	return writeJSON(cmd.OutOrStdout(), analyzeOutputFile, result)
}

func loadAnalyzeOptions(jobPath, assessmentPath string) (analysis.AnalyzeOptions, error) {
	job, err := loadJob(jobPath)
	if err != nil {
		return analysis.AnalyzeOptions{}, err
	}
	assessment, err := loadCandidate(assessmentPath)
	if err != nil {
		return analysis.AnalyzeOptions{}, err
	}
	return analysis.AnalyzeOptions{Job: job, Assessment: assessment}, nil
}
