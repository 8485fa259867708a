package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/extraction"
	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from a résumé",
	Long:  "Convert a PDF or plain-text résumé to text and extract name, contact details, education, experience and skills as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to résumé file (.pdf, .txt, .md)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary to stderr")

	_ = extractCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	doc, err := readDocument(extractInputFile)
	if err != nil {
		return err
	}

	// Nothing is uploaded for a local extraction.
	svc := analysis.New(nil,
		analysis.WithLogger(log),
		analysis.WithExtractor(extraction.New(extraction.WithMaxLines(appConfig.MaxLines))),
		analysis.WithMaxInputBytes(appConfig.MaxInputBytes),
	)
	result, err := svc.Analyze(cmd.Context(), doc, analysis.AnalyzeOptions{})
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", doc.Filename, err)
	}

	if extractVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintProfile(&result.Profile)
	}
	return writeJSON(cmd.OutOrStdout(), extractOutputFile, result.Profile)
}
