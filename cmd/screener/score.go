package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/jonathan/candidate-screener/internal/scoring"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against a job requirement",
	Long:  "Compute the weighted score breakdown of a candidate document (JSON or YAML) against a job requirement document (JSON or YAML).",
	RunE:  runScore,
}

var (
	scoreCandidateFile string
	scoreJobFile       string
	scoreOutputFile    string
	scoreVerbose       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidateFile, "candidate", "c", "", "Path to candidate file")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job requirement file")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a summary to stderr")

	_ = scoreCmd.MarkFlagRequired("candidate")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	candidate, err := loadCandidate(scoreCandidateFile)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJobFile)
	if err != nil {
		return err
	}

	score, err := scoring.Score(*candidate, *job)
	if err != nil {
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	if scoreVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintScore(score)
	}
	return writeJSON(cmd.OutOrStdout(), scoreOutputFile, score)
}
