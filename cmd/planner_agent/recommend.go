package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-planner/internal/observability"
	"github.com/jonathan/interview-planner/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate learning recommendations from a prior analysis",
	Long:  "Recommend reads a gap analysis JSON file produced by 'analyze' and generates the course/project/practice recommendation bundle.",
	RunE:  runRecommend,
}

var (
	recommendInputFile  string
	recommendOutputFile string
	recommendAPIKey     string
	recommendVerbose    bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendInputFile, "in", "i", "", "Path to analysis JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	recommendCmd.Flags().StringVar(&recommendAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = recommendCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(recommendInputFile)
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}

	var match types.JobMatchAnalysis
	if err := json.Unmarshal(data, &match); err != nil {
		return fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	ctx := context.Background()
	eng, cleanup, err := buildEngine(ctx, resolveAPIKey(recommendAPIKey), 0, 0)
	if err != nil {
		return err
	}
	defer cleanup()

	bundle, err := eng.GenerateRecommendations(ctx, &match.Analysis)
	if err != nil {
		return fmt.Errorf("recommendation generation failed: %w", err)
	}

	if recommendVerbose {
		observability.NewPrinter(os.Stderr).PrintRecommendations(bundle)
	}

	return writeJSON(recommendOutputFile, bundle)
}
