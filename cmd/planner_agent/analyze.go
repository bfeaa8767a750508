package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/interview-planner/internal/engine"
	"github.com/jonathan/interview-planner/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a candidate's skill gaps against a job description",
	Long:  "Analyze extracts the job's skill requirements, matches them against the candidate's skills, and writes the gap analysis with its improvement plan as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile    string
	analyzeSkills     string
	analyzeSkillsFile string
	analyzeYears      int
	analyzeOutputFile string
	analyzeAPIKey     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Comma-separated candidate skills")
	analyzeCmd.Flags().StringVar(&analyzeSkillsFile, "skills-file", "", "Path to JSON array of candidate skills")
	analyzeCmd.Flags().IntVar(&analyzeYears, "years", 0, "Candidate years of experience")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	jobText, err := os.ReadFile(analyzeJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	skills, err := readSkills(analyzeSkillsFile, analyzeSkills)
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, cleanup, err := buildEngine(ctx, resolveAPIKey(analyzeAPIKey), 0, 0)
	if err != nil {
		return err
	}
	defer cleanup()

	match, err := eng.AnalyzeJobMatch(ctx, engine.AnalyzeInput{
		JobDescription:  string(jobText),
		Skills:          skills,
		ExperienceYears: analyzeYears,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintAnalysis(&match.Analysis)
		printer.PrintPlan(&match.Plan)
	}

	return writeJSON(analyzeOutputFile, match)
}
