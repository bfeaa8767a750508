package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/interview-planner/internal/config"
	"github.com/jonathan/interview-planner/internal/engine"
	"github.com/jonathan/interview-planner/internal/observability"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full pipeline: analysis, narrative report, and recommendations",
	Long:  "Report runs gap analysis and planning locally, then generates the narrative match report and the recommendation bundle, and writes the combined result as JSON.",
	RunE:  runReport,
}

var (
	reportConfigFile string
	reportJobFile    string
	reportSkills     string
	reportSkillsFile string
	reportYears      int
	reportOutputFile string
	reportAPIKey     string
	reportVerbose    bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportConfigFile, "config", "c", "", "Path to JSON config file with defaults")
	reportCmd.Flags().StringVarP(&reportJobFile, "job", "j", "", "Path to job description text file")
	reportCmd.Flags().StringVar(&reportSkills, "skills", "", "Comma-separated candidate skills")
	reportCmd.Flags().StringVar(&reportSkillsFile, "skills-file", "", "Path to JSON array of candidate skills")
	reportCmd.Flags().IntVar(&reportYears, "years", 0, "Candidate years of experience")
	reportCmd.Flags().StringVarP(&reportOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	reportCmd.Flags().StringVar(&reportAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	reportCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print formatted summaries to stderr")

	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	flags := config.Config{
		Job:             reportJobFile,
		Skills:          reportSkillsFile,
		ExperienceYears: reportYears,
		APIKey:          reportAPIKey,
	}

	cfg := flags
	if reportConfigFile != "" {
		fileCfg, err := config.LoadConfig(reportConfigFile)
		if err != nil {
			return err
		}
		cfg = flags.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("a job description file is required (use --job or config)")
	}

	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	skills, err := readSkills(cfg.Skills, reportSkills)
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, cleanup, err := buildEngine(ctx, resolveAPIKey(cfg.APIKey), cfg.ExtractTimeout(), cfg.GenerateTimeout())
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := eng.FullReport(ctx, engine.AnalyzeInput{
		JobDescription:  string(jobText),
		Skills:          skills,
		ExperienceYears: cfg.ExperienceYears,
	})
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	if reportVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintAnalysis(&report.Analysis)
		printer.PrintPlan(&report.Plan)
		printer.PrintRecommendations(&report.Recommendations)
	}

	return writeJSON(reportOutputFile, report)
}
