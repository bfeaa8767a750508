// Package main provides the entry point for the interview planner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planner_agent",
	Short: "Skill gap analysis and recommendation engine",
	Long:  "Interview Planner analyzes a candidate's skills against a job description, ranks the gaps, and generates a time-boxed improvement plan with concrete learning recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
