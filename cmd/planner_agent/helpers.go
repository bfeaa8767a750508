package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/interview-planner/internal/engine"
	"github.com/jonathan/interview-planner/internal/llm"
)

// resolveAPIKey prefers the flag over the GEMINI_API_KEY environment
// variable. An empty key is allowed: the engine then runs fully local.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// buildEngine constructs an Engine, with an LLM client when a key is set
func buildEngine(ctx context.Context, apiKey string, extractTimeout, generateTimeout time.Duration) (*engine.Engine, func(), error) {
	opts := engine.Options{
		ExtractTimeout:  extractTimeout,
		GenerateTimeout: generateTimeout,
	}
	cleanup := func() {}

	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		opts.Client = client
		cleanup = func() { _ = client.Close() }
	} else {
		fmt.Fprintln(os.Stderr, "Warning: no API key set; using local fallbacks only")
	}

	return engine.New(opts), cleanup, nil
}

// readSkills reads candidate skills from a JSON array file or a
// comma-separated flag value.
func readSkills(skillsFile, skillsFlag string) ([]string, error) {
	if skillsFile != "" {
		data, err := os.ReadFile(skillsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read skills file: %w", err)
		}
		var skills []string
		if err := json.Unmarshal(data, &skills); err != nil {
			return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
		}
		return skills, nil
	}

	if skillsFlag == "" {
		return nil, fmt.Errorf("candidate skills are required (use --skills or --skills-file)")
	}
	parts := strings.Split(skillsFlag, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills, nil
}

// writeJSON marshals v with indentation to a file, or stdout when path is empty
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
