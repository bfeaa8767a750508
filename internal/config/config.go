// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job    string `json:"job,omitempty"`    // Path to job description text file
	Skills string `json:"skills,omitempty"` // Path to candidate skills JSON file

	// Candidate info
	ExperienceYears int `json:"experience_years,omitempty"` // Candidate years of experience

	// Behavior
	APIKey             string `json:"api_key,omitempty"`              // Gemini API key
	ExtractTimeoutSec  int    `json:"extract_timeout_sec,omitempty"`  // Timeout for extraction calls
	GenerateTimeoutSec int    `json:"generate_timeout_sec,omitempty"` // Timeout for generation calls
	Verbose            bool   `json:"verbose,omitempty"`              // Print detailed output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.ExperienceYears < 0 {
		return fmt.Errorf("config error: 'experience_years' must be non-negative")
	}
	if c.ExtractTimeoutSec < 0 || c.GenerateTimeoutSec < 0 {
		return fmt.Errorf("config error: timeouts must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Skills != "" {
		if _, err := os.Stat(c.Skills); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.Skills)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Skills == "" {
		result.Skills = defaults.Skills
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ExperienceYears == 0 {
		result.ExperienceYears = defaults.ExperienceYears
	}
	if result.ExtractTimeoutSec == 0 {
		result.ExtractTimeoutSec = defaults.ExtractTimeoutSec
	}
	if result.GenerateTimeoutSec == 0 {
		result.GenerateTimeoutSec = defaults.GenerateTimeoutSec
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win

	return result
}

// ExtractTimeout returns the configured extraction timeout or zero
func (c *Config) ExtractTimeout() time.Duration {
	return time.Duration(c.ExtractTimeoutSec) * time.Second
}

// GenerateTimeout returns the configured generation timeout or zero
func (c *Config) GenerateTimeout() time.Duration {
	return time.Duration(c.GenerateTimeoutSec) * time.Second
}
