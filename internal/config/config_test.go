package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"job": "job.txt",
		"skills": "skills.json",
		"experience_years": 4,
		"extract_timeout_sec": 10,
		"generate_timeout_sec": 20,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "job.txt", cfg.Job)
	assert.Equal(t, "skills.json", cfg.Skills)
	assert.Equal(t, 4, cfg.ExperienceYears)
	assert.Equal(t, 10, cfg.ExtractTimeoutSec)
	assert.Equal(t, 20, cfg.GenerateTimeoutSec)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"job": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("zero config is valid", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("negative experience years", func(t *testing.T) {
		cfg := &Config{ExperienceYears: -1}
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative timeout", func(t *testing.T) {
		cfg := &Config{ExtractTimeoutSec: -5}
		assert.Error(t, cfg.Validate())
	})

	t.Run("job file must exist when set", func(t *testing.T) {
		cfg := &Config{Job: filepath.Join(t.TempDir(), "absent.txt")}
		assert.Error(t, cfg.Validate())
	})

	t.Run("existing job file passes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "job.txt")
		require.NoError(t, os.WriteFile(path, []byte("engineer wanted"), 0o644))

		cfg := &Config{Job: path}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("skills file must exist when set", func(t *testing.T) {
		cfg := &Config{Skills: filepath.Join(t.TempDir(), "absent.json")}
		assert.Error(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Job: "explicit.txt", ExperienceYears: 2}
	defaults := Config{
		Job:                "default.txt",
		Skills:             "default_skills.json",
		APIKey:             "default-key",
		ExperienceYears:    5,
		ExtractTimeoutSec:  30,
		GenerateTimeoutSec: 45,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit.txt", merged.Job)
	assert.Equal(t, "default_skills.json", merged.Skills)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, 2, merged.ExperienceYears)
	assert.Equal(t, 30, merged.ExtractTimeoutSec)
	assert.Equal(t, 45, merged.GenerateTimeoutSec)
}

func TestTimeoutHelpers(t *testing.T) {
	cfg := &Config{ExtractTimeoutSec: 15, GenerateTimeoutSec: 60}

	assert.Equal(t, 15*time.Second, cfg.ExtractTimeout())
	assert.Equal(t, 60*time.Second, cfg.GenerateTimeout())

	zero := &Config{}
	assert.Equal(t, time.Duration(0), zero.ExtractTimeout())
}
