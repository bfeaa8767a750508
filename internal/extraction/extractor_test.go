package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/interview-planner/internal/llm"
	"github.com/jonathan/interview-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) Close() error { return nil }

func TestTaxonomyExtractor_SubstringScan(t *testing.T) {
	extractor := NewTaxonomyExtractor(nil)

	reqs, err := extractor.Extract(context.Background(), "We need Python and Docker experience plus React")
	require.NoError(t, err)

	names := make([]string, 0, len(reqs.RequiredSkills))
	for _, s := range reqs.RequiredSkills {
		names = append(names, s.Name)
		assert.Equal(t, types.ImportanceMedium, s.Importance)
		assert.NotEmpty(t, s.Category)
	}
	assert.Equal(t, []string{"Python", "React", "Docker"}, names)
	assert.Empty(t, reqs.PreferredSkills)

	require.Len(t, reqs.ExperienceRequirements, 1)
	assert.Equal(t, 3, reqs.ExperienceRequirements[0].Years)
}

func TestTaxonomyExtractor_SplitsPreferredBeyondLimit(t *testing.T) {
	extractor := NewTaxonomyExtractor(nil)

	reqs, err := extractor.Extract(context.Background(), "Python Java JavaScript C++ Go Rust TypeScript")
	require.NoError(t, err)

	assert.Len(t, reqs.RequiredSkills, fallbackMaxRequired)
	assert.Equal(t, []types.RequiredSkill{
		{Name: "Rust", Importance: types.ImportanceMedium, Category: "programming"},
		{Name: "TypeScript", Importance: types.ImportanceMedium, Category: "programming"},
	}, reqs.PreferredSkills)
}

func TestTaxonomyExtractor_NoHits(t *testing.T) {
	extractor := NewTaxonomyExtractor(nil)

	reqs, err := extractor.Extract(context.Background(), "We are hiring a barista")
	require.NoError(t, err)
	assert.Empty(t, reqs.RequiredSkills)
	assert.Empty(t, reqs.PreferredSkills)
}

func TestTaxonomyExtractor_Deterministic(t *testing.T) {
	extractor := NewTaxonomyExtractor(nil)
	jobText := "Kubernetes and Python and MySQL"

	first, err := extractor.Extract(context.Background(), jobText)
	require.NoError(t, err)
	second, err := extractor.Extract(context.Background(), jobText)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLLMExtractor_Success(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{
				"required_skills": [
					{"skill": "golang", "importance": "high", "category": "programming"},
					{"skill": "Kubernetes", "importance": "medium", "category": "cloud"}
				],
				"preferred_skills": [{"skill": "Terraform", "importance": "low", "category": "cloud"}],
				"experience_requirements": [{"type": "technical", "years": 4, "description": "backend experience"}]
			}`, nil
		},
	}

	extractor := NewLLMExtractor(mockClient)
	reqs, err := extractor.Extract(context.Background(), "Senior Go engineer wanted")
	require.NoError(t, err)

	require.Len(t, reqs.RequiredSkills, 2)
	// Skill names are normalized to canonical form
	assert.Equal(t, "Go", reqs.RequiredSkills[0].Name)
	assert.Equal(t, types.ImportanceHigh, reqs.RequiredSkills[0].Importance)
	assert.Equal(t, "Kubernetes", reqs.RequiredSkills[1].Name)
	require.Len(t, reqs.ExperienceRequirements, 1)
	assert.Equal(t, 4, reqs.ExperienceRequirements[0].Years)
}

func TestLLMExtractor_ToleratesMarkdownFences(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "```json\n{\"required_skills\": [{\"skill\": \"Python\", \"importance\": \"high\", \"category\": \"programming\"}]}\n```", nil
		},
	}

	extractor := NewLLMExtractor(mockClient)
	reqs, err := extractor.Extract(context.Background(), "Python role")
	require.NoError(t, err)
	require.Len(t, reqs.RequiredSkills, 1)
	assert.Equal(t, "Python", reqs.RequiredSkills[0].Name)
}

func TestLLMExtractor_MalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no JSON object", "sorry, I cannot help with that"},
		{"broken JSON", `{"required_skills": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockLLMClient{
				GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
					return tt.response, nil
				},
			}
			extractor := NewLLMExtractor(mockClient)
			_, err := extractor.Extract(context.Background(), "any job")

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestLLMExtractor_ServiceError(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("rate limited")
		},
	}

	extractor := NewLLMExtractor(mockClient)
	_, err := extractor.Extract(context.Background(), "any job")

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
}

func TestResilient_FallsBackOnPrimaryFailure(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("timeout")
		},
	}

	resilient := NewResilient(mockClient, nil, 0)
	reqs, err := resilient.Extract(context.Background(), "Looking for Python and Docker skills")
	require.NoError(t, err)

	// Fallback result comes from the taxonomy scan
	require.NotEmpty(t, reqs.RequiredSkills)
	for _, s := range reqs.RequiredSkills {
		assert.Equal(t, types.ImportanceMedium, s.Importance)
	}
}

func TestResilient_UsesPrimaryWhenHealthy(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"required_skills": [{"skill": "Scala", "importance": "high", "category": "programming"}]}`, nil
		},
	}

	resilient := NewResilient(mockClient, nil, 0)
	reqs, err := resilient.Extract(context.Background(), "Scala engineer")
	require.NoError(t, err)

	require.Len(t, reqs.RequiredSkills, 1)
	assert.Equal(t, "Scala", reqs.RequiredSkills[0].Name)
	assert.Equal(t, types.ImportanceHigh, reqs.RequiredSkills[0].Importance)
}

func TestResilient_NilClientUsesFallbackOnly(t *testing.T) {
	resilient := NewResilient(nil, nil, 0)
	reqs, err := resilient.Extract(context.Background(), "Python developer")
	require.NoError(t, err)
	require.Len(t, reqs.RequiredSkills, 1)
	assert.Equal(t, "Python", reqs.RequiredSkills[0].Name)
}
