// Package recommend produces the remediation bundle for a gap analysis:
// courses, projects, and structured practice. The primary generator calls
// the generative service under a strict schema contract; the rule-based
// fallback guarantees a non-empty, schema-valid bundle for any non-empty
// gap list.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/interview-planner/internal/llm"
	"github.com/jonathan/interview-planner/internal/prompts"
	"github.com/jonathan/interview-planner/internal/schemas"
	"github.com/jonathan/interview-planner/internal/types"
)

// Generator produces a recommendation bundle for one analysis result
type Generator interface {
	Generate(ctx context.Context, result *types.GapAnalysisResult) (*types.RecommendationBundle, error)
}

// LLMGenerator generates recommendations via the Gemini JSON contract
// and enforces the bundle schema on the response.
type LLMGenerator struct {
	client llm.Client
}

// NewLLMGenerator creates a generator backed by the given LLM client
func NewLLMGenerator(client llm.Client) *LLMGenerator {
	return &LLMGenerator{client: client}
}

// Generate prompts the model, validates the response against the bundle
// schema, and fills any missing item ids. Schema violations are reported
// as ParseError so the caller falls through to the rule-based generator.
func (g *LLMGenerator) Generate(ctx context.Context, result *types.GapAnalysisResult) (*types.RecommendationBundle, error) {
	prompt := buildRecommendationPrompt(result)

	response, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "recommendation generation failed", Cause: err}
	}

	jsonText := llm.ExtractJSONObject(response)
	if jsonText == "" {
		return nil, &ParseError{Message: "no JSON object in recommendation response"}
	}

	if err := schemas.ValidateRecommendationBundle(jsonText); err != nil {
		return nil, &ParseError{Message: "recommendation response violates schema", Cause: err}
	}

	var bundle types.RecommendationBundle
	if err := json.Unmarshal([]byte(jsonText), &bundle); err != nil {
		return nil, &ParseError{Message: "failed to parse recommendation response", Cause: err}
	}

	fillMissingIDs(&bundle)
	return &bundle, nil
}

// buildRecommendationPrompt renders the generation prompt from the analysis
func buildRecommendationPrompt(result *types.GapAnalysisResult) string {
	byPriority := map[string][]string{}
	for _, gap := range result.Gaps {
		byPriority[gap.Priority] = append(byPriority[gap.Priority], gap.Skill.Name)
	}
	strengths := make([]string, 0, len(result.Strengths))
	for _, s := range result.Strengths {
		strengths = append(strengths, s.Skill.Name)
	}

	template := prompts.MustGet("recommend.json", "generate-recommendations")
	return prompts.Format(template, map[string]string{
		"SkillMatch":      fmt.Sprintf("%.1f", result.SkillMatchPercentage),
		"ExperienceMatch": fmt.Sprintf("%.1f", result.ExperienceMatchPercentage),
		"OverallMatch":    fmt.Sprintf("%.1f", result.OverallMatch),
		"HighCount":       fmt.Sprintf("%d", len(byPriority[types.PriorityHigh])),
		"HighGaps":        strings.Join(byPriority[types.PriorityHigh], ", "),
		"MediumCount":     fmt.Sprintf("%d", len(byPriority[types.PriorityMedium])),
		"MediumGaps":      strings.Join(byPriority[types.PriorityMedium], ", "),
		"LowCount":        fmt.Sprintf("%d", len(byPriority[types.PriorityLow])),
		"LowGaps":         strings.Join(byPriority[types.PriorityLow], ", "),
		"StrengthCount":   fmt.Sprintf("%d", len(strengths)),
		"Strengths":       strings.Join(strengths, ", "),
	})
}

// fillMissingIDs assigns generated ids to items the model left without one
func fillMissingIDs(bundle *types.RecommendationBundle) {
	for i := range bundle.Courses {
		if bundle.Courses[i].ID == "" {
			bundle.Courses[i].ID = "course_" + uuid.NewString()
		}
	}
	for i := range bundle.Projects {
		if bundle.Projects[i].ID == "" {
			bundle.Projects[i].ID = "project_" + uuid.NewString()
		}
	}
	for i := range bundle.Practice {
		if bundle.Practice[i].ID == "" {
			bundle.Practice[i].ID = "practice_" + uuid.NewString()
		}
	}
}
