package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/interview-planner/internal/llm"
	"github.com/jonathan/interview-planner/internal/prompts"
	"github.com/jonathan/interview-planner/internal/types"
)

// DetailedAnalyzer produces the narrative match report. Like the bundle
// generator it degrades to a canned local report on any service failure.
type DetailedAnalyzer struct {
	client  llm.Client
	timeout time.Duration
}

// NewDetailedAnalyzer creates the narrative report generator.
// client may be nil, in which case only the fallback report is produced.
func NewDetailedAnalyzer(client llm.Client, timeout time.Duration) *DetailedAnalyzer {
	return &DetailedAnalyzer{client: client, timeout: timeout}
}

// Analyze generates the narrative report for one analysis. Never fails.
func (d *DetailedAnalyzer) Analyze(ctx context.Context, jobText string, result *types.GapAnalysisResult) *types.DetailedAnalysis {
	if d.client == nil {
		return fallbackDetailedAnalysis(result)
	}

	callCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	report, err := d.generate(callCtx, jobText, result)
	if err != nil {
		return fallbackDetailedAnalysis(result)
	}
	return report
}

func (d *DetailedAnalyzer) generate(ctx context.Context, jobText string, result *types.GapAnalysisResult) (*types.DetailedAnalysis, error) {
	gapJSON, err := json.Marshal(map[string]any{
		"gaps":      result.Gaps,
		"strengths": result.Strengths,
	})
	if err != nil {
		return nil, &ParseError{Message: "failed to encode gap analysis", Cause: err}
	}

	skills := make([]string, 0, len(result.Strengths))
	for _, s := range result.Strengths {
		skills = append(skills, s.Skill.Name)
	}

	template := prompts.MustGet("analysis.json", "detailed-analysis")
	prompt := prompts.Format(template, map[string]string{
		"JobText":         jobText,
		"UserSkills":      strings.Join(skills, ", "),
		"ExperienceYears": fmt.Sprintf("%d", result.ExperienceYears),
		"GapAnalysis":     string(gapJSON),
	})

	response, err := d.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{Message: "detailed analysis failed", Cause: err}
	}

	jsonText := llm.ExtractJSONObject(response)
	if jsonText == "" {
		return nil, &ParseError{Message: "no JSON object in analysis response"}
	}

	var report types.DetailedAnalysis
	if err := json.Unmarshal([]byte(jsonText), &report); err != nil {
		return nil, &ParseError{Message: "failed to parse analysis response", Cause: err}
	}
	return &report, nil
}

// fallbackDetailedAnalysis builds a canned narrative from the numeric result
func fallbackDetailedAnalysis(result *types.GapAnalysisResult) *types.DetailedAnalysis {
	competencies := make([]string, 0, len(result.Strengths))
	for _, s := range result.Strengths {
		competencies = append(competencies, s.Skill.Name)
	}
	if len(competencies) == 0 {
		competencies = []string{"technical foundations", "problem solving"}
	}

	mainGaps := make([]string, 0, len(result.MissingSkills))
	mainGaps = append(mainGaps, result.MissingSkills...)
	if len(mainGaps) == 0 {
		mainGaps = []string{"no major gaps identified"}
	}

	return &types.DetailedAnalysis{
		CoreCompetencies:  competencies,
		MainGaps:          mainGaps,
		ShortTermGoals:    []string{"Learn the highest-priority missing skills", "Apply them in small projects"},
		MediumTermGoals:   []string{"Deepen partially-covered skills", "Build portfolio evidence"},
		LongTermGoals:     []string{"Meet the full role profile", "Grow toward senior scope"},
		RiskAssessment:    "Continued learning and hands-on practice are required to close the identified gaps.",
		MarketPositioning: "Position toward roles emphasizing the candidate's existing strengths while the gaps close.",
	}
}
