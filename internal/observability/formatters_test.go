package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/interview-planner/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAnalysis(&types.GapAnalysisResult{
		SkillMatchPercentage:      50.0,
		ExperienceMatchPercentage: 90.0,
		OverallMatch:              70.0,
		ConfidenceScore:           80.0,
		Strengths: []types.SkillMatch{
			{Skill: types.RequiredSkill{Name: "Python"}, Status: types.StatusStrong},
		},
		Gaps: []types.SkillMatch{
			{Skill: types.RequiredSkill{Name: "Docker"}, Status: types.StatusMissing, Priority: types.PriorityMedium},
			{Skill: types.RequiredSkill{Name: "React"}, Status: types.StatusPartial, SimilarWith: "vue"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Gap Analysis")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "+ Python")
	assert.Contains(t, out, "- Docker")
	assert.Contains(t, out, "partial via vue")
}

func TestPrintAnalysis_NilResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	var strengths []types.SkillMatch
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		strengths = append(strengths, types.SkillMatch{Skill: types.RequiredSkill{Name: name}})
	}
	printer.PrintAnalysis(&types.GapAnalysisResult{Strengths: strengths})

	assert.Contains(t, buf.String(), "and 2 more")
}

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintPlan(&types.ImprovementPlan{
		Priorities: []types.ImprovementPriority{
			{Skill: "Kubernetes", PriorityScore: 5, EstimatedTime: "1-3 months"},
		},
		Timeline: types.TimelineEstimate{TotalWeeks: 8, EstimatedCompletion: "2026-03-02"},
	})

	out := buf.String()
	assert.Contains(t, out, "Improvement Plan")
	assert.Contains(t, out, "Kubernetes")
	assert.Contains(t, out, "2026-03-02")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRecommendations(&types.RecommendationBundle{
		Courses: []types.Course{{Name: "Go Basics", TargetSkill: "Go"}},
		Practice: []types.PracticeItem{
			{ID: "practice_coding", Type: "coding practice"},
		},
		Timeline: types.RecommendationTimeline{EstimatedWeeks: 12},
	})

	out := buf.String()
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "Go Basics")
	assert.Contains(t, out, "12 weeks")
}
