package planning

import (
	"testing"

	"github.com/jonathan/interview-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gap(name, importance, status, priority string) types.SkillMatch {
	return types.SkillMatch{
		Skill:    types.RequiredSkill{Name: name, Importance: importance, Category: "programming"},
		Status:   status,
		Priority: priority,
	}
}

func TestPriorityScore(t *testing.T) {
	tests := []struct {
		name     string
		gap      types.SkillMatch
		expected int
	}{
		{"high importance missing", gap("Go", types.ImportanceHigh, types.StatusMissing, types.PriorityHigh), 5},
		{"high importance partial", gap("Go", types.ImportanceHigh, types.StatusPartial, types.PriorityMedium), 4},
		{"medium importance missing", gap("Go", types.ImportanceMedium, types.StatusMissing, types.PriorityMedium), 4},
		{"medium importance partial", gap("Go", types.ImportanceMedium, types.StatusPartial, types.PriorityLow), 3},
		{"low importance missing", gap("Go", types.ImportanceLow, types.StatusMissing, types.PriorityMedium), 3},
		{"low importance partial", gap("Go", types.ImportanceLow, types.StatusPartial, types.PriorityLow), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PriorityScore(tt.gap))
		})
	}
}

func TestImprovementPriorities_RankedDescending(t *testing.T) {
	gaps := []types.SkillMatch{
		gap("Redis", types.ImportanceLow, types.StatusPartial, types.PriorityLow),
		gap("Kubernetes", types.ImportanceHigh, types.StatusMissing, types.PriorityHigh),
		gap("React", types.ImportanceMedium, types.StatusPartial, types.PriorityLow),
	}

	priorities := ImprovementPriorities(gaps)

	require.Len(t, priorities, 3)
	assert.Equal(t, "Kubernetes", priorities[0].Skill)
	assert.Equal(t, 5, priorities[0].PriorityScore)
	assert.Equal(t, "React", priorities[1].Skill)
	assert.Equal(t, "Redis", priorities[2].Skill)
	for i := 1; i < len(priorities); i++ {
		assert.GreaterOrEqual(t, priorities[i-1].PriorityScore, priorities[i].PriorityScore)
	}
}

func TestImprovementPriorities_CappedAtFive(t *testing.T) {
	var gaps []types.SkillMatch
	for _, name := range []string{"Go", "React", "MySQL", "AWS", "Docker", "Kafka", "Spark"} {
		gaps = append(gaps, gap(name, types.ImportanceHigh, types.StatusMissing, types.PriorityHigh))
	}

	priorities := ImprovementPriorities(gaps)

	require.Len(t, priorities, maxPriorities)
	// Stable sort keeps input order among equal scores
	assert.Equal(t, "Go", priorities[0].Skill)
	assert.Equal(t, "Docker", priorities[4].Skill)
}

func TestImprovementPriorities_EstimatedTimeByStatus(t *testing.T) {
	gaps := []types.SkillMatch{
		gap("Go", types.ImportanceHigh, types.StatusMissing, types.PriorityHigh),
		gap("React", types.ImportanceHigh, types.StatusPartial, types.PriorityMedium),
	}

	priorities := ImprovementPriorities(gaps)

	require.Len(t, priorities, 2)
	assert.Equal(t, estimatedTimeMissing, priorities[0].EstimatedTime)
	assert.Equal(t, estimatedTimePartial, priorities[1].EstimatedTime)
}

func TestImprovementPriorities_Empty(t *testing.T) {
	assert.Empty(t, ImprovementPriorities(nil))
}

func TestLearningPathFor(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		path := LearningPathFor("Kubernetes", "cloud")
		require.Len(t, path, 3)
		assert.Equal(t, "Learn Kubernetes core concepts", path[0])
		assert.Equal(t, "Complete a Kubernetes certification", path[1])
		assert.Equal(t, "Run a hands-on Kubernetes project", path[2])
	})

	t.Run("unknown category falls back to generic", func(t *testing.T) {
		path := LearningPathFor("Figma", "design")
		require.Len(t, path, 3)
		assert.Equal(t, "Learn Figma fundamentals", path[0])
		assert.Equal(t, "Practice Figma in a project", path[1])
		assert.Equal(t, "Explore advanced Figma topics", path[2])
	})
}
