package planning

import (
	"testing"
	"time"

	"github.com/jonathan/interview-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_WeekTotals(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	gaps := []types.SkillMatch{
		gap("Kubernetes", types.ImportanceHigh, types.StatusMissing, types.PriorityHigh),
		gap("Go", types.ImportanceHigh, types.StatusMissing, types.PriorityHigh),
		gap("React", types.ImportanceMedium, types.StatusMissing, types.PriorityMedium),
	}

	estimate := Timeline(gaps, now)

	assert.Equal(t, 16, estimate.HighPriorityWeeks)
	assert.Equal(t, 4, estimate.MediumPriorityWeeks)
	assert.Equal(t, 20, estimate.TotalWeeks)
	// 20 weeks from 2026-01-05
	assert.Equal(t, "2026-05-25", estimate.EstimatedCompletion)
}

func TestTimeline_LowPriorityGapsAddNoWeeks(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	gaps := []types.SkillMatch{
		gap("Redis", types.ImportanceLow, types.StatusPartial, types.PriorityLow),
	}

	estimate := Timeline(gaps, now)

	assert.Equal(t, 0, estimate.TotalWeeks)
	assert.Equal(t, "2026-01-05", estimate.EstimatedCompletion)
	// Still one milestone per gap
	require.Len(t, estimate.Milestones, 1)
}

func TestTimeline_MilestonesCumulative(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	gaps := []types.SkillMatch{
		gap("React", types.ImportanceMedium, types.StatusPartial, types.PriorityLow),
		gap("Kubernetes", types.ImportanceHigh, types.StatusMissing, types.PriorityHigh),
		gap("MySQL", types.ImportanceMedium, types.StatusMissing, types.PriorityMedium),
	}

	estimate := Timeline(gaps, now)

	require.Len(t, estimate.Milestones, 3)
	// Ordered by priority score descending with cumulative week offsets
	assert.Equal(t, "Kubernetes", estimate.Milestones[0].Skill)
	assert.Equal(t, 8, estimate.Milestones[0].Week)
	assert.Equal(t, "MySQL", estimate.Milestones[1].Skill)
	assert.Equal(t, 12, estimate.Milestones[1].Week)
	assert.Equal(t, "React", estimate.Milestones[2].Skill)
	assert.Equal(t, 16, estimate.Milestones[2].Week)

	for _, m := range estimate.Milestones {
		assert.Contains(t, m.Description, m.Skill)
	}
}

func TestTimeline_NoGaps(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	estimate := Timeline(nil, now)

	assert.Equal(t, 0, estimate.TotalWeeks)
	assert.Equal(t, "2026-01-05", estimate.EstimatedCompletion)
	assert.Empty(t, estimate.Milestones)
}
