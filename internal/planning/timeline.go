package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/interview-planner/internal/types"
)

// Weeks allotted per gap by remediation priority
const (
	weeksPerHighPriorityGap   = 8
	weeksPerMediumPriorityGap = 4
)

// Timeline synthesizes the time-to-close estimate for all gaps. now is the
// planning anchor; inject a fixed clock in tests for deterministic output.
// Milestones are gaps ordered by priority score descending, each assigned
// a cumulative week offset.
func Timeline(gaps []types.SkillMatch, now time.Time) types.TimelineEstimate {
	highWeeks, mediumWeeks := 0, 0
	for _, gap := range gaps {
		switch gap.Priority {
		case types.PriorityHigh:
			highWeeks += weeksPerHighPriorityGap
		case types.PriorityMedium:
			mediumWeeks += weeksPerMediumPriorityGap
		}
	}
	totalWeeks := highWeeks + mediumWeeks

	completion := now.AddDate(0, 0, totalWeeks*7)

	return types.TimelineEstimate{
		TotalWeeks:          totalWeeks,
		HighPriorityWeeks:   highWeeks,
		MediumPriorityWeeks: mediumWeeks,
		EstimatedCompletion: completion.Format("2006-01-02"),
		Milestones:          milestones(gaps),
	}
}

// milestones assigns each gap a cumulative completion week, highest
// priority first.
func milestones(gaps []types.SkillMatch) []types.Milestone {
	ordered := make([]types.SkillMatch, len(gaps))
	copy(ordered, gaps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return PriorityScore(ordered[i]) > PriorityScore(ordered[j])
	})

	out := make([]types.Milestone, 0, len(ordered))
	week := 0
	for _, gap := range ordered {
		switch gap.Priority {
		case types.PriorityHigh:
			week += weeksPerHighPriorityGap
		default:
			week += weeksPerMediumPriorityGap
		}
		out = append(out, types.Milestone{
			Skill:       gap.Skill.Name,
			Week:        week,
			Description: fmt.Sprintf("Reach working proficiency in %s", gap.Skill.Name),
			Priority:    gap.Priority,
		})
	}
	return out
}
