// Package planning turns a gap analysis into a remediation plan: ranked
// improvement priorities, a time-boxed timeline with milestones, and a
// candidate-wide confidence score. All weights are empirically tuned
// constants, kept named so tests can assert exact values.
package planning

import (
	"fmt"
	"sort"

	"github.com/jonathan/interview-planner/internal/types"
)

// Priority scoring weights: importance contribution plus status contribution
const (
	weightImportanceHigh   = 3
	weightImportanceMedium = 2
	weightImportanceLow    = 1
	weightStatusMissing    = 2
	weightStatusPartial    = 1

	// maxPriorities caps the improvement priority list
	maxPriorities = 5
)

// Remediation time estimates per gap status
const (
	estimatedTimePartial = "2-4 weeks"
	estimatedTimeMissing = "1-3 months"
)

// PriorityScore computes the remediation priority for one gap
func PriorityScore(gap types.SkillMatch) int {
	score := 0
	switch gap.Skill.Importance {
	case types.ImportanceHigh:
		score += weightImportanceHigh
	case types.ImportanceMedium:
		score += weightImportanceMedium
	default:
		score += weightImportanceLow
	}
	switch gap.Status {
	case types.StatusMissing:
		score += weightStatusMissing
	case types.StatusPartial:
		score += weightStatusPartial
	}
	return score
}

// ImprovementPriorities ranks gaps by priority score descending and returns
// the top entries, each annotated with an estimated remediation time and a
// category learning path. The sort is stable, so equal scores keep the
// analysis ordering.
func ImprovementPriorities(gaps []types.SkillMatch) []types.ImprovementPriority {
	priorities := make([]types.ImprovementPriority, 0, len(gaps))
	for _, gap := range gaps {
		estimated := estimatedTimeMissing
		if gap.Status == types.StatusPartial {
			estimated = estimatedTimePartial
		}
		priorities = append(priorities, types.ImprovementPriority{
			Skill:         gap.Skill.Name,
			PriorityScore: PriorityScore(gap),
			EstimatedTime: estimated,
			LearningPath:  LearningPathFor(gap.Skill.Name, gap.Skill.Category),
		})
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].PriorityScore > priorities[j].PriorityScore
	})

	if len(priorities) > maxPriorities {
		priorities = priorities[:maxPriorities]
	}
	return priorities
}

// learningPathTemplates holds the 3-step remediation template per category.
// %s is the skill name.
var learningPathTemplates = map[string][3]string{
	"programming": {"Learn %s fundamentals and syntax", "Complete a small %s project", "Contribute to a %s open-source project"},
	"frontend":    {"Learn the %s framework basics", "Build a %s application", "Optimize %s performance"},
	"backend":     {"Learn the %s framework", "Build an API service with %s", "Deploy a %s application"},
	"database":    {"Learn %s fundamentals", "Design a schema with %s", "Tune %s performance"},
	"cloud":       {"Learn %s core concepts", "Complete a %s certification", "Run a hands-on %s project"},
}

// genericLearningPath is the fallback template for unknown categories
var genericLearningPath = [3]string{"Learn %s fundamentals", "Practice %s in a project", "Explore advanced %s topics"}

// LearningPathFor returns the 3 ordered remediation steps for a skill
func LearningPathFor(skill, category string) []string {
	template, ok := learningPathTemplates[category]
	if !ok {
		template = genericLearningPath
	}
	path := make([]string, len(template))
	for i, step := range template {
		path[i] = fmt.Sprintf(step, skill)
	}
	return path
}
