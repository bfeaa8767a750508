package recommend

import (
	"context"
	"strings"

	"github.com/jonathan/interview-planner/internal/types"
)

// lowMatchThreshold is the skill match percentage below which the fallback
// adds a broad foundation project.
const lowMatchThreshold = 50.0

// fallbackEstimatedWeeks is the default plan length for the fallback bundle
const fallbackEstimatedWeeks = 12

// RuleBased is the deterministic local fallback generator. High-value gaps
// trigger hand-authored recommendations; generic practice items are always
// appended, so the bundle is never empty for a non-empty gap list.
type RuleBased struct{}

// NewRuleBased creates the fallback generator
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Generate builds the canned bundle. It is a pure function of the analysis
// result and never returns an error.
func (g *RuleBased) Generate(_ context.Context, result *types.GapAnalysisResult) (*types.RecommendationBundle, error) {
	bundle := &types.RecommendationBundle{
		Courses:  []types.Course{},
		Projects: []types.Project{},
		Practice: []types.PracticeItem{},
		LearningPath: types.LearningPath{
			ShortTerm:  []string{"Master core programming fundamentals", "Learn key algorithms"},
			MediumTerm: []string{"Complete a hands-on project", "Improve system design skills"},
			LongTerm:   []string{"Reach the target role's requirements", "Prepare for interviews"},
		},
		Timeline: types.RecommendationTimeline{
			EstimatedWeeks: fallbackEstimatedWeeks,
			Milestones: []string{
				"Week 4: finish foundation courses",
				"Week 8: complete the practice project",
				"Week 12: interview-ready",
			},
		},
	}

	for _, gap := range result.Gaps {
		lower := strings.ToLower(gap.Skill.Name)
		switch {
		case strings.Contains(lower, "machine learning"):
			bundle.Courses = append(bundle.Courses, types.Course{
				ID:          "course_ml",
				Name:        "Machine Learning Specialization",
				Platform:    "Coursera",
				Difficulty:  "intermediate",
				Duration:    "8 weeks",
				URL:         "https://www.coursera.org/learn/machine-learning",
				Description: "Andrew Ng's foundational machine learning course",
				TargetSkill: gap.Skill.Name,
				Priority:    types.PriorityHigh,
			})
		case strings.Contains(lower, "python"):
			bundle.Courses = append(bundle.Courses, types.Course{
				ID:          "course_python",
				Name:        "Learn Python 3",
				Platform:    "Codecademy",
				Difficulty:  "beginner",
				Duration:    "3 weeks",
				URL:         "https://www.codecademy.com/learn/learn-python-3",
				Description: "Python programming from the ground up",
				TargetSkill: gap.Skill.Name,
				Priority:    types.PriorityHigh,
			})
		case strings.Contains(lower, "system design"):
			bundle.Courses = append(bundle.Courses, types.Course{
				ID:          "course_system_design",
				Name:        "Grokking the System Design Interview",
				Platform:    "Educative",
				Difficulty:  "advanced",
				Duration:    "6 weeks",
				URL:         "https://www.educative.io/courses/grokking-the-system-design-interview",
				Description: "Interview-focused system design preparation",
				TargetSkill: gap.Skill.Name,
				Priority:    types.PriorityHigh,
			})
		}
	}

	if result.SkillMatchPercentage < lowMatchThreshold {
		bundle.Projects = append(bundle.Projects, types.Project{
			ID:                 "project_fullstack",
			Name:               "Full-Stack Web Application",
			TechStack:          []string{"React", "Node.js", "MongoDB"},
			Difficulty:         "intermediate",
			Duration:           "4-6 weeks",
			Description:        "Build a complete web application covering frontend and backend",
			LearningObjectives: []string{"Full-stack development", "Database schema design", "API development"},
			TargetSkills:       []string{"React", "Node.js", "MongoDB"},
		})
	}

	// Generic practice is always present regardless of specific gaps
	bundle.Practice = append(bundle.Practice,
		types.PracticeItem{
			ID:           "practice_coding",
			Type:         "coding practice",
			Frequency:    "3 times per week",
			Focus:        "algorithms and data structures",
			Description:  "Solve problems on LeetCode, focusing on topics relevant to the target role",
			TargetSkills: []string{"algorithms", "data structures", "programming"},
		},
		types.PracticeItem{
			ID:           "practice_interview",
			Type:         "mock interview",
			Frequency:    "weekly",
			Focus:        "technical interviews and system design",
			Description:  "Simulate a realistic interview and practice answering technical questions",
			TargetSkills: []string{"interviewing", "technical communication", "system design"},
		},
	)

	return bundle, nil
}
