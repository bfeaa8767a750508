// Package types provides type definitions for structured data used throughout the interview-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Importance levels for a required skill
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// Match statuses for a required skill against a candidate profile
const (
	StatusStrong  = "strong"
	StatusPartial = "partial"
	StatusMissing = "missing"
)

// Priority levels for closing a skill gap
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// RequiredSkill represents one skill demanded by a job description.
// Immutable after extraction.
type RequiredSkill struct {
	Name       string `json:"skill"`
	Importance string `json:"importance"`
	Category   string `json:"category"`
}

// ExperienceRequirement represents a years-of-experience demand from a job description
type ExperienceRequirement struct {
	Type        string `json:"type"`
	Years       int    `json:"years"`
	Description string `json:"description"`
}

// JobRequirements is the structured output of requirement extraction
type JobRequirements struct {
	RequiredSkills         []RequiredSkill         `json:"required_skills"`
	PreferredSkills        []RequiredSkill         `json:"preferred_skills"`
	ExperienceRequirements []ExperienceRequirement `json:"experience_requirements"`
}

// SkillMatch records how one required skill compares against the candidate's skills.
// Never mutated after creation; a new analysis produces a new set.
type SkillMatch struct {
	Skill       RequiredSkill `json:"skill"`
	Status      string        `json:"status"`
	SimilarWith string        `json:"similar_with,omitempty"`
	Similarity  float64       `json:"similarity"`
	Priority    string        `json:"priority,omitempty"`
}

// GapAnalysisResult is an immutable snapshot of one job-match analysis.
// The engine never retains it between calls; ownership passes to the caller.
type GapAnalysisResult struct {
	SkillMatchPercentage      float64         `json:"skill_match"`
	ExperienceMatchPercentage float64         `json:"experience_match"`
	OverallMatch              float64         `json:"overall_match"`
	Gaps                      []SkillMatch    `json:"gaps"`
	Strengths                 []SkillMatch    `json:"strengths"`
	MissingSkills             []string        `json:"missing_skills"`
	Requirements              JobRequirements `json:"jd_requirements"`
	ExperienceYears           int             `json:"experience_years"`
	ConfidenceScore           float64         `json:"confidence_score"`
}
