package types

// ImprovementPriority is one ranked remediation item for a skill gap
type ImprovementPriority struct {
	Skill         string   `json:"skill"`
	PriorityScore int      `json:"priority_score"`
	EstimatedTime string   `json:"estimated_time"`
	LearningPath  []string `json:"learning_path"`
}

// Milestone marks the planned completion week for one gap
type Milestone struct {
	Skill       string `json:"skill"`
	Week        int    `json:"week"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// TimelineEstimate is the synthesized time-to-close plan for all gaps
type TimelineEstimate struct {
	TotalWeeks          int         `json:"total_weeks"`
	HighPriorityWeeks   int         `json:"high_priority_weeks"`
	MediumPriorityWeeks int         `json:"medium_priority_weeks"`
	EstimatedCompletion string      `json:"estimated_completion_date"`
	Milestones          []Milestone `json:"milestones"`
}

// ImprovementPlan bundles the planner outputs for one analysis
type ImprovementPlan struct {
	Priorities []ImprovementPriority `json:"improvement_priorities"`
	Timeline   TimelineEstimate      `json:"timeline_estimate"`
}

// DetailedAnalysis is the narrative report generated alongside the numeric analysis
type DetailedAnalysis struct {
	CoreCompetencies  []string `json:"core_competencies"`
	MainGaps          []string `json:"main_gaps"`
	ShortTermGoals    []string `json:"short_term_goals"`
	MediumTermGoals   []string `json:"medium_term_goals"`
	LongTermGoals     []string `json:"long_term_goals"`
	RiskAssessment    string   `json:"risk_assessment"`
	MarketPositioning string   `json:"market_positioning"`
}
