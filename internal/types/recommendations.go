package types

// Course is one recommended course targeting a skill gap
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	Difficulty  string `json:"difficulty"`
	Duration    string `json:"duration"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description"`
	TargetSkill string `json:"target_skill"`
	Priority    string `json:"priority"`
}

// Project is one recommended hands-on project
type Project struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	TechStack          []string `json:"tech_stack"`
	Difficulty         string   `json:"difficulty"`
	Duration           string   `json:"duration"`
	Description        string   `json:"description"`
	LearningObjectives []string `json:"learning_objectives"`
	TargetSkills       []string `json:"target_skills"`
}

// PracticeItem is one recommended structured practice routine
type PracticeItem struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Frequency    string   `json:"frequency"`
	Focus        string   `json:"focus"`
	Description  string   `json:"description"`
	TargetSkills []string `json:"target_skills"`
}

// LearningPath groups goals by horizon
type LearningPath struct {
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
}

// RecommendationTimeline summarizes the expected duration of the plan
type RecommendationTimeline struct {
	EstimatedWeeks int      `json:"estimated_weeks"`
	Milestones     []string `json:"milestones"`
}

// RecommendationBundle is the full remediation output for one analysis.
// Owned transiently by the caller; the engine keeps no copy.
type RecommendationBundle struct {
	Courses      []Course               `json:"courses"`
	Projects     []Project              `json:"projects"`
	Practice     []PracticeItem         `json:"practice"`
	LearningPath LearningPath           `json:"learning_path"`
	Timeline     RecommendationTimeline `json:"timeline"`
}

// IsEmpty reports whether the bundle carries no concrete recommendation items
func (b *RecommendationBundle) IsEmpty() bool {
	return len(b.Courses) == 0 && len(b.Projects) == 0 && len(b.Practice) == 0
}
