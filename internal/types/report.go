package types

// JobMatchAnalysis pairs the numeric gap analysis with its remediation plan
type JobMatchAnalysis struct {
	Analysis GapAnalysisResult `json:"analysis"`
	Plan     ImprovementPlan   `json:"plan"`
}

// FullReport is the complete engine output for one candidate/job pair
type FullReport struct {
	Analysis        GapAnalysisResult    `json:"analysis"`
	Plan            ImprovementPlan      `json:"plan"`
	Detailed        DetailedAnalysis     `json:"detailed_analysis"`
	Recommendations RecommendationBundle `json:"recommendations"`
}
