package analysis

import "github.com/jonathan/interview-planner/internal/types"

// Experience match anchors: an exact match scores the baseline, each
// surplus year adds surplusPerYear, each missing year costs
// shortfallPerYear. The asymmetric penalty reflects that
// under-experience is riskier than over-experience.
const (
	experienceBaseline = 70.0
	surplusPerYear     = 10.0
	shortfallPerYear   = 15.0
)

// ExperienceMatch scores the candidate's years of experience against the
// job's experience requirements, in [0, 100]. With no requirements it
// returns the neutral baseline.
func ExperienceMatch(requirements []types.ExperienceRequirement, userYears int) float64 {
	if len(requirements) == 0 {
		return experienceBaseline
	}

	total := 0.0
	for _, req := range requirements {
		total += float64(req.Years)
	}
	avgRequired := total / float64(len(requirements))

	if float64(userYears) >= avgRequired {
		score := experienceBaseline + (float64(userYears)-avgRequired)*surplusPerYear
		if score > 100 {
			return 100
		}
		return score
	}

	score := experienceBaseline - (avgRequired-float64(userYears))*shortfallPerYear
	if score < 0 {
		return 0
	}
	return score
}
