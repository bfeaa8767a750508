package planning

// Confidence score adjustments. The result is a heuristic summary
// statistic, not a statistically calibrated probability.
const (
	confidenceBase          = 70.0
	confidenceStrongBonus   = 15.0
	confidenceGapPenalty    = 20.0
	confidenceSeniorBonus   = 10.0
	confidenceJuniorPenalty = 10.0

	seniorYears = 5
	juniorYears = 2
)

// ConfidenceScore estimates how reliable the overall match assessment is,
// clamped to [0, 100].
func ConfidenceScore(strengthCount, gapCount, experienceYears int) float64 {
	score := confidenceBase

	if strengthCount > gapCount {
		score += confidenceStrongBonus
	} else if gapCount > strengthCount*2 {
		score -= confidenceGapPenalty
	}

	if experienceYears >= seniorYears {
		score += confidenceSeniorBonus
	} else if experienceYears < juniorYears {
		score -= confidenceJuniorPenalty
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
