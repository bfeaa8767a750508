// Package analysis matches required skills against a candidate's skill set
// and computes the aggregate match percentages. Analysis is deterministic
// and idempotent: identical inputs always yield identical results.
package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/interview-planner/internal/similarity"
	"github.com/jonathan/interview-planner/internal/taxonomy"
	"github.com/jonathan/interview-planner/internal/types"
)

// partialThreshold is the similarity above which a held skill counts as a
// partial cover for a required skill.
const partialThreshold = 0.6

// mappingSimilarity is the forced similarity when a curated gap mapping
// hits, compensating for weak generic similarity on domain jargon.
const mappingSimilarity = 0.8

// SkillAnalysis is the per-skill outcome of one gap analysis.
// strengths + gaps always covers every required skill exactly once.
type SkillAnalysis struct {
	Gaps          []types.SkillMatch
	Strengths     []types.SkillMatch
	MissingSkills []string
}

// Analyzer classifies required skills against candidate skills
type Analyzer struct {
	scorer *similarity.Scorer
	tax    *taxonomy.Taxonomy
}

// NewAnalyzer creates an Analyzer. Either argument may be nil to use the
// built-in taxonomy and a taxonomy-only scorer.
func NewAnalyzer(scorer *similarity.Scorer, tax *taxonomy.Taxonomy) *Analyzer {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if scorer == nil {
		scorer = similarity.NewScorer(tax, nil)
	}
	return &Analyzer{scorer: scorer, tax: tax}
}

// Analyze classifies each required skill as strong, partial, or missing.
// Match order follows the required-skill input order.
func (a *Analyzer) Analyze(ctx context.Context, required []types.RequiredSkill, held []string) *SkillAnalysis {
	result := &SkillAnalysis{
		Gaps:      []types.SkillMatch{},
		Strengths: []types.SkillMatch{},
	}

	heldSet := make(map[string]bool, len(held))
	for _, h := range held {
		heldSet[strings.ToLower(strings.TrimSpace(h))] = true
	}
	expanded := a.expandHeldSkills(held)

	for _, req := range required {
		if heldSet[strings.ToLower(req.Name)] {
			result.Strengths = append(result.Strengths, types.SkillMatch{
				Skill:      req,
				Status:     types.StatusStrong,
				Similarity: similarity.ScoreExact,
			})
			continue
		}

		maxSim, bestMatch := a.bestSimilarity(ctx, req.Name, expanded)

		// Curated mapping overrides the generic score on a hit
		if alias, ok := a.mappingHit(req.Name, expanded); ok {
			maxSim = mappingSimilarity
			bestMatch = alias
		}

		match := types.SkillMatch{Skill: req, Similarity: maxSim}
		if maxSim > partialThreshold {
			match.Status = types.StatusPartial
			match.SimilarWith = bestMatch
			match.Priority = types.PriorityLow
			if req.Importance == types.ImportanceHigh {
				match.Priority = types.PriorityMedium
			}
		} else {
			match.Status = types.StatusMissing
			match.Priority = types.PriorityMedium
			if req.Importance == types.ImportanceHigh {
				match.Priority = types.PriorityHigh
			}
			result.MissingSkills = append(result.MissingSkills, req.Name)
		}
		result.Gaps = append(result.Gaps, match)
	}

	return result
}

// MatchPercentage returns 100 * strengths / total, or 0 for no requirements
func MatchPercentage(strengths, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(strengths) / float64(total) * 100
}

// expandHeldSkills lowercases held skills and appends their taxonomy
// expansions (e.g. tensorflow implies machine learning), preserving order
// and dropping duplicates.
func (a *Analyzer) expandHeldSkills(held []string) []string {
	out := make([]string, 0, len(held))
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, h := range held {
		add(h)
		for _, implied := range a.tax.Expand(h) {
			add(implied)
		}
	}
	return out
}

// bestSimilarity scores the required skill against every expanded held
// skill and returns the maximum with the best-matching label.
func (a *Analyzer) bestSimilarity(ctx context.Context, required string, expanded []string) (float64, string) {
	maxSim := 0.0
	best := ""
	for _, h := range expanded {
		if sim := a.scorer.Score(ctx, required, h); sim > maxSim {
			maxSim = sim
			best = h
		}
	}
	return maxSim, best
}

// mappingHit returns the first curated alias for the required skill present
// in the expanded held set.
func (a *Analyzer) mappingHit(required string, expanded []string) (string, bool) {
	aliases := a.tax.MappingFor(required)
	if len(aliases) == 0 {
		return "", false
	}
	held := make(map[string]bool, len(expanded))
	for _, h := range expanded {
		held[h] = true
	}
	for _, alias := range aliases {
		if held[strings.ToLower(alias)] {
			return strings.ToLower(alias), true
		}
	}
	return "", false
}
