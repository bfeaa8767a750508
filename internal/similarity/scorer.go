// Package similarity computes a heuristic [0,1] closeness score between two
// skill labels. Scoring walks a fixed rule chain over the curated taxonomy
// tables; an optional embedding service refines the final fallback.
package similarity

import (
	"context"
	"strings"

	"github.com/jonathan/interview-planner/internal/taxonomy"
)

// Rule scores, in priority order. First matching rule wins.
const (
	ScoreExact          = 1.0
	ScoreRelated        = 0.9
	ScoreSubstring      = 0.8
	ScoreSynonymCluster = 0.85
	ScoreSameCategory   = 0.6
	ScoreSharedToken    = 0.4

	// ScoreDefault is the canonical low default when no rule matches and
	// no embedder is configured.
	ScoreDefault = 0.1

	// ScoreNeutral is returned when a configured embedder fails.
	// Similarity must always produce a usable scalar.
	ScoreNeutral = 0.5
)

// Embedder is an optional external semantic-similarity service.
// Absence or failure is non-fatal.
type Embedder interface {
	// Similarity returns the cosine similarity between vector encodings
	// of the two labels.
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Scorer scores skill-label pairs against a taxonomy. Stateless and safe
// for concurrent use.
type Scorer struct {
	tax      *taxonomy.Taxonomy
	embedder Embedder
}

// NewScorer creates a Scorer backed by the given taxonomy.
// embedder may be nil, in which case ScoreDefault is the final fallback.
func NewScorer(tax *taxonomy.Taxonomy, embedder Embedder) *Scorer {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Scorer{tax: tax, embedder: embedder}
}

// Score computes the closeness between two skill labels.
func (s *Scorer) Score(ctx context.Context, a, b string) float64 {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))

	if la == lb {
		return ScoreExact
	}
	if s.tax.AreRelated(a, b) {
		return ScoreRelated
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return ScoreSubstring
	}
	if s.tax.ShareCluster(a, b) {
		return ScoreSynonymCluster
	}
	if s.tax.ShareCategory(a, b) {
		return ScoreSameCategory
	}
	if sharesToken(la, lb) {
		return ScoreSharedToken
	}

	if s.embedder != nil {
		sim, err := s.embedder.Similarity(ctx, a, b)
		if err != nil {
			return ScoreNeutral
		}
		return clamp01(sim)
	}

	return ScoreDefault
}

// sharesToken reports whether the tokenized labels share at least one word
func sharesToken(a, b string) bool {
	tokensA := strings.Fields(a)
	if len(tokensA) == 0 {
		return false
	}
	tokensB := make(map[string]bool)
	for _, t := range strings.Fields(b) {
		tokensB[t] = true
	}
	for _, t := range tokensA {
		if tokensB[t] {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
