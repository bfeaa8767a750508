// Package extraction turns free-text job descriptions into structured skill
// requirements. The primary extractor calls the text-understanding service
// under a strict output contract; a deterministic taxonomy scan covers any
// service or parse failure, so extraction never fails outright.
package extraction

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/interview-planner/internal/llm"
	"github.com/jonathan/interview-planner/internal/prompts"
	"github.com/jonathan/interview-planner/internal/taxonomy"
	"github.com/jonathan/interview-planner/internal/types"
)

// Extractor produces structured job requirements from raw job text
type Extractor interface {
	Extract(ctx context.Context, jobText string) (*types.JobRequirements, error)
}

// LLMExtractor extracts requirements via the Gemini JSON contract
type LLMExtractor struct {
	client llm.Client
}

// NewLLMExtractor creates an extractor backed by the given LLM client
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// Extract prompts the model and parses its structured response.
// Markdown fences and prose around the JSON object are tolerated; any
// other malformation is reported as a ParseError.
func (e *LLMExtractor) Extract(ctx context.Context, jobText string) (*types.JobRequirements, error) {
	template := prompts.MustGet("extraction.json", "extract-job-requirements")
	prompt := prompts.Format(template, map[string]string{
		"JobText": CleanText(jobText),
	})

	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "requirement extraction failed", Cause: err}
	}

	jsonText := llm.ExtractJSONObject(response)
	if jsonText == "" {
		return nil, &ParseError{Message: "no JSON object in extraction response"}
	}

	var reqs types.JobRequirements
	if err := json.Unmarshal([]byte(jsonText), &reqs); err != nil {
		return nil, &ParseError{Message: "failed to parse extraction response", Cause: err}
	}

	normalizeRequirements(&reqs)
	return &reqs, nil
}

// Limits on the deterministic fallback output, mirroring the service
// contract's expectation of a short focused requirement list.
const (
	fallbackMaxRequired  = 5
	fallbackMaxPreferred = 3
	fallbackDefaultYears = 3
)

// TaxonomyExtractor is the deterministic local fallback: every taxonomy
// skill whose label occurs case-insensitively in the description is
// emitted with importance medium.
type TaxonomyExtractor struct {
	tax *taxonomy.Taxonomy
}

// NewTaxonomyExtractor creates the fallback extractor.
// tax may be nil to use the built-in taxonomy.
func NewTaxonomyExtractor(tax *taxonomy.Taxonomy) *TaxonomyExtractor {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &TaxonomyExtractor{tax: tax}
}

// Extract scans the description against the taxonomy. The result is a pure
// function of the input text plus the taxonomy tables.
func (e *TaxonomyExtractor) Extract(_ context.Context, jobText string) (*types.JobRequirements, error) {
	lowerText := strings.ToLower(jobText)

	var hits []types.RequiredSkill
	seen := make(map[string]bool)
	for _, cat := range e.tax.Categories() {
		for _, skill := range cat.Skills {
			key := strings.ToLower(skill)
			if seen[key] || !strings.Contains(lowerText, key) {
				continue
			}
			seen[key] = true
			hits = append(hits, types.RequiredSkill{
				Name:       skill,
				Importance: types.ImportanceMedium,
				Category:   cat.Name,
			})
		}
	}

	reqs := &types.JobRequirements{
		RequiredSkills: hits,
		ExperienceRequirements: []types.ExperienceRequirement{
			{Type: "technical", Years: fallbackDefaultYears, Description: "relevant technical experience"},
		},
	}
	if len(hits) > fallbackMaxRequired {
		reqs.RequiredSkills = hits[:fallbackMaxRequired]
		preferred := hits[fallbackMaxRequired:]
		if len(preferred) > fallbackMaxPreferred {
			preferred = preferred[:fallbackMaxPreferred]
		}
		reqs.PreferredSkills = preferred
	}
	return reqs, nil
}

// Resilient attempts the primary extractor under a timeout and substitutes
// the fallback on any failure. Extraction errors are never surfaced.
type Resilient struct {
	Primary  Extractor
	Fallback Extractor
	Timeout  time.Duration
}

// NewResilient wires an LLM primary with a taxonomy fallback.
// client may be nil, in which case only the fallback runs.
func NewResilient(client llm.Client, tax *taxonomy.Taxonomy, timeout time.Duration) *Resilient {
	r := &Resilient{
		Fallback: NewTaxonomyExtractor(tax),
		Timeout:  timeout,
	}
	if client != nil {
		r.Primary = NewLLMExtractor(client)
	}
	return r
}

// Extract never returns an error: the fallback is deterministic and total.
func (r *Resilient) Extract(ctx context.Context, jobText string) (*types.JobRequirements, error) {
	if r.Primary != nil {
		callCtx := ctx
		if r.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, r.Timeout)
			defer cancel()
		}
		if reqs, err := r.Primary.Extract(callCtx, jobText); err == nil {
			return reqs, nil
		}
	}
	return r.Fallback.Extract(ctx, jobText)
}

// normalizeRequirements canonicalizes skill names and drops empty or
// duplicate entries, preserving order.
func normalizeRequirements(reqs *types.JobRequirements) {
	reqs.RequiredSkills = normalizeSkills(reqs.RequiredSkills)
	reqs.PreferredSkills = normalizeSkills(reqs.PreferredSkills)
	for i := range reqs.RequiredSkills {
		if reqs.RequiredSkills[i].Importance == "" {
			reqs.RequiredSkills[i].Importance = types.ImportanceMedium
		}
	}
}

func normalizeSkills(skills []types.RequiredSkill) []types.RequiredSkill {
	out := make([]types.RequiredSkill, 0, len(skills))
	seen := make(map[string]bool)
	for _, s := range skills {
		name := taxonomy.NormalizeSkillName(s.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		s.Name = name
		out = append(out, s)
	}
	return out
}
