// Package engine is the top-level facade of the skill gap analysis and
// recommendation engine. An Engine is stateless: each call is a pure
// function of its inputs plus the static taxonomy, aside from calls to the
// external language-model services, and concurrent invocations share no
// mutable state.
package engine

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/interview-planner/internal/analysis"
	"github.com/jonathan/interview-planner/internal/extraction"
	"github.com/jonathan/interview-planner/internal/llm"
	"github.com/jonathan/interview-planner/internal/planning"
	"github.com/jonathan/interview-planner/internal/recommend"
	"github.com/jonathan/interview-planner/internal/similarity"
	"github.com/jonathan/interview-planner/internal/taxonomy"
	"github.com/jonathan/interview-planner/internal/types"
	"golang.org/x/sync/errgroup"
)

// Default timeouts for external service calls. On timeout the component
// falls through to its local deterministic fallback.
const (
	DefaultExtractTimeout  = 30 * time.Second
	DefaultGenerateTimeout = 45 * time.Second
)

// AnalyzeInput is the caller contract for one analysis. Candidate skills
// arrive as a flat list of strings, experience as an integer year count,
// the job description as raw text. An empty skill list is valid and
// yields an all-gaps analysis.
type AnalyzeInput struct {
	JobDescription  string   `validate:"required"`
	Skills          []string `validate:"dive,required"`
	ExperienceYears int      `validate:"gte=0"`
}

// Options configures an Engine. The zero value yields a fully local
// engine: taxonomy-fallback extraction, rule-chain similarity, rule-based
// recommendations.
type Options struct {
	// Client is the LLM client for extraction, narrative analysis, and
	// recommendation generation. Nil disables all external calls.
	Client llm.Client
	// Embedder optionally refines the similarity fallback.
	Embedder similarity.Embedder
	// Taxonomy overrides the built-in reference tables.
	Taxonomy *taxonomy.Taxonomy
	// ExtractTimeout and GenerateTimeout bound external calls.
	ExtractTimeout  time.Duration
	GenerateTimeout time.Duration
	// Now overrides the planning clock, for deterministic tests.
	Now func() time.Time
}

// Engine runs gap analysis and recommendation generation.
// Safe for concurrent use.
type Engine struct {
	extractor *extraction.Resilient
	analyzer  *analysis.Analyzer
	generator *recommend.Resilient
	detailed  *recommend.DetailedAnalyzer
	validate  *validator.Validate
	now       func() time.Time
}

// New creates an Engine from options
func New(opts Options) *Engine {
	tax := opts.Taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}
	extractTimeout := opts.ExtractTimeout
	if extractTimeout == 0 {
		extractTimeout = DefaultExtractTimeout
	}
	generateTimeout := opts.GenerateTimeout
	if generateTimeout == 0 {
		generateTimeout = DefaultGenerateTimeout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	scorer := similarity.NewScorer(tax, opts.Embedder)

	return &Engine{
		extractor: extraction.NewResilient(opts.Client, tax, extractTimeout),
		analyzer:  analysis.NewAnalyzer(scorer, tax),
		generator: recommend.NewResilient(opts.Client, generateTimeout),
		detailed:  recommend.NewDetailedAnalyzer(opts.Client, generateTimeout),
		validate:  validator.New(),
		now:       now,
	}
}

// AnalyzeJobMatch extracts the job's requirements, analyzes the candidate's
// gaps, and synthesizes the remediation plan. The only errors surfaced are
// caller contract violations; every external dependency failure degrades to
// a deterministic local computation.
func (e *Engine) AnalyzeJobMatch(ctx context.Context, input AnalyzeInput) (*types.JobMatchAnalysis, error) {
	if err := e.validate.Struct(input); err != nil {
		return nil, &InvalidInputError{Cause: err}
	}

	reqs, err := e.extractor.Extract(ctx, input.JobDescription)
	if err != nil {
		// The resilient extractor's fallback is total; this path is
		// unreachable in practice but kept for interface symmetry.
		return nil, err
	}

	held := taxonomy.NormalizeSkillList(input.Skills)
	skillAnalysis := e.analyzer.Analyze(ctx, reqs.RequiredSkills, held)

	skillMatch := analysis.MatchPercentage(len(skillAnalysis.Strengths), len(reqs.RequiredSkills))
	expMatch := analysis.ExperienceMatch(reqs.ExperienceRequirements, input.ExperienceYears)

	result := types.GapAnalysisResult{
		SkillMatchPercentage:      round1(skillMatch),
		ExperienceMatchPercentage: round1(expMatch),
		OverallMatch:              round1((skillMatch + expMatch) / 2),
		Gaps:                      skillAnalysis.Gaps,
		Strengths:                 skillAnalysis.Strengths,
		MissingSkills:             skillAnalysis.MissingSkills,
		Requirements:              *reqs,
		ExperienceYears:           input.ExperienceYears,
		ConfidenceScore: planning.ConfidenceScore(
			len(skillAnalysis.Strengths), len(skillAnalysis.Gaps), input.ExperienceYears),
	}

	return &types.JobMatchAnalysis{
		Analysis: result,
		Plan: types.ImprovementPlan{
			Priorities: planning.ImprovementPriorities(result.Gaps),
			Timeline:   planning.Timeline(result.Gaps, e.now()),
		},
	}, nil
}

// GenerateRecommendations produces the remediation bundle for a prior
// analysis. The bundle is never empty when the gap list is non-empty.
func (e *Engine) GenerateRecommendations(ctx context.Context, result *types.GapAnalysisResult) (*types.RecommendationBundle, error) {
	if result == nil {
		return nil, &InvalidInputError{Message: "analysis result is required"}
	}
	return e.generator.Generate(ctx, result)
}

// DetailedAnalysis produces the narrative match report for a prior analysis
func (e *Engine) DetailedAnalysis(ctx context.Context, jobText string, result *types.GapAnalysisResult) (*types.DetailedAnalysis, error) {
	if result == nil {
		return nil, &InvalidInputError{Message: "analysis result is required"}
	}
	return e.detailed.Analyze(ctx, jobText, result), nil
}

// FullReport runs the complete pipeline: local gap analysis and planning,
// then the narrative report and recommendation bundle concurrently.
func (e *Engine) FullReport(ctx context.Context, input AnalyzeInput) (*types.FullReport, error) {
	match, err := e.AnalyzeJobMatch(ctx, input)
	if err != nil {
		return nil, err
	}

	report := &types.FullReport{
		Analysis: match.Analysis,
		Plan:     match.Plan,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Detailed = *e.detailed.Analyze(gctx, input.JobDescription, &match.Analysis)
		return nil
	})
	g.Go(func() error {
		bundle, err := e.generator.Generate(gctx, &match.Analysis)
		if err != nil {
			return err
		}
		report.Recommendations = *bundle
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// round1 rounds to one decimal place, matching the reported percentages
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
