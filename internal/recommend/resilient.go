package recommend

import (
	"context"
	"time"

	"github.com/jonathan/interview-planner/internal/llm"
	"github.com/jonathan/interview-planner/internal/types"
)

// Resilient attempts the primary generator under a timeout and substitutes
// the rule-based fallback on any failure. Generation errors are never
// surfaced: the distinction allowed is "recommendation generic", never
// "recommendation unavailable".
type Resilient struct {
	Primary  Generator
	Fallback Generator
	Timeout  time.Duration
}

// NewResilient wires an LLM primary with the rule-based fallback.
// client may be nil, in which case only the fallback runs.
func NewResilient(client llm.Client, timeout time.Duration) *Resilient {
	r := &Resilient{
		Fallback: NewRuleBased(),
		Timeout:  timeout,
	}
	if client != nil {
		r.Primary = NewLLMGenerator(client)
	}
	return r
}

// Generate never returns an error for a valid analysis result
func (r *Resilient) Generate(ctx context.Context, result *types.GapAnalysisResult) (*types.RecommendationBundle, error) {
	if r.Primary != nil {
		callCtx := ctx
		if r.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, r.Timeout)
			defer cancel()
		}
		if bundle, err := r.Primary.Generate(callCtx, result); err == nil {
			return bundle, nil
		}
	}
	return r.Fallback.Generate(ctx, result)
}
