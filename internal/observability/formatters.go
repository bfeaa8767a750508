// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a gap analysis
func (p *Printer) PrintAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill match:      %.1f%%\n", result.SkillMatchPercentage))
	sb.WriteString(fmt.Sprintf("Experience match: %.1f%%\n", result.ExperienceMatchPercentage))
	sb.WriteString(fmt.Sprintf("Overall match:    %.1f%%\n", result.OverallMatch))
	sb.WriteString(fmt.Sprintf("Confidence:       %.0f/100\n", result.ConfidenceScore))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Strengths (%d):\n", len(result.Strengths)))
	for i, s := range result.Strengths {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Strengths)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  + %s\n", s.Skill.Name))
	}

	sb.WriteString(fmt.Sprintf("Gaps (%d):\n", len(result.Gaps)))
	for i, g := range result.Gaps {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Gaps)-maxItemsToShow))
			break
		}
		if g.Status == types.StatusPartial {
			sb.WriteString(fmt.Sprintf("  ~ %s (partial via %s)\n", g.Skill.Name, g.SimilarWith))
		} else {
			sb.WriteString(fmt.Sprintf("  - %s (missing, %s priority)\n", g.Skill.Name, g.Priority))
		}
	}

	p.printBox("Gap Analysis", sb.String())
}

// PrintPlan outputs a human-readable summary of an improvement plan
func (p *Printer) PrintPlan(plan *types.ImprovementPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Priorities:\n")
	for _, pr := range plan.Priorities {
		sb.WriteString(fmt.Sprintf("  %d  %s (%s)\n", pr.PriorityScore, pr.Skill, pr.EstimatedTime))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total weeks:  %d\n", plan.Timeline.TotalWeeks))
	sb.WriteString(fmt.Sprintf("Completion:   %s\n", plan.Timeline.EstimatedCompletion))

	p.printBox("Improvement Plan", sb.String())
}

// PrintRecommendations outputs a human-readable summary of a bundle
func (p *Printer) PrintRecommendations(bundle *types.RecommendationBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Courses:  %d\n", len(bundle.Courses)))
	for i, c := range bundle.Courses {
		if i >= maxItemsToShow {
			break
		}
		sb.WriteString(fmt.Sprintf("  %s → %s\n", c.Name, c.TargetSkill))
	}
	sb.WriteString(fmt.Sprintf("Projects: %d\n", len(bundle.Projects)))
	sb.WriteString(fmt.Sprintf("Practice: %d\n", len(bundle.Practice)))
	sb.WriteString(fmt.Sprintf("Timeline: %d weeks\n", bundle.Timeline.EstimatedWeeks))

	p.printBox("Recommendations", sb.String())
}
