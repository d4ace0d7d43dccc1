// Package ai is the boundary to the text-generation service. Failures never
// propagate: every call produces usable text, falling back to fixed copy.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/metrics"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// Fallback copy served whenever generation fails or returns garbage.
const (
	FallbackSummary    = "Unable to generate summary at this time."
	FallbackNextAction = "Please review notes manually and follow up."
	FallbackAnswer     = "Unable to process your query at this time. Please try again."
)

// Completer is the minimal LLM surface the assistant needs.
type Completer interface {
	Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error)
}

// Assistant produces call summaries and dashboard answers.
type Assistant struct {
	llm     Completer
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewAssistant creates a new assistant. llm may be nil when no API key is
// configured; every call then returns fallback copy.
func NewAssistant(llm Completer, m *metrics.Metrics, log logger.Logger) *Assistant {
	return &Assistant{llm: llm, metrics: m, log: log}
}

// CallContext is the input for a call summary.
type CallContext struct {
	Note        string
	LeadName    string
	CarInterest string
}

type summaryPayload struct {
	Summary    string `json:"summary"`
	NextAction string `json:"next_action"`
}

// GenerateCallSummary condenses a raw call note into a short summary and a
// suggested next action.
func (a *Assistant) GenerateCallSummary(ctx context.Context, cc CallContext) (summary, nextAction string) {
	if a.llm == nil {
		a.metrics.RecordAICompletion("summary", true)
		return FallbackSummary, FallbackNextAction
	}

	prompt := fmt.Sprintf(
		"A sales executive at a car dealership just called %s, who is interested in a %s.\n"+
			"Call note: %q\n\n"+
			"Respond with JSON only, no prose, in this shape:\n"+
			`{"summary": "<one-sentence summary of the call>", "next_action": "<one concrete follow-up step>"}`,
		cc.LeadName, cc.CarInterest, cc.Note,
	)

	raw, err := a.llm.Complete(ctx, prompt, "You summarize dealership sales calls. Output strict JSON.")
	if err != nil {
		a.log.Warn("call summary generation failed", "error", err)
		a.metrics.RecordAICompletion("summary", true)
		return FallbackSummary, FallbackNextAction
	}

	var payload summaryPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil || payload.Summary == "" {
		a.log.Warn("call summary response was not valid JSON", "error", err)
		a.metrics.RecordAICompletion("summary", true)
		return FallbackSummary, FallbackNextAction
	}

	if payload.NextAction == "" {
		payload.NextAction = FallbackNextAction
	}

	a.metrics.RecordAICompletion("summary", false)
	return payload.Summary, payload.NextAction
}

// AnswerDashboardQuery answers a free-form question using the current
// dashboard aggregate as grounding context.
func (a *Assistant) AnswerDashboardQuery(ctx context.Context, question string, stats *models.DashboardStats) string {
	if a.llm == nil {
		a.metrics.RecordAICompletion("ask", true)
		return FallbackAnswer
	}

	prompt := fmt.Sprintf(
		"Current dealership dashboard snapshot:\n%s\n\nQuestion: %s\n\n"+
			"Answer briefly using only the numbers in the snapshot.",
		describeStats(stats), question,
	)

	answer, err := a.llm.Complete(ctx, prompt, "You are an analytics assistant for a car dealership's lead dashboard.")
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			a.log.Warn("dashboard query failed", "error", err)
		}
		a.metrics.RecordAICompletion("ask", true)
		return FallbackAnswer
	}

	a.metrics.RecordAICompletion("ask", false)
	return strings.TrimSpace(answer)
}

// describeStats serializes the aggregate into a compact text block for the
// prompt.
func describeStats(stats *models.DashboardStats) string {
	if stats == nil {
		return "no data available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total leads: %d (this month %d, last month %d)\n",
		stats.TotalLeads, stats.TotalLeadsThisMonth, stats.TotalLeadsLastMonth)
	fmt.Fprintf(&b, "Qualified this month: %d, closed won this month: %d, closed lost this month: %d\n",
		stats.QualifiedThisMonth, stats.ClosedWonThisMonth, stats.ClosedLostThisMonth)
	fmt.Fprintf(&b, "Conversion rate: %.1f%%, avg response time: %.1f hrs, stale leads: %d\n",
		stats.ConversionRate, stats.AvgResponseTimeHrs, stats.StaleLeads)

	b.WriteString("Leads by source:")
	for _, sc := range stats.LeadsBySource {
		fmt.Fprintf(&b, " %s=%d", sc.Source, sc.Count)
	}
	b.WriteString("\nFunnel:")
	for _, f := range stats.Funnel {
		fmt.Fprintf(&b, " %s=%d", f.Status, f.Count)
	}
	b.WriteString("\nTeam:")
	for _, tp := range stats.TeamPerformance {
		fmt.Fprintf(&b, " %s(assigned=%d, won=%d)", tp.Name, tp.LeadsAssigned, tp.ClosedWon)
	}
	return b.String()
}

// stripFences removes markdown code fences models like to wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
