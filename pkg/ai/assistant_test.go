package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

type stubCompleter struct {
	response string
	err      error
}

func (s *stubCompleter) Complete(_ context.Context, _ string, _ ...string) (string, error) {
	return s.response, s.err
}

func TestGenerateCallSummaryParsesJSON(t *testing.T) {
	llm := &stubCompleter{response: `{"summary": "Customer wants a test drive.", "next_action": "Book a slot for Saturday."}`}
	assistant := NewAssistant(llm, nil, logger.Default())

	summary, next := assistant.GenerateCallSummary(context.Background(), CallContext{
		Note: "wants to test drive the Creta this weekend", LeadName: "Arjun", CarInterest: "SUV",
	})

	assert.Equal(t, "Customer wants a test drive.", summary)
	assert.Equal(t, "Book a slot for Saturday.", next)
}

func TestGenerateCallSummaryStripsCodeFences(t *testing.T) {
	llm := &stubCompleter{response: "```json\n{\"summary\": \"Short call.\", \"next_action\": \"Call again tomorrow.\"}\n```"}
	assistant := NewAssistant(llm, nil, logger.Default())

	summary, next := assistant.GenerateCallSummary(context.Background(), CallContext{Note: "n"})

	assert.Equal(t, "Short call.", summary)
	assert.Equal(t, "Call again tomorrow.", next)
}

func TestGenerateCallSummaryFallbackOnError(t *testing.T) {
	llm := &stubCompleter{err: errors.New("rate limited")}
	assistant := NewAssistant(llm, nil, logger.Default())

	summary, next := assistant.GenerateCallSummary(context.Background(), CallContext{Note: "n"})

	assert.Equal(t, FallbackSummary, summary)
	assert.Equal(t, FallbackNextAction, next)
}

func TestGenerateCallSummaryFallbackOnGarbage(t *testing.T) {
	llm := &stubCompleter{response: "sorry, I can't help with that"}
	assistant := NewAssistant(llm, nil, logger.Default())

	summary, next := assistant.GenerateCallSummary(context.Background(), CallContext{Note: "n"})

	assert.Equal(t, FallbackSummary, summary)
	assert.Equal(t, FallbackNextAction, next)
}

func TestGenerateCallSummaryNilClient(t *testing.T) {
	assistant := NewAssistant(nil, nil, logger.Default())

	summary, next := assistant.GenerateCallSummary(context.Background(), CallContext{Note: "n"})

	assert.Equal(t, FallbackSummary, summary)
	assert.Equal(t, FallbackNextAction, next)
}

func TestAnswerDashboardQuery(t *testing.T) {
	llm := &stubCompleter{response: "You received 42 leads this month."}
	assistant := NewAssistant(llm, nil, logger.Default())

	answer := assistant.AnswerDashboardQuery(context.Background(), "how many leads this month?", &models.DashboardStats{TotalLeadsThisMonth: 42})

	assert.Equal(t, "You received 42 leads this month.", answer)
}

func TestAnswerDashboardQueryFallbacks(t *testing.T) {
	assistant := NewAssistant(&stubCompleter{err: errors.New("timeout")}, nil, logger.Default())
	assert.Equal(t, FallbackAnswer, assistant.AnswerDashboardQuery(context.Background(), "q", nil))

	assistant = NewAssistant(&stubCompleter{response: "   "}, nil, logger.Default())
	assert.Equal(t, FallbackAnswer, assistant.AnswerDashboardQuery(context.Background(), "q", nil))

	assistant = NewAssistant(nil, nil, logger.Default())
	assert.Equal(t, FallbackAnswer, assistant.AnswerDashboardQuery(context.Background(), "q", nil))
}
