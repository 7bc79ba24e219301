package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/query"
)

func TestClassify_UsesModelJSON(t *testing.T) {
	client := &mockLLMClient{response: "```json\n{\"intent\":\"gaps\",\"parameters\":{\"category\":\"Technical\",\"competency\":\" Cloud \"}}\n```"}
	c := NewQueryClassifier(Deps{Client: client})

	out := c.Classify(context.Background(), "who lacks cloud skills?")

	require.Equal(t, SourceAI, out.Source)
	assert.Equal(t, query.IntentGaps, out.Value.Intent)
	assert.Equal(t, domain.CategoryTechnical, out.Value.Parameters.Category)
	assert.Equal(t, "Cloud", out.Value.Parameters.Competency)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, llm.TaskClassify, req.Task)
	assert.Equal(t, classifySystemPrompt, req.SystemPrompt)
	assert.Contains(t, req.UserPrompt, `"who lacks cloud skills?"`)
}

func TestClassify_UnknownIntentFallsBackToKeywords(t *testing.T) {
	client := &mockLLMClient{response: `{"intent":"payroll","parameters":{}}`}
	c := NewQueryClassifier(Deps{Client: client})

	out := c.Classify(context.Background(), "who is at risk?")

	assert.Equal(t, SourceFallback, out.Source)
	assert.ErrorIs(t, out.Err, llm.ErrInvalidOutput)
	assert.Equal(t, query.IntentAtRisk, out.Value.Intent)
}

func TestClassify_UnknownCategoryFallsBack(t *testing.T) {
	client := &mockLLMClient{response: `{"intent":"gaps","parameters":{"category":"Cooking"}}`}
	c := NewQueryClassifier(Deps{Client: client})

	out := c.Classify(context.Background(), "show technical gaps")

	assert.Equal(t, SourceFallback, out.Source)
	assert.Equal(t, query.IntentGaps, out.Value.Intent)
	assert.Equal(t, domain.CategoryTechnical, out.Value.Parameters.Category)
}

func TestClassify_NoClientUsesKeywords(t *testing.T) {
	c := NewQueryClassifier(Deps{})

	out := c.Classify(context.Background(), "what's the weather like?")

	assert.Equal(t, SourceFallback, out.Source)
	assert.Equal(t, query.IntentGeneral, out.Value.Intent)
}

func TestClassify_ClientErrorUsesKeywords(t *testing.T) {
	c := NewQueryClassifier(Deps{Client: &mockLLMClient{err: llm.ErrUnavailable}})

	out := c.Classify(context.Background(), "who completed their courses")

	assert.Equal(t, SourceFallback, out.Source)
	assert.ErrorIs(t, out.Err, llm.ErrUnavailable)
	assert.Equal(t, query.IntentCompletedCourses, out.Value.Intent)
}
