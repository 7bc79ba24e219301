package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Intent     string            `json:"intent"`
	Parameters map[string]string `json:"parameters"`
	Score      float64           `json:"score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"intent":"gaps","parameters":{"category":"Technical"}}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "gaps", result.Intent)
	assert.Equal(t, "Technical", result.Parameters["category"])
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"intent\":\"at_risk\"}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "at_risk", result.Intent)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Sure! Here it is:\n{\"intent\":\"team_leaders\"}\nLet me know."
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "team_leaders", result.Intent)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"intent":"general","parameters":{"competency":"a } b { c"}}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "a } b { c", result.Parameters["competency"])
}

func TestExtractJSON_CommentsAndLeadingDecimals(t *testing.T) {
	raw := "{\n  \"intent\": \"gaps\", // best guess\n  /* block */ \"score\": .75,\n  \"parameters\": {\"department\": \"a//b\"}\n}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.75, result.Score)
	assert.Equal(t, "a//b", result.Parameters["department"])
}

func TestExtractJSON_NegativeLeadingDecimal(t *testing.T) {
	result, err := ExtractJSON[testPayload](`{"score": -.3}`, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.3, result.Score)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("I cannot help with that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"intent":"gaps", broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Validation(t *testing.T) {
	validator := func(p testPayload) error {
		if p.Intent == "" {
			return fmt.Errorf("intent is required")
		}
		return nil
	}

	_, err := ExtractJSON(`{"parameters":{}}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")

	result, err := ExtractJSON(`{"intent":"at_risk"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "at_risk", result.Intent)
}
