package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hrpulse/internal/llm"
)

func TestResolve_NilClientUsesFallback(t *testing.T) {
	rec := &fakeRecorder{}
	r := newRunner(Deps{Recorder: rec})

	called := false
	out := resolve(context.Background(), r, llm.TaskInsight,
		func(context.Context, llm.LLMClient) (string, error) {
			called = true
			return "ai", nil
		},
		func() string { return "fallback" },
	)

	assert.False(t, called)
	assert.Equal(t, "fallback", out.Value)
	assert.True(t, out.FellBack())
	assert.ErrorIs(t, out.Err, llm.ErrNotConfigured)
	require.Len(t, rec.fallbacks, 1)
	assert.Equal(t, fallbackRecord{task: llm.TaskInsight, code: "NOT_CONFIGURED"}, rec.fallbacks[0])
}

func TestResolve_PrimaryErrorIsRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	r := newRunner(Deps{Client: &mockLLMClient{}, Recorder: rec})

	out := resolve(context.Background(), r, llm.TaskFormat,
		func(context.Context, llm.LLMClient) (int, error) {
			return 0, llm.ErrTimeout
		},
		func() int { return 7 },
	)

	assert.Equal(t, 7, out.Value)
	assert.Equal(t, SourceFallback, out.Source)
	require.Len(t, rec.fallbacks, 1)
	assert.Equal(t, "TIMEOUT", rec.fallbacks[0].code)
}

func TestResolve_SuccessSkipsFallback(t *testing.T) {
	rec := &fakeRecorder{}
	r := newRunner(Deps{Client: &mockLLMClient{}, Recorder: rec})

	out := resolve(context.Background(), r, llm.TaskFormat,
		func(context.Context, llm.LLMClient) (string, error) { return "ai", nil },
		func() string {
			t.Fatal("fallback must not run")
			return ""
		},
	)

	assert.Equal(t, "ai", out.Value)
	assert.Equal(t, SourceAI, out.Source)
	assert.NoError(t, out.Err)
	assert.Empty(t, rec.fallbacks)
}

func TestResolve_UnknownErrorCode(t *testing.T) {
	rec := &fakeRecorder{}
	r := newRunner(Deps{Client: &mockLLMClient{}, Recorder: rec})

	resolve(context.Background(), r, llm.TaskFormat,
		func(context.Context, llm.LLMClient) (string, error) { return "", errors.New("boom") },
		func() string { return "" },
	)

	require.Len(t, rec.fallbacks, 1)
	assert.Equal(t, "UNKNOWN", rec.fallbacks[0].code)
}

func TestGenerateText_BlankIsInvalid(t *testing.T) {
	_, err := generateText(context.Background(), &mockLLMClient{response: "  \n"}, llm.TaskInsight, "s", "u")
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)

	text, err := generateText(context.Background(), &mockLLMClient{response: "  hello \n"}, llm.TaskInsight, "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}
