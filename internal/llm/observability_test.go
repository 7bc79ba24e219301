package llm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewLogObserver(logger)

	obs.OnCallComplete(LLMCallEvent{Task: TaskClassify, Model: "m", LatencyMs: 12, Success: true})
	obs.OnCallComplete(LLMCallEvent{Task: TaskFormat, Model: "m", Success: false, ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=llm_call task=classify")
	assert.Contains(t, out, "latency_ms=12")
	assert.Contains(t, out, "level=WARN msg=llm_call task=format")
	assert.Contains(t, out, "error_code=TIMEOUT")
}

func TestMultiObserver(t *testing.T) {
	var a, b int
	multi := MultiObserver{
		&captureObserver{fn: func(LLMCallEvent) { a++ }},
		nil,
		&captureObserver{fn: func(LLMCallEvent) { b++ }},
	}
	multi.OnCallComplete(LLMCallEvent{})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
