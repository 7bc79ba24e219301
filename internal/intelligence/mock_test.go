package intelligence

import (
	"context"

	"github.com/alexanderramin/hrpulse/internal/llm"
)

// mockLLMClient returns a fixed response and remembers what it was asked.
type mockLLMClient struct {
	response string
	err      error
	requests []llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gpt-4o-mini"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

type fallbackRecord struct {
	task llm.TaskType
	code string
}

type fakeRecorder struct {
	fallbacks []fallbackRecord
	queries   [][2]string
}

func (f *fakeRecorder) RecordFallback(task llm.TaskType, code string) {
	f.fallbacks = append(f.fallbacks, fallbackRecord{task: task, code: code})
}

func (f *fakeRecorder) RecordQuery(intent, source string) {
	f.queries = append(f.queries, [2]string{intent, source})
}
