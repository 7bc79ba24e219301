package intelligence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/logging"
)

// Source tells the caller which path produced a value.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Outcome is a value plus where it came from. Err is the primary-path
// error that forced a fallback; it is informational and never fatal.
type Outcome[T any] struct {
	Value  T
	Source Source
	Err    error
}

// FellBack reports whether the deterministic path produced the value.
func (o Outcome[T]) FellBack() bool {
	return o.Source == SourceFallback
}

// Recorder receives fallback and query counts. *metrics.Manager satisfies it.
type Recorder interface {
	RecordFallback(task llm.TaskType, code string)
	RecordQuery(intent, source string)
}

// Deps are shared by every service in this package. Client may be nil,
// in which case every call takes the deterministic path.
type Deps struct {
	Client   llm.LLMClient
	Logger   *slog.Logger
	Recorder Recorder
	Now      func() time.Time
}

type runner struct {
	client   llm.LLMClient
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
}

func newRunner(d Deps) runner {
	r := runner{client: d.Client, logger: d.Logger, recorder: d.Recorder, now: d.Now}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// resolve runs primary against the client and falls back to the
// deterministic value on any error, including a missing client.
func resolve[T any](ctx context.Context, r runner, task llm.TaskType, primary func(context.Context, llm.LLMClient) (T, error), fallback func() T) Outcome[T] {
	var err error
	if r.client == nil {
		err = llm.ErrNotConfigured
	} else {
		var v T
		if v, err = primary(ctx, r.client); err == nil {
			return Outcome[T]{Value: v, Source: SourceAI}
		}
	}

	code := llm.ErrorCode(err)
	if errors.Is(err, llm.ErrNotConfigured) {
		r.logger.Debug("llm not configured, using fallback", "task", task)
	} else {
		r.logger.Warn("llm fallback", "task", task, "error_code", code, "error", err)
	}
	if r.recorder != nil {
		r.recorder.RecordFallback(task, code)
	}
	return Outcome[T]{Value: fallback(), Source: SourceFallback, Err: err}
}

// generateText is the primary path shared by the free-text tasks.
func generateText(ctx context.Context, client llm.LLMClient, task llm.TaskType, system, user string) (string, error) {
	resp, err := client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return "", err
	}
	return nonEmpty(resp.Text)
}
