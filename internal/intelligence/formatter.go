package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/query"
)

// ResponseFormatter turns a query result into conversational prose.
type ResponseFormatter struct {
	r runner
}

func NewResponseFormatter(d Deps) *ResponseFormatter {
	return &ResponseFormatter{r: newRunner(d)}
}

func (f *ResponseFormatter) Format(ctx context.Context, question string, result query.Result) Outcome[string] {
	return resolve(ctx, f.r, llm.TaskFormat,
		func(ctx context.Context, client llm.LLMClient) (string, error) {
			prompt := fmt.Sprintf(formatPromptTemplate, question, result.Message, query.SummarizeForPrompt(result))
			return generateText(ctx, client, llm.TaskFormat, formatSystemPrompt, prompt)
		},
		func() string { return query.FormatFallback(result) },
	)
}

func nonEmpty(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", llm.ErrInvalidOutput)
	}
	return text, nil
}
