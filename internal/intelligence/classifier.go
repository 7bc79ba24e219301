package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/query"
)

// QueryClassifier turns a question into an intent. It asks the LLM when
// one is configured and uses the keyword rules otherwise or on any failure.
type QueryClassifier struct {
	r runner
}

func NewQueryClassifier(d Deps) *QueryClassifier {
	return &QueryClassifier{r: newRunner(d)}
}

// classifyOutput mirrors the JSON the model is asked to produce.
type classifyOutput struct {
	Intent     string `json:"intent"`
	Parameters struct {
		Category   string `json:"category"`
		Department string `json:"department"`
		Competency string `json:"competency"`
	} `json:"parameters"`
}

func (c *QueryClassifier) Classify(ctx context.Context, text string) Outcome[query.Classification] {
	return resolve(ctx, c.r, llm.TaskClassify,
		func(ctx context.Context, client llm.LLMClient) (query.Classification, error) {
			resp, err := client.Generate(ctx, llm.GenerateRequest{
				Task:         llm.TaskClassify,
				SystemPrompt: classifySystemPrompt,
				UserPrompt:   fmt.Sprintf(classifyPromptTemplate, text),
			})
			if err != nil {
				return query.Classification{}, err
			}
			out, err := llm.ExtractJSON[classifyOutput](resp.Text, validateClassifyOutput)
			if err != nil {
				return query.Classification{}, err
			}
			return query.Classification{
				Intent: query.Intent(out.Intent),
				Parameters: query.Parameters{
					Category:   domain.CompetencyCategory(out.Parameters.Category),
					Department: strings.TrimSpace(out.Parameters.Department),
					Competency: strings.TrimSpace(out.Parameters.Competency),
				},
			}, nil
		},
		func() query.Classification { return query.ClassifyKeywords(text) },
	)
}

// validateClassifyOutput rejects unknown intents and categories so the
// keyword rules take over instead of a silent "general".
func validateClassifyOutput(o classifyOutput) error {
	if !query.IsValidIntent(query.Intent(o.Intent)) {
		return fmt.Errorf("unknown intent: %q", o.Intent)
	}
	if c := domain.CompetencyCategory(o.Parameters.Category); c != "" && !c.Valid() {
		return fmt.Errorf("unknown category: %q", o.Parameters.Category)
	}
	return nil
}
