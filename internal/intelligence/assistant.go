package intelligence

import (
	"context"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/query"
)

// Answer is one full chatbot turn.
type Answer struct {
	Question         string               `json:"question"`
	Classification   query.Classification `json:"classification"`
	ClassifierSource Source               `json:"classifierSource"`
	Result           query.Result         `json:"result"`
	Response         string               `json:"response"`
	ResponseSource   Source               `json:"responseSource"`
}

// Assistant runs classify, execute and format for one question.
type Assistant struct {
	classifier *QueryClassifier
	formatter  *ResponseFormatter
	recorder   Recorder
}

func NewAssistant(d Deps) *Assistant {
	return &Assistant{
		classifier: NewQueryClassifier(d),
		formatter:  NewResponseFormatter(d),
		recorder:   d.Recorder,
	}
}

// Ask never fails: every stage has a deterministic fallback.
func (a *Assistant) Ask(ctx context.Context, question string, employees []*domain.Employee) Answer {
	classified := a.classifier.Classify(ctx, question)
	c := classified.Value
	result := query.Execute(c.Intent, c.Parameters, employees)
	formatted := a.formatter.Format(ctx, question, result)

	if a.recorder != nil {
		a.recorder.RecordQuery(string(c.Intent), string(classified.Source))
	}
	return Answer{
		Question:         question,
		Classification:   c,
		ClassifierSource: classified.Source,
		Result:           result,
		Response:         formatted.Value,
		ResponseSource:   formatted.Source,
	}
}
