package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/llm"
)

// MessageRequest asks for one ghostwriter message.
type MessageRequest struct {
	Type     domain.MessageType
	Tone     domain.MessageTone
	Employee *domain.Employee
	Context  domain.MessageContext
}

// MessageService drafts celebration, motivation and review-nudge messages.
type MessageService struct {
	r runner
}

func NewMessageService(d Deps) *MessageService {
	return &MessageService{r: newRunner(d)}
}

type messageOutput struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	AIRationale string `json:"aiRationale"`
}

func validateMessageOutput(out messageOutput) error {
	if strings.TrimSpace(out.Subject) == "" || strings.TrimSpace(out.Body) == "" {
		return errors.New("subject and body are required")
	}
	return nil
}

// Generate drafts a message. Model output missing a subject or body is
// discarded in favor of the tone template.
func (s *MessageService) Generate(ctx context.Context, req MessageRequest) Outcome[domain.MessageTemplate] {
	if req.Tone == "" {
		req.Tone = defaultTone(req.Type)
	}
	return resolve(ctx, s.r, llm.TaskMessage,
		func(ctx context.Context, client llm.LLMClient) (domain.MessageTemplate, error) {
			resp, err := client.Generate(ctx, llm.GenerateRequest{
				Task:         llm.TaskMessage,
				SystemPrompt: messageSystemPrompt,
				UserPrompt:   messagePrompt(req),
			})
			if err != nil {
				return domain.MessageTemplate{}, err
			}
			out, err := llm.ExtractJSON[messageOutput](resp.Text, validateMessageOutput)
			if err != nil {
				return domain.MessageTemplate{}, err
			}
			if strings.TrimSpace(out.AIRationale) == "" {
				out.AIRationale = fmt.Sprintf("Generated %s message using AI.", req.Type)
			}
			return s.stamp(req, out.Subject, out.Body, out.AIRationale), nil
		},
		func() domain.MessageTemplate {
			subject, body, rationale := TemplateMessage(req)
			return s.stamp(req, subject, body, rationale)
		},
	)
}

func (s *MessageService) stamp(req MessageRequest, subject, body, rationale string) domain.MessageTemplate {
	return domain.MessageTemplate{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Tone:        req.Tone,
		RecipientID: req.Employee.ID,
		Subject:     subject,
		Body:        body,
		GeneratedAt: s.r.now(),
		AIRationale: rationale,
	}
}

func messagePrompt(req MessageRequest) string {
	e := req.Employee
	c := req.Context
	tone := strings.ToLower(string(req.Tone))

	var lead string
	switch req.Type {
	case domain.MessageCelebration:
		lead = fmt.Sprintf("Generate a %s celebration message for %s who has closed their %s gap. Make it warm, encouraging, and recognize their achievement.",
			tone, e.FullName(), or(c.GapName, "competency"))
	case domain.MessageMotivation:
		progress := 0.0
		if c.Progress != nil {
			progress = *c.Progress
		}
		lead = fmt.Sprintf("Generate a %s motivation message for %s who is %s%% through %s. Encourage them to finish strong.",
			tone, e.FullName(), formatNumber(progress), or(c.CourseName, "their training"))
	default:
		lead = fmt.Sprintf("Generate a %s notification message for %s about their upcoming review on %s. Mention that completing %s would strengthen their case.",
			tone, e.FullName(), or(c.ReviewDate, "soon"), or(strings.Join(c.IncompleteTracks, ", "), "training tracks"))
	}

	var b strings.Builder
	b.WriteString(lead)
	b.WriteString("\n\nEmployee Context:\n")
	fmt.Fprintf(&b, "- Name: %s\n", e.FullName())
	fmt.Fprintf(&b, "- Role: %s\n", e.Role)
	fmt.Fprintf(&b, "- Department: %s\n", e.Department)
	fmt.Fprintf(&b, "- Level: %s\n\n", e.Level)
	b.WriteString(messageInstructions)
	return b.String()
}

func defaultTone(t domain.MessageType) domain.MessageTone {
	switch t {
	case domain.MessageCelebration:
		return domain.ToneCelebratory
	case domain.MessageMotivation:
		return domain.ToneMotivational
	default:
		return domain.ToneProfessional
	}
}

func or(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
