package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/intelligence"
)

// messageInput is the raw, string-typed content of the message flags or form.
type messageInput struct {
	Type       string
	Tone       string
	Gap        string
	Course     string
	Progress   string
	ReviewDate string
}

var messageTypes = []domain.MessageType{domain.MessageCelebration, domain.MessageMotivation, domain.MessageNotification}

// messageForm collects a messageInput interactively. The tone list starts
// with the type's default so Enter accepts it.
func messageForm(e *domain.Employee, in *messageInput) *huh.Form {
	typeOpts := make([]huh.Option[string], 0, len(messageTypes))
	for _, t := range messageTypes {
		typeOpts = append(typeOpts, huh.NewOption(string(t), string(t)))
	}
	toneOpts := []huh.Option[string]{huh.NewOption("Default for type", "")}
	for _, t := range domain.MessageTones {
		toneOpts = append(toneOpts, huh.NewOption(string(t), string(t)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Message for %s", e.FullName())).
				Description("Celebrate a closed gap, motivate training, or nudge before a review").
				Options(typeOpts...).
				Value(&in.Type),
			huh.NewSelect[string]().
				Title("Tone").
				Options(toneOpts...).
				Value(&in.Tone),
		),
		huh.NewGroup(
			huh.NewInput().Title("Gap closed").Placeholder("leave blank to use the recorded gap").Value(&in.Gap),
			huh.NewInput().Title("Course").Placeholder("leave blank to use the current track").Value(&in.Course),
			huh.NewInput().Title("Progress (%)").Placeholder("0-100").Value(&in.Progress).Validate(validatePercent),
			huh.NewInput().Title("Review date").Placeholder("e.g. March 15").Value(&in.ReviewDate),
		),
	).WithTheme(hrpulseHuhTheme()).WithShowHelp(false)
}

// request turns the input into a MessageRequest for e. Type names match
// case-insensitively.
func (in messageInput) request(e *domain.Employee) (intelligence.MessageRequest, error) {
	req := intelligence.MessageRequest{Employee: e}

	msgType, ok := matchEnum(in.Type, messageTypes)
	if !ok {
		return req, fmt.Errorf("invalid message type %q (want Celebration, Motivation or Notification)", in.Type)
	}
	req.Type = msgType

	if strings.TrimSpace(in.Tone) != "" {
		tone, ok := matchEnum(in.Tone, domain.MessageTones)
		if !ok {
			return req, fmt.Errorf("invalid tone %q", in.Tone)
		}
		req.Tone = tone
	}

	req.Context = domain.MessageContext{
		GapName:    strings.TrimSpace(in.Gap),
		CourseName: strings.TrimSpace(in.Course),
		ReviewDate: strings.TrimSpace(in.ReviewDate),
	}
	if p := strings.TrimSpace(in.Progress); p != "" {
		if err := validatePercent(p); err != nil {
			return req, fmt.Errorf("invalid progress %q: %w", p, err)
		}
		v, _ := strconv.ParseFloat(p, 64)
		req.Context.Progress = &v
	}
	for _, t := range e.IncompleteTracks() {
		req.Context.IncompleteTracks = append(req.Context.IncompleteTracks, t.Name)
	}
	return req, nil
}

func matchEnum[T ~string](s string, values []T) (T, bool) {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
