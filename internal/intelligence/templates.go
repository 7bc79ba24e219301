package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

type toneTemplate struct {
	subject string
	body    string
}

// TemplateMessage renders the deterministic message for req. Tones without
// a template for the type use the type's default tone wording.
func TemplateMessage(req MessageRequest) (subject, body, rationale string) {
	e := req.Employee
	tone := req.Tone
	if tone == "" {
		tone = defaultTone(req.Type)
	}

	switch req.Type {
	case domain.MessageCelebration:
		gap := celebrationGap(e, req.Context)
		t := pickTone(celebrationTemplates(e.FirstName, gap), tone, domain.ToneCelebratory)
		return t.subject, t.body, fmt.Sprintf(
			"Generated celebration message for %s closing their %s competency gap. Tone: %s. This recognizes their achievement and reinforces positive behavior.",
			e.FullName(), gap, tone)

	case domain.MessageMotivation:
		course, progress := motivationCourse(e, req.Context)
		t := pickTone(motivationTemplates(e.FirstName, course, progress), tone, domain.ToneMotivational)
		return t.subject, t.body, fmt.Sprintf(
			"Generated motivation message for %s at %s%% completion of %s. Tone: %s. This encourages completion and reinforces the value of finishing the training track.",
			e.FullName(), progress, course, tone)

	default:
		review := or(req.Context.ReviewDate, "in the coming months")
		tracks := nudgeTracks(e, req.Context)
		t := pickTone(nudgeTemplates(e.FirstName, review, tracks), tone, domain.ToneProfessional)
		return t.subject, t.body, fmt.Sprintf(
			"Generated nudge message for %s regarding upcoming review %s. Incomplete tracks: %s. Tone: %s. This encourages timely completion to strengthen their review case.",
			e.FullName(), review, tracks, tone)
	}
}

func pickTone(templates map[domain.MessageTone]toneTemplate, tone, def domain.MessageTone) toneTemplate {
	if t, ok := templates[tone]; ok {
		return t
	}
	return templates[def]
}

func celebrationGap(e *domain.Employee, c domain.MessageContext) string {
	if c.GapName != "" {
		return c.GapName
	}
	if e.GapAnalysis != nil && len(e.GapAnalysis.CompetencyGaps) > 0 {
		return e.GapAnalysis.CompetencyGaps[0].Name
	}
	return "skill gap"
}

func motivationCourse(e *domain.Employee, c domain.MessageContext) (course, progress string) {
	course = c.CourseName
	var p float64
	if len(e.TrainingTracks) > 0 {
		track := e.TrainingTracks[0]
		p = track.Progress
		if course == "" && len(track.Courses) > 0 {
			course = track.Courses[0].Title
		}
	}
	if c.Progress != nil {
		p = *c.Progress
	}
	return or(course, "your training track"), formatNumber(p)
}

func nudgeTracks(e *domain.Employee, c domain.MessageContext) string {
	names := c.IncompleteTracks
	if len(names) == 0 {
		for _, t := range e.IncompleteTracks() {
			names = append(names, t.Name)
		}
	}
	return or(strings.Join(names, ", "), "your training tracks")
}

func celebrationTemplates(first, gap string) map[domain.MessageTone]toneTemplate {
	return map[domain.MessageTone]toneTemplate{
		domain.ToneCelebratory: {
			subject: fmt.Sprintf("🎉 Congratulations on Closing Your %s!", gap),
			body: fmt.Sprintf(`Hi %s,

Big win! You've closed your %s gap and demonstrated exceptional growth. Your dedication to professional development is truly inspiring.

This achievement positions you well for your next career milestone. Keep up the outstanding work!

Best regards,
HR-OS Pulse Team`, first, gap),
		},
		domain.ToneProfessional: {
			subject: fmt.Sprintf("Achievement: %s Competency Gap Closed", gap),
			body: fmt.Sprintf(`Dear %s,

We are pleased to inform you that you have successfully closed your %s competency gap. This demonstrates your commitment to continuous improvement and professional development.

Your progress has been noted and will be considered in future career planning discussions.

Regards,
HR-OS Pulse`, first, gap),
		},
		domain.ToneFriendly: {
			subject: fmt.Sprintf("Way to go, %s! 🎊", first),
			body: fmt.Sprintf(`Hey %s,

Just wanted to give you a shout-out - you've closed your %s gap! That's awesome work and shows real dedication to your growth.

Keep crushing it!

Cheers,
HR Team`, first, gap),
		},
	}
}

func motivationTemplates(first, course, progress string) map[domain.MessageTone]toneTemplate {
	return map[domain.MessageTone]toneTemplate{
		domain.ToneMotivational: {
			subject: fmt.Sprintf("You're %s%% There - Finish Strong! 💪", progress),
			body: fmt.Sprintf(`Hi %s,

We noticed you're %s%% through %s. You're so close to the finish line!

Finishing strong will unlock your next level and demonstrate your commitment to growth. You've got this!

Let's push through together.

Best,
HR-OS Pulse Team`, first, progress, course),
		},
		domain.ToneSupportive: {
			subject: fmt.Sprintf("Supporting Your Journey: %s", course),
			body: fmt.Sprintf(`Dear %s,

We see you're making great progress on %s (%s%% complete). We're here to support you in completing this important training.

If you need any assistance or have questions, please don't hesitate to reach out.

Warm regards,
HR-OS Pulse`, first, course, progress),
		},
		domain.ToneProfessional: {
			subject: fmt.Sprintf("Training Progress Update: %s", course),
			body: fmt.Sprintf(`Dear %s,

This is a reminder that you are currently %s%% through %s. Completing this training track is important for your professional development and career progression.

Please continue your progress to meet the completion deadline.

Regards,
HR-OS Pulse`, first, progress, course),
		},
	}
}

func nudgeTemplates(first, review, tracks string) map[domain.MessageTone]toneTemplate {
	return map[domain.MessageTone]toneTemplate{
		domain.ToneProfessional: {
			subject: "Upcoming Review: Complete Your Training Tracks",
			body: fmt.Sprintf(`Dear %s,

Your annual review is coming up %s. Closing your %s now will strengthen your promotion case and demonstrate your commitment to professional growth.

We recommend prioritizing completion of these tracks before your review period.

Best regards,
HR-OS Pulse`, first, review, tracks),
		},
		domain.ToneSupportive: {
			subject: "Friendly Reminder: Review Preparation",
			body: fmt.Sprintf(`Hi %s,

Just a friendly reminder that your annual review is %s. Completing your %s would be a great way to showcase your development and strengthen your case for advancement.

We're here to support you in this process.

Warm regards,
HR-OS Pulse Team`, first, review, tracks),
		},
		domain.ToneMotivational: {
			subject: "Level Up Before Your Review! 🚀",
			body: fmt.Sprintf(`Hey %s,

Your annual review is %s - this is your chance to shine! Closing your %s now will give you a strong story to tell about your growth and commitment.

Let's make sure you're positioned for success!

Best,
HR-OS Pulse`, first, review, tracks),
		},
	}
}
