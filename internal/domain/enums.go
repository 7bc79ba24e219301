package domain

type CompetencyCategory string

const (
	CategoryTechnical  CompetencyCategory = "Technical"
	CategoryLeadership CompetencyCategory = "Leadership"
	CategoryCore       CompetencyCategory = "Core"
)

func (c CompetencyCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryLeadership, CategoryCore:
		return true
	default:
		return false
	}
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	default:
		return false
	}
}

// Priority is shared by training tracks and gap analyses.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

type CompletionStatus string

const (
	StatusNotStarted CompletionStatus = "Not Started"
	StatusInProgress CompletionStatus = "In Progress"
	StatusCompleted  CompletionStatus = "Completed"
)

func (s CompletionStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// PerformanceCategory is the four-step ladder derived from an appraisal score.
type PerformanceCategory string

const (
	CategoryElitePerformer    PerformanceCategory = "Elite Performer"
	CategoryHighAchiever      PerformanceCategory = "High Achiever"
	CategorySolidContributor  PerformanceCategory = "Solid Contributor"
	CategoryNeedsIntervention PerformanceCategory = "Needs Intervention"
)

// PerformanceCategories lists the ladder from highest to lowest.
var PerformanceCategories = []PerformanceCategory{
	CategoryElitePerformer,
	CategoryHighAchiever,
	CategorySolidContributor,
	CategoryNeedsIntervention,
}

// PerformanceLevel is the three-tier performance axis of the nine-box grid.
type PerformanceLevel string

const (
	PerformanceExceeds PerformanceLevel = "Exceeds"
	PerformanceMeets   PerformanceLevel = "Meets"
	PerformanceBelow   PerformanceLevel = "Below"
)

// PotentialLevel is the three-tier potential axis of the nine-box grid.
type PotentialLevel string

const (
	PotentialHigh   PotentialLevel = "High"
	PotentialMedium PotentialLevel = "Medium"
	PotentialLow    PotentialLevel = "Low"
)

func (p PotentialLevel) Valid() bool {
	switch p {
	case PotentialHigh, PotentialMedium, PotentialLow:
		return true
	default:
		return false
	}
}

type MessageType string

const (
	MessageCelebration  MessageType = "Celebration"
	MessageMotivation   MessageType = "Motivation"
	MessageNotification MessageType = "Notification"
)

func (m MessageType) Valid() bool {
	switch m {
	case MessageCelebration, MessageMotivation, MessageNotification:
		return true
	default:
		return false
	}
}

type MessageTone string

const (
	ToneProfessional MessageTone = "Professional"
	ToneFriendly     MessageTone = "Friendly"
	ToneMotivational MessageTone = "Motivational"
	ToneCelebratory  MessageTone = "Celebratory"
	ToneSupportive   MessageTone = "Supportive"
)

// MessageTones is the canonical tone order used by forms and flag help.
var MessageTones = []MessageTone{
	ToneProfessional, ToneFriendly, ToneMotivational, ToneCelebratory, ToneSupportive,
}

func (t MessageTone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneMotivational, ToneCelebratory, ToneSupportive:
		return true
	default:
		return false
	}
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)
