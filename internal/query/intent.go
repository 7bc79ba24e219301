package query

import "github.com/alexanderramin/hrpulse/internal/domain"

// Intent names a question the executor knows how to answer.
type Intent string

const (
	IntentCompletedCourses   Intent = "completed_courses"
	IntentTeamLeaders        Intent = "team_leaders"
	IntentGaps               Intent = "gaps"
	IntentAtRisk             Intent = "at_risk"
	IntentHighPotential      Intent = "high_potential"
	IntentByDepartment       Intent = "by_department"
	IntentTrainingStats      Intent = "training_stats"
	IntentIncompleteTraining Intent = "incomplete_training"
	IntentGeneral            Intent = "general"
)

var validIntents = map[Intent]bool{
	IntentCompletedCourses: true, IntentTeamLeaders: true, IntentGaps: true,
	IntentAtRisk: true, IntentHighPotential: true, IntentByDepartment: true,
	IntentTrainingStats: true, IntentIncompleteTraining: true, IntentGeneral: true,
}

// IsValidIntent returns true if the given name is a known intent.
func IsValidIntent(name Intent) bool {
	return validIntents[name]
}

// Parameters are the optional filters extracted alongside an intent.
// Zero values mean "not given".
type Parameters struct {
	Category   domain.CompetencyCategory `json:"category,omitempty"`
	Department string                    `json:"department,omitempty"`
	Competency string                    `json:"competency,omitempty"`
}

// Classification is the output of either classifier strategy.
type Classification struct {
	Intent     Intent     `json:"intent"`
	Parameters Parameters `json:"parameters"`
}

// GeneralHelpMessage answers queries no intent matched.
const GeneralHelpMessage = "I can help you with questions about employees, training, gaps, team leaders, and more. Try asking: 'Who finished their courses?' or 'Who can be a team leader?'"
