package query

import (
	"testing"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		query  string
		intent Intent
		params Parameters
	}{
		{"Who finished their courses?", IntentCompletedCourses, Parameters{}},
		{"Anyone DONE with training?", IntentCompletedCourses, Parameters{}},
		{"Who can be a team leader?", IntentTeamLeaders, Parameters{}},
		{"who has gaps due to risk", IntentGaps, Parameters{}},
		{"show technical gaps", IntentGaps, Parameters{Category: domain.CategoryTechnical}},
		{"who needs to lead better", IntentGaps, Parameters{Category: domain.CategoryLeadership}},
		{"missing communication skills", IntentGaps, Parameters{Category: domain.CategoryCore}},
		{"who is at risk", IntentAtRisk, Parameters{}},
		{"list high potential people", IntentHighPotential, Parameters{}},
		{"people in department: Sales", IntentByDepartment, Parameters{Department: "Sales"}},
		{"show the engineering department", IntentByDepartment, Parameters{Department: "engineering"}},
		{"department overview", IntentByDepartment, Parameters{Department: "overview"}},
		{"employees by department", IntentByDepartment, Parameters{}},
		{"training stats please", IntentTrainingStats, Parameters{}},
		{"who has incomplete courses", IntentIncompleteTraining, Parameters{}},
		{"hello there", IntentGeneral, Parameters{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ClassifyKeywords(tt.query)
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.params, got.Parameters)
		})
	}
}

func TestClassifyKeywords_RuleOrder(t *testing.T) {
	// "not finished" contains "finished", so rule 1 wins over rule 8.
	assert.Equal(t, IntentCompletedCourses, ClassifyKeywords("who has not finished").Intent)
	// "leadership gaps" hits rule 2 before rule 3.
	assert.Equal(t, IntentTeamLeaders, ClassifyKeywords("leadership gaps").Intent)
	// "incomplete training" hits rule 7 first.
	assert.Equal(t, IntentTrainingStats, ClassifyKeywords("incomplete training").Intent)
}

func TestIsValidIntent(t *testing.T) {
	assert.True(t, IsValidIntent(IntentGeneral))
	assert.True(t, IsValidIntent(IntentIncompleteTraining))
	assert.False(t, IsValidIntent("fire_everyone"))
}
