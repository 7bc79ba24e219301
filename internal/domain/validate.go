package domain

import "fmt"

// Validate checks the closed enumerations and ranges of an employee record.
// It returns every problem found; an empty slice means the record is valid.
func (e *Employee) Validate() []string {
	var problems []string
	if e.ID == "" {
		problems = append(problems, "employee id is empty")
	}
	if !e.RiskLevel.Valid() {
		problems = append(problems, fmt.Sprintf("%s: invalid risk level %q", e.ID, e.RiskLevel))
	}
	for _, a := range e.Appraisals {
		if !a.ValidScore() {
			problems = append(problems, fmt.Sprintf("%s/%s: overall score %d outside 1..5", e.ID, a.ID, a.OverallScore))
		}
		for _, c := range a.Competencies {
			if !c.Category.Valid() {
				problems = append(problems, fmt.Sprintf("%s/%s: invalid competency category %q", e.ID, c.ID, c.Category))
			}
		}
	}
	for _, t := range e.TrainingTracks {
		if !t.Status.Valid() {
			problems = append(problems, fmt.Sprintf("%s/%s: invalid completion status %q", e.ID, t.ID, t.Status))
		}
		if !t.Priority.Valid() {
			problems = append(problems, fmt.Sprintf("%s/%s: invalid priority %q", e.ID, t.ID, t.Priority))
		}
		if t.Progress < 0 || t.Progress > 100 {
			problems = append(problems, fmt.Sprintf("%s/%s: progress %.0f outside 0..100", e.ID, t.ID, t.Progress))
		}
		// Status and progress are set independently; flag the inconsistent pair.
		if t.Progress == 100 && t.Status != StatusCompleted {
			problems = append(problems, fmt.Sprintf("%s/%s: progress is 100 but status is %q", e.ID, t.ID, t.Status))
		}
	}
	if e.GapAnalysis != nil && !e.GapAnalysis.Priority.Valid() {
		problems = append(problems, fmt.Sprintf("%s: invalid gap priority %q", e.ID, e.GapAnalysis.Priority))
	}
	return problems
}
