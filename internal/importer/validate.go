package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateDatasetSchema checks the dataset for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateDatasetSchema(schema *DatasetSchema) []error {
	var errs []error

	courseIDs := make(map[string]bool)
	errs = append(errs, validateCourses(schema.Courses, courseIDs)...)

	employeeIDs := make(map[string]bool)
	for i := range schema.Employees {
		errs = append(errs, validateEmployee(&schema.Employees[i], i, courseIDs, employeeIDs)...)
	}
	if len(schema.Employees) == 0 {
		errs = append(errs, fmt.Errorf("employees: at least one employee is required"))
	}
	return errs
}

func validateCourses(courses []CourseImport, ids map[string]bool) []error {
	var errs []error
	for i, c := range courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate %q", prefix, c.ID))
		}
		ids[c.ID] = true
		if c.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if !domain.CompetencyCategory(c.Category).Valid() {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, c.Category))
		}
		if !domain.Difficulty(c.Difficulty).Valid() {
			errs = append(errs, fmt.Errorf("%s.difficulty: invalid value %q", prefix, c.Difficulty))
		}
		if c.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s.duration must not be negative", prefix))
		}
	}
	return errs
}

func validateEmployee(e *EmployeeImport, idx int, courseIDs, employeeIDs map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("employees[%d]", idx)
	if e.ID != "" {
		prefix = fmt.Sprintf("employees[%s]", e.ID)
	}

	if e.ID == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	} else if employeeIDs[e.ID] {
		errs = append(errs, fmt.Errorf("%s.id: duplicate %q", prefix, e.ID))
	}
	employeeIDs[e.ID] = true

	if e.FirstName == "" || e.LastName == "" {
		errs = append(errs, fmt.Errorf("%s: first_name and last_name are required", prefix))
	}
	if e.Department == "" {
		errs = append(errs, fmt.Errorf("%s.department is required", prefix))
	}
	errs = append(errs, validateDate(prefix+".hire_date", e.HireDate)...)
	if !domain.RiskLevel(e.RiskLevel).Valid() {
		errs = append(errs, fmt.Errorf("%s.risk_level: invalid value %q", prefix, e.RiskLevel))
	}
	for i, v := range e.PerformanceTrend {
		if v < 0 || v > 5 {
			errs = append(errs, fmt.Errorf("%s.performance_trend[%d]: %v outside 0..5", prefix, i, v))
		}
	}

	for i, a := range e.Appraisals {
		ap := fmt.Sprintf("%s.appraisals[%d]", prefix, i)
		if a.OverallScore < 1 || a.OverallScore > 5 {
			errs = append(errs, fmt.Errorf("%s.overall_score: %d outside 1..5", ap, a.OverallScore))
		}
		errs = append(errs, validateDate(ap+".date", a.Date)...)
		errs = append(errs, validateCompetencySet(ap, a.Profile, a.Competencies)...)
	}

	for i, t := range e.TrainingTracks {
		tp := fmt.Sprintf("%s.training_tracks[%d]", prefix, i)
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", tp))
		}
		if !domain.Priority(t.Priority).Valid() {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", tp, t.Priority))
		}
		if !domain.CompletionStatus(t.Status).Valid() {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", tp, t.Status))
		}
		if t.Progress < 0 || t.Progress > 100 {
			errs = append(errs, fmt.Errorf("%s.progress: %v outside 0..100", tp, t.Progress))
		}
		errs = append(errs, validateCourseRefs(tp+".courses", t.Courses, courseIDs)...)
	}

	if ga := e.GapAnalysis; ga != nil {
		gp := prefix + ".gap_analysis"
		if !domain.Priority(ga.Priority).Valid() {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", gp, ga.Priority))
		}
		errs = append(errs, validateCourseRefs(gp+".recommended_courses", ga.RecommendedCourses, courseIDs)...)
		errs = append(errs, validateCompetencySet(gp, ga.Profile, ga.Competencies)...)
	}
	return errs
}

func validateCompetencySet(prefix string, p *ProfileImport, comps []CompetencyImport) []error {
	var errs []error
	if p != nil && len(comps) > 0 {
		errs = append(errs, fmt.Errorf("%s: use profile or competencies, not both", prefix))
	}
	if p != nil {
		levels := []struct {
			name string
			v    float64
		}{{"technical", p.Technical}, {"leadership", p.Leadership}, {"core", p.Core}}
		for _, l := range levels {
			if l.v < 0 || l.v > 5 {
				errs = append(errs, fmt.Errorf("%s.profile.%s: %v outside 0..5", prefix, l.name, l.v))
			}
		}
	}
	for i, c := range comps {
		cp := fmt.Sprintf("%s.competencies[%d]", prefix, i)
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", cp))
		}
		if !domain.CompetencyCategory(c.Category).Valid() {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", cp, c.Category))
		}
		if c.RequiredLevel < 1 || c.RequiredLevel > 5 || c.CurrentLevel < 0 || c.CurrentLevel > 5 {
			errs = append(errs, fmt.Errorf("%s: levels outside the 5-point scale", cp))
		}
	}
	return errs
}

func validateCourseRefs(field string, refs []string, courseIDs map[string]bool) []error {
	var errs []error
	for _, ref := range refs {
		if !courseIDs[ref] {
			errs = append(errs, fmt.Errorf("%s: unknown course %q", field, ref))
		}
	}
	return errs
}

func validateDate(field, value string) []error {
	if value == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return nil
}
