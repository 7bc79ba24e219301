package importer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

// Dataset is the converted content of a dataset file.
type Dataset struct {
	Employees []*domain.Employee
	Courses   []domain.Course
}

// profileCompetency describes one of the six competencies a profile expands
// into. Current is the category level plus offset.
type profileCompetency struct {
	slug        string
	name        string
	category    domain.CompetencyCategory
	description string
	required    float64
	offset      float64
}

var profileCompetencies = []profileCompetency{
	{"technical-architecture", "Technical Architecture", domain.CategoryTechnical, "Ability to design scalable technical solutions", 5, 0},
	{"code-quality", "Code Quality & Best Practices", domain.CategoryTechnical, "Writing maintainable, high-quality code", 4, -0.3},
	{"team-leadership", "Team Leadership", domain.CategoryLeadership, "Leading and mentoring team members", 4, 0},
	{"strategic-vision", "Strategic Vision", domain.CategoryLeadership, "Developing and communicating strategic direction", 3, -0.4},
	{"communication", "Communication", domain.CategoryCore, "Effective verbal and written communication", 4, 0},
	{"problem-solving", "Problem Solving", domain.CategoryCore, "Analytical thinking and problem-solving abilities", 4, 0.2},
}

// ExpandProfile turns a profile into its six competencies. IDs are derived
// from ownerID so conversion is deterministic.
func ExpandProfile(ownerID string, p ProfileImport) []domain.Competency {
	out := make([]domain.Competency, 0, len(profileCompetencies))
	for _, pc := range profileCompetencies {
		var base float64
		switch pc.category {
		case domain.CategoryTechnical:
			base = p.Technical
		case domain.CategoryLeadership:
			base = p.Leadership
		case domain.CategoryCore:
			base = p.Core
		}
		out = append(out, domain.Competency{
			ID:            ownerID + "-" + pc.slug,
			Name:          pc.name,
			Category:      pc.category,
			Description:   pc.description,
			RequiredLevel: pc.required,
			CurrentLevel:  roundTenth(base + pc.offset),
		})
	}
	return out
}

// Convert transforms a validated DatasetSchema into domain objects.
// Call ValidateDatasetSchema first; Convert assumes the schema is valid.
func Convert(schema *DatasetSchema) (*Dataset, error) {
	catalog := make(map[string]domain.Course, len(schema.Courses))
	courses := make([]domain.Course, 0, len(schema.Courses))
	for _, c := range schema.Courses {
		course := domain.Course{
			ID:             c.ID,
			Title:          c.Title,
			Category:       domain.CompetencyCategory(c.Category),
			Description:    c.Description,
			DurationHours:  c.Duration,
			Difficulty:     domain.Difficulty(c.Difficulty),
			Skills:         c.Skills,
			CompletionRate: c.CompletionRate,
		}
		catalog[c.ID] = course
		courses = append(courses, course)
	}

	employees := make([]*domain.Employee, 0, len(schema.Employees))
	for _, ei := range schema.Employees {
		e, err := convertEmployee(ei, catalog)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", ei.ID, err)
		}
		employees = append(employees, e)
	}
	return &Dataset{Employees: employees, Courses: courses}, nil
}

func convertEmployee(ei EmployeeImport, catalog map[string]domain.Course) (*domain.Employee, error) {
	hire, err := time.Parse(dateLayout, ei.HireDate)
	if err != nil {
		return nil, fmt.Errorf("parsing hire_date: %w", err)
	}

	e := &domain.Employee{
		ID:               ei.ID,
		FirstName:        ei.FirstName,
		LastName:         ei.LastName,
		Email:            ei.Email,
		Department:       ei.Department,
		Role:             ei.Role,
		Level:            ei.Level,
		HireDate:         hire,
		ManagerID:        ei.ManagerID,
		PerformanceTrend: append([]float64(nil), ei.PerformanceTrend...),
		RiskLevel:        domain.RiskLevel(ei.RiskLevel),
		IsHighPotential:  ei.HighPotential,
	}

	for i, ai := range ei.Appraisals {
		date, err := time.Parse(dateLayout, ai.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing appraisals[%d].date: %w", i, err)
		}
		id := ai.ID
		if id == "" {
			id = fmt.Sprintf("%s-appr-%d", ei.ID, i+1)
		}
		e.Appraisals = append(e.Appraisals, domain.Appraisal{
			ID:           id,
			EmployeeID:   ei.ID,
			Period:       ai.Period,
			OverallScore: ai.OverallScore,
			Competencies: competencySet(id, ai.Profile, ai.Competencies),
			Feedback:     ai.Feedback,
			ReviewerID:   ai.ReviewerID,
			Date:         date,
		})
	}

	for i, ti := range ei.TrainingTracks {
		id := ti.ID
		if id == "" {
			id = fmt.Sprintf("%s-track-%d", ei.ID, i+1)
		}
		e.TrainingTracks = append(e.TrainingTracks, domain.TrainingTrack{
			ID:                id,
			Name:              ti.Name,
			Courses:           lookupCourses(ti.Courses, catalog),
			EstimatedDuration: ti.EstimatedDuration,
			Priority:          domain.Priority(ti.Priority),
			Status:            domain.CompletionStatus(ti.Status),
			Progress:          ti.Progress,
		})
	}

	if gi := ei.GapAnalysis; gi != nil {
		comps := competencySet(ei.ID+"-gap", gi.Profile, gi.Competencies)
		if gi.Profile == nil && len(gi.Competencies) == 0 {
			if latest := e.LatestAppraisal(); latest != nil {
				comps = latest.Competencies
			}
		}
		e.GapAnalysis = &domain.GapAnalysis{
			EmployeeID:         ei.ID,
			CompetencyGaps:     scoring.PositiveGaps(comps),
			RecommendedCourses: lookupCourses(gi.RecommendedCourses, catalog),
			Priority:           domain.Priority(gi.Priority),
			EstimatedImpact:    gi.EstimatedImpact,
			Rationale:          strings.TrimSpace(gi.Rationale),
		}
	}
	return e, nil
}

func competencySet(ownerID string, p *ProfileImport, comps []CompetencyImport) []domain.Competency {
	if p != nil {
		return ExpandProfile(ownerID, *p)
	}
	out := make([]domain.Competency, 0, len(comps))
	for i, c := range comps {
		id := c.ID
		if id == "" {
			id = fmt.Sprintf("%s-comp-%d", ownerID, i+1)
		}
		out = append(out, domain.Competency{
			ID:            id,
			Name:          c.Name,
			Category:      domain.CompetencyCategory(c.Category),
			Description:   c.Description,
			RequiredLevel: c.RequiredLevel,
			CurrentLevel:  c.CurrentLevel,
		})
	}
	return out
}

func lookupCourses(ids []string, catalog map[string]domain.Course) []domain.Course {
	out := make([]domain.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := catalog[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
