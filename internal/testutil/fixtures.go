package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

var testIDCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%03d", prefix, testIDCounter.Add(1))
}

// Employee options
type EmployeeOption func(*domain.Employee)

func WithName(first, last string) EmployeeOption {
	return func(e *domain.Employee) {
		e.FirstName = first
		e.LastName = last
	}
}

func WithDepartment(dept string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Department = dept
	}
}

func WithRole(role string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Role = role
	}
}

func WithHireDate(d time.Time) EmployeeOption {
	return func(e *domain.Employee) {
		e.HireDate = d
	}
}

func WithRisk(r domain.RiskLevel) EmployeeOption {
	return func(e *domain.Employee) {
		e.RiskLevel = r
	}
}

func WithHighPotential() EmployeeOption {
	return func(e *domain.Employee) {
		e.IsHighPotential = true
	}
}

func WithTrend(points ...float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.PerformanceTrend = points
	}
}

// WithAppraisal appends an appraisal; the last one added is the latest.
func WithAppraisal(score int, competencies ...domain.Competency) EmployeeOption {
	return func(e *domain.Employee) {
		e.Appraisals = append(e.Appraisals, domain.Appraisal{
			ID:           nextID("appr"),
			EmployeeID:   e.ID,
			Period:       "2024-Q1",
			OverallScore: score,
			Competencies: competencies,
			Date:         time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		})
	}
}

func WithTrack(status domain.CompletionStatus, progress float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.TrainingTracks = append(e.TrainingTracks, NewTestTrack(status, progress))
	}
}

func WithGapAnalysis(priority domain.Priority, gaps ...domain.Competency) EmployeeOption {
	return func(e *domain.Employee) {
		e.GapAnalysis = &domain.GapAnalysis{
			EmployeeID:      e.ID,
			CompetencyGaps:  gaps,
			Priority:        priority,
			EstimatedImpact: 50,
			Rationale:       "stored rationale",
		}
	}
}

// NewTestEmployee builds an employee with no appraisals, tracks or gaps.
func NewTestEmployee(id string, opts ...EmployeeOption) *domain.Employee {
	if id == "" {
		id = nextID("emp")
	}
	e := &domain.Employee{
		ID:         id,
		FirstName:  "Test",
		LastName:   id,
		Email:      id + "@company.com",
		Department: "Engineering",
		Role:       "Software Engineer",
		Level:      "Mid",
		HireDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		RiskLevel:  domain.RiskLow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestCompetency(name string, category domain.CompetencyCategory, required, current float64) domain.Competency {
	return domain.Competency{
		ID:            nextID("comp"),
		Name:          name,
		Category:      category,
		RequiredLevel: required,
		CurrentLevel:  current,
	}
}

func NewTestTrack(status domain.CompletionStatus, progress float64) domain.TrainingTrack {
	id := nextID("track")
	return domain.TrainingTrack{
		ID:       id,
		Name:     "Track " + id,
		Priority: domain.PriorityMedium,
		Status:   status,
		Progress: progress,
	}
}
