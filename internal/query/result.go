package query

import (
	"github.com/alexanderramin/hrpulse/internal/domain"
)

// ResultType tells a renderer whether a result is a list or a summary.
type ResultType string

const (
	ResultEmployees ResultType = "employees"
	ResultSummary   ResultType = "summary"
)

// Result is what every query function returns. Message is always a
// deterministic count summary.
type Result struct {
	Type    ResultType     `json:"type"`
	Message string         `json:"message"`
	Matches []Match        `json:"data,omitempty"`
	Stats   *TrainingStats `json:"stats,omitempty"`
}

// Match is one row of an employee-list result.
type Match interface {
	Subject() *domain.Employee
}

type CompletedMatch struct {
	Employee        *domain.Employee       `json:"employee"`
	CompletedTracks []domain.TrainingTrack `json:"completedTracks"`
	Count           int                    `json:"count"`
}

func (m CompletedMatch) Subject() *domain.Employee { return m.Employee }

type LeaderMatch struct {
	Employee         *domain.Employee `json:"employee"`
	PerformanceScore int              `json:"performanceScore"`
	LeadershipScore  float64          `json:"leadershipScore"`
	IsHighPotential  bool             `json:"isHighPotential"`
	Rationale        string           `json:"rationale"`
}

func (m LeaderMatch) Subject() *domain.Employee { return m.Employee }

type GapMatch struct {
	Employee   *domain.Employee    `json:"employee"`
	Gaps       []domain.Competency `json:"gaps"`
	AverageGap float64             `json:"averageGap"`
	Priority   domain.Priority     `json:"priority"`
	Count      int                 `json:"count"`
}

func (m GapMatch) Subject() *domain.Employee { return m.Employee }

type RiskMatch struct {
	Employee         *domain.Employee `json:"employee"`
	RiskLevel        domain.RiskLevel `json:"riskLevel"`
	PerformanceScore int              `json:"performanceScore"`
	PerformanceTrend []float64        `json:"performanceTrend"`
}

func (m RiskMatch) Subject() *domain.Employee { return m.Employee }

type PotentialMatch struct {
	Employee         *domain.Employee `json:"employee"`
	PerformanceScore int              `json:"performanceScore"`
	TrainingProgress float64          `json:"trainingProgress"`
}

func (m PotentialMatch) Subject() *domain.Employee { return m.Employee }

type DepartmentMatch struct {
	Employee *domain.Employee `json:"employee"`
}

func (m DepartmentMatch) Subject() *domain.Employee { return m.Employee }

type IncompleteMatch struct {
	Employee         *domain.Employee       `json:"employee"`
	IncompleteTracks []domain.TrainingTrack `json:"incompleteTracks"`
	AverageProgress  float64                `json:"averageProgress"`
	Count            int                    `json:"count"`
}

func (m IncompleteMatch) Subject() *domain.Employee { return m.Employee }

// TrainingStats aggregates track statuses over a population.
type TrainingStats struct {
	TotalEmployees   int     `json:"totalEmployees"`
	CompletedTracks  int     `json:"completedTracks"`
	InProgressTracks int     `json:"inProgressTracks"`
	NotStartedTracks int     `json:"notStartedTracks"`
	AverageProgress  float64 `json:"averageProgress"`
}

// Subjects returns the employees of a result in result order.
func (r Result) Subjects() []*domain.Employee {
	out := make([]*domain.Employee, 0, len(r.Matches))
	for _, m := range r.Matches {
		out = append(out, m.Subject())
	}
	return out
}
