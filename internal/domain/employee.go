package domain

import (
	"fmt"
	"time"
)

type Competency struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Category      CompetencyCategory `json:"category"`
	Description   string             `json:"description,omitempty"`
	RequiredLevel float64            `json:"requiredLevel"`
	CurrentLevel  float64            `json:"currentLevel"`
}

// Gap is RequiredLevel - CurrentLevel. It is negative when the employee
// exceeds the requirement.
func (c Competency) Gap() float64 {
	return c.RequiredLevel - c.CurrentLevel
}

type Appraisal struct {
	ID           string       `json:"id"`
	EmployeeID   string       `json:"employeeId"`
	Period       string       `json:"period"`
	OverallScore int          `json:"overallScore"`
	Competencies []Competency `json:"competencies"`
	Feedback     string       `json:"feedback,omitempty"`
	ReviewerID   string       `json:"reviewerId,omitempty"`
	Date         time.Time    `json:"date"`
}

// ValidScore reports whether OverallScore is in the closed range 1..5.
func (a Appraisal) ValidScore() bool {
	return a.OverallScore >= 1 && a.OverallScore <= 5
}

type Course struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Category       CompetencyCategory `json:"category"`
	Description    string             `json:"description,omitempty"`
	DurationHours  int                `json:"duration"`
	Difficulty     Difficulty         `json:"difficulty"`
	Skills         []string           `json:"skills,omitempty"`
	CompletionRate *float64           `json:"completionRate,omitempty"`
}

type TrainingTrack struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Courses           []Course         `json:"courses"`
	EstimatedDuration int              `json:"estimatedDuration"`
	Priority          Priority         `json:"priority"`
	Status            CompletionStatus `json:"completionStatus"`
	Progress          float64          `json:"progress"`
}

type GapAnalysis struct {
	EmployeeID         string       `json:"employeeId"`
	CompetencyGaps     []Competency `json:"competencyGaps"`
	RecommendedCourses []Course     `json:"recommendedCourses"`
	Priority           Priority     `json:"priority"`
	EstimatedImpact    float64      `json:"estimatedImpact"`
	Rationale          string       `json:"rationale"`
}

type Employee struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Email            string          `json:"email"`
	Department       string          `json:"department"`
	Role             string          `json:"role"`
	Level            string          `json:"level"`
	HireDate         time.Time       `json:"hireDate"`
	ManagerID        string          `json:"managerId,omitempty"`
	Appraisals       []Appraisal     `json:"appraisals"`
	TrainingTracks   []TrainingTrack `json:"trainingTracks"`
	GapAnalysis      *GapAnalysis    `json:"gapAnalysis,omitempty"`
	PerformanceTrend []float64       `json:"performanceTrend"`
	RiskLevel        RiskLevel       `json:"riskLevel"`
	IsHighPotential  bool            `json:"isHighPotential"`
}

func (e *Employee) FullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

// LatestAppraisal returns the most recent appraisal (the last one), or nil.
func (e *Employee) LatestAppraisal() *Appraisal {
	if len(e.Appraisals) == 0 {
		return nil
	}
	return &e.Appraisals[len(e.Appraisals)-1]
}

// LatestScore returns the latest overall score, or 0 without appraisals.
func (e *Employee) LatestScore() int {
	if a := e.LatestAppraisal(); a != nil {
		return a.OverallScore
	}
	return 0
}

// AverageTrainingProgress is the mean progress over all tracks; 0 with none.
func (e *Employee) AverageTrainingProgress() float64 {
	return averageProgress(e.TrainingTracks)
}

// TracksWithStatus returns the tracks in the given completion status.
func (e *Employee) TracksWithStatus(status CompletionStatus) []TrainingTrack {
	var out []TrainingTrack
	for _, t := range e.TrainingTracks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// IncompleteTracks returns every track that is not Completed.
func (e *Employee) IncompleteTracks() []TrainingTrack {
	var out []TrainingTrack
	for _, t := range e.TrainingTracks {
		if t.Status != StatusCompleted {
			out = append(out, t)
		}
	}
	return out
}

func averageProgress(tracks []TrainingTrack) float64 {
	if len(tracks) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tracks {
		sum += t.Progress
	}
	return sum / float64(len(tracks))
}

// AverageProgress is the mean progress of the given tracks; 0 when empty.
func AverageProgress(tracks []TrainingTrack) float64 {
	return averageProgress(tracks)
}
