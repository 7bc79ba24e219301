package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DatasetSchema is the top-level YAML structure of a dataset file.
type DatasetSchema struct {
	Courses   []CourseImport   `yaml:"courses"`
	Employees []EmployeeImport `yaml:"employees"`
}

// CourseImport is one catalog entry. Tracks and gap analyses refer to it by ID.
type CourseImport struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Category       string   `yaml:"category"`
	Description    string   `yaml:"description,omitempty"`
	Duration       int      `yaml:"duration"`
	Difficulty     string   `yaml:"difficulty"`
	Skills         []string `yaml:"skills,omitempty"`
	CompletionRate *float64 `yaml:"completion_rate,omitempty"`
}

// ProfileImport is the compact form of a competency set: one current level
// per category, expanded by ExpandProfile into six competencies.
type ProfileImport struct {
	Technical  float64 `yaml:"technical"`
	Leadership float64 `yaml:"leadership"`
	Core       float64 `yaml:"core"`
}

// CompetencyImport is the explicit form of a competency.
type CompetencyImport struct {
	ID            string  `yaml:"id,omitempty"`
	Name          string  `yaml:"name"`
	Category      string  `yaml:"category"`
	Description   string  `yaml:"description,omitempty"`
	RequiredLevel float64 `yaml:"required_level"`
	CurrentLevel  float64 `yaml:"current_level"`
}

type AppraisalImport struct {
	ID           string             `yaml:"id"`
	Period       string             `yaml:"period"`
	OverallScore int                `yaml:"overall_score"`
	Profile      *ProfileImport     `yaml:"profile,omitempty"`
	Competencies []CompetencyImport `yaml:"competencies,omitempty"`
	Feedback     string             `yaml:"feedback,omitempty"`
	ReviewerID   string             `yaml:"reviewer_id,omitempty"`
	Date         string             `yaml:"date"`
}

type TrackImport struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	Courses           []string `yaml:"courses"`
	EstimatedDuration int      `yaml:"estimated_duration"`
	Priority          string   `yaml:"priority"`
	Status            string   `yaml:"status"`
	Progress          float64  `yaml:"progress"`
}

// GapAnalysisImport lists competencies by profile or explicitly. With
// neither, the latest appraisal's competencies are used. Only positive gaps
// are kept.
type GapAnalysisImport struct {
	Priority           string             `yaml:"priority"`
	EstimatedImpact    float64            `yaml:"estimated_impact"`
	RecommendedCourses []string           `yaml:"recommended_courses"`
	Rationale          string             `yaml:"rationale"`
	Profile            *ProfileImport     `yaml:"profile,omitempty"`
	Competencies       []CompetencyImport `yaml:"competencies,omitempty"`
}

type EmployeeImport struct {
	ID               string             `yaml:"id"`
	FirstName        string             `yaml:"first_name"`
	LastName         string             `yaml:"last_name"`
	Email            string             `yaml:"email"`
	Department       string             `yaml:"department"`
	Role             string             `yaml:"role"`
	Level            string             `yaml:"level"`
	HireDate         string             `yaml:"hire_date"`
	ManagerID        string             `yaml:"manager_id,omitempty"`
	Appraisals       []AppraisalImport  `yaml:"appraisals"`
	TrainingTracks   []TrackImport      `yaml:"training_tracks"`
	GapAnalysis      *GapAnalysisImport `yaml:"gap_analysis,omitempty"`
	PerformanceTrend []float64          `yaml:"performance_trend"`
	RiskLevel        string             `yaml:"risk_level"`
	HighPotential    bool               `yaml:"high_potential"`
}

// ParseDatasetSchema decodes YAML. Unknown keys are rejected so typos in a
// hand-written dataset surface early.
func ParseDatasetSchema(data []byte) (*DatasetSchema, error) {
	var schema DatasetSchema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return &schema, nil
}

// LoadDatasetSchema reads and parses a dataset YAML file.
func LoadDatasetSchema(path string) (*DatasetSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDatasetSchema(data)
}
