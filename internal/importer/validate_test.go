package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDatasetSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateDatasetSchema(convertSchema()))
}

func TestValidateDatasetSchema_NoEmployees(t *testing.T) {
	errs := ValidateDatasetSchema(&DatasetSchema{})
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "at least one employee")
}

func TestValidateDatasetSchema_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DatasetSchema)
		want   string
	}{
		{"duplicate course", func(s *DatasetSchema) { s.Courses[1].ID = "c-1" }, `courses[1].id: duplicate "c-1"`},
		{"bad difficulty", func(s *DatasetSchema) { s.Courses[0].Difficulty = "Expert" }, "courses[0].difficulty"},
		{"duplicate employee", func(s *DatasetSchema) {
			s.Employees = append(s.Employees, s.Employees[0])
		}, `duplicate "e-1"`},
		{"missing name", func(s *DatasetSchema) { s.Employees[0].LastName = "" }, "first_name and last_name are required"},
		{"bad hire date", func(s *DatasetSchema) { s.Employees[0].HireDate = "2022/02/01" }, "invalid date format"},
		{"bad risk", func(s *DatasetSchema) { s.Employees[0].RiskLevel = "Extreme" }, "risk_level"},
		{"trend out of range", func(s *DatasetSchema) { s.Employees[0].PerformanceTrend = []float64{6} }, "performance_trend[0]"},
		{"score out of range", func(s *DatasetSchema) { s.Employees[0].Appraisals[0].OverallScore = 0 }, "overall_score"},
		{"profile and competencies", func(s *DatasetSchema) {
			s.Employees[0].Appraisals[0].Competencies = []CompetencyImport{{Name: "X", Category: "Core", RequiredLevel: 3, CurrentLevel: 2}}
		}, "use profile or competencies, not both"},
		{"bad track status", func(s *DatasetSchema) { s.Employees[0].TrainingTracks[0].Status = "Done" }, "training_tracks[0].status"},
		{"progress out of range", func(s *DatasetSchema) { s.Employees[0].TrainingTracks[0].Progress = 120 }, "progress"},
		{"unknown course", func(s *DatasetSchema) { s.Employees[0].TrainingTracks[0].Courses = []string{"c-9"} }, `unknown course "c-9"`},
		{"bad gap priority", func(s *DatasetSchema) { s.Employees[0].GapAnalysis.Priority = "Urgent" }, "gap_analysis.priority"},
		{"competency levels", func(s *DatasetSchema) {
			s.Employees[0].GapAnalysis.Competencies = []CompetencyImport{{Name: "X", Category: "Core", RequiredLevel: 7, CurrentLevel: 2}}
		}, "levels outside the 5-point scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := convertSchema()
			tt.mutate(s)
			errs := ValidateDatasetSchema(s)
			require.NotEmpty(t, errs)
			assert.ErrorContains(t, errors.Join(errs...), tt.want)
		})
	}
}

func TestParseDatasetSchema_RejectsUnknownFields(t *testing.T) {
	_, err := ParseDatasetSchema([]byte("employees:\n  - id: e-1\n    nickname: JJ\n"))
	assert.ErrorContains(t, err, "parsing dataset")
}

func TestParseDatasetSchema_Empty(t *testing.T) {
	schema, err := ParseDatasetSchema(nil)
	require.NoError(t, err)
	assert.Empty(t, schema.Employees)
}

func TestLoadDatasetSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses:\n  - id: c-1\n    title: Cloud\n"), 0o600))

	schema, err := LoadDatasetSchema(path)
	require.NoError(t, err)
	require.Len(t, schema.Courses, 1)
	assert.Equal(t, "Cloud", schema.Courses[0].Title)

	_, err = LoadDatasetSchema(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
