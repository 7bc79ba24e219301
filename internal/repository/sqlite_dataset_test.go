package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/testutil"
)

func sampleDataset() ([]*domain.Employee, []domain.Course) {
	rate := 82.0
	react := domain.Course{
		ID: "course-1", Title: "Advanced React", Category: domain.CategoryTechnical,
		DurationHours: 24, Difficulty: domain.DifficultyAdvanced,
		Skills: []string{"React", "TypeScript"}, CompletionRate: &rate,
	}
	lead := domain.Course{
		ID: "course-2", Title: "Empathetic Leadership", Category: domain.CategoryLeadership,
		DurationHours: 18, Difficulty: domain.DifficultyIntermediate,
	}

	arch := testutil.NewTestCompetency("Technical Architecture", domain.CategoryTechnical, 5, 2.2)
	comms := testutil.NewTestCompetency("Communication", domain.CategoryCore, 4, 4.5)

	a := testutil.NewTestEmployee("emp-a",
		testutil.WithName("Sarah", "Chen"),
		testutil.WithAppraisal(4, arch, comms),
		testutil.WithAppraisal(5, arch),
		testutil.WithTrend(4.2, 4.5),
		testutil.WithHighPotential(),
		testutil.WithGapAnalysis(domain.PriorityCritical, arch),
	)
	a.TrainingTracks = []domain.TrainingTrack{
		{ID: "track-1", Name: "Tech Path", Courses: []domain.Course{react, lead}, EstimatedDuration: 42,
			Priority: domain.PriorityHigh, Status: domain.StatusInProgress, Progress: 75},
	}
	a.GapAnalysis.RecommendedCourses = []domain.Course{lead}

	b := testutil.NewTestEmployee("emp-b", testutil.WithDepartment("Sales"), testutil.WithRisk(domain.RiskHigh))
	return []*domain.Employee{a, b}, []domain.Course{react, lead}
}

func TestSQLiteDatasetRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	employees, courses := sampleDataset()

	require.NoError(t, repo.Save(ctx, employees, courses))
	gotEmployees, gotCourses, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, courses, gotCourses)
	require.Len(t, gotEmployees, 2)
	assert.Equal(t, employees[0], gotEmployees[0])

	b := gotEmployees[1]
	assert.Equal(t, "emp-b", b.ID)
	assert.Equal(t, "Sales", b.Department)
	assert.Equal(t, domain.RiskHigh, b.RiskLevel)
	assert.Empty(t, b.Appraisals)
	assert.Empty(t, b.TrainingTracks)
	assert.Nil(t, b.GapAnalysis)
}

func TestSQLiteDatasetRepo_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	employees, courses := sampleDataset()

	require.NoError(t, repo.Save(ctx, employees, courses))
	require.NoError(t, repo.Save(ctx, employees[1:], nil))

	got, gotCourses, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "emp-b", got[0].ID)
	assert.Empty(t, gotCourses)
}

func TestSQLiteDatasetRepo_EmptySnapshot(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))

	_, _, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrEmptySnapshot)
}

func TestSQLiteDatasetRepo_SaveRollsBackOnBadRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	employees, courses := sampleDataset()
	require.NoError(t, repo.Save(ctx, employees, courses))

	bad := testutil.NewTestEmployee("emp-bad", testutil.WithRisk("Extreme"))
	err := repo.Save(ctx, []*domain.Employee{bad}, nil)
	require.Error(t, err)

	got, _, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
