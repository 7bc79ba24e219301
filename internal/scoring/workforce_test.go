package scoring

import (
	"testing"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestComputeWorkforceMetrics_Empty(t *testing.T) {
	m := ComputeWorkforceMetrics(nil)
	assert.Equal(t, WorkforceMetrics{}, m)
}

func TestComputeWorkforceMetrics(t *testing.T) {
	a := testutil.NewTestEmployee("emp-a",
		testutil.WithAppraisal(5),
		testutil.WithTrack(domain.StatusCompleted, 100),
		testutil.WithHighPotential(),
		testutil.WithGapAnalysis(domain.PriorityLow,
			testutil.NewTestCompetency("A", domain.CategoryTechnical, 5, 4),
			testutil.NewTestCompetency("B", domain.CategoryTechnical, 4, 2),
		),
	)
	b := testutil.NewTestEmployee("emp-b",
		testutil.WithAppraisal(2),
		testutil.WithTrack(domain.StatusInProgress, 40),
		testutil.WithTrack(domain.StatusNotStarted, 0),
		testutil.WithRisk(domain.RiskCritical),
	)
	c := testutil.NewTestEmployee("emp-c", testutil.WithRisk(domain.RiskHigh))

	m := ComputeWorkforceMetrics([]*domain.Employee{a, b, c})

	assert.Equal(t, 3, m.TotalEmployees)
	assert.Equal(t, 2, m.AtRiskTalent)
	assert.Equal(t, 1, m.HighPotentialCount)
	assert.InDelta(t, 7.0/3.0, m.AveragePerformanceScore, 1e-9)
	assert.InDelta(t, (7.0/3.0)/5*100, m.WorkforceReadiness, 1e-9)
	assert.InDelta(t, (100.0+20.0+0)/3, m.TrainingCompletionRate, 1e-9)
	// only emp-a has a gap analysis: mean |gap| = 1.5 -> 30%
	assert.InDelta(t, 30.0, m.AverageSkillGap, 1e-9)
}

func TestPerformanceDistribution(t *testing.T) {
	employees := []*domain.Employee{
		testutil.NewTestEmployee("a", testutil.WithAppraisal(5)),
		testutil.NewTestEmployee("b", testutil.WithAppraisal(4)),
		testutil.NewTestEmployee("c", testutil.WithAppraisal(3)),
		testutil.NewTestEmployee("d", testutil.WithAppraisal(3)),
		testutil.NewTestEmployee("e", testutil.WithAppraisal(1)),
		testutil.NewTestEmployee("f"),
	}
	dist := PerformanceDistribution(employees)
	assert.Equal(t, 1, dist[domain.CategoryElitePerformer])
	assert.Equal(t, 1, dist[domain.CategoryHighAchiever])
	assert.Equal(t, 2, dist[domain.CategorySolidContributor])
	assert.Equal(t, 1, dist[domain.CategoryNeedsIntervention])
}

func TestPopulationTrend(t *testing.T) {
	tests := []struct {
		name       string
		employees  []*domain.Employee
		wantTrend  domain.Trend
		wantChange float64
	}{
		{name: "empty", wantTrend: domain.TrendStable},
		{
			name:      "single points ignored",
			employees: []*domain.Employee{testutil.NewTestEmployee("a", testutil.WithTrend(4))},
			wantTrend: domain.TrendStable,
		},
		{
			name: "improving",
			employees: []*domain.Employee{
				testutil.NewTestEmployee("a", testutil.WithTrend(3, 3.5, 4)),
				testutil.NewTestEmployee("b", testutil.WithTrend(3, 3)),
			},
			wantTrend:  domain.TrendUp,
			wantChange: 10,
		},
		{
			name: "declining",
			employees: []*domain.Employee{
				testutil.NewTestEmployee("a", testutil.WithTrend(4, 3)),
			},
			wantTrend:  domain.TrendDown,
			wantChange: -20,
		},
		{
			name: "inside deadband",
			employees: []*domain.Employee{
				testutil.NewTestEmployee("a", testutil.WithTrend(3, 3.04)),
			},
			wantTrend:  domain.TrendStable,
			wantChange: 0.8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, change := PopulationTrend(tt.employees)
			assert.Equal(t, tt.wantTrend, trend)
			assert.InDelta(t, tt.wantChange, change, 1e-9)
		})
	}
}
