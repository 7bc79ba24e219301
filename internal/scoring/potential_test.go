package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var refNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestCalculatePotential_NoTracksNoAppraisals(t *testing.T) {
	e := testutil.NewTestEmployee("emp-empty", testutil.WithHireDate(refNow))

	res := CalculatePotential(e, refNow)

	assert.Equal(t, 0.0, res.Breakdown.TrainingCompletion)
	assert.Equal(t, 0.0, res.Breakdown.CompetencyGrowth)
	assert.Equal(t, 0.0, res.Breakdown.Tenure)
	assert.False(t, math.IsNaN(res.Score))
	assert.Equal(t, domain.PotentialLow, res.Level)
}

func TestCalculatePotential_AppraisalWithoutCompetencies(t *testing.T) {
	e := testutil.NewTestEmployee("emp-x", testutil.WithAppraisal(3))

	res := CalculatePotential(e, refNow)

	assert.False(t, math.IsNaN(res.Breakdown.CompetencyGrowth))
	assert.Equal(t, 0.0, res.Breakdown.CompetencyGrowth)
}

func TestCalculatePotential_WeightedFormula(t *testing.T) {
	hire := refNow.AddDate(0, 0, -365*2) // exactly 2 flat years
	e := testutil.NewTestEmployee("emp-x",
		testutil.WithHireDate(hire),
		testutil.WithTrack(domain.StatusCompleted, 100),
		testutil.WithTrack(domain.StatusInProgress, 50),
		testutil.WithAppraisal(4,
			testutil.NewTestCompetency("A", domain.CategoryTechnical, 5, 3),
			testutil.NewTestCompetency("B", domain.CategoryCore, 4, 2),
		),
		testutil.WithTrend(3.0, 3.5),
	)

	res := CalculatePotential(e, refNow)

	// training = 75; growth = (2.5/5)*100 + (0.5/5)*100 = 60; tenure = 40
	assert.InDelta(t, 75.0, res.Breakdown.TrainingCompletion, 1e-9)
	assert.InDelta(t, 60.0, res.Breakdown.CompetencyGrowth, 1e-9)
	assert.InDelta(t, 40.0, res.Breakdown.Tenure, 1e-9)
	assert.InDelta(t, 0.4*75+0.3*60+0.3*40, res.Score, 1e-9)
	assert.Equal(t, domain.PotentialMedium, res.Level)
}

func TestCalculatePotential_GrowthClamped(t *testing.T) {
	up := testutil.NewTestEmployee("emp-up",
		testutil.WithAppraisal(5, testutil.NewTestCompetency("A", domain.CategoryTechnical, 5, 5)),
		testutil.WithTrend(1, 5),
	)
	down := testutil.NewTestEmployee("emp-down",
		testutil.WithAppraisal(1, testutil.NewTestCompetency("A", domain.CategoryTechnical, 5, 1)),
		testutil.WithTrend(5, 1),
	)

	assert.Equal(t, 100.0, CalculatePotential(up, refNow).Breakdown.CompetencyGrowth)
	assert.Equal(t, 0.0, CalculatePotential(down, refNow).Breakdown.CompetencyGrowth)
}

func TestCalculatePotential_SingleTrendPointHasNoGrowth(t *testing.T) {
	e := testutil.NewTestEmployee("emp-x",
		testutil.WithAppraisal(3, testutil.NewTestCompetency("A", domain.CategoryCore, 4, 2.5)),
		testutil.WithTrend(4.0),
	)
	assert.InDelta(t, 50.0, CalculatePotential(e, refNow).Breakdown.CompetencyGrowth, 1e-9)
}

func TestCalculatePotential_TenureSaturatesAndDependsOnNow(t *testing.T) {
	e := testutil.NewTestEmployee("emp-x", testutil.WithHireDate(time.Date(2015, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 100.0, CalculatePotential(e, refNow).Breakdown.Tenure)

	recent := testutil.NewTestEmployee("emp-y", testutil.WithHireDate(refNow.AddDate(0, 0, -365)))
	early := CalculatePotential(recent, refNow).Breakdown.Tenure
	later := CalculatePotential(recent, refNow.AddDate(0, 0, 365)).Breakdown.Tenure
	assert.InDelta(t, 20.0, early, 1e-9)
	assert.InDelta(t, 40.0, later, 1e-9)
}

func TestCalculatePotential_FutureHireDateClampsTenure(t *testing.T) {
	e := testutil.NewTestEmployee("emp-x", testutil.WithHireDate(refNow.AddDate(1, 0, 0)))
	assert.Equal(t, 0.0, CalculatePotential(e, refNow).Breakdown.Tenure)
}

func TestPotentialLevel_Thresholds(t *testing.T) {
	assert.Equal(t, domain.PotentialHigh, potentialLevel(70))
	assert.Equal(t, domain.PotentialMedium, potentialLevel(69.99))
	assert.Equal(t, domain.PotentialMedium, potentialLevel(40))
	assert.Equal(t, domain.PotentialLow, potentialLevel(39.99))
}
