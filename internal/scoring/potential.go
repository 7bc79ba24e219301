package scoring

import (
	"math"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

type PotentialWeights struct {
	TrainingCompletion float64
	CompetencyGrowth   float64
	Tenure             float64
}

func defaultPotentialWeights() PotentialWeights {
	return PotentialWeights{
		TrainingCompletion: 0.4,
		CompetencyGrowth:   0.3,
		Tenure:             0.3,
	}
}

const (
	highPotentialThreshold   = 70.0
	mediumPotentialThreshold = 40.0

	// A year is a flat 365 days; tenure saturates at five of them.
	daysPerYear     = 365.0
	fullTenureYears = 5.0
	maxLevel        = 5.0
)

// PotentialBreakdown holds the three normalized (0-100) sub-scores.
type PotentialBreakdown struct {
	TrainingCompletion float64 `json:"trainingCompletion"`
	CompetencyGrowth   float64 `json:"competencyGrowth"`
	Tenure             float64 `json:"tenure"`
}

type PotentialResult struct {
	Score     float64               `json:"score"`
	Level     domain.PotentialLevel `json:"level"`
	Breakdown PotentialBreakdown    `json:"breakdown"`
}

// CalculatePotential computes the weighted potential score as of now.
// Empty collections contribute zero rather than NaN.
func CalculatePotential(e *domain.Employee, now time.Time) PotentialResult {
	w := defaultPotentialWeights()

	breakdown := PotentialBreakdown{
		TrainingCompletion: e.AverageTrainingProgress(),
		CompetencyGrowth:   competencyGrowth(e),
		Tenure:             tenureScore(e.HireDate, now),
	}

	score := breakdown.TrainingCompletion*w.TrainingCompletion +
		breakdown.CompetencyGrowth*w.CompetencyGrowth +
		breakdown.Tenure*w.Tenure

	return PotentialResult{
		Score:     score,
		Level:     potentialLevel(score),
		Breakdown: breakdown,
	}
}

func potentialLevel(score float64) domain.PotentialLevel {
	switch {
	case score >= highPotentialThreshold:
		return domain.PotentialHigh
	case score >= mediumPotentialThreshold:
		return domain.PotentialMedium
	default:
		return domain.PotentialLow
	}
}

func competencyGrowth(e *domain.Employee) float64 {
	var avgCurrent float64
	if latest := e.LatestAppraisal(); latest != nil && len(latest.Competencies) > 0 {
		var sum float64
		for _, c := range latest.Competencies {
			sum += c.CurrentLevel
		}
		avgCurrent = sum / float64(len(latest.Competencies))
	}

	var trendGrowth float64
	if n := len(e.PerformanceTrend); n >= 2 {
		trendGrowth = (e.PerformanceTrend[n-1] - e.PerformanceTrend[0]) / maxLevel * 100
	}

	return clamp(avgCurrent/maxLevel*100+trendGrowth, 0, 100)
}

func tenureScore(hireDate, now time.Time) float64 {
	years := now.Sub(hireDate).Hours() / 24 / daysPerYear
	return clamp(years/fullTenureYears*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
