package scoring

import (
	"math"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

// WorkforceMetrics summarizes a population for the dashboard.
type WorkforceMetrics struct {
	TotalEmployees          int     `json:"totalEmployees"`
	WorkforceReadiness      float64 `json:"workforceReadiness"`
	AverageSkillGap         float64 `json:"averageSkillGap"`
	AtRiskTalent            int     `json:"atRiskTalent"`
	HighPotentialCount      int     `json:"highPotentialCount"`
	AveragePerformanceScore float64 `json:"averagePerformanceScore"`
	TrainingCompletionRate  float64 `json:"trainingCompletionRate"`
}

// skillGapScale converts a mean gap on the 1-5 scale to a percentage.
const skillGapScale = 20.0

func ComputeWorkforceMetrics(employees []*domain.Employee) WorkforceMetrics {
	m := WorkforceMetrics{TotalEmployees: len(employees)}
	if len(employees) == 0 {
		return m
	}

	var scoreSum, progressSum float64
	for _, e := range employees {
		scoreSum += float64(e.LatestScore())
		progressSum += e.AverageTrainingProgress()
		if IsAtRisk(e.RiskLevel) {
			m.AtRiskTalent++
		}
		if e.IsHighPotential {
			m.HighPotentialCount++
		}
	}
	n := float64(len(employees))
	m.AveragePerformanceScore = scoreSum / n
	m.WorkforceReadiness = m.AveragePerformanceScore / maxLevel * 100
	m.TrainingCompletionRate = progressSum / n
	m.AverageSkillGap = averageSkillGap(employees)
	return m
}

func averageSkillGap(employees []*domain.Employee) float64 {
	var total float64
	var counted int
	for _, e := range employees {
		if e.GapAnalysis == nil {
			continue
		}
		counted++
		gaps := e.GapAnalysis.CompetencyGaps
		if len(gaps) == 0 {
			continue
		}
		var sum float64
		for _, c := range gaps {
			sum += math.Abs(c.Gap())
		}
		total += sum / float64(len(gaps))
	}
	if counted == 0 {
		return 0
	}
	return total / float64(counted) * skillGapScale
}

// PerformanceDistribution counts employees per ladder category. Employees
// without an appraisal are not counted.
func PerformanceDistribution(employees []*domain.Employee) map[domain.PerformanceCategory]int {
	dist := make(map[domain.PerformanceCategory]int, len(domain.PerformanceCategories))
	for _, c := range domain.PerformanceCategories {
		dist[c] = 0
	}
	for _, e := range employees {
		latest := e.LatestAppraisal()
		if latest == nil {
			continue
		}
		dist[MapAppraisalToPerformance(float64(latest.OverallScore))]++
	}
	return dist
}

// trendDeadband keeps tiny movements in the mean trend reported as stable.
const trendDeadband = 0.05

// PopulationTrend averages each employee's first-to-last performance trend
// movement. Change is that mean expressed as a percentage of the 5-point
// scale, rounded to one decimal. Employees with fewer than two trend points
// are ignored.
func PopulationTrend(employees []*domain.Employee) (domain.Trend, float64) {
	var sum float64
	var counted int
	for _, e := range employees {
		n := len(e.PerformanceTrend)
		if n < 2 {
			continue
		}
		sum += e.PerformanceTrend[n-1] - e.PerformanceTrend[0]
		counted++
	}
	if counted == 0 {
		return domain.TrendStable, 0
	}
	delta := sum / float64(counted)
	change := math.Round(delta/maxLevel*100*10) / 10
	switch {
	case delta > trendDeadband:
		return domain.TrendUp, change
	case delta < -trendDeadband:
		return domain.TrendDown, change
	default:
		return domain.TrendStable, change
	}
}
