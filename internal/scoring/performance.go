package scoring

import "github.com/alexanderramin/hrpulse/internal/domain"

// Appraisal score thresholds for the performance ladder. Scores are compared
// as floats so fractional inputs land on the documented side of each bound.
const (
	eliteThreshold        = 4.5
	highAchieverThreshold = 3.5
	solidThreshold        = 2.5
)

// MapAppraisalToPerformance places an appraisal score on the four-step ladder.
func MapAppraisalToPerformance(score float64) domain.PerformanceCategory {
	switch {
	case score >= eliteThreshold:
		return domain.CategoryElitePerformer
	case score >= highAchieverThreshold:
		return domain.CategoryHighAchiever
	case score >= solidThreshold:
		return domain.CategorySolidContributor
	default:
		return domain.CategoryNeedsIntervention
	}
}

// PerformanceCategoryToLevel collapses the ladder onto the nine-box axis.
// Unknown categories map to Meets, the same default as a missing appraisal.
func PerformanceCategoryToLevel(category domain.PerformanceCategory) domain.PerformanceLevel {
	switch category {
	case domain.CategoryElitePerformer, domain.CategoryHighAchiever:
		return domain.PerformanceExceeds
	case domain.CategorySolidContributor:
		return domain.PerformanceMeets
	case domain.CategoryNeedsIntervention:
		return domain.PerformanceBelow
	default:
		return domain.PerformanceMeets
	}
}

// PerformanceLevelOf returns the nine-box performance level from the latest
// appraisal, or Meets when the employee has never been appraised.
func PerformanceLevelOf(e *domain.Employee) domain.PerformanceLevel {
	latest := e.LatestAppraisal()
	if latest == nil {
		return domain.PerformanceMeets
	}
	return PerformanceCategoryToLevel(MapAppraisalToPerformance(float64(latest.OverallScore)))
}

// PerformanceCategoryOf returns the ladder category from the latest appraisal,
// or Solid Contributor when the employee has never been appraised.
func PerformanceCategoryOf(e *domain.Employee) domain.PerformanceCategory {
	latest := e.LatestAppraisal()
	if latest == nil {
		return domain.CategorySolidContributor
	}
	return MapAppraisalToPerformance(float64(latest.OverallScore))
}
