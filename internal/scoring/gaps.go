package scoring

import "github.com/alexanderramin/hrpulse/internal/domain"

// IsCriticalGap is true only for a required level of exactly 5 met by a
// current level of 2 or lower.
func IsCriticalGap(c domain.Competency) bool {
	return c.RequiredLevel == 5 && c.CurrentLevel <= 2
}

// GapPriority ranks a competency gap. The critical check runs first.
func GapPriority(c domain.Competency) domain.Priority {
	gap := c.Gap()
	switch {
	case IsCriticalGap(c):
		return domain.PriorityCritical
	case gap >= 2:
		return domain.PriorityHigh
	case gap >= 1:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// CountCriticalGaps counts the critical gaps in a gap analysis (nil-safe).
func CountCriticalGaps(ga *domain.GapAnalysis) int {
	if ga == nil {
		return 0
	}
	n := 0
	for _, c := range ga.CompetencyGaps {
		if IsCriticalGap(c) {
			n++
		}
	}
	return n
}

// PositiveGaps returns the competencies whose gap is above zero.
func PositiveGaps(competencies []domain.Competency) []domain.Competency {
	var out []domain.Competency
	for _, c := range competencies {
		if c.Gap() > 0 {
			out = append(out, c)
		}
	}
	return out
}
