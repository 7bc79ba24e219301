package scoring

import "github.com/alexanderramin/hrpulse/internal/domain"

// PriorityRank returns a sort rank (higher = more urgent): Critical=4 .. Low=1.
func PriorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityCritical:
		return 4
	case domain.PriorityHigh:
		return 3
	case domain.PriorityMedium:
		return 2
	case domain.PriorityLow:
		return 1
	default:
		return 0
	}
}

// RiskRank returns a sort rank (higher = more urgent). Only High and
// Critical are distinguished; Medium and Low share the bottom rank.
func RiskRank(r domain.RiskLevel) int {
	switch r {
	case domain.RiskCritical:
		return 2
	case domain.RiskHigh:
		return 1
	default:
		return 0
	}
}

// IsAtRisk reports whether the risk level is High or Critical.
func IsAtRisk(r domain.RiskLevel) bool {
	return RiskRank(r) > 0
}
