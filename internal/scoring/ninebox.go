package scoring

import (
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

// NineBoxPosition is the canonical grid placement of one employee. Every
// grid, sidebar and chat answer derives placement from GetNineBoxPosition.
type NineBoxPosition struct {
	Performance    domain.PerformanceLevel    `json:"performance"`
	Potential      domain.PotentialLevel      `json:"potential"`
	Category       domain.PerformanceCategory `json:"category"`
	PotentialScore float64                    `json:"potentialScore"`
}

func GetNineBoxPosition(e *domain.Employee, now time.Time) NineBoxPosition {
	potential := CalculatePotential(e, now)
	return NineBoxPosition{
		Performance:    PerformanceLevelOf(e),
		Potential:      potential.Level,
		Category:       PerformanceCategoryOf(e),
		PotentialScore: potential.Score,
	}
}

type NineBoxCell struct {
	Performance domain.PerformanceLevel
	Potential   domain.PotentialLevel
	Label       string
	Description string
	Employees   []*domain.Employee
}

type cellInfo struct {
	label       string
	description string
}

type cellKey struct {
	performance domain.PerformanceLevel
	potential   domain.PotentialLevel
}

var cellLabels = map[cellKey]cellInfo{
	{domain.PerformanceExceeds, domain.PotentialHigh}:   {"Future Leaders", "Elite performers with high potential"},
	{domain.PerformanceExceeds, domain.PotentialMedium}: {"Key Players", "High performers, moderate potential"},
	{domain.PerformanceExceeds, domain.PotentialLow}:    {"Specialists", "High performers, limited growth"},
	{domain.PerformanceMeets, domain.PotentialHigh}:     {"Rising Stars", "Solid performers, high potential"},
	{domain.PerformanceMeets, domain.PotentialMedium}:   {"Core Talent", "Solid contributors, steady growth"},
	{domain.PerformanceMeets, domain.PotentialLow}:      {"Reliable", "Meets expectations, limited growth"},
	{domain.PerformanceBelow, domain.PotentialHigh}:     {"High Potential", "Underperforming, but high potential"},
	{domain.PerformanceBelow, domain.PotentialMedium}:   {"Development", "Needs support, some potential"},
	{domain.PerformanceBelow, domain.PotentialLow}:      {"At Risk", "Performance concerns, low potential"},
}

var (
	gridPerformanceOrder = []domain.PerformanceLevel{domain.PerformanceExceeds, domain.PerformanceMeets, domain.PerformanceBelow}
	gridPotentialOrder   = []domain.PotentialLevel{domain.PotentialHigh, domain.PotentialMedium, domain.PotentialLow}
)

// BuildNineBoxGrid returns all nine cells, Exceeds before Below and High
// before Low, with employees kept in input order inside each cell.
func BuildNineBoxGrid(employees []*domain.Employee, now time.Time) []NineBoxCell {
	index := make(map[cellKey]int, len(cellLabels))
	cells := make([]NineBoxCell, 0, len(cellLabels))
	for _, perf := range gridPerformanceOrder {
		for _, pot := range gridPotentialOrder {
			key := cellKey{perf, pot}
			info := cellLabels[key]
			index[key] = len(cells)
			cells = append(cells, NineBoxCell{
				Performance: perf,
				Potential:   pot,
				Label:       info.label,
				Description: info.description,
			})
		}
	}

	for _, e := range employees {
		pos := GetNineBoxPosition(e, now)
		i, ok := index[cellKey{pos.Performance, pos.Potential}]
		if !ok {
			continue
		}
		cells[i].Employees = append(cells[i].Employees, e)
	}
	return cells
}

// CellLabel returns the grid label for a performance/potential pair.
func CellLabel(perf domain.PerformanceLevel, pot domain.PotentialLevel) string {
	return cellLabels[cellKey{perf, pot}].label
}
