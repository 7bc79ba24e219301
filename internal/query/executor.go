package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

const leadershipCompetencyName = "Team Leadership"

// Team leader thresholds.
const (
	leaderPerformanceMin        = 4
	leaderLeadershipMin         = 3.5
	leaderHighPotentialScoreMin = 3
)

// Execute dispatches an intent to its query function. Unknown intents get
// the general help answer.
func Execute(intent Intent, params Parameters, employees []*domain.Employee) Result {
	switch intent {
	case IntentCompletedCourses:
		return FindCompletedCourses(employees)
	case IntentTeamLeaders:
		return FindTeamLeaders(employees)
	case IntentGaps:
		return FindEmployeesWithGaps(employees, params.Competency, params.Category)
	case IntentAtRisk:
		return FindAtRisk(employees)
	case IntentHighPotential:
		return FindHighPotential(employees)
	case IntentByDepartment:
		return FindByDepartment(employees, params.Department)
	case IntentTrainingStats:
		return GetTrainingStats(employees)
	case IntentIncompleteTraining:
		return FindIncompleteTraining(employees)
	default:
		return Result{Type: ResultSummary, Message: GeneralHelpMessage}
	}
}

func employeesResult(matches []Match, format string, args ...any) Result {
	return Result{
		Type:    ResultEmployees,
		Message: fmt.Sprintf(format, args...),
		Matches: matches,
	}
}

// FindCompletedCourses lists employees with at least one completed track,
// most completions first.
func FindCompletedCourses(employees []*domain.Employee) Result {
	var rows []CompletedMatch
	for _, e := range employees {
		done := e.TracksWithStatus(domain.StatusCompleted)
		if len(done) == 0 {
			continue
		}
		rows = append(rows, CompletedMatch{Employee: e, CompletedTracks: done, Count: len(done)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return employeesResult(toMatches(rows), "Found %d employee(s) with completed courses.", len(rows))
}

// FindTeamLeaders lists appraised employees who meet any leadership rule,
// ordered by leadership level and then by performance score.
func FindTeamLeaders(employees []*domain.Employee) Result {
	var rows []LeaderMatch
	for _, e := range employees {
		latest := e.LatestAppraisal()
		if latest == nil {
			continue
		}
		leadership := leadershipLevel(latest.Competencies)
		score := latest.OverallScore
		canLead := score >= leaderPerformanceMin ||
			leadership >= leaderLeadershipMin ||
			(e.IsHighPotential && score >= leaderHighPotentialScoreMin)
		if !canLead {
			continue
		}
		rows = append(rows, LeaderMatch{
			Employee:         e,
			PerformanceScore: score,
			LeadershipScore:  leadership,
			IsHighPotential:  e.IsHighPotential,
			Rationale: fmt.Sprintf("Performance: %d/5, Leadership: %.1f/5, High Potential: %s",
				score, leadership, yesNo(e.IsHighPotential)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].LeadershipScore != rows[j].LeadershipScore {
			return rows[i].LeadershipScore > rows[j].LeadershipScore
		}
		return rows[i].PerformanceScore > rows[j].PerformanceScore
	})
	return employeesResult(toMatches(rows), "Found %d employee(s) who can be team leaders.", len(rows))
}

// leadershipLevel is the current level of the first competency that is
// either named Team Leadership or in the Leadership category; 0 if none.
func leadershipLevel(comps []domain.Competency) float64 {
	for _, c := range comps {
		if c.Name == leadershipCompetencyName || c.Category == domain.CategoryLeadership {
			return c.CurrentLevel
		}
	}
	return 0
}

// FindEmployeesWithGaps lists employees whose stored gap analysis has gaps
// matching the optional competency substring and category.
func FindEmployeesWithGaps(employees []*domain.Employee, competency string, category domain.CompetencyCategory) Result {
	needle := strings.ToLower(competency)
	var rows []GapMatch
	for _, e := range employees {
		if e.GapAnalysis == nil {
			continue
		}
		var gaps []domain.Competency
		var total float64
		for _, g := range e.GapAnalysis.CompetencyGaps {
			if needle != "" && !strings.Contains(strings.ToLower(g.Name), needle) {
				continue
			}
			if category != "" && g.Category != category {
				continue
			}
			gaps = append(gaps, g)
			total += g.Gap()
		}
		if len(gaps) == 0 {
			continue
		}
		rows = append(rows, GapMatch{
			Employee:   e,
			Gaps:       gaps,
			AverageGap: total / float64(len(gaps)),
			Priority:   e.GapAnalysis.Priority,
			Count:      len(gaps),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := scoring.PriorityRank(rows[i].Priority), scoring.PriorityRank(rows[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return rows[i].AverageGap > rows[j].AverageGap
	})

	var filterDesc string
	switch {
	case competency != "":
		filterDesc = fmt.Sprintf(" in %q", competency)
	case category != "":
		filterDesc = fmt.Sprintf(" in %s category", category)
	}
	return employeesResult(toMatches(rows), "Found %d employee(s) with competency gaps%s.", len(rows), filterDesc)
}

// FindAtRisk lists High and Critical risk employees, Critical first.
func FindAtRisk(employees []*domain.Employee) Result {
	var rows []RiskMatch
	for _, e := range employees {
		if !scoring.IsAtRisk(e.RiskLevel) {
			continue
		}
		rows = append(rows, RiskMatch{
			Employee:         e,
			RiskLevel:        e.RiskLevel,
			PerformanceScore: e.LatestScore(),
			PerformanceTrend: e.PerformanceTrend,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return scoring.RiskRank(rows[i].RiskLevel) > scoring.RiskRank(rows[j].RiskLevel)
	})
	return employeesResult(toMatches(rows), "Found %d employee(s) at risk.", len(rows))
}

// FindHighPotential lists flagged high-potential employees by score.
func FindHighPotential(employees []*domain.Employee) Result {
	var rows []PotentialMatch
	for _, e := range employees {
		if !e.IsHighPotential {
			continue
		}
		rows = append(rows, PotentialMatch{
			Employee:         e,
			PerformanceScore: e.LatestScore(),
			TrainingProgress: e.AverageTrainingProgress(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PerformanceScore > rows[j].PerformanceScore
	})
	return employeesResult(toMatches(rows), "Found %d high potential employee(s).", len(rows))
}

// FindByDepartment matches departments by case-insensitive substring and
// keeps input order. An empty department matches everyone.
func FindByDepartment(employees []*domain.Employee, department string) Result {
	needle := strings.ToLower(department)
	var rows []DepartmentMatch
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Department), needle) {
			rows = append(rows, DepartmentMatch{Employee: e})
		}
	}
	if department == "" {
		return employeesResult(toMatches(rows), "Found %d employee(s) across all departments.", len(rows))
	}
	return employeesResult(toMatches(rows), "Found %d employee(s) in %s.", len(rows), department)
}

// GetTrainingStats counts tracks by status and averages per-employee mean
// progress. An empty population reports zeros.
func GetTrainingStats(employees []*domain.Employee) Result {
	stats := TrainingStats{TotalEmployees: len(employees)}
	var progressSum float64
	for _, e := range employees {
		for _, t := range e.TrainingTracks {
			switch t.Status {
			case domain.StatusCompleted:
				stats.CompletedTracks++
			case domain.StatusInProgress:
				stats.InProgressTracks++
			case domain.StatusNotStarted:
				stats.NotStartedTracks++
			}
		}
		progressSum += e.AverageTrainingProgress()
	}
	if len(employees) > 0 {
		stats.AverageProgress = progressSum / float64(len(employees))
	}
	return Result{
		Type: ResultSummary,
		Message: fmt.Sprintf("Training Statistics: %d completed, %d in progress, %d not started. Average progress: %.1f%%.",
			stats.CompletedTracks, stats.InProgressTracks, stats.NotStartedTracks, stats.AverageProgress),
		Stats: &stats,
	}
}

// FindIncompleteTraining lists employees with unfinished tracks, least
// progressed first.
func FindIncompleteTraining(employees []*domain.Employee) Result {
	var rows []IncompleteMatch
	for _, e := range employees {
		open := e.IncompleteTracks()
		if len(open) == 0 {
			continue
		}
		rows = append(rows, IncompleteMatch{
			Employee:         e,
			IncompleteTracks: open,
			AverageProgress:  domain.AverageProgress(open),
			Count:            len(open),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageProgress < rows[j].AverageProgress
	})
	return employeesResult(toMatches(rows), "Found %d employee(s) with incomplete training.", len(rows))
}

func toMatches[T Match](rows []T) []Match {
	out := make([]Match, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
