package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

// FormatEmployeeList renders the talent directory table.
func FormatEmployeeList(employees []*domain.Employee, now time.Time) string {
	if len(employees) == 0 {
		return Dim("No employees match these filters.") + "\n"
	}

	headers := []string{"ID", "NAME", "DEPARTMENT", "ROLE", "PERFORMANCE", "POTENTIAL", "RISK", "TRAINING"}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		pos := scoring.GetNineBoxPosition(e, now)
		rows = append(rows, []string{
			Dim(e.ID),
			Bold(e.FullName()),
			e.Department,
			Truncate(e.Role, 28),
			PerformanceBadge(pos.Performance),
			PotentialBadge(pos.Potential),
			RiskIndicator(e.RiskLevel),
			Percent(e.AverageTrainingProgress()),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Dim(fmt.Sprintf("\n%d employee(s)\n", len(employees))))
	return b.String()
}

// FormatEmployeeProfile renders the full profile shown by `show`.
func FormatEmployeeProfile(e *domain.Employee, now time.Time) string {
	pos := scoring.GetNineBoxPosition(e, now)
	potential := scoring.CalculatePotential(e, now)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(e.FullName()), Dim(e.ID))
	fmt.Fprintf(&b, "%s · %s · %s\n", e.Role, e.Department, e.Level)
	fmt.Fprintf(&b, "%s  hired %s (%s)\n", Dim(e.Email), HumanDate(e.HireDate), Tenure(e.HireDate, now))
	fmt.Fprintf(&b, "Risk %s   Trend %s\n", RiskIndicator(e.RiskLevel), Sparkline(e.PerformanceTrend))
	if e.IsHighPotential {
		b.WriteString(StyleGreen.Render("★ Flagged high potential") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Nine-Box Placement"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s performance, %s potential\n",
		StyleHeader.Render(scoring.CellLabel(pos.Performance, pos.Potential)),
		PerformanceBadge(pos.Performance), PotentialBadge(pos.Potential))
	fmt.Fprintf(&b, "  Category: %s (latest score %d/5)\n\n", pos.Category, e.LatestScore())

	b.WriteString(Header("Potential"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Score               %.1f\n", potential.Score)
	fmt.Fprintf(&b, "  Training completion %s\n", RenderProgress(potential.Breakdown.TrainingCompletion, 20))
	fmt.Fprintf(&b, "  Competency growth   %s\n", RenderProgress(potential.Breakdown.CompetencyGrowth, 20))
	fmt.Fprintf(&b, "  Tenure              %s\n\n", RenderProgress(potential.Breakdown.Tenure, 20))

	if latest := e.LatestAppraisal(); latest != nil && len(latest.Competencies) > 0 {
		b.WriteString(Header("Competencies (" + latest.Period + ")"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(latest.Competencies))
		for _, c := range latest.Competencies {
			rows = append(rows, []string{c.Name, string(c.Category), RenderLevel(c.CurrentLevel, c.RequiredLevel)})
		}
		b.WriteString(RenderTable([]string{"COMPETENCY", "CATEGORY", "LEVEL"}, rows))
		b.WriteString("\n")
	}

	if len(e.TrainingTracks) > 0 {
		b.WriteString(Header("Training"))
		b.WriteString("\n")
		for _, t := range e.TrainingTracks {
			fmt.Fprintf(&b, "  %s %s  %s\n", StatusPill(t.Status), Bold(t.Name), RenderProgress(t.Progress, 16))
		}
		b.WriteString("\n")
	}

	b.WriteString(FormatGapTable(e.GapAnalysis))
	return b.String()
}

// FormatGapTable lists positive gaps with their computed priority.
func FormatGapTable(ga *domain.GapAnalysis) string {
	var b strings.Builder
	b.WriteString(Header("Skill Gaps"))
	b.WriteString("\n")
	if ga == nil || len(ga.CompetencyGaps) == 0 {
		b.WriteString(Dim("  No competency gaps recorded.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(ga.CompetencyGaps))
	for _, c := range ga.CompetencyGaps {
		rows = append(rows, []string{
			c.Name,
			fmt.Sprintf("%.1f", c.CurrentLevel),
			fmt.Sprintf("%g", c.RequiredLevel),
			fmt.Sprintf("%.1f", c.Gap()),
			PriorityPill(scoring.GapPriority(c)),
		})
	}
	b.WriteString(RenderTable([]string{"COMPETENCY", "CURRENT", "REQUIRED", "GAP", "PRIORITY"}, rows))

	if n := scoring.CountCriticalGaps(ga); n > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d critical gap(s)", n)) + "\n")
	}
	if len(ga.RecommendedCourses) > 0 {
		titles := make([]string, 0, len(ga.RecommendedCourses))
		for _, c := range ga.RecommendedCourses {
			titles = append(titles, c.Title)
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("Recommended:"), strings.Join(titles, ", "))
	}
	fmt.Fprintf(&b, "%s %s   %s %.0f%%\n", Dim("Priority:"), PriorityPill(ga.Priority), Dim("Estimated impact:"), ga.EstimatedImpact)
	return b.String()
}
