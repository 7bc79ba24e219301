package intelligence

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

// NoGapRationale is returned when there is neither a model nor a stored rationale.
const NoGapRationale = "AI analysis unavailable. Please configure OPENAI_API_KEY."

// RationaleService writes the narrative text shown next to gap analyses,
// nine-box placements and dashboard metrics.
type RationaleService struct {
	r runner
}

func NewRationaleService(d Deps) *RationaleService {
	return &RationaleService{r: newRunner(d)}
}

// GapRationale explains why an employee needs the recommended training.
// The fallback is the stored rationale.
func (s *RationaleService) GapRationale(ctx context.Context, e *domain.Employee) Outcome[string] {
	fallback := func() string {
		if e.GapAnalysis != nil && strings.TrimSpace(e.GapAnalysis.Rationale) != "" {
			return e.GapAnalysis.Rationale
		}
		return NoGapRationale
	}
	return resolve(ctx, s.r, llm.TaskGapRationale,
		func(ctx context.Context, client llm.LLMClient) (string, error) {
			if e.GapAnalysis == nil {
				return "", fmt.Errorf("%s has no gap analysis: %w", e.ID, ErrMissingInput)
			}
			return generateText(ctx, client, llm.TaskGapRationale, gapRationaleSystemPrompt, s.gapPrompt(e))
		},
		fallback,
	)
}

func (s *RationaleService) gapPrompt(e *domain.Employee) string {
	ga := e.GapAnalysis
	var b strings.Builder
	b.WriteString("You are an HR analytics expert. Generate a concise, data-driven rationale explaining why this employee needs the recommended training.\n\n")
	b.WriteString("Employee Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", e.FullName())
	fmt.Fprintf(&b, "- Role: %s (%s level)\n", e.Role, e.Level)
	fmt.Fprintf(&b, "- Department: %s\n", e.Department)
	fmt.Fprintf(&b, "- Years of Tenure: %.0f\n\n", tenureYears(e, s.r.now()))
	b.WriteString("Competency Gaps:\n")
	for _, g := range ga.CompetencyGaps {
		fmt.Fprintf(&b, "- %s: Current %.1f/5, Required %s/5 (Gap: %.1f)\n",
			g.Name, g.CurrentLevel, formatNumber(g.RequiredLevel), g.Gap())
	}
	fmt.Fprintf(&b, "\nTraining Progress: %.0f%%\n", e.AverageTrainingProgress())
	fmt.Fprintf(&b, "Average Competency Score: %.1f/5\n", averageCurrentLevel(e))
	fmt.Fprintf(&b, "Gap Priority: %s\n", ga.Priority)
	fmt.Fprintf(&b, "Critical Gaps: %d\n", scoring.CountCriticalGaps(ga))
	fmt.Fprintf(&b, "Estimated Impact: %s%%\n\n", formatNumber(ga.EstimatedImpact))
	b.WriteString(gapRationaleInstructions)
	return b.String()
}

// SuccessionRationale explains an employee's nine-box placement.
func (s *RationaleService) SuccessionRationale(ctx context.Context, e *domain.Employee, pos scoring.NineBoxPosition) Outcome[string] {
	return resolve(ctx, s.r, llm.TaskSuccession,
		func(ctx context.Context, client llm.LLMClient) (string, error) {
			return generateText(ctx, client, llm.TaskSuccession, successionSystemPrompt, successionPrompt(e, pos))
		},
		func() string { return SuccessionFallback(pos) },
	)
}

// SuccessionFallback is the deterministic placement sentence.
func SuccessionFallback(pos scoring.NineBoxPosition) string {
	return fmt.Sprintf("Positioned as %s performance with %s potential (%.0f%% score).",
		pos.Performance, pos.Potential, pos.PotentialScore)
}

func successionPrompt(e *domain.Employee, pos scoring.NineBoxPosition) string {
	score := "N/A"
	if a := e.LatestAppraisal(); a != nil {
		score = strconv.Itoa(a.OverallScore)
	}
	var b strings.Builder
	b.WriteString("Generate a concise rationale for this employee's position in the 9-box succession matrix.\n\n")
	fmt.Fprintf(&b, "Employee: %s\n", e.FullName())
	fmt.Fprintf(&b, "Role: %s (%s)\n", e.Role, e.Level)
	fmt.Fprintf(&b, "Department: %s\n", e.Department)
	fmt.Fprintf(&b, "Performance Level: %s\n", pos.Performance)
	fmt.Fprintf(&b, "Potential Level: %s\n", pos.Potential)
	fmt.Fprintf(&b, "Grid Cell: %s\n", scoring.CellLabel(pos.Performance, pos.Potential))
	fmt.Fprintf(&b, "Potential Score: %.0f%%\n\n", pos.PotentialScore)
	fmt.Fprintf(&b, "Latest Appraisal: %s/5\n", score)
	fmt.Fprintf(&b, "Training Completion: %.0f%%\n\n", e.AverageTrainingProgress())
	b.WriteString(successionInstructions)
	return b.String()
}

// Metric is one dashboard card.
type Metric struct {
	Name   string
	Value  string
	Trend  domain.Trend
	Change float64
}

// DashboardInsight explains a workforce metric in executive language.
func (s *RationaleService) DashboardInsight(ctx context.Context, m Metric, totalEmployees int) Outcome[string] {
	return resolve(ctx, s.r, llm.TaskInsight,
		func(ctx context.Context, client llm.LLMClient) (string, error) {
			return generateText(ctx, client, llm.TaskInsight, insightSystemPrompt, insightPrompt(m, totalEmployees))
		},
		func() string { return InsightFallback(m) },
	)
}

// InsightFallback is the deterministic metric sentence.
func InsightFallback(m Metric) string {
	return fmt.Sprintf("Metric %s shows %s trend with %s%% change. Analysis requires API configuration.",
		m.Name, m.Trend, formatNumber(m.Change))
}

func insightPrompt(m Metric, totalEmployees int) string {
	trendWord, changeWord := "Stable", ""
	switch m.Trend {
	case domain.TrendUp:
		trendWord, changeWord = "Improving", " increase"
	case domain.TrendDown:
		trendWord, changeWord = "Declining", " decrease"
	}
	total := "N/A"
	if totalEmployees > 0 {
		total = strconv.Itoa(totalEmployees)
	}
	var b strings.Builder
	b.WriteString("You are an HR analytics expert. Generate a concise insight explaining this workforce metric.\n\n")
	fmt.Fprintf(&b, "Metric: %s\n", m.Name)
	fmt.Fprintf(&b, "Current Value: %s\n", m.Value)
	fmt.Fprintf(&b, "Trend: %s\n", trendWord)
	fmt.Fprintf(&b, "Change: %s%%%s\n", formatNumber(m.Change), changeWord)
	fmt.Fprintf(&b, "Total Employees: %s\n\n", total)
	b.WriteString(insightInstructions)
	return b.String()
}

func tenureYears(e *domain.Employee, now time.Time) float64 {
	if e.HireDate.IsZero() || now.Before(e.HireDate) {
		return 0
	}
	return math.Floor(now.Sub(e.HireDate).Hours() / (24 * 365.25))
}

func averageCurrentLevel(e *domain.Employee) float64 {
	a := e.LatestAppraisal()
	if a == nil || len(a.Competencies) == 0 {
		return 0
	}
	var sum float64
	for _, c := range a.Competencies {
		sum += c.CurrentLevel
	}
	return sum / float64(len(a.Competencies))
}

// formatNumber prints the shortest decimal form, so 3 stays "3" and 2.5 stays "2.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
