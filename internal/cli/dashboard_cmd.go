package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/intelligence"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

func newDashboardCmd(app *App) *cobra.Command {
	var noInsights bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show workforce metrics with narrative insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees := app.employees()
			m := scoring.ComputeWorkforceMetrics(employees)
			cards := dashboardCards(m, employees)

			if !noInsights && app.Rationale != nil {
				stop := app.spin(cmd.ErrOrStderr(), "Analyzing metrics...")
				fillInsights(cmd.Context(), app.Rationale, cards, m.TotalEmployees)
				stop()
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(m, scoring.PerformanceDistribution(employees), cards))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noInsights, "no-insights", false, "Skip the per-metric narrative")

	return cmd
}

// dashboardCards builds the metric cards. Only readiness carries a trend,
// taken from the population's performance history.
func dashboardCards(m scoring.WorkforceMetrics, employees []*domain.Employee) []formatter.MetricCard {
	trend, change := scoring.PopulationTrend(employees)
	return []formatter.MetricCard{
		{Name: "Workforce Readiness", Value: formatter.Percent(m.WorkforceReadiness), Trend: trend, Change: change},
		{Name: "Average Skill Gap", Value: fmt.Sprintf("%.1f%%", m.AverageSkillGap), Trend: domain.TrendStable},
		{Name: "At-Risk Talent", Value: fmt.Sprintf("%d", m.AtRiskTalent), Trend: domain.TrendStable},
		{Name: "High Potential", Value: fmt.Sprintf("%d", m.HighPotentialCount), Trend: domain.TrendStable},
		{Name: "Training Completion", Value: formatter.Percent(m.TrainingCompletionRate), Trend: domain.TrendStable},
	}
}

func fillInsights(ctx context.Context, svc *intelligence.RationaleService, cards []formatter.MetricCard, total int) {
	for i := range cards {
		c := &cards[i]
		out := svc.DashboardInsight(ctx, intelligence.Metric{
			Name: c.Name, Value: c.Value, Trend: c.Trend, Change: c.Change,
		}, total)
		c.Insight = out.Value
		c.AI = !out.FellBack()
	}
}
