package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

// MetricCard is one dashboard metric with its narrative.
type MetricCard struct {
	Name    string
	Value   string
	Trend   domain.Trend
	Change  float64
	Insight string
	AI      bool
}

// FormatDashboard renders the metric cards and the performance distribution.
func FormatDashboard(m scoring.WorkforceMetrics, distribution map[domain.PerformanceCategory]int, cards []MetricCard) string {
	var b strings.Builder
	b.WriteString(Header("Workforce Dashboard"))
	fmt.Fprintf(&b, "\n%s %d employees\n\n", Dim("Population:"), m.TotalEmployees)

	for _, c := range cards {
		fmt.Fprintf(&b, "%s  %s  %s\n", StyleBold.Render(fmt.Sprintf("%-22s", c.Name)), StyleHeader.Render(c.Value), TrendArrow(c.Trend, c.Change))
		if c.Insight != "" {
			fmt.Fprintf(&b, "%s%s\n", WrapIndent(c.Insight, 78, "  "), sourceTag(c.AI))
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Performance Distribution"))
	b.WriteString("\n")
	total := m.TotalEmployees
	for _, cat := range domain.PerformanceCategories {
		n := distribution[cat]
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		fmt.Fprintf(&b, "  %-20s %s %d\n", cat, RenderProgress(pct, 20), n)
	}
	return b.String()
}

func sourceTag(ai bool) string {
	if ai {
		return " " + StylePurple.Render("✦")
	}
	return ""
}
