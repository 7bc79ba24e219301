package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

func TestTenure(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		hire time.Time
		want string
	}{
		{"months only", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "4m"},
		{"whole years", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), "3y"},
		{"years and months", time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), "4y 2m"},
		{"future hire", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "--"},
		{"zero", time.Time{}, "--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tenure(tt.hire, now))
		})
	}
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "--", HumanDate(time.Time{}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Senior So…", Truncate("Senior Software Architect", 10))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "75%", Percent(74.6))
	assert.Equal(t, "0%", Percent(0))
}

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{0, 2.5, 5})
	assert.Contains(t, got, "▁")
	assert.Contains(t, got, "█")
	assert.Contains(t, Sparkline(nil), "--")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"ID", "NAME"}, [][]string{
		{"emp-001", "Sarah Chen"},
		{"e2", "Ben"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[1], "───────")
	assert.Equal(t, strings.Index(lines[2], "Sarah"), strings.Index(lines[3], "Ben"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRiskIndicator(t *testing.T) {
	assert.Contains(t, RiskIndicator(domain.RiskCritical), "CRITICAL")
	assert.Contains(t, RiskIndicator(domain.RiskLow), "LOW")
	assert.Contains(t, RiskIndicator(""), "UNKNOWN")
}

func TestTrendArrow(t *testing.T) {
	assert.Contains(t, TrendArrow(domain.TrendUp, 4.2), "↑ 4.2%")
	assert.Contains(t, TrendArrow(domain.TrendDown, -3), "↓ 3.0%")
	assert.Contains(t, TrendArrow(domain.TrendStable, 0), "stable")
}

const longInsight = "Metric Workforce Readiness shows up trend with 3.6% change. Analysis requires API configuration."

func TestWrap(t *testing.T) {
	out := Wrap(longInsight, 40)
	lines := strings.Split(out, "\n")

	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40, line)
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
	assert.Equal(t, longInsight, strings.Join(strings.Fields(out), " "))
}

func TestWrapIndent(t *testing.T) {
	out := WrapIndent(longInsight, 30, "  ")

	for _, line := range strings.Split(out, "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), line)
		assert.LessOrEqual(t, len(line), 30, line)
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestWrap_KeepsLongWordWhole(t *testing.T) {
	assert.Equal(t, "supercalifragilistic", Wrap("supercalifragilistic", 8))
	assert.Equal(t, "short", Wrap("short", 0))
}
