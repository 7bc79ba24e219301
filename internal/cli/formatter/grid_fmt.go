package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

const (
	gridCellWidth = 26
	gridCellNames = 4
)

// FormatNineBox draws the grid with potential on the vertical axis (High on
// top) and performance on the horizontal axis (Below on the left).
func FormatNineBox(cells []scoring.NineBoxCell) string {
	byKey := make(map[[2]string]scoring.NineBoxCell, len(cells))
	for _, c := range cells {
		byKey[[2]string{string(c.Performance), string(c.Potential)}] = c
	}

	columns := []domain.PerformanceLevel{domain.PerformanceBelow, domain.PerformanceMeets, domain.PerformanceExceeds}
	rows := []domain.PotentialLevel{domain.PotentialHigh, domain.PotentialMedium, domain.PotentialLow}

	var lines []string
	for _, pot := range rows {
		rendered := []string{axisLabel(string(pot))}
		for _, perf := range columns {
			rendered = append(rendered, renderGridCell(byKey[[2]string{string(perf), string(pot)}]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	footer := strings.Repeat(" ", 9)
	for _, perf := range columns {
		footer += lipgloss.PlaceHorizontal(gridCellWidth+2, lipgloss.Center, Dim(string(perf)))
	}
	lines = append(lines, footer)
	lines = append(lines, Dim(strings.Repeat(" ", 9)+"Potential ↑   Performance →"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func axisLabel(s string) string {
	return lipgloss.NewStyle().Width(9).PaddingTop(1).Foreground(ColorDim).Render(s)
}

func renderGridCell(c scoring.NineBoxCell) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cellColor(c.Performance, c.Potential)).
		Width(gridCellWidth).
		Height(gridCellNames + 2)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleBold.Render(c.Label), Dim(fmt.Sprintf("(%d)", len(c.Employees))))
	for i, e := range c.Employees {
		if i == gridCellNames {
			b.WriteString(Dim(fmt.Sprintf("+%d more", len(c.Employees)-gridCellNames)))
			break
		}
		b.WriteString(Truncate(e.FullName(), gridCellWidth) + "\n")
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func cellColor(perf domain.PerformanceLevel, pot domain.PotentialLevel) lipgloss.Color {
	switch {
	case perf == domain.PerformanceExceeds && pot == domain.PotentialHigh:
		return ColorGreen
	case perf == domain.PerformanceBelow && pot == domain.PotentialLow:
		return ColorRed
	case perf == domain.PerformanceBelow || pot == domain.PotentialLow:
		return ColorYellow
	case perf == domain.PerformanceExceeds || pot == domain.PotentialHigh:
		return ColorBlue
	default:
		return ColorDim
	}
}

// FormatGridLegend lists every non-empty cell with its description.
func FormatGridLegend(cells []scoring.NineBoxCell) string {
	var b strings.Builder
	for _, c := range cells {
		if len(c.Employees) == 0 {
			continue
		}
		names := make([]string, 0, len(c.Employees))
		for _, e := range c.Employees {
			names = append(names, e.FullName())
		}
		fmt.Fprintf(&b, "%s %s\n  %s\n", StyleHeader.Render(c.Label), Dim("· "+c.Description), strings.Join(names, ", "))
	}
	return b.String()
}
