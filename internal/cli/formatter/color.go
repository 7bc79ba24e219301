package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskColor returns the style for a risk level.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskCritical:
		return StyleRed
	case domain.RiskHigh:
		return StyleYellow
	case domain.RiskMedium:
		return StyleBlue
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored indicator such as "● HIGH".
func RiskIndicator(risk domain.RiskLevel) string {
	if risk == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return RiskColor(risk).Render("● " + strings.ToUpper(string(risk)))
}

func PotentialBadge(p domain.PotentialLevel) string {
	switch p {
	case domain.PotentialHigh:
		return StyleGreen.Render("▲ High")
	case domain.PotentialMedium:
		return StyleBlue.Render("■ Medium")
	case domain.PotentialLow:
		return StyleDim.Render("▼ Low")
	default:
		return StyleDim.Render(string(p))
	}
}

func PerformanceBadge(p domain.PerformanceLevel) string {
	switch p {
	case domain.PerformanceExceeds:
		return StyleGreen.Render(string(p))
	case domain.PerformanceMeets:
		return StyleFg.Render(string(p))
	case domain.PerformanceBelow:
		return StyleRed.Render(string(p))
	default:
		return StyleDim.Render(string(p))
	}
}

// PriorityPill colors a gap or track priority.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render("◆ " + string(p))
	case domain.PriorityHigh:
		return StyleYellow.Render("◆ " + string(p))
	case domain.PriorityMedium:
		return StyleBlue.Render("◇ " + string(p))
	default:
		return StyleDim.Render("◇ " + string(p))
	}
}

func StatusPill(s domain.CompletionStatus) string {
	switch s {
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusNotStarted:
		return StyleBlue.Render("○ Not Started")
	default:
		return StyleDim.Render(string(s))
	}
}

// TrendArrow renders a trend with its signed change.
func TrendArrow(t domain.Trend, change float64) string {
	switch t {
	case domain.TrendUp:
		return StyleGreen.Render(fmt.Sprintf("↑ %.1f%%", math.Abs(change)))
	case domain.TrendDown:
		return StyleRed.Render(fmt.Sprintf("↓ %.1f%%", math.Abs(change)))
	default:
		return StyleDim.Render("→ stable")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
