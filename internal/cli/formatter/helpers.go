package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Wrap breaks text on word boundaries so no line is wider than width. Lines
// are not padded.
func Wrap(text string, width int) string {
	return WrapIndent(text, width, "")
}

// WrapIndent is Wrap with indent prefixed to every line; width includes the
// indent. A word longer than the line is left whole.
func WrapIndent(text string, width int, indent string) string {
	if limit := width - lipgloss.Width(indent); limit > 0 {
		text = ansi.Wordwrap(text, limit, "")
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indent + strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// HumanDate formats a calendar date such as "Mar 15, 2020".
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("Jan 2, 2006")
}

// Tenure renders whole years and months between hire and now, e.g. "4y 2m".
func Tenure(hire, now time.Time) string {
	if hire.IsZero() || now.Before(hire) {
		return "--"
	}
	months := (now.Year()-hire.Year())*12 + int(now.Month()-hire.Month())
	if now.Day() < hire.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	switch {
	case months < 12:
		return fmt.Sprintf("%dm", months)
	case months%12 == 0:
		return fmt.Sprintf("%dy", months/12)
	default:
		return fmt.Sprintf("%dy %dm", months/12, months%12)
	}
}

// Percent formats a 0-100 value with no decimals.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// Truncate shortens s to n visible runes, ending in an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// Sparkline draws a compact trend line for scores on the 5-point scale.
func Sparkline(values []float64) string {
	const ticks = "▁▂▃▄▅▆▇█"
	runes := []rune(ticks)
	if len(values) == 0 {
		return Dim("--")
	}
	var b strings.Builder
	for _, v := range values {
		i := int(v / 5 * float64(len(runes)-1))
		i = max(0, min(i, len(runes)-1))
		b.WriteRune(runes[i])
	}
	return StyleBlue.Render(b.String())
}
