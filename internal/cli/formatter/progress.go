package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for a 0-100 percentage.
// Green from 66, yellow from 33, red below.
func RenderProgress(pct float64, width int) string {
	pct = clampPercent(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 33:
		style = StyleRed
	case pct < 66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}

// RenderLevel renders a competency level against its requirement on the
// 5-point scale, e.g. ●●●○○ 3.2/4.
func RenderLevel(current, required float64) string {
	dots := int(current + 0.5)
	if dots > 5 {
		dots = 5
	}
	if dots < 0 {
		dots = 0
	}
	style := StyleGreen
	if current < required {
		style = StyleYellow
	}
	return fmt.Sprintf("%s %s", style.Render(strings.Repeat("●", dots))+StyleDim.Render(strings.Repeat("○", 5-dots)),
		fmt.Sprintf("%.1f/%g", current, required))
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
