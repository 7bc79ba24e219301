package formatter

import (
	"fmt"
	"strings"
)

// AIStatus is what `ai status` reports.
type AIStatus struct {
	Enabled       bool
	Configured    bool
	HasKey        bool
	KeyLooksValid bool
	Reachable     bool
	Checked       bool
	Endpoint      string
	Model         string
	Breaker       string
}

func FormatAIStatus(s AIStatus) string {
	var b strings.Builder
	b.WriteString(Header("AI Status"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Enabled     %s\n", check(s.Enabled))
	fmt.Fprintf(&b, "  API key     %s\n", keyState(s))
	if s.Checked {
		fmt.Fprintf(&b, "  Reachable   %s\n", check(s.Reachable))
	}
	fmt.Fprintf(&b, "  Endpoint    %s\n", s.Endpoint)
	fmt.Fprintf(&b, "  Model       %s\n", s.Model)
	if s.Breaker != "" {
		fmt.Fprintf(&b, "  Breaker     %s\n", s.Breaker)
	}
	if !s.Configured {
		b.WriteString("\n" + Dim("Deterministic fallbacks are in use. Set OPENAI_API_KEY to enable AI features.") + "\n")
	}
	return b.String()
}

func check(ok bool) string {
	if ok {
		return StyleGreen.Render("✔ yes")
	}
	return StyleRed.Render("✖ no")
}

func keyState(s AIStatus) string {
	switch {
	case !s.HasKey:
		return StyleRed.Render("✖ missing")
	case !s.KeyLooksValid:
		return StyleYellow.Render("● present, unexpected format")
	default:
		return StyleGreen.Render("✔ present")
	}
}
