package query

import (
	"fmt"
	"strings"
)

// MaxListed is how many employees the plain-text answer names.
const MaxListed = 5

// FormatFallback renders a result without any text-generation capability:
// the message, then up to MaxListed numbered employees and a remainder line.
func FormatFallback(r Result) string {
	if r.Type != ResultEmployees || len(r.Matches) == 0 {
		return r.Message
	}

	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString("\n")
	for i, m := range r.Matches {
		if i == MaxListed {
			break
		}
		e := m.Subject()
		fmt.Fprintf(&b, "\n%d. %s (%s)", i+1, e.FullName(), e.Role)
	}
	if extra := len(r.Matches) - MaxListed; extra > 0 {
		fmt.Fprintf(&b, "\n... and %d more", extra)
	}
	return b.String()
}

// SummarizeForPrompt describes a result for a text-generation prompt,
// naming the top employees with department and score.
func SummarizeForPrompt(r Result) string {
	if r.Type != ResultEmployees {
		return r.Message
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d employee(s). Here are the key details:", len(r.Matches))
	for i, m := range r.Matches {
		if i == MaxListed {
			break
		}
		e := m.Subject()
		score := "N/A"
		if a := e.LatestAppraisal(); a != nil {
			score = fmt.Sprintf("%d", a.OverallScore)
		}
		fmt.Fprintf(&b, "\n%d. %s (%s, %s) - Performance: %s/5", i+1, e.FullName(), e.Role, e.Department, score)
	}
	if extra := len(r.Matches) - MaxListed; extra > 0 {
		fmt.Fprintf(&b, "\n... and %d more", extra)
	}
	return b.String()
}
