package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

// FormatMessage renders a generated message as an email preview.
func FormatMessage(m domain.MessageTemplate, recipient *domain.Employee, ai bool) string {
	var b strings.Builder
	to := m.RecipientID
	if recipient != nil {
		to = fmt.Sprintf("%s <%s>", recipient.FullName(), recipient.Email)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("To:     "), to)
	fmt.Fprintf(&b, "%s %s\n", Dim("Subject:"), StyleBold.Render(m.Subject))
	fmt.Fprintf(&b, "%s %s · %s\n\n", Dim("Style:  "), m.Type, m.Tone)
	b.WriteString(m.Body)
	b.WriteString("\n")

	source := "template"
	if ai {
		source = "AI"
	}
	footer := fmt.Sprintf("%s\n%s", Dim(m.AIRationale), Dim(fmt.Sprintf("%s · %s · %s", source, m.ID, m.GeneratedAt.Format("2006-01-02 15:04"))))
	return RenderBox("Message", b.String()) + "\n" + footer + "\n"
}
