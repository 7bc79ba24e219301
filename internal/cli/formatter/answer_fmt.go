package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/intelligence"
)

// FormatAnswer renders a chatbot answer followed by a dim provenance line.
func FormatAnswer(a intelligence.Answer) string {
	var b strings.Builder
	b.WriteString(a.Response)
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("intent %s · classified by %s · answered by %s",
		a.Classification.Intent, a.ClassifierSource, a.ResponseSource)))
	b.WriteString("\n")
	return b.String()
}

// FormatChatWelcome is printed once when the chat shell starts.
func FormatChatWelcome(employees int, aiEnabled bool) string {
	mode := StyleYellow.Render("keyword mode")
	if aiEnabled {
		mode = StyleGreen.Render("AI assisted")
	}
	var b strings.Builder
	b.WriteString(StyleHeader.Render("HR PULSE ASSISTANT") + "  " + mode + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d employees loaded. Ask about training, gaps, risk or team leaders.", employees)) + "\n")
	b.WriteString(Dim("Try: \"Who finished their courses?\" · Type exit or press Ctrl+C to leave.") + "\n")
	return b.String()
}
