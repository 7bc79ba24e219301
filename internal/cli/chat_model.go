package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
	"github.com/alexanderramin/hrpulse/internal/intelligence"
)

// answerMsg carries a finished assistant turn back into Update.
type answerMsg struct {
	answer intelligence.Answer
}

var chatExitWords = map[string]bool{"exit": true, "quit": true, ":q": true}

// chatModel is the bubbletea model behind `hrpulse chat`: one input line,
// answers printed above it, one question in flight at a time.
type chatModel struct {
	input   textinput.Model
	spinner spinner.Model
	width   int

	app *App
	ctx context.Context

	pending  bool
	history  []string
	histIdx  int
	histPath string

	quitting bool
}

func newChatModel(ctx context.Context, app *App, histPath string) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Who can be a team leader?"
	ti.CharLimit = 500
	ti.ShowSuggestions = true
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.SetSuggestions(chatSuggestions)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	hist := loadHistoryFromPath(histPath)
	return chatModel{
		input:    ti,
		spinner:  sp,
		app:      app,
		ctx:      ctx,
		history:  hist,
		histIdx:  len(hist),
		histPath: histPath,
	}
}

var chatSuggestions = []string{
	"Who finished their courses?",
	"Who can be a team leader?",
	"Who has leadership gaps?",
	"Who is at risk?",
	"Show high potential employees",
	"Show training statistics",
	"Who has incomplete training?",
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatChatWelcome(len(m.app.employees()), m.app.Client != nil)),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(promptText) - 1
		return m, nil

	case answerMsg:
		m.pending = false
		return m, tea.Println(formatter.FormatAnswer(msg.answer))

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.pending {
			return m, nil
		}
		question := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if question == "" {
			return m, nil
		}
		if chatExitWords[strings.ToLower(question)] {
			m.quitting = true
			return m, tea.Quit
		}
		m.addHistory(question)
		m.pending = true
		return m, tea.Batch(
			tea.Println(formatter.StylePurple.Render("you")+formatter.Dim("> ")+question),
			m.spinner.Tick,
			m.ask(question),
		)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs the assistant off the UI goroutine.
func (m chatModel) ask(question string) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		return answerMsg{answer: app.Assistant.Ask(ctx, question, app.employees())}
	}
}

const promptText = "ask> "

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	if m.pending {
		return m.spinner.View() + " " + formatter.Dim("Thinking...")
	}
	return formatter.StylePurple.Render("ask") + formatter.Dim("> ") + m.input.View()
}

func (m *chatModel) addHistory(line string) {
	m.history = append(m.history, line)
	m.histIdx = len(m.history)
	appendHistoryToPath(m.histPath, line)
}

func (m *chatModel) historyUp() {
	if m.histIdx > 0 {
		m.histIdx--
		m.input.SetValue(m.history[m.histIdx])
		m.input.CursorEnd()
	}
}

func (m *chatModel) historyDown() {
	if m.histIdx < len(m.history)-1 {
		m.histIdx++
		m.input.SetValue(m.history[m.histIdx])
		m.input.CursorEnd()
		return
	}
	m.histIdx = len(m.history)
	m.input.Reset()
}
