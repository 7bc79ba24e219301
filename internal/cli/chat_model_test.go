package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hrpulse/internal/teatest"
)

func newTestChat(t *testing.T) (chatModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chat_history")
	return newChatModel(context.Background(), testApp(t), path), path
}

func typeText(m chatModel, text string) chatModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(chatModel)
}

func press(m chatModel, k tea.KeyType) (chatModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(chatModel), cmd
}

func TestChatModel_EnterAsksAndRecordsHistory(t *testing.T) {
	m, path := newTestChat(t)

	m = typeText(m, "Who is at risk?")
	m, cmd := press(m, tea.KeyEnter)

	require.NotNil(t, cmd)
	assert.True(t, m.pending)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, []string{"Who is at risk?"}, m.history)
	assert.Contains(t, m.View(), "Thinking...")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Who is at risk?\n", string(data))
}

func TestChatModel_AnswerClearsPending(t *testing.T) {
	m, _ := newTestChat(t)
	m = typeText(m, "Show training statistics")
	m, _ = press(m, tea.KeyEnter)

	msg := m.ask("Show training statistics")()
	answer, ok := msg.(answerMsg)
	require.True(t, ok)
	assert.Contains(t, answer.answer.Response, "Training Statistics")

	next, cmd := m.Update(answer)
	m = next.(chatModel)
	assert.False(t, m.pending)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "ask")
	assert.NotContains(t, m.View(), "Thinking...")
}

func TestChatModel_IgnoresEnterWhilePending(t *testing.T) {
	m, _ := newTestChat(t)
	m = typeText(m, "Who is at risk?")
	m, _ = press(m, tea.KeyEnter)

	m = typeText(m, "again")
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Len(t, m.history, 1)
}

func TestChatModel_ExitWords(t *testing.T) {
	for _, word := range []string{"exit", "QUIT"} {
		m, _ := newTestChat(t)
		m = typeText(m, word)
		m, cmd := press(m, tea.KeyEnter)
		assert.True(t, m.quitting, word)
		assert.NotNil(t, cmd)
		assert.Empty(t, m.history)
	}
}

func TestChatModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestChat(t)
	m, _ = press(m, tea.KeyCtrlC)
	assert.True(t, m.quitting)
	assert.Contains(t, m.View(), "Goodbye.")
}

func TestChatModel_HistoryNavigation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_history")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o644))
	m := newChatModel(context.Background(), testApp(t), path)

	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "second", m.input.Value())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "first", m.input.Value())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "first", m.input.Value())
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "second", m.input.Value())
	m, _ = press(m, tea.KeyDown)
	assert.Empty(t, m.input.Value())
}

func TestChatModel_BlankEnterDoesNothing(t *testing.T) {
	m, _ := newTestChat(t)
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.pending)
}

func driveChat(t *testing.T) *teatest.Driver {
	t.Helper()
	m, _ := newTestChat(t)
	d := teatest.New(t, m,
		teatest.WithSize(100, 30),
		teatest.WithSkip(func(msg tea.Msg) bool {
			_, ok := msg.(spinner.TickMsg)
			return ok
		}),
	)
	d.Start()
	return d
}

func TestChatSession_AnswersAndReturnsToPrompt(t *testing.T) {
	d := driveChat(t)

	d.Submit("Who is at risk?")
	d.Submit("Show training statistics")

	m := d.Model.(chatModel)
	assert.False(t, m.pending)
	assert.Equal(t, []string{"Who is at risk?", "Show training statistics"}, m.history)
	assert.Contains(t, d.View(), "ask")

	var answers int
	for _, msg := range d.Seen {
		if _, ok := msg.(answerMsg); ok {
			answers++
		}
	}
	assert.Equal(t, 2, answers)
}

func TestChatSession_ExitWordQuits(t *testing.T) {
	d := driveChat(t)

	d.Submit(":q")

	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Goodbye.")
}
