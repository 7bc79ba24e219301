package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive HR assistant session",
		Long: `Ask workforce questions in a loop. Answers come from the loaded
dataset; a configured model phrases them, otherwise plain summaries are shown.
Up/Down recall earlier questions; exit or Ctrl+C leaves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Assistant == nil {
				return errors.New("assistant is not available")
			}
			if !app.interactive() {
				return errors.New("chat needs an interactive terminal; use `hrpulse ask` instead")
			}
			m := newChatModel(cmd.Context(), app, chatHistoryPath())
			_, err := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}
}
