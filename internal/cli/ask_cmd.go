package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
)

func newAskCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the HR assistant a question about the workforce",
		Example: `  hrpulse ask "Who finished their courses?"
  hrpulse ask "Who has leadership gaps?" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return errors.New("question must not be empty")
			}
			if app.Assistant == nil {
				return errors.New("assistant is not available")
			}

			stop := app.spin(cmd.ErrOrStderr(), "Thinking...")
			answer := app.Assistant.Ask(cmd.Context(), question, app.employees())
			stop()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), answer)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnswer(answer))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full answer, including matched records, as JSON")

	return cmd
}
