package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
)

func newMessageCmd(app *App) *cobra.Command {
	var (
		in     messageInput
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "message <employee-id>",
		Short: "Ghostwrite a celebration, motivation or review-nudge message",
		Long: `Draft a message to an employee. Without --type in a terminal, a form
asks for the details. Without a configured model the tone templates are used.`,
		Example: `  hrpulse message emp-001 --type Celebration --tone Friendly --gap "Strategic Vision"
  hrpulse message emp-004 --type Notification --review-date "March 15"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.employee(args[0])
			if err != nil {
				return err
			}
			if app.Messages == nil {
				return errors.New("message service is not available")
			}

			if in.Type == "" {
				if !app.interactive() {
					return errors.New("--type is required when not running in a terminal")
				}
				if err := messageForm(e, &in).Run(); err != nil {
					return fmt.Errorf("message form: %w", err)
				}
			}

			req, err := in.request(e)
			if err != nil {
				return err
			}

			stop := app.spin(cmd.ErrOrStderr(), "Drafting message...")
			out := app.Messages.Generate(cmd.Context(), req)
			stop()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Value)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMessage(out.Value, e, !out.FellBack()))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Type, "type", "", "Celebration, Motivation or Notification")
	f.StringVar(&in.Tone, "tone", "", "Professional, Friendly, Motivational, Celebratory or Supportive (default depends on type)")
	f.StringVar(&in.Gap, "gap", "", "Gap the employee closed (Celebration)")
	f.StringVar(&in.Course, "course", "", "Course in progress (Motivation)")
	f.StringVar(&in.Progress, "progress", "", "Course progress percentage (Motivation)")
	f.StringVar(&in.ReviewDate, "review-date", "", "Upcoming review date (Notification)")
	f.BoolVar(&asJSON, "json", false, "Print the message as JSON")

	return cmd
}
