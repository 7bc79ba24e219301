package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <employee-id>",
		Short: "Show an employee profile with placement, potential and gaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.employee(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEmployeeProfile(e, app.now()))
			return nil
		},
	}
}
