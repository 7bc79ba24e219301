package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

func newGridCmd(app *App) *cobra.Command {
	var (
		department string
		legend     bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the nine-box talent grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			employees := scoring.FilterEmployees(app.employees(), scoring.Filter{Department: department}, now)
			cells := scoring.BuildNineBoxGrid(employees, now)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatNineBox(cells))
			if legend {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatGridLegend(cells))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Only place employees of this department")
	cmd.Flags().BoolVar(&legend, "legend", false, "List every employee by cell below the grid")

	return cmd
}
