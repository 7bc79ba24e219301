package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
	"github.com/alexanderramin/hrpulse/internal/intelligence"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

func newSuccessionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "succession <employee-id>",
		Short: "Explain an employee's nine-box placement for succession planning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.employee(args[0])
			if err != nil {
				return err
			}
			pos := scoring.GetNineBoxPosition(e, app.now())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", formatter.Bold(e.FullName()), formatter.Dim(e.Role))
			fmt.Fprintf(out, "%s  %s performance · %s potential (%.0f%%)\n\n",
				formatter.StyleHeader.Render(scoring.CellLabel(pos.Performance, pos.Potential)),
				formatter.PerformanceBadge(pos.Performance), formatter.PotentialBadge(pos.Potential), pos.PotentialScore)

			text := intelligence.SuccessionFallback(pos)
			if app.Rationale != nil {
				stop := app.spin(cmd.ErrOrStderr(), "Writing rationale...")
				text = app.Rationale.SuccessionRationale(cmd.Context(), e, pos).Value
				stop()
			}
			fmt.Fprintln(out, formatter.Wrap(text, 80))
			return nil
		},
	}
}
