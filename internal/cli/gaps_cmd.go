package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
)

func newGapsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "gaps <employee-id>",
		Short: "Show an employee's skill gaps with a training rationale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.employee(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n\n", formatter.Bold(e.FullName()), formatter.Dim(e.Role))
			fmt.Fprint(out, formatter.FormatGapTable(e.GapAnalysis))
			if e.GapAnalysis == nil || app.Rationale == nil {
				return nil
			}

			stop := app.spin(cmd.ErrOrStderr(), "Writing rationale...")
			rationale := app.Rationale.GapRationale(cmd.Context(), e)
			stop()

			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.Header("Rationale"))
			fmt.Fprintf(out, "\n%s\n", formatter.Wrap(rationale.Value, 80))
			if rationale.FellBack() {
				fmt.Fprintln(out, formatter.Dim("(stored analysis)"))
			}
			return nil
		},
	}
}
