package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/scoring"
)

func newEmployeesCmd(app *App) *cobra.Command {
	var (
		filter scoring.Filter
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"ls"},
		Short:   "List the talent directory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			matched := scoring.FilterEmployees(app.employees(), filter, now)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), matched)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEmployeeList(matched, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "Match name, role or department")
	cmd.Flags().StringVar(&filter.Department, "department", "", "Exact department")
	cmd.Flags().Var(newEnumFlag(&filter.Risk, domain.RiskLow, domain.RiskMedium, domain.RiskHigh, domain.RiskCritical),
		"risk", "Risk level: Low, Medium, High or Critical")
	cmd.Flags().Var(newEnumFlag(&filter.Potential, domain.PotentialHigh, domain.PotentialMedium, domain.PotentialLow),
		"potential", "Potential level: High, Medium or Low")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}
