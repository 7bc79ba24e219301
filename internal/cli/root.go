package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "hrpulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:           "hrpulse",
		Short:         "Talent analytics: nine-box placement, skill gaps and an HR assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to a YAML config file (default $HRPULSE_CONFIG)")
	flags.StringVar(&opts.DatasetPath, "dataset", "", "Dataset to load: YAML file or .db snapshot (default embedded demo data)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		newEmployeesCmd(app),
		newShowCmd(app),
		newGridCmd(app),
		newDashboardCmd(app),
		newGapsCmd(app),
		newSuccessionCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newMessageCmd(app),
		newAICmd(app),
		newDatasetCmd(app),
	)

	return root
}
