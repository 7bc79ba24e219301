package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
)

// breakerReporter is implemented by clients that guard calls with a
// circuit breaker.
type breakerReporter interface {
	BreakerState() string
}

func newAICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Inspect the text-generation backend",
	}
	cmd.AddCommand(newAIStatusCmd(app))
	return cmd
}

func newAIStatusCmd(app *App) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether AI features are configured and reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := formatter.AIStatus{
				Enabled:       app.LLM.Enabled,
				Configured:    app.LLM.Configured(),
				HasKey:        strings.TrimSpace(app.LLM.APIKey) != "",
				KeyLooksValid: app.LLM.KeyLooksValid(),
				Endpoint:      app.LLM.Endpoint,
				Model:         app.LLM.Model,
			}
			if br, ok := app.Client.(breakerReporter); ok {
				status.Breaker = br.BreakerState()
			}
			if check && app.Client != nil {
				status.Checked = true
				status.Reachable = app.Client.Available(cmd.Context())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAIStatus(status))
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Probe the endpoint to confirm it is reachable")

	return cmd
}
