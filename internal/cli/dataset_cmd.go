package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
	"github.com/alexanderramin/hrpulse/internal/db"
	"github.com/alexanderramin/hrpulse/internal/importer"
	"github.com/alexanderramin/hrpulse/internal/repository"
)

func newDatasetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Export or check datasets",
	}
	cmd.AddCommand(newDatasetExportCmd(app), newDatasetValidateCmd())
	return cmd
}

func newDatasetExportCmd(app *App) *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded dataset to a SQLite snapshot",
		Example: `  hrpulse dataset export --out team.db
  hrpulse --dataset team.yaml dataset export --out team.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Dataset == nil {
				return errNoDataset
			}
			if !strings.EqualFold(filepath.Ext(out), ".db") {
				return fmt.Errorf("--out must end in .db, got %q", out)
			}
			if _, err := os.Stat(out); err == nil && !force {
				if !app.interactive() {
					return fmt.Errorf("%s already exists (use --force to replace it)", out)
				}
				if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Overwrite %s?", out)) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			conn, err := db.OpenDB(out)
			if err != nil {
				return err
			}
			defer conn.Close()

			employees, courses := app.Dataset.Employees(), app.Dataset.Courses()
			if err := repository.NewSQLiteDatasetRepo(conn).Save(cmd.Context(), employees, courses); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d employees and %d courses to %s\n",
				formatter.StyleGreen.Render("✔"), len(employees), len(courses), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Snapshot path (.db)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing snapshot without asking")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newDatasetValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.yaml>",
		Short: "Check a YAML dataset for errors without loading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadDatasetSchema(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if errs := importer.ValidateDatasetSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(out, "  %s %v\n", formatter.StyleRed.Render("✖"), e)
				}
				return fmt.Errorf("%s: %d validation error(s)", args[0], len(errs))
			}
			fmt.Fprintf(out, "%s %s: %d employees, %d courses\n",
				formatter.StyleGreen.Render("✔"), args[0], len(schema.Employees), len(schema.Courses))
			return nil
		},
	}
}
