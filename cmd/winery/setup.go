package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"bacchus/winery/internal/config"
	"bacchus/winery/internal/database"
	"bacchus/winery/internal/migrations"
	"bacchus/winery/internal/reports"
	"bacchus/winery/internal/seed"
	"bacchus/winery/internal/table"
)

var setupFlags struct {
	display bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Drop and rebuild the winery database with its seed data",
	Long: `Drops the winery database, creates it again with every table, and loads
the reference and operational dataset. Anything previously stored is lost.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd.Context(), cfg, setupFlags.display, cmd.OutOrStdout())
	},
}

func init() {
	setupCmd.Flags().BoolVar(&setupFlags.display, "display", false, "Print every table after loading")
	rootCmd.AddCommand(setupCmd)
}

// runSetup resets the database, creates the schema and seeds it. Each stage
// uses its own connection.
func runSetup(ctx context.Context, c config.Config, display bool, out io.Writer) error {
	dialect := database.For(c.Driver)

	// the reset runs on a connection not bound to the database it drops
	if err := database.With(ctx, c, "", func(db *sqlx.DB) error {
		return migrations.Reset(ctx, db, dialect, c.Database)
	}); err != nil {
		return err
	}

	if err := database.With(ctx, c, c.Database, func(db *sqlx.DB) error {
		if err := migrations.Run(ctx, db, dialect); err != nil {
			return err
		}
		return seed.Load(ctx, db, seed.Default())
	}); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nThe Winery database setup is now complete!")

	if !display {
		return nil
	}
	return withEngine(ctx, c, func(e *reports.Engine) error {
		displayTables(ctx, e, out)
		return nil
	})
}

// displayTables prints every catalog table. A table that cannot be read is
// reported inline and the rest are still shown.
func displayTables(ctx context.Context, e *reports.Engine, out io.Writer) {
	for _, name := range migrations.TableNames() {
		fmt.Fprintf(out, "\n-- DISPLAYING %s RECORDS --\n", strings.ToUpper(name))
		t, err := e.DumpTable(ctx, name)
		if err != nil {
			fmt.Fprintf(out, "[ERROR] Failed to retrieve data from '%s': %v\n", name, err)
			continue
		}
		if len(t.Rows) == 0 {
			fmt.Fprintf(out, "Table '%s' is empty.\n", name)
			continue
		}
		if err := table.Render(out, t); err != nil {
			fmt.Fprintf(out, "[ERROR] Failed to display '%s': %v\n", name, err)
		}
	}
}
