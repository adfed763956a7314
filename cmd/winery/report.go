package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bacchus/winery/internal/config"
	"bacchus/winery/internal/logging"
	"bacchus/winery/internal/menu"
	"bacchus/winery/internal/reports"
	"bacchus/winery/internal/table"
)

var reportFlags struct {
	json bool
}

var reportCmd = &cobra.Command{
	Use:   "report NAME",
	Short: "Print one report",
	Long: `Print one report as a text table.

Available reports:
  suppliers        - delivery delay per supplier and order date
  supplier-trends  - delivery delay per supplier and month
  sales            - every wine sale with its distributor
  sales-trends     - quantity per distributor, wine type and month
  employees        - hours per employee and quarter`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: reports.Names,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd.Context(), cfg, args[0], reportFlags.json, cmd.OutOrStdout())
	},
}

var tableCmd = &cobra.Command{
	Use:   "table NAME",
	Short: "Print every row of one table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withEngine(ctx, cfg, func(e *reports.Engine) error {
			t, err := e.DumpTable(ctx, args[0])
			if err != nil {
				return err
			}
			return table.Render(cmd.OutOrStdout(), t)
		})
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose reports from an interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), runner(cfg), logging.Failure).Loop(cmd.Context())
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportFlags.json, "json", false, "Print the rows as JSON instead of a table")
	reportCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(reportCmd, menuCmd)
}

// runner opens a connection per report.
func runner(c config.Config) menu.Runner {
	return func(ctx context.Context, name string) (reports.Result, error) {
		var res reports.Result
		err := withEngine(ctx, c, func(e *reports.Engine) error {
			var err error
			res, err = e.Run(ctx, name)
			return err
		})
		return res, err
	}
}

func printReport(ctx context.Context, c config.Config, name string, asJSON bool, out io.Writer) error {
	res, err := runner(c)(ctx, name)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if err := table.Render(out, res.Table); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}
