package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"bacchus/winery/internal/config"
	"bacchus/winery/internal/database"
	"bacchus/winery/internal/logging"
	"bacchus/winery/internal/reports"
)

var (
	envFile string
	cfg     config.Config
	logFile io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "winery",
	Short: "Bacchus Winery database setup and reporting",
	Long: `Builds the Bacchus Winery schema, loads the reference and operational
dataset, and produces the supplier, wine sales and employee hours reports.

Connection settings are read from the secrets file given by --env.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Secrets file with the connection settings")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	closer, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogFile)
	if err != nil {
		return err
	}
	logFile = closer
	return nil
}

// withEngine runs fn on a report engine bound to a fresh connection.
func withEngine(ctx context.Context, c config.Config, fn func(*reports.Engine) error) error {
	return database.With(ctx, c, c.Database, func(db *sqlx.DB) error {
		return fn(reports.New(db, database.For(c.Driver)))
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logging.Failure(os.Stdout, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
