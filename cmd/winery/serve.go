package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"bacchus/winery/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reports over an authenticated HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := &http.Server{
			Addr:              ":" + cfg.HTTPPort,
			Handler:           api.New(cfg).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		return serve(cmd.Context(), srv)
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [PASSWORD]",
	Short: "Print a bcrypt hash for REPORT_PASSWORD_HASH",
	Long: `Print a bcrypt hash for REPORT_PASSWORD_HASH. The password is read from
standard input when it is not given as an argument.`,
	Args: cobra.MaximumNArgs(1),
	// no secrets file is needed to hash a password
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		return hashPassword(cmd.InOrStdin(), cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, hashPasswordCmd)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		log.Infof("Bacchus Winery report API listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	log.Info("shutting down report API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown http server")
	}
	return nil
}

func hashPassword(in io.Reader, out io.Writer, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "read password")
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	fmt.Fprintln(out, string(hash))
	return nil
}
