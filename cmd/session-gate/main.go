package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	slogctx "github.com/veqryn/slog-context"

	"github.com/paymesh/session-gate/cmd/session-gate/check"
	"github.com/paymesh/session-gate/cmd/session-gate/login"
	"github.com/paymesh/session-gate/cmd/session-gate/logout"
	"github.com/paymesh/session-gate/cmd/session-gate/serve"
)

var (
	// BuildInfo will be set by the build system
	BuildInfo = "dev"

	isVersionCmd     bool
	gracefulShutdown time.Duration
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Session Gate Version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		isVersionCmd = true

		slog.InfoContext(cmd.Context(), BuildInfo)

		return nil
	},
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session-gate",
		Short: "Session Gate",
		Long:  "Merchant dashboard session gate, deciding whether navigations to protected views are allowed.",
	}

	cmd.PersistentFlags().DurationVar(&gracefulShutdown, "graceful-shutdown", 1*time.Second, "graceful shutdown")

	cmd.AddCommand(
		versionCmd,
		serve.Cmd(),
		check.Cmd(),
		login.Cmd(),
		logout.Cmd(),
	)

	return cmd
}

func execute() error {
	ctx, cancelOnSignal := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancelOnSignal()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		slogctx.Error(ctx, "failed to start the application", "error", err)
		_, _ = fmt.Fprintln(os.Stderr, err)

		return err
	}

	if !isVersionCmd {
		_, _ = fmt.Fprintf(os.Stderr, "Graceful shutdown in %s\n", gracefulShutdown)
		time.Sleep(gracefulShutdown)
	}

	return nil
}

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
