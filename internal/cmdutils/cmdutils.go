package cmdutils

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	slogctx "github.com/veqryn/slog-context"

	"github.com/paymesh/session-gate/internal/config"
)

// CobraCommand builds a subcommand that loads the configuration and hands it
// to the business function with logging initialised.
func CobraCommand(
	use, short, long string,
	businessFunc func(context.Context, *config.Config) error,
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if err := Run(cmd.Context(), businessFunc, cfg); err != nil {
				return fmt.Errorf("running %s: %w", use, err)
			}

			return nil
		},
	}
}

func Run(ctx context.Context, fn func(context.Context, *config.Config) error, cfg *config.Config) error {
	if err := InitLogger(&cfg.Logger); err != nil {
		return oops.In("main").
			Wrapf(err, "Failed to initialise the logger")
	}
	slogctx.Debug(ctx, "Starting the application", slog.Any("config", cfg))

	if err := fn(ctx, cfg); err != nil {
		return oops.In("main").
			Wrapf(err, "Failed to start the main business application")
	}

	return nil
}

// InitLogger installs the configured slog handler as the process default,
// wrapped so context attributes attached via slogctx reach every record.
func InitLogger(cfg *config.Logger) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json", "":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("unknown log format: %q", cfg.Format)
	}

	slog.SetDefault(slog.New(slogctx.NewHandler(handler, nil)))

	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", level)
	}
}
