package check

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paymesh/session-gate/internal/business"
	"github.com/paymesh/session-gate/internal/cmdutils"
	"github.com/paymesh/session-gate/internal/config"
	"github.com/paymesh/session-gate/internal/gate"
)

func Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Evaluate a single navigation attempt",
		Long:  "Check prints the gate decision for the given target path and exits non-zero unless the navigation is allowed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if err := cmdutils.InitLogger(&cfg.Logger); err != nil {
				return fmt.Errorf("initialising the logger: %w", err)
			}

			decision, err := business.CheckMain(cmd.Context(), cfg, args[0])
			if err != nil {
				return fmt.Errorf("evaluating navigation: %w", err)
			}

			out, err := json.Marshal(decision)
			if err != nil {
				return fmt.Errorf("encoding decision: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if decision.Action != gate.ActionAllow {
				cmd.SilenceUsage = true
				return fmt.Errorf("navigation to %s denied: %s", decision.TargetPath, decision.Action)
			}

			return nil
		},
	}
}
