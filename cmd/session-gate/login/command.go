package login

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paymesh/session-gate/internal/business"
	"github.com/paymesh/session-gate/internal/cmdutils"
	"github.com/paymesh/session-gate/internal/config"
)

func Cmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the credential record",
		Long:  "Login exchanges email and password for a bearer token and stores it in the configured credential backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if err := cmdutils.InitLogger(&cfg.Logger); err != nil {
				return fmt.Errorf("initialising the logger: %w", err)
			}

			if err := business.LoginMain(cmd.Context(), cfg, email, password); err != nil {
				cmd.SilenceUsage = true
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "merchant account email")
	cmd.Flags().StringVar(&password, "password", "", "merchant account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
