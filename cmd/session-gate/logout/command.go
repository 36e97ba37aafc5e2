package logout

import (
	"github.com/spf13/cobra"

	"github.com/paymesh/session-gate/internal/business"
	"github.com/paymesh/session-gate/internal/cmdutils"
)

func Cmd() *cobra.Command {
	return cmdutils.CobraCommand(
		"logout",
		"Clear the stored credential and session cache",
		"Logout invalidates the verification cache and removes the persisted credential record",
		business.LogoutMain,
	)
}
