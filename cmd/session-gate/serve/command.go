package serve

import (
	"github.com/spf13/cobra"

	"github.com/paymesh/session-gate/internal/business"
	"github.com/paymesh/session-gate/internal/cmdutils"
)

func Cmd() *cobra.Command {
	return cmdutils.CobraCommand(
		"serve",
		"Session Gate API server",
		"Session Gate API server hosts the HTTP evaluate, invalidate and login endpoints",
		business.Main,
	)
}
