// Command tpe-manager runs the payment terminal inventory API.
//
//	@title						TPE Manager API
//	@version					1.0
//	@description				Inventory of payment terminals with role-gated user administration.
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tpe-manager",
		Short:         "Payment terminal inventory service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCommand(),
		createAdminCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
