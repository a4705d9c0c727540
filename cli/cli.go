package cli

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the root command of the deposit plugin CLI
var RootCmd = &cobra.Command{
	Use:   "depositplugin",
	Short: "eth2-deposit-plugin",
	Long:  `Reviews, builds and checks ETH2 deposit contract calls the way a signing device does.`,
}

// Execute executes the root command
func Execute(appName, version string) {
	RootCmd.Short = appName
	RootCmd.Version = version

	if err := RootCmd.Execute(); err != nil {
		log.Fatal("failed to execute root command", zap.Error(err))
	}
}

func init() {
	RootCmd.AddCommand(withdrawalCredentialsCmd)
	RootCmd.AddCommand(buildDepositCmd)
	RootCmd.AddCommand(reviewTxCmd)
}
