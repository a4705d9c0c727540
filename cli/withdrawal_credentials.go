package cli

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/cli/flags"
	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin/eth2"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/crypto"
)

// withdrawalCredentialsCmd prints the withdrawal credentials the device accepts for an index
var withdrawalCredentialsCmd = &cobra.Command{
	Use:   "withdrawal-credentials",
	Short: "prints the withdrawal credentials expected for a withdrawal index",
	Run: func(cmd *cobra.Command, args []string) {
		logger := mustSetupGlobal(cmd)
		defer logging.CapturePanic(logger)

		index, err := flags.GetWithdrawalIndexFlagValue(cmd)
		if err != nil {
			logger.Fatal("failed to get withdrawal index flag value", zap.Error(err))
		}
		deriver, err := setupDeriver(cmd, logger)
		if err != nil {
			logger.Fatal("failed to set up key deriver", zap.Error(err))
		}

		if err := printWithdrawalCredentials(cmd.OutOrStdout(), deriver, index); err != nil {
			logger.Fatal("failed to compute withdrawal credentials", zap.Error(err))
		}
	},
}

func printWithdrawalCredentials(w io.Writer, deriver keys.Deriver, index uint32) error {
	verifier := eth2.NewWithdrawalVerifier(deriver, crypto.Sha256Hasher{})
	creds, err := verifier.Expected(index)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Path: %s\nWithdrawal credentials: %s\n",
		keys.PathString(keys.WithdrawalPath(index)), hexutil.Encode(creds[:]))
	return err
}

func init() {
	flags.AddMnemonicFlag(withdrawalCredentialsCmd)
	flags.AddWithdrawalIndexFlag(withdrawalCredentialsCmd)
}
