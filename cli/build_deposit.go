package cli

import (
	"fmt"
	"io"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/cli/flags"
	"github.com/ssvlabs/eth2-deposit-plugin/eth/depositdata"
	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/crypto"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/format"
)

// buildDepositCmd prints a deposit contract call for a validator derived from the mnemonic
var buildDepositCmd = &cobra.Command{
	Use:   "build-deposit",
	Short: "builds a signed deposit contract call for a validator index",
	Run: func(cmd *cobra.Command, args []string) {
		logger := mustSetupGlobal(cmd)
		defer logging.CapturePanic(logger)

		index, err := flags.GetWithdrawalIndexFlagValue(cmd)
		if err != nil {
			logger.Fatal("failed to get withdrawal index flag value", zap.Error(err))
		}
		amount, err := flags.GetAmountFlagValue(cmd)
		if err != nil {
			logger.Fatal("failed to get amount flag value", zap.Error(err))
		}
		network, err := setupNetwork(cmd, logger)
		if err != nil {
			logger.Fatal("failed to set up network", zap.Error(err))
		}
		deriver, err := setupDeriver(cmd, logger)
		if err != nil {
			logger.Fatal("failed to set up key deriver", zap.Error(err))
		}

		builder := depositdata.NewBuilder(logger, deriver, crypto.Sha256Hasher{}, network)
		if err := printDeposit(cmd.OutOrStdout(), builder, network, index, phase0.Gwei(amount)); err != nil {
			logger.Fatal("failed to build deposit", zap.Error(err))
		}
	},
}

func printDeposit(w io.Writer, builder *depositdata.Builder, network networkconfig.NetworkConfig, index uint32, amount phase0.Gwei) error {
	deposit, err := builder.Build(index, amount)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w,
		"To: %s\nValue: %s wei\nPublic key: %s\nDevice display: %s\nWithdrawal credentials: %s\nSignature: %s\nDeposit data root: %s\nCall data: %s\n",
		format.Address(network.DepositContractAddr),
		new(uint256.Int).SetBytes(deposit.Value).Dec(),
		hexutil.Encode(deposit.Data.PublicKey[:]),
		format.AddressFromBytes(deposit.Data.PublicKey[:]),
		hexutil.Encode(deposit.Data.WithdrawalCredentials),
		hexutil.Encode(deposit.Data.Signature[:]),
		hexutil.Encode(deposit.Root[:]),
		hexutil.Encode(deposit.CallData),
	)
	return err
}

func init() {
	flags.AddMnemonicFlag(buildDepositCmd)
	flags.AddWithdrawalIndexFlag(buildDepositCmd)
	flags.AddNetworkFlag(buildDepositCmd)
	flags.AddAmountFlag(buildDepositCmd)
}
