package flags

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ssvlabs/eth2-deposit-plugin/utils/cliflag"
)

// Flag names.
const (
	mnemonicFlag = "mnemonic"
	indexFlag    = "index"
	networkFlag  = "network"
	amountFlag   = "amount"
	rawTxFlag    = "raw-tx"
	toFlag       = "to"
	valueFlag    = "value"
	dataFlag     = "data"
)

// DefaultDepositAmount is 32 ETH in gwei.
const DefaultDepositAmount = 32_000_000_000

// AddMnemonicFlag adds the mnemonic flag to the command
func AddMnemonicFlag(c *cobra.Command) {
	cliflag.AddPersistentStringFlag(c, mnemonicFlag, "", "24 word mnemonic phrase, overrides MNEMONIC", false)
}

// GetMnemonicFlagValue gets the mnemonic flag from the command
func GetMnemonicFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(mnemonicFlag)
}

// AddWithdrawalIndexFlag adds the withdrawal index flag to the command
func AddWithdrawalIndexFlag(c *cobra.Command) {
	cliflag.AddPersistentIntFlag(c, indexFlag, 0, "EIP-2334 validator index of the withdrawal key", false)
}

// GetWithdrawalIndexFlagValue gets the withdrawal index flag from the command
func GetWithdrawalIndexFlagValue(c *cobra.Command) (uint32, error) {
	index, err := c.Flags().GetUint64(indexFlag)
	if err != nil {
		return 0, err
	}
	if index > math.MaxUint32 {
		return 0, errors.Errorf("index %d does not fit 32 bits", index)
	}
	return uint32(index), nil
}

// AddNetworkFlag adds the network flag to the command
func AddNetworkFlag(c *cobra.Command) {
	cliflag.AddPersistentStringFlag(c, networkFlag, "", "network name, overrides NETWORK", false)
}

// GetNetworkFlagValue gets the network flag from the command
func GetNetworkFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(networkFlag)
}

// AddAmountFlag adds the deposit amount flag to the command
func AddAmountFlag(c *cobra.Command) {
	cliflag.AddPersistentIntFlag(c, amountFlag, DefaultDepositAmount, "deposit amount in gwei", false)
}

// GetAmountFlagValue gets the deposit amount flag from the command
func GetAmountFlagValue(c *cobra.Command) (uint64, error) {
	return c.Flags().GetUint64(amountFlag)
}

// AddTransactionFlags adds the flags describing a transaction to review
func AddTransactionFlags(c *cobra.Command) {
	cliflag.AddPersistentStringFlag(c, rawTxFlag, "", "hex encoded signed or unsigned raw transaction", false)
	cliflag.AddPersistentStringFlag(c, toFlag, "", "destination address, when no raw transaction is given", false)
	cliflag.AddPersistentStringFlag(c, valueFlag, "0", "value in wei, when no raw transaction is given", false)
	cliflag.AddPersistentStringFlag(c, dataFlag, "", "hex encoded call data, when no raw transaction is given", false)
}

// TransactionFlags holds the values of the transaction flags.
type TransactionFlags struct {
	RawTx string
	To    string
	Value string
	Data  string
}

// GetTransactionFlagValues gets the transaction flags from the command
func GetTransactionFlagValues(c *cobra.Command) (*TransactionFlags, error) {
	var f TransactionFlags
	var err error
	if f.RawTx, err = c.Flags().GetString(rawTxFlag); err != nil {
		return nil, err
	}
	if f.To, err = c.Flags().GetString(toFlag); err != nil {
		return nil, err
	}
	if f.Value, err = c.Flags().GetString(valueFlag); err != nil {
		return nil, err
	}
	if f.Data, err = c.Flags().GetString(dataFlag); err != nil {
		return nil, err
	}
	return &f, nil
}
