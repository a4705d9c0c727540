package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aquasecurity/table"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/cli/flags"
	"github.com/ssvlabs/eth2-deposit-plugin/eth/contract"
	"github.com/ssvlabs/eth2-deposit-plugin/host"
	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/monitoring/metrics"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin/eth2"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/crypto"
)

// reviewTxCmd runs a transaction through the signing flow and prints what the device would show
var reviewTxCmd = &cobra.Command{
	Use:   "review-tx",
	Short: "prints the review screens of a transaction",
	Run: func(cmd *cobra.Command, args []string) {
		logger := mustSetupGlobal(cmd)
		defer logging.CapturePanic(logger)

		index, err := flags.GetWithdrawalIndexFlagValue(cmd)
		if err != nil {
			logger.Fatal("failed to get withdrawal index flag value", zap.Error(err))
		}
		txFlags, err := flags.GetTransactionFlagValues(cmd)
		if err != nil {
			logger.Fatal("failed to get transaction flag values", zap.Error(err))
		}
		tx, err := transactionFromFlags(txFlags, index)
		if err != nil {
			logger.Fatal("failed to read transaction", zap.Error(err))
		}
		network, err := setupNetwork(cmd, logger)
		if err != nil {
			logger.Fatal("failed to set up network", zap.Error(err))
		}
		seedDeriver, err := setupDeriver(cmd, logger)
		if err != nil {
			logger.Fatal("failed to set up key deriver", zap.Error(err))
		}
		deriver, err := keys.NewCachingDeriver(seedDeriver, cfg.KeyCacheSize)
		if err != nil {
			logger.Fatal("failed to set up key cache", zap.Error(err))
		}

		reg := prometheus.NewRegistry()
		driver := newDriver(logger, network, deriver, metrics.NewPluginMetrics(reg))

		review, err := driver.Review(tx)
		if err != nil {
			logger.Fatal("failed to review transaction", zap.Error(err))
		}
		logMetrics(logger, reg)

		if err := printReview(cmd.OutOrStdout(), review); err != nil {
			logger.Fatal("failed to print review", zap.Error(err))
		}
	},
}

func newDriver(logger *zap.Logger, network networkconfig.NetworkConfig, deriver keys.Deriver, m metrics.PluginMetrics) *host.Driver {
	driver := host.NewDriver(logger, network)
	driver.Register(contract.DepositSelector, eth2.New(deriver, crypto.Sha256Hasher{},
		eth2.WithLogger(logger),
		eth2.WithMetrics(m),
		eth2.WithNetwork(network),
	))
	return driver
}

func transactionFromFlags(f *flags.TransactionFlags, index uint32) (*host.Transaction, error) {
	if f.RawTx != "" {
		raw, err := hexutil.Decode(f.RawTx)
		if err != nil {
			return nil, errors.Wrap(err, "invalid raw transaction hex")
		}
		return host.DecodeTransaction(raw, index)
	}

	if !common.IsHexAddress(f.To) {
		return nil, errors.Errorf("invalid destination address %q", f.To)
	}
	to := common.HexToAddress(f.To)

	value, err := uint256.FromDecimal(f.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value %q", f.Value)
	}

	var data []byte
	if f.Data != "" {
		if data, err = hexutil.Decode(f.Data); err != nil {
			return nil, errors.Wrap(err, "invalid call data hex")
		}
	}

	return &host.Transaction{
		To:              &to,
		Value:           value.Bytes(),
		Data:            data,
		WithdrawalIndex: index,
	}, nil
}

func printReview(w io.Writer, review *host.Review) error {
	var b strings.Builder
	switch {
	case !review.Generic():
		fmt.Fprintf(&b, "Reviewed by %s\n", review.Plugin)
	case review.Fallback:
		b.WriteString("Plugin declined, generic review\n")
	default:
		b.WriteString("Generic review\n")
	}

	tbl := table.New(&b)
	tbl.SetHeaders("#", "Title", "Value")
	for i, screen := range review.Screens {
		tbl.AddRow(strconv.Itoa(i+1), screen.Title, screen.Msg)
	}
	tbl.Render()

	_, err := io.WriteString(w, b.String())
	return err
}

func logMetrics(logger *zap.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logger.Debug("could not gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			logger.Debug("metric",
				zap.String("name", mf.GetName()),
				zap.Strings("labels", labels),
				zap.Float64("value", m.GetCounter().GetValue()))
		}
	}
}

func init() {
	flags.AddMnemonicFlag(reviewTxCmd)
	flags.AddWithdrawalIndexFlag(reviewTxCmd)
	flags.AddNetworkFlag(reviewTxCmd)
	flags.AddTransactionFlags(reviewTxCmd)
}
