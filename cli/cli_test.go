package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	globalconfig "github.com/ssvlabs/eth2-deposit-plugin/cli/config"
	"github.com/ssvlabs/eth2-deposit-plugin/cli/flags"
	"github.com/ssvlabs/eth2-deposit-plugin/eth/depositdata"
	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/monitoring/metrics"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin/eth2"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/crypto"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/format"
)

func TestPrintWithdrawalCredentials(t *testing.T) {
	deriver := keys.TestDeriver(t)
	var out bytes.Buffer
	require.NoError(t, printWithdrawalCredentials(&out, deriver, 2))

	pk, err := deriver.PublicKey(keys.WithdrawalPath(2))
	require.NoError(t, err)
	creds := keys.BLSWithdrawalCredentials(crypto.Sha256Hasher{}, pk)

	require.Equal(t, "Path: m/12381/3600/2/0\nWithdrawal credentials: "+hexutil.Encode(creds[:])+"\n", out.String())
	require.True(t, strings.Contains(out.String(), "0x00"))

	require.ErrorIs(t, printWithdrawalCredentials(&out, deriver, eth2.MaxWithdrawalIndex+1), eth2.ErrWithdrawalIndexTooLarge)
}

func TestBuildAndReviewDeposit(t *testing.T) {
	logger := logging.TestLogger(t)
	deriver := keys.TestDeriver(t)
	network := networkconfig.Mainnet

	var out bytes.Buffer
	builder := depositdata.NewBuilder(logger, deriver, crypto.Sha256Hasher{}, network)
	require.NoError(t, printDeposit(&out, builder, network, 4, depositdata.MaxEffectiveBalance))

	printed := parseLines(out.String())
	require.Equal(t, eth2.DepositContractAddress, printed["To"])
	require.Equal(t, "32000000000000000000 wei", printed["Value"])

	tx, err := transactionFromFlags(&flags.TransactionFlags{
		To:    printed["To"],
		Value: strings.TrimSuffix(printed["Value"], " wei"),
		Data:  printed["Call data"],
	}, 4)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	review, err := newDriver(logger, network, deriver, metrics.NewPluginMetrics(reg)).Review(tx)
	require.NoError(t, err)
	logMetrics(logger, reg)

	pubKey, err := hexutil.Decode(printed["Public key"])
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, printReview(&out, review))
	require.True(t, strings.HasPrefix(out.String(), "Reviewed by ETH2 Deposit\n"))
	require.Contains(t, out.String(), "ETH 32")
	require.Equal(t, format.AddressFromBytes(pubKey), printed["Device display"])
	require.Equal(t, printed["Device display"], review.Screens[1].Msg)
	require.Equal(t, []string{eth2.TitleAmount, eth2.TitleValidator}, []string{review.Screens[0].Title, review.Screens[1].Title})
}

func TestReviewDeposit_WrongIndex(t *testing.T) {
	logger := logging.TestLogger(t)
	deriver := keys.TestDeriver(t)

	deposit, err := depositdata.NewBuilder(logger, deriver, crypto.Sha256Hasher{}, networkconfig.Mainnet).
		Build(1, depositdata.MaxEffectiveBalance)
	require.NoError(t, err)

	tx, err := transactionFromFlags(&flags.TransactionFlags{
		To:    eth2.DepositContractAddress,
		Value: "32000000000000000000",
		Data:  hexutil.Encode(deposit.CallData),
	}, 0)
	require.NoError(t, err)

	review, err := newDriver(logger, networkconfig.Mainnet, deriver, metrics.NopMetrics{}).Review(tx)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printReview(&out, review))
	require.True(t, strings.HasPrefix(out.String(), "Plugin declined, generic review\n"))
	require.Contains(t, out.String(), "Present")
}

func TestTransactionFromFlags_Invalid(t *testing.T) {
	for name, f := range map[string]flags.TransactionFlags{
		"raw tx":  {RawTx: "0xzz"},
		"address": {To: "0x1234", Value: "0"},
		"value":   {To: eth2.DepositContractAddress, Value: "ten"},
		"data":    {To: eth2.DepositContractAddress, Value: "0", Data: "22895118"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := transactionFromFlags(&f, 0)
			require.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`global:
  LogLevel: debug
  LogFormat: json
Network: holesky
KeyCacheSize: 8
`), 0o600))

	var c config
	require.NoError(t, globalconfig.Load(&c, &globalconfig.Args{ConfigPath: path}))
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, "json", c.LogFormat)
	require.Equal(t, "capitalColor", c.LogLevelFormat)
	require.Equal(t, "holesky", c.Network)
	require.Equal(t, 8, c.KeyCacheSize)

	require.Error(t, globalconfig.Load(&c, &globalconfig.Args{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestRootCommand(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["withdrawal-credentials"])
	require.True(t, names["build-deposit"])
	require.True(t, names["review-tx"])
	require.NotNil(t, RootCmd.PersistentFlags().Lookup("config"))
}

func parseLines(s string) map[string]string {
	m := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		k, v, ok := strings.Cut(line, ": ")
		if ok {
			m[k] = v
		}
	}
	return m
}
