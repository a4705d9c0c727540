package host

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ssvlabs/eth2-deposit-plugin/eth/contract"
	"github.com/ssvlabs/eth2-deposit-plugin/eth/depositdata"
	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin/eth2"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/crypto"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/format"
)

type fixture struct {
	driver  *Driver
	deposit *depositdata.Deposit
}

func newFixture(t *testing.T, index uint32) *fixture {
	logger := zaptest.NewLogger(t)
	deriver := keys.TestDeriver(t)

	deposit, err := depositdata.NewBuilder(logger, deriver, crypto.Sha256Hasher{}, networkconfig.Mainnet).
		Build(index, depositdata.MaxEffectiveBalance)
	require.NoError(t, err)

	d := NewDriver(logger, networkconfig.Mainnet)
	d.Register(contract.DepositSelector, eth2.New(deriver, crypto.Sha256Hasher{}, eth2.WithLogger(logger)))
	return &fixture{driver: d, deposit: deposit}
}

func rawTx(t *testing.T, to *common.Address, value []byte, data []byte) []byte {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	chainID := new(big.Int).SetUint64(networkconfig.Mainnet.ChainID)
	tx, err := types.SignNewTx(key, types.LatestSignerForChainID(chainID), &types.DynamicFeeTx{
		ChainID:   chainID,
		To:        to,
		Value:     new(big.Int).SetBytes(value),
		Gas:       100_000,
		GasFeeCap: big.NewInt(30_000_000_000),
		GasTipCap: big.NewInt(1_000_000_000),
		Data:      data,
	})
	require.NoError(t, err)

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	return raw
}

func depositContract() *common.Address {
	addr := common.HexToAddress(eth2.DepositContractAddress)
	return &addr
}

func TestDriver_DepositReview(t *testing.T) {
	f := newFixture(t, 5)

	tx, err := DecodeTransaction(rawTx(t, depositContract(), f.deposit.Value, f.deposit.CallData), 5)
	require.NoError(t, err)
	require.Equal(t, uint32(5), tx.WithdrawalIndex)

	review, err := f.driver.Review(tx)
	require.NoError(t, err)
	require.False(t, review.Generic())
	require.False(t, review.Fallback)
	require.Equal(t, "ETH2 Deposit", review.Plugin)
	require.Equal(t, []Screen{
		{Title: eth2.TitleAmount, Msg: "ETH 32"},
		{Title: eth2.TitleValidator, Msg: format.AddressFromBytes(f.deposit.Data.PublicKey[:])},
	}, review.Screens)
}

func TestDriver_WrongWithdrawalIndex(t *testing.T) {
	f := newFixture(t, 5)

	review, err := f.driver.Review(&Transaction{
		To:              depositContract(),
		Value:           f.deposit.Value,
		Data:            f.deposit.CallData,
		WithdrawalIndex: 6,
	})
	require.NoError(t, err)
	require.True(t, review.Generic())
	require.True(t, review.Fallback)
	require.Equal(t, []Screen{
		{Title: TitleAmount, Msg: "ETH 32"},
		{Title: TitleAddress, Msg: eth2.DepositContractAddress},
		{Title: TitleData, Msg: ContractDataPresent},
	}, review.Screens)
}

func TestDriver_WrongDestination(t *testing.T) {
	f := newFixture(t, 0)
	to := common.HexToAddress("0x1111111111111111111111111111111111111111")

	review, err := f.driver.Review(&Transaction{To: &to, Value: f.deposit.Value, Data: f.deposit.CallData})
	require.NoError(t, err)
	require.True(t, review.Generic())
	require.True(t, review.Fallback)
	require.Equal(t, format.Address(to), review.Screens[1].Msg)
}

func TestDriver_GenericReview(t *testing.T) {
	f := newFixture(t, 0)

	t.Run("plain transfer", func(t *testing.T) {
		tx, err := DecodeTransaction(rawTx(t, depositContract(), []byte{0x01}, nil), 0)
		require.NoError(t, err)

		review, err := f.driver.Review(tx)
		require.NoError(t, err)
		require.True(t, review.Generic())
		require.False(t, review.Fallback)
		require.Equal(t, []Screen{
			{Title: TitleAmount, Msg: "ETH 0.000000000000000001"},
			{Title: TitleAddress, Msg: eth2.DepositContractAddress},
		}, review.Screens)
	})

	t.Run("unknown selector", func(t *testing.T) {
		data := append([]byte(nil), f.deposit.CallData...)
		data[0] ^= 0xff

		review, err := f.driver.Review(&Transaction{To: depositContract(), Data: data})
		require.NoError(t, err)
		require.True(t, review.Generic())
		require.False(t, review.Fallback)
		require.Len(t, review.Screens, 3)
	})

	t.Run("short data", func(t *testing.T) {
		review, err := f.driver.Review(&Transaction{To: depositContract(), Data: contract.DepositSelector[:2]})
		require.NoError(t, err)
		require.True(t, review.Generic())
	})
}

func TestDriver_Errors(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.driver.Review(&Transaction{Data: f.deposit.CallData})
	require.ErrorIs(t, err, ErrNoDestination)

	_, err = f.driver.Review(&Transaction{To: depositContract(), Data: f.deposit.CallData[:len(f.deposit.CallData)-1]})
	require.ErrorIs(t, err, ErrMalformedCallData)

	_, err = f.driver.Review(&Transaction{To: depositContract(), Value: make([]byte, 33)})
	require.ErrorContains(t, err, "could not format amount")
}

func TestDriver_TruncatedDeposit(t *testing.T) {
	f := newFixture(t, 0)

	// Drop the signature body: the layout is incomplete.
	data := f.deposit.CallData[:callDataLength(10)]
	review, err := f.driver.Review(&Transaction{To: depositContract(), Value: f.deposit.Value, Data: data})
	require.NoError(t, err)
	require.True(t, review.Fallback)
}

func TestDecodeTransaction_Invalid(t *testing.T) {
	_, err := DecodeTransaction([]byte{0x02, 0xc0}, 0)
	require.Error(t, err)
}

func callDataLength(words int) int {
	return 4 + 32*words
}
