package eth2

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ssvlabs/eth2-deposit-plugin/eth/contract"
	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/crypto"
)

var (
	depositContract = common.HexToAddress(DepositContractAddress)
	thirtyTwoEther  = new(big.Int).Mul(big.NewInt(32), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)).Bytes()

	// testPubKey has distinct bytes so that misplaced copies are visible.
	testPubKey = func() []byte {
		pk := make([]byte, BLSPubKeyLength)
		for i := range pk {
			pk[i] = byte(0xA0 + i)
		}
		return pk
	}()
)

func newTestPlugin(t *testing.T, deriver keys.Deriver, opts ...Option) *Plugin {
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	return New(deriver, crypto.Sha256Hasher{}, opts...)
}

func depositTx(index uint32) *plugin.TxContent {
	return &plugin.TxContent{
		Destination:     depositContract,
		Value:           thirtyTwoEther,
		WithdrawalIndex: index,
	}
}

func credentialsFor(pubKey []byte) [32]byte {
	return keys.BLSWithdrawalCredentials(crypto.Sha256Hasher{}, pubKey)
}

func depositCallData(t *testing.T, pubKey []byte, creds [32]byte) []byte {
	data, err := contract.PackDeposit(&contract.DepositCall{
		PubKey:                pubKey,
		WithdrawalCredentials: creds[:],
		Signature:             bytes.Repeat([]byte{0x5a}, 96),
		DepositDataRoot:       [32]byte{0xd0},
	})
	require.NoError(t, err)
	return data
}

func chunkAt(data []byte, offset uint32) *plugin.ProvideParameter {
	msg := &plugin.ProvideParameter{Offset: offset}
	copy(msg.Parameter[:], data[offset:offset+plugin.ParameterLength])
	return msg
}

// run drives a whole transaction through s and returns the Finalize message.
func run(t *testing.T, s *Session, data []byte) *plugin.Finalize {
	initMsg := &plugin.InitContract{}
	copy(initMsg.Selector[:], data[:plugin.SelectorLength])
	s.InitContract(initMsg)
	require.Equal(t, plugin.ResultOK, initMsg.Result)

	feed(t, s, data)

	fin := &plugin.Finalize{}
	s.Finalize(fin)
	return fin
}

func feed(t *testing.T, s *Session, data []byte) {
	for offset := uint32(plugin.SelectorLength); int(offset)+plugin.ParameterLength <= len(data); offset += plugin.ParameterLength {
		msg := chunkAt(data, offset)
		s.ProvideParameter(msg)
		require.Equal(t, plugin.ResultOK, msg.Result)
	}
}
