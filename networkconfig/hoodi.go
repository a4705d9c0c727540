package networkconfig

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

var Hoodi = NetworkConfig{
	Name:                "hoodi",
	ChainID:             560048,
	Ticker:              "ETH",
	Decimals:            18,
	DepositContractAddr: ethcommon.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa"),
	GenesisForkVersion:  phase0.Version{0x10, 0x00, 0x09, 0x10},
}
