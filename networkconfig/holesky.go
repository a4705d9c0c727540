package networkconfig

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

var Holesky = NetworkConfig{
	Name:                "holesky",
	ChainID:             17000,
	Ticker:              "ETH",
	Decimals:            18,
	DepositContractAddr: ethcommon.HexToAddress("0x4242424242424242424242424242424242424242"),
	GenesisForkVersion:  phase0.Version{0x01, 0x01, 0x70, 0x00},
}
