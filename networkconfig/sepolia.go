package networkconfig

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

var Sepolia = NetworkConfig{
	Name:                "sepolia",
	ChainID:             11155111,
	Ticker:              "ETH",
	Decimals:            18,
	DepositContractAddr: ethcommon.HexToAddress("0x7f02C3E3c98b133055B8B348B2Ac625669Ed295D"),
	GenesisForkVersion:  phase0.Version{0x90, 0x00, 0x00, 0x69},
}
