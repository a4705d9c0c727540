package eth2

import (
	"github.com/ethereum/go-ethereum/common"
)

// DepositContractAddress is the beacon chain deposit contract on mainnet.
const DepositContractAddress = "0x00000000219ab540356cbb839cbe05303d7705fa"

// isDepositContract renders destination and compares it with the deposit
// contract address. A length mismatch means the formatter misbehaved and is
// treated as "not the deposit contract".
func isDepositContract(render func(common.Address) string, destination common.Address) (string, bool) {
	rendered := render(destination)
	if len(rendered) != len(DepositContractAddress) {
		return rendered, false
	}
	return rendered, rendered == DepositContractAddress
}
