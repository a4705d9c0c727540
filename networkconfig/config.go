package networkconfig

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/sanity-io/litter"
)

var SupportedConfigs = map[string]NetworkConfig{
	Mainnet.Name: Mainnet,
	Holesky.Name: Holesky,
	Hoodi.Name:   Hoodi,
	Sepolia.Name: Sepolia,
}

func GetNetworkByName(name string) (NetworkConfig, error) {
	if network, ok := SupportedConfigs[name]; ok {
		return network, nil
	}

	return NetworkConfig{}, fmt.Errorf("network not supported: %v", name)
}

// NetworkConfig describes a chain the plugin renders amounts for and builds deposits on.
type NetworkConfig struct {
	Name                string
	ChainID             uint64
	Ticker              string
	Decimals            uint8
	DepositContractAddr ethcommon.Address
	GenesisForkVersion  phase0.Version
}

// String implements Stringer interface.
func (n NetworkConfig) String() string {
	return litter.Options{HidePrivateFields: false}.Sdump(n)
}

type marshaledConfig struct {
	Name                string `json:"Name" yaml:"Name"`
	ChainID             uint64 `json:"ChainID" yaml:"ChainID"`
	Ticker              string `json:"Ticker" yaml:"Ticker"`
	Decimals            uint8  `json:"Decimals" yaml:"Decimals"`
	DepositContractAddr string `json:"DepositContractAddr" yaml:"DepositContractAddr"`
	GenesisForkVersion  string `json:"GenesisForkVersion" yaml:"GenesisForkVersion"`
}

func (n NetworkConfig) marshal() marshaledConfig {
	return marshaledConfig{
		Name:                n.Name,
		ChainID:             n.ChainID,
		Ticker:              n.Ticker,
		Decimals:            n.Decimals,
		DepositContractAddr: n.DepositContractAddr.Hex(),
		GenesisForkVersion:  "0x" + hex.EncodeToString(n.GenesisForkVersion[:]),
	}
}

func (n *NetworkConfig) unmarshal(aux marshaledConfig) error {
	if aux.DepositContractAddr != "" && !ethcommon.IsHexAddress(aux.DepositContractAddr) {
		return fmt.Errorf("invalid deposit contract address: %q", aux.DepositContractAddr)
	}

	forkVersion, err := hex.DecodeString(strings.TrimPrefix(aux.GenesisForkVersion, "0x"))
	if err != nil {
		return fmt.Errorf("decode genesis fork version: %w", err)
	}
	var forkVersionArr phase0.Version
	if len(forkVersion) != 0 {
		if len(forkVersion) != len(forkVersionArr) {
			return fmt.Errorf("genesis fork version must be %d bytes, got %d", len(forkVersionArr), len(forkVersion))
		}
		copy(forkVersionArr[:], forkVersion)
	}

	*n = NetworkConfig{
		Name:                aux.Name,
		ChainID:             aux.ChainID,
		Ticker:              aux.Ticker,
		Decimals:            aux.Decimals,
		DepositContractAddr: ethcommon.HexToAddress(aux.DepositContractAddr),
		GenesisForkVersion:  forkVersionArr,
	}
	return nil
}

func (n NetworkConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.marshal())
}

func (n *NetworkConfig) UnmarshalJSON(data []byte) error {
	var aux marshaledConfig
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	return n.unmarshal(aux)
}

func (n NetworkConfig) MarshalYAML() (interface{}, error) {
	return n.marshal(), nil
}

func (n *NetworkConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var aux marshaledConfig
	if err := unmarshal(&aux); err != nil {
		return err
	}
	return n.unmarshal(aux)
}
