package networkconfig

import (
	"encoding/json"
	"testing"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGetNetworkByName(t *testing.T) {
	for name, cfg := range SupportedConfigs {
		got, err := GetNetworkByName(name)
		require.NoError(t, err)
		require.Equal(t, cfg, got)
		require.Equal(t, name, got.Name)
	}

	_, err := GetNetworkByName("prater")
	require.ErrorContains(t, err, "network not supported")
}

func TestNetworkConfig_MarshalUnmarshalJSON(t *testing.T) {
	originalConfig := NetworkConfig{
		Name:                "devnet",
		ChainID:             1337,
		Ticker:              "DEV",
		Decimals:            9,
		DepositContractAddr: ethcommon.HexToAddress("0x123456789abcdef0123456789abcdef012345678"),
		GenesisForkVersion:  phase0.Version{0x01, 0x02, 0x03, 0x04},
	}

	jsonBytes, err := json.Marshal(&originalConfig)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"GenesisForkVersion":"0x01020304"`)

	var unmarshaledConfig NetworkConfig
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaledConfig))
	assert.Equal(t, originalConfig, unmarshaledConfig)
}

func TestNetworkConfig_MarshalUnmarshalYAML(t *testing.T) {
	yamlBytes, err := yaml.Marshal(&Mainnet)
	require.NoError(t, err)

	var unmarshaledConfig NetworkConfig
	require.NoError(t, yaml.Unmarshal(yamlBytes, &unmarshaledConfig))
	assert.Equal(t, Mainnet, unmarshaledConfig)
}

func TestNetworkConfig_UnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad address", `{"DepositContractAddr":"0x1234"}`},
		{"bad fork version hex", `{"GenesisForkVersion":"0xzz"}`},
		{"short fork version", `{"GenesisForkVersion":"0x0102"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg NetworkConfig
			require.Error(t, json.Unmarshal([]byte(tt.raw), &cfg))
		})
	}
}

func TestNetworkConfig_String(t *testing.T) {
	require.Contains(t, Mainnet.String(), "mainnet")
}
