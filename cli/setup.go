package cli

import (
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	globalconfig "github.com/ssvlabs/eth2-deposit-plugin/cli/config"
	"github.com/ssvlabs/eth2-deposit-plugin/cli/flags"
	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
)

type config struct {
	globalconfig.GlobalConfig `yaml:"global"`

	Network          string `yaml:"Network" env:"NETWORK" env-default:"mainnet" env-description:"Network the transactions are reviewed for"`
	Mnemonic         string `yaml:"Mnemonic" env:"MNEMONIC" env-description:"Mnemonic of the device seed"`
	MnemonicPassword string `yaml:"MnemonicPassword" env:"MNEMONIC_PASSWORD" env-description:"Optional BIP-39 password of the mnemonic"`
	KeyCacheSize     int    `yaml:"KeyCacheSize" env:"KEY_CACHE_SIZE" env-default:"64" env-description:"Number of derived public keys kept in memory"`
}

var cfg config

var globalArgs globalconfig.Args

func init() {
	globalconfig.ProcessArgs(&cfg, &globalArgs, RootCmd)
}

func setupGlobal(cmd *cobra.Command) (*zap.Logger, error) {
	if err := globalconfig.Load(&cfg, &globalArgs); err != nil {
		return nil, err
	}

	if err := logging.SetGlobalLogger(cfg.LogLevel, cfg.LogLevelFormat, cfg.LogFormat, cfg.LogFilePath); err != nil {
		return nil, errors.Wrap(err, "logging.SetGlobalLogger")
	}

	return zap.L().Named(cmd.Name()), nil
}

// mustSetupGlobal is the common prologue of every command.
func mustSetupGlobal(cmd *cobra.Command) *zap.Logger {
	logger, err := setupGlobal(cmd)
	if err != nil {
		log.Fatal("could not create logger ", err)
	}
	return logger
}

func setupNetwork(cmd *cobra.Command, logger *zap.Logger) (networkconfig.NetworkConfig, error) {
	name, err := flags.GetNetworkFlagValue(cmd)
	if err != nil {
		return networkconfig.NetworkConfig{}, err
	}
	if name == "" {
		name = cfg.Network
	}

	network, err := networkconfig.GetNetworkByName(name)
	if err != nil {
		return networkconfig.NetworkConfig{}, err
	}
	logger.Debug("using network", fields.Config(network))
	return network, nil
}

func setupDeriver(cmd *cobra.Command, logger *zap.Logger) (*keys.SeedDeriver, error) {
	mnemonic, err := flags.GetMnemonicFlagValue(cmd)
	if err != nil {
		return nil, err
	}
	if mnemonic == "" {
		mnemonic = cfg.Mnemonic
	}
	if mnemonic == "" {
		return nil, errors.New("a mnemonic is required, pass --mnemonic or set MNEMONIC")
	}
	return keys.NewMnemonicDeriver(logger, mnemonic, cfg.MnemonicPassword)
}
