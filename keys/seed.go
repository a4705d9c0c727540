package keys

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/ssvlabs/eth2-key-manager/core"
	e2types "github.com/wealdtech/go-eth2-types/v2"
	util "github.com/wealdtech/go-eth2-util"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
)

// MaxPathDepth bounds the number of derivation steps a single call may take.
const MaxPathDepth = 8

var (
	initBLSOnce sync.Once
	initBLSErr  error
)

func initBLS() error {
	initBLSOnce.Do(func() {
		initBLSErr = e2types.InitBLS()
	})
	return initBLSErr
}

// SeedDeriver derives keys from a master seed following EIP-2333.
type SeedDeriver struct {
	logger *zap.Logger
	seed   []byte
}

// NewSeedDeriver returns a deriver rooted at seed.
func NewSeedDeriver(logger *zap.Logger, seed []byte) (*SeedDeriver, error) {
	if len(seed) < 32 {
		return nil, errors.Errorf("seed is %d bytes, at least 32 are required", len(seed))
	}
	if err := initBLS(); err != nil {
		return nil, errors.Wrap(err, "failed to init BLS")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := make([]byte, len(seed))
	copy(s, seed)
	return &SeedDeriver{
		logger: logger.Named(logging.NameKeyDeriver),
		seed:   s,
	}, nil
}

// NewMnemonicDeriver returns a deriver rooted at the BIP-39 seed of mnemonic.
func NewMnemonicDeriver(logger *zap.Logger, mnemonic, password string) (*SeedDeriver, error) {
	seed, err := core.SeedFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get seed from mnemonic")
	}
	return NewSeedDeriver(logger, seed)
}

// PrivateKey derives the private key at path.
func (d *SeedDeriver) PrivateKey(path []uint32) (*e2types.BLSPrivateKey, error) {
	if len(path) == 0 || len(path) > MaxPathDepth {
		return nil, errors.Errorf("path depth %d out of range [1, %d]", len(path), MaxPathDepth)
	}

	p := PathString(path)
	key, err := util.PrivateKeyFromSeedAndPath(d.seed, p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive key at %s", p)
	}
	d.logger.Debug("derived key", fields.Path(p))
	return key, nil
}

// PublicKey derives the compressed 48-byte public key at path.
func (d *SeedDeriver) PublicKey(path []uint32) ([]byte, error) {
	key, err := d.PrivateKey(path)
	if err != nil {
		return nil, err
	}
	return key.PublicKey().Marshal(), nil
}
