// Package depositdata builds signed deposit data for validator keys derived
// from the device seed, and the deposit contract call that submits it.
package depositdata

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	ssz "github.com/ferranbt/fastssz"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	e2types "github.com/wealdtech/go-eth2-types/v2"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/eth/contract"
	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
)

// DomainDeposit is the signature domain type of deposit messages.
var DomainDeposit = phase0.DomainType{0x03, 0x00, 0x00, 0x00}

const (
	// MinDepositAmount is the smallest deposit the contract accepts, in gwei.
	MinDepositAmount phase0.Gwei = 1_000_000_000
	// MaxEffectiveBalance is the usual deposit for a 0x00 validator, in gwei.
	MaxEffectiveBalance phase0.Gwei = 32_000_000_000

	gweiToWei = 1_000_000_000
)

// PrivateKeyDeriver derives BLS private keys.
type PrivateKeyDeriver interface {
	PrivateKey(path []uint32) (*e2types.BLSPrivateKey, error)
}

// Deposit is a signed deposit ready to be sent to the deposit contract.
type Deposit struct {
	Data     *phase0.DepositData
	Root     phase0.Root
	CallData []byte
	// Value is the transaction value in wei, big-endian.
	Value []byte
}

// Builder signs deposits for validators at a given EIP-2334 index.
type Builder struct {
	logger  *zap.Logger
	deriver PrivateKeyDeriver
	hasher  keys.Hasher
	network networkconfig.NetworkConfig
}

func NewBuilder(logger *zap.Logger, deriver PrivateKeyDeriver, hasher keys.Hasher, network networkconfig.NetworkConfig) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		logger:  logger.Named(logging.NameDepositBuilder),
		deriver: deriver,
		hasher:  hasher,
		network: network,
	}
}

// Build signs a deposit of amount for the validator at index. The withdrawal
// credentials commit to the withdrawal key at the same index.
func (b *Builder) Build(index uint32, amount phase0.Gwei) (*Deposit, error) {
	if amount < MinDepositAmount {
		return nil, errors.Errorf("deposit amount %d is below the minimum of %d gwei", amount, MinDepositAmount)
	}

	signingKey, err := b.deriver.PrivateKey(keys.SigningPath(index))
	if err != nil {
		return nil, errors.Wrap(err, "could not derive signing key")
	}
	withdrawalKey, err := b.deriver.PrivateKey(keys.WithdrawalPath(index))
	if err != nil {
		return nil, errors.Wrap(err, "could not derive withdrawal key")
	}
	creds := keys.BLSWithdrawalCredentials(b.hasher, withdrawalKey.PublicKey().Marshal())

	var pubKey phase0.BLSPubKey
	copy(pubKey[:], signingKey.PublicKey().Marshal())

	signingRoot, err := SigningRoot(b.network, &phase0.DepositMessage{
		PublicKey:             pubKey,
		WithdrawalCredentials: creds[:],
		Amount:                amount,
	})
	if err != nil {
		return nil, err
	}

	data := &phase0.DepositData{
		PublicKey:             pubKey,
		WithdrawalCredentials: creds[:],
		Amount:                amount,
	}
	copy(data.Signature[:], signingKey.Sign(signingRoot[:]).Marshal())

	root, err := data.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not compute deposit data root")
	}

	callData, err := contract.PackDeposit(&contract.DepositCall{
		PubKey:                data.PublicKey[:],
		WithdrawalCredentials: data.WithdrawalCredentials,
		Signature:             data.Signature[:],
		DepositDataRoot:       root,
	})
	if err != nil {
		return nil, err
	}

	b.logger.Debug("built deposit",
		fields.Network(b.network.Name),
		fields.WithdrawalIndex(index),
		fields.PubKey(data.PublicKey[:]))

	return &Deposit{
		Data:     data,
		Root:     root,
		CallData: callData,
		Value:    GweiToWei(amount),
	}, nil
}

// GweiToWei returns amount in wei as big-endian bytes.
func GweiToWei(amount phase0.Gwei) []byte {
	wei := new(uint256.Int).Mul(uint256.NewInt(uint64(amount)), uint256.NewInt(gweiToWei))
	return wei.Bytes()
}

// Domain returns the deposit signature domain of network. Deposits are valid
// across forks, so the genesis fork version and an empty validators root are used.
func Domain(network networkconfig.NetworkConfig) (phase0.Domain, error) {
	forkData := &phase0.ForkData{
		CurrentVersion: network.GenesisForkVersion,
	}
	forkDataRoot, err := forkData.HashTreeRoot()
	if err != nil {
		return phase0.Domain{}, errors.Wrap(err, "could not compute fork data root")
	}

	var domain phase0.Domain
	copy(domain[:], DomainDeposit[:])
	copy(domain[len(DomainDeposit):], forkDataRoot[:])
	return domain, nil
}

// SigningRoot returns the root a deposit message is signed over.
func SigningRoot(network networkconfig.NetworkConfig, msg ssz.HashRoot) (phase0.Root, error) {
	domain, err := Domain(network)
	if err != nil {
		return phase0.Root{}, err
	}
	objectRoot, err := msg.HashTreeRoot()
	if err != nil {
		return phase0.Root{}, errors.Wrap(err, "could not compute deposit message root")
	}

	container := &phase0.SigningData{
		ObjectRoot: objectRoot,
		Domain:     domain,
	}
	return container.HashTreeRoot()
}

// Verify checks the signature of data against network's deposit domain.
func Verify(network networkconfig.NetworkConfig, data *phase0.DepositData) error {
	signingRoot, err := SigningRoot(network, &phase0.DepositMessage{
		PublicKey:             data.PublicKey,
		WithdrawalCredentials: data.WithdrawalCredentials,
		Amount:                data.Amount,
	})
	if err != nil {
		return err
	}

	// The BLS backend reads these through cgo, which rejects pointers into
	// data since it also holds a slice.
	pubKeyBytes := append([]byte(nil), data.PublicKey[:]...)
	sigBytes := append([]byte(nil), data.Signature[:]...)

	pubKey, err := e2types.BLSPublicKeyFromBytes(pubKeyBytes)
	if err != nil {
		return errors.Wrap(err, "invalid deposit public key")
	}
	sig, err := e2types.BLSSignatureFromBytes(sigBytes)
	if err != nil {
		return errors.Wrap(err, "invalid deposit signature")
	}
	if !sig.Verify(signingRoot[:], pubKey) {
		return errors.New("deposit signature does not verify")
	}
	return nil
}
