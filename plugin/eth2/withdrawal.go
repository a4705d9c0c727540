package eth2

import (
	"crypto/subtle"

	"github.com/pkg/errors"

	"github.com/ssvlabs/eth2-deposit-plugin/keys"
)

// MaxWithdrawalIndex is the highest index the withdrawal key is derived at.
// Bounding it bounds the work a single transaction can ask the device to do.
const MaxWithdrawalIndex = 1<<19 - 1

var (
	ErrWithdrawalIndexTooLarge       = errors.New("withdrawal index is too large")
	ErrWithdrawalCredentialsMismatch = errors.New("withdrawal credentials mismatch")
)

// WithdrawalVerifier checks that withdrawal credentials commit to a key the
// device derives at m/12381/3600/{index}/0.
type WithdrawalVerifier struct {
	deriver keys.Deriver
	hasher  keys.Hasher
}

func NewWithdrawalVerifier(deriver keys.Deriver, hasher keys.Hasher) *WithdrawalVerifier {
	return &WithdrawalVerifier{
		deriver: deriver,
		hasher:  hasher,
	}
}

// Expected returns the credentials the device expects for index.
func (v *WithdrawalVerifier) Expected(index uint32) ([32]byte, error) {
	if index > MaxWithdrawalIndex {
		return [32]byte{}, errors.Wrapf(ErrWithdrawalIndexTooLarge, "got %d, max %d", index, MaxWithdrawalIndex)
	}

	pubKey, err := v.deriver.PublicKey(keys.WithdrawalPath(index))
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not derive withdrawal key")
	}
	if len(pubKey) != BLSPubKeyLength {
		return [32]byte{}, errors.Errorf("withdrawal key is %d bytes, expected %d", len(pubKey), BLSPubKeyLength)
	}

	return keys.BLSWithdrawalCredentials(v.hasher, pubKey), nil
}

// Verify returns nil if credentials match the ones expected for index.
func (v *WithdrawalVerifier) Verify(index uint32, credentials [32]byte) error {
	expected, err := v.Expected(index)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(expected[:], credentials[:]) != 1 {
		return ErrWithdrawalCredentialsMismatch
	}
	return nil
}
