package host

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Transaction is the part of a transaction the review needs.
type Transaction struct {
	// To is nil for contract creation.
	To *common.Address
	// Value is the native value as a big-endian integer.
	Value []byte
	Data  []byte
	// WithdrawalIndex is supplied by the signer, not by the transaction.
	WithdrawalIndex uint32
}

// DecodeTransaction decodes a raw typed or legacy transaction.
func DecodeTransaction(raw []byte, withdrawalIndex uint32) (*Transaction, error) {
	var tx types.Transaction
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, errors.Wrap(err, "could not decode transaction")
	}

	return &Transaction{
		To:              tx.To(),
		Value:           tx.Value().Bytes(),
		Data:            tx.Data(),
		WithdrawalIndex: withdrawalIndex,
	}, nil
}
