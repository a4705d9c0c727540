package contract

import (
	"bytes"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/pkg/errors"
)

// DepositMethod is the deposit contract's only state-changing entry point.
const DepositMethod = "deposit"

// DepositSelector is keccak256("deposit(bytes,bytes,bytes,bytes32)")[:4].
var DepositSelector = [4]byte{0x22, 0x89, 0x51, 0x18}

// DepositMetaData contains the part of the deposit contract ABI the plugin understands.
var DepositMetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[{\"internalType\":\"bytes\",\"name\":\"pubkey\",\"type\":\"bytes\"},{\"internalType\":\"bytes\",\"name\":\"withdrawal_credentials\",\"type\":\"bytes\"},{\"internalType\":\"bytes\",\"name\":\"signature\",\"type\":\"bytes\"},{\"internalType\":\"bytes32\",\"name\":\"deposit_data_root\",\"type\":\"bytes32\"}],\"name\":\"deposit\",\"outputs\":[],\"stateMutability\":\"payable\",\"type\":\"function\"}]",
}

// DepositCall holds the arguments of a deposit call.
type DepositCall struct {
	PubKey                []byte
	WithdrawalCredentials []byte
	Signature             []byte
	DepositDataRoot       [32]byte
}

func depositABI() (*abi.ABI, error) {
	parsed, err := DepositMetaData.GetAbi()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse deposit contract ABI")
	}
	return parsed, nil
}

// PackDeposit ABI-encodes a deposit call, selector included.
func PackDeposit(call *DepositCall) ([]byte, error) {
	parsed, err := depositABI()
	if err != nil {
		return nil, err
	}
	data, err := parsed.Pack(DepositMethod, call.PubKey, call.WithdrawalCredentials, call.Signature, call.DepositDataRoot)
	if err != nil {
		return nil, errors.Wrap(err, "could not pack deposit call")
	}
	return data, nil
}

// IsDepositCall reports whether data starts with the deposit selector.
func IsDepositCall(data []byte) bool {
	return len(data) >= len(DepositSelector) && bytes.Equal(data[:len(DepositSelector)], DepositSelector[:])
}

// UnpackDeposit decodes deposit call data, selector included.
func UnpackDeposit(data []byte) (*DepositCall, error) {
	if !IsDepositCall(data) {
		return nil, errors.New("not a deposit call")
	}
	parsed, err := depositABI()
	if err != nil {
		return nil, err
	}

	var call DepositCall
	values, err := parsed.Methods[DepositMethod].Inputs.Unpack(data[len(DepositSelector):])
	if err != nil {
		return nil, errors.Wrap(err, "could not unpack deposit call")
	}
	if len(values) != 4 {
		return nil, errors.Errorf("expected 4 deposit arguments, got %d", len(values))
	}

	var ok [4]bool
	call.PubKey, ok[0] = values[0].([]byte)
	call.WithdrawalCredentials, ok[1] = values[1].([]byte)
	call.Signature, ok[2] = values[2].([]byte)
	call.DepositDataRoot, ok[3] = values[3].([32]byte)
	for i, v := range ok {
		if !v {
			return nil, errors.Errorf("unexpected type for deposit argument %d", i)
		}
	}
	return &call, nil
}
