// Package plugin defines the messages a transaction-signing flow exchanges
// with a contract-call plugin while a transaction is being reviewed.
//
// For one transaction the host sends, in order: InitContract, one
// ProvideParameter per 32-byte call-data chunk, Finalize, and then any number
// of QueryContractID and QueryContractUI messages. Every message carries a
// Result the plugin must set.
package plugin

import (
	"github.com/ethereum/go-ethereum/common"
)

// ParameterLength is the size of a call-data chunk.
const ParameterLength = 32

// SelectorLength is the size of the function selector preceding the arguments.
const SelectorLength = 4

// Plugin creates one Handler per transaction.
type Plugin interface {
	NewHandler(tx *TxContent) Handler
}

// Handler processes the messages of a single transaction.
type Handler interface {
	InitContract(msg *InitContract)
	ProvideParameter(msg *ProvideParameter)
	Finalize(msg *Finalize)
	QueryContractID(msg *QueryContractID)
	QueryContractUI(msg *QueryContractUI)
}

// TxContent is the read-only view of the transaction shared with plugins.
type TxContent struct {
	Destination common.Address
	// Value is the native value as a big-endian integer.
	Value []byte
	// WithdrawalIndex selects the withdrawal key the device expects the
	// transaction to credit.
	WithdrawalIndex uint32
}

type InitContract struct {
	Selector [SelectorLength]byte
	Result   Result
}

type ProvideParameter struct {
	// Offset is the chunk's byte offset in the call data, selector included.
	Offset    uint32
	Parameter [ParameterLength]byte
	Result    Result
}

type Finalize struct {
	NumScreens uint8
	UIType     UIType
	Result     Result
}

type QueryContractID struct {
	Name    string
	Version string
	Result  Result
}

type QueryContractUI struct {
	ScreenIndex uint8
	Title       string
	Msg         string
	Result      Result
}
