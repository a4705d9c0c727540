package eth2

import (
	"github.com/ethereum/go-ethereum/common"
)

// BLSPubKeyLength is the size of a compressed BLS12-381 public key.
const BLSPubKeyLength = 48

// InvalidReason explains why a transaction is no longer displayed by the plugin.
type InvalidReason string

const (
	ReasonNone                          InvalidReason = ""
	ReasonDestinationMismatch           InvalidReason = "destination_mismatch"
	ReasonHeadMismatch                  InvalidReason = "head_mismatch"
	ReasonOutOfOrder                    InvalidReason = "out_of_order"
	ReasonWithdrawalIndexTooLarge       InvalidReason = "withdrawal_index_too_large"
	ReasonWithdrawalDerivationFailed    InvalidReason = "withdrawal_derivation_failed"
	ReasonWithdrawalCredentialsMismatch InvalidReason = "withdrawal_credentials_mismatch"
	ReasonIncompleteCallData            InvalidReason = "incomplete_call_data"
)

func (r InvalidReason) String() string {
	return string(r)
}

// keyState tracks which representation of the deposit key is available.
type keyState int

const (
	keyEmpty keyState = iota
	// keyPartial means the first 32 bytes are in place.
	keyPartial
	// keyRendered means the key is complete and its display text is set.
	keyRendered
)

// Context is the validation state of one transaction.
//
// valid only ever goes from true to false.
type Context struct {
	valid  bool
	reason InvalidReason

	keyState         keyState
	pubKey           [BLSPubKeyLength]byte
	displayPublicKey string

	// seen has bit k set once layout word k was processed.
	seen       uint16
	lastOffset uint32
}

func newContext() *Context {
	return &Context{valid: true}
}

// Valid reports whether the transaction still matches the deposit call.
func (c *Context) Valid() bool {
	return c.valid
}

// Reason returns the first reason the context was invalidated for.
func (c *Context) Reason() InvalidReason {
	return c.reason
}

// PublicKey returns the raw deposit key once both parts arrived.
func (c *Context) PublicKey() ([]byte, bool) {
	if c.keyState != keyRendered {
		return nil, false
	}
	pk := make([]byte, BLSPubKeyLength)
	copy(pk, c.pubKey[:])
	return pk, true
}

// DisplayPublicKey returns the rendered deposit key, empty until both parts arrived.
func (c *Context) DisplayPublicKey() string {
	return c.displayPublicKey
}

// invalidate clears valid and reports whether this call did it.
func (c *Context) invalidate(reason InvalidReason) bool {
	if !c.valid {
		return false
	}
	c.valid = false
	c.reason = reason
	return true
}

// complete reports whether every word of the layout was processed.
func (c *Context) complete() bool {
	return c.seen == allFieldsSeen
}

// renderPubKey is the terminal transition of the deposit key: the display
// text is derived from the raw bytes and neither changes afterwards.
func (c *Context) renderPubKey(render func(common.Address) string) {
	c.displayPublicKey = render(common.Address(c.pubKey[:common.AddressLength]))
	c.keyState = keyRendered
}
