package eth2

import (
	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
)

// fieldRole tells the validator what to do with a chunk.
type fieldRole int

const (
	// roleHead chunks must hold exactly the field's expected value.
	roleHead fieldRole = iota
	rolePubKeyPart1
	rolePubKeyPart2
	roleWithdrawalCredentials
	// rolePassThrough chunks are accepted without looking at them.
	rolePassThrough
)

func (r fieldRole) String() string {
	switch r {
	case roleHead:
		return "head"
	case rolePubKeyPart1:
		return "pubkey_part_1"
	case rolePubKeyPart2:
		return "pubkey_part_2"
	case roleWithdrawalCredentials:
		return "withdrawal_credentials"
	case rolePassThrough:
		return "pass_through"
	}
	return "unknown"
}

// ABI head values of deposit(bytes,bytes,bytes,bytes32) with a 48-byte key,
// 32-byte credentials and a 96-byte signature.
const (
	PubKeyOffset                = 0x80
	WithdrawalCredentialsOffset = 0xE0
	SignatureOffset             = 0x120
	PubKeyLength                = 0x30
	WithdrawalCredentialsLength = 0x20
	SignatureLength             = 0x60
)

type layoutField struct {
	name     string
	role     fieldRole
	expected uint64
}

// depositLayout lists the call-data words of a deposit call in order; word k
// arrives at offset SelectorLength + k*ParameterLength.
var depositLayout = [...]layoutField{
	{name: "pubkey offset", role: roleHead, expected: PubKeyOffset},
	{name: "withdrawal credentials offset", role: roleHead, expected: WithdrawalCredentialsOffset},
	{name: "signature offset", role: roleHead, expected: SignatureOffset},
	{name: "deposit data root", role: rolePassThrough},
	{name: "pubkey length", role: roleHead, expected: PubKeyLength},
	{name: "pubkey part 1", role: rolePubKeyPart1},
	{name: "pubkey part 2", role: rolePubKeyPart2},
	{name: "withdrawal credentials length", role: roleHead, expected: WithdrawalCredentialsLength},
	{name: "withdrawal credentials", role: roleWithdrawalCredentials},
	{name: "signature length", role: roleHead, expected: SignatureLength},
	{name: "signature part 1", role: rolePassThrough},
	{name: "signature part 2", role: rolePassThrough},
	{name: "signature part 3", role: rolePassThrough},
}

// allFieldsSeen is the coverage mask of a complete deposit call.
const allFieldsSeen = uint16(1)<<len(depositLayout) - 1

// wordOffset returns the call-data offset of word k.
func wordOffset(k int) uint32 {
	return plugin.SelectorLength + uint32(k)*plugin.ParameterLength // #nosec G115 -- k indexes depositLayout
}

// lookupField returns the layout word index for offset, if offset is one of the recognized words.
func lookupField(offset uint32) (int, layoutField, bool) {
	if offset < plugin.SelectorLength || (offset-plugin.SelectorLength)%plugin.ParameterLength != 0 {
		return 0, layoutField{}, false
	}
	k := (offset - plugin.SelectorLength) / plugin.ParameterLength
	if k >= uint32(len(depositLayout)) {
		return 0, layoutField{}, false
	}
	return int(k), depositLayout[k], true
}
