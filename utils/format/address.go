package format

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressTextLength is the length of a rendered address: "0x" followed by 40 hex digits.
const AddressTextLength = 2 + 2*common.AddressLength

// Address renders addr as 0x-prefixed lowercase hex.
//
// common.Address.Hex applies the EIP-55 checksum casing, which is dropped here so
// that rendered addresses compare byte-for-byte against lowercase constants.
func Address(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

// AddressFromBytes renders the first 20 bytes of b as an address.
// b must hold at least common.AddressLength bytes.
func AddressFromBytes(b []byte) string {
	return Address(common.Address(b[:common.AddressLength]))
}
