package stringer

import (
	"encoding/hex"
	"strconv"
)

// HexStringer renders bytes as 0x-prefixed hex, lazily.
type HexStringer struct {
	Val []byte
}

func (h HexStringer) String() string {
	return "0x" + hex.EncodeToString(h.Val)
}

// Uint64HexStringer renders an integer the way offsets appear in call data.
type Uint64HexStringer struct {
	Val uint64
}

func (h Uint64HexStringer) String() string {
	return "0x" + strconv.FormatUint(h.Val, 16)
}
