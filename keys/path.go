package keys

import (
	"strconv"
	"strings"
)

// EIP-2334 purpose and coin type.
const (
	PurposeBLS  = 12381
	CoinTypeETH = 3600
)

// WithdrawalPath returns m/12381/3600/{index}/0.
func WithdrawalPath(index uint32) []uint32 {
	return []uint32{PurposeBLS, CoinTypeETH, index, 0}
}

// SigningPath returns m/12381/3600/{index}/0/0.
func SigningPath(index uint32) []uint32 {
	return append(WithdrawalPath(index), 0)
}

// PathString renders path in the m/a/b/c notation.
func PathString(path []uint32) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, p := range path {
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatUint(uint64(p), 10))
	}
	return sb.String()
}
