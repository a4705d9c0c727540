package fields

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields/stringer"
)

const (
	FieldAddress         = "address"
	FieldCallDataSize    = "call_data_size"
	FieldChunk           = "chunk"
	FieldConfig          = "config"
	FieldContract        = "contract"
	FieldExpected        = "expected"
	FieldGot             = "got"
	FieldMessage         = "message"
	FieldNetwork         = "network"
	FieldOffset          = "offset"
	FieldPath            = "path"
	FieldPubKey          = "pubkey"
	FieldReason          = "reason"
	FieldResult          = "result"
	FieldRole            = "role"
	FieldScreens         = "screens"
	FieldSelector        = "selector"
	FieldWithdrawalIndex = "withdrawal_index"
)

func Address(val common.Address) zapcore.Field {
	return zap.Stringer(FieldAddress, val)
}

func Contract(val string) zapcore.Field {
	return zap.String(FieldContract, val)
}

func CallDataSize(val int) zapcore.Field {
	return zap.Int(FieldCallDataSize, val)
}

func Chunk(val []byte) zapcore.Field {
	return zap.Stringer(FieldChunk, stringer.HexStringer{Val: val})
}

func Config(val fmt.Stringer) zapcore.Field {
	return zap.Stringer(FieldConfig, val)
}

func Expected(val string) zapcore.Field {
	return zap.String(FieldExpected, val)
}

func Got(val string) zapcore.Field {
	return zap.String(FieldGot, val)
}

func GotBytes(val []byte) zapcore.Field {
	return zap.Stringer(FieldGot, stringer.HexStringer{Val: val})
}

func Message(val fmt.Stringer) zapcore.Field {
	return zap.Stringer(FieldMessage, val)
}

func Network(val string) zapcore.Field {
	return zap.String(FieldNetwork, val)
}

func Offset(val uint32) zapcore.Field {
	return zap.Stringer(FieldOffset, stringer.Uint64HexStringer{Val: uint64(val)})
}

func Path(val string) zapcore.Field {
	return zap.String(FieldPath, val)
}

func PubKey(pubKey []byte) zapcore.Field {
	return zap.Stringer(FieldPubKey, stringer.HexStringer{Val: pubKey})
}

func Reason(val fmt.Stringer) zapcore.Field {
	return zap.Stringer(FieldReason, val)
}

func Result(val fmt.Stringer) zapcore.Field {
	return zap.Stringer(FieldResult, val)
}

func Role(val fmt.Stringer) zapcore.Field {
	return zap.Stringer(FieldRole, val)
}

func Screens(val uint8) zapcore.Field {
	return zap.Uint8(FieldScreens, val)
}

func Selector(val []byte) zapcore.Field {
	return zap.Stringer(FieldSelector, stringer.HexStringer{Val: val})
}

func WithdrawalIndex(val uint32) zapcore.Field {
	return zap.Uint32(FieldWithdrawalIndex, val)
}
