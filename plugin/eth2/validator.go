package eth2

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
)

// ProvideParameter consumes one call-data chunk.
//
// The result is always OK: problems with the chunk only invalidate the
// context, and the host finds out at Finalize. Offsets outside the deposit
// layout are ignored.
func (s *Session) ProvideParameter(msg *plugin.ProvideParameter) {
	msg.Result = plugin.ResultOK
	defer func() { s.done(plugin.MessageProvideParameter, msg.Result) }()

	k, field, ok := lookupField(msg.Offset)
	if !ok {
		s.logger.Debug("unhandled parameter offset", fields.Offset(msg.Offset))
		return
	}

	logger := s.logger.With(fields.Offset(msg.Offset), zap.String("field", field.name), fields.Role(field.role))
	logger.Debug("provide parameter", fields.Chunk(msg.Parameter[:]))

	if s.ctx.seen != 0 && msg.Offset <= s.ctx.lastOffset {
		s.invalidate(logger, ReasonOutOfOrder, zap.Uint32("last_offset", s.ctx.lastOffset))
		return
	}
	s.ctx.seen |= 1 << k
	s.ctx.lastOffset = msg.Offset

	switch field.role {
	case roleHead:
		s.checkHead(logger, field, &msg.Parameter)
	case rolePubKeyPart1:
		s.storePubKeyPart1(logger, &msg.Parameter)
	case rolePubKeyPart2:
		s.storePubKeyPart2(logger, &msg.Parameter)
	case roleWithdrawalCredentials:
		s.verifyWithdrawalCredentials(logger, msg.Parameter)
	case rolePassThrough:
	}
}

// checkHead compares the whole 32-byte word with the expected value.
func (s *Session) checkHead(logger *zap.Logger, field layoutField, parameter *[plugin.ParameterLength]byte) {
	got := new(uint256.Int).SetBytes32(parameter[:])
	expected := uint256.NewInt(field.expected)
	if !got.Eq(expected) {
		s.invalidate(logger, ReasonHeadMismatch,
			fields.Expected(expected.Hex()),
			fields.Got(got.Hex()))
	}
}

func (s *Session) storePubKeyPart1(logger *zap.Logger, parameter *[plugin.ParameterLength]byte) {
	if s.ctx.keyState != keyEmpty {
		s.invalidate(logger, ReasonOutOfOrder, zap.String("key_state", "not empty"))
		return
	}
	copy(s.ctx.pubKey[:plugin.ParameterLength], parameter[:])
	s.ctx.keyState = keyPartial
}

func (s *Session) storePubKeyPart2(logger *zap.Logger, parameter *[plugin.ParameterLength]byte) {
	if s.ctx.keyState != keyPartial {
		s.invalidate(logger, ReasonOutOfOrder, zap.String("key_state", "not partial"))
		return
	}
	copy(s.ctx.pubKey[plugin.ParameterLength:], parameter[:BLSPubKeyLength-plugin.ParameterLength])
	s.ctx.renderPubKey(s.plugin.renderAddress)
	logger.Debug("deposit public key", fields.PubKey(s.ctx.pubKey[:]), zap.String("display", s.ctx.displayPublicKey))
}

func (s *Session) verifyWithdrawalCredentials(logger *zap.Logger, credentials [plugin.ParameterLength]byte) {
	if !s.ctx.valid {
		logger.Debug("skipping withdrawal credentials check", fields.Reason(s.ctx.reason))
		return
	}

	err := s.plugin.verifier.Verify(s.tx.WithdrawalIndex, credentials)
	switch {
	case err == nil:
		logger.Debug("withdrawal credentials verified")
	case errors.Is(err, ErrWithdrawalIndexTooLarge):
		s.invalidate(logger, ReasonWithdrawalIndexTooLarge, zap.Error(err))
	case errors.Is(err, ErrWithdrawalCredentialsMismatch):
		s.invalidate(logger, ReasonWithdrawalCredentialsMismatch, fields.GotBytes(credentials[:]))
	default:
		s.invalidate(logger, ReasonWithdrawalDerivationFailed, zap.Error(err))
	}
}
