package eth2

import (
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/format"
)

// Screen indices.
const (
	ScreenAmount uint8 = iota
	ScreenValidator
)

const (
	TitleAmount    = "Amount"
	TitleValidator = "Validator"
)

// Finalize reports two screens for a valid deposit, and FALLBACK otherwise.
func (s *Session) Finalize(msg *plugin.Finalize) {
	defer func() { s.done(plugin.MessageFinalize, msg.Result) }()

	if s.ctx.valid && !s.ctx.complete() {
		s.invalidate(s.logger, ReasonIncompleteCallData, zap.String("seen", formatSeen(s.ctx.seen)))
	}

	if !s.ctx.valid {
		s.logger.Debug("finalize: fallback", fields.Reason(s.ctx.reason))
		msg.Result = plugin.ResultFallback
		return
	}

	msg.NumScreens = NumScreens
	msg.UIType = plugin.UITypeGeneric
	msg.Result = plugin.ResultOK
	s.logger.Debug("finalize", fields.Screens(msg.NumScreens))
}

// QueryContractUI renders screen msg.ScreenIndex. Nothing is rendered for an
// invalid transaction, and unknown screens are left untouched.
func (s *Session) QueryContractUI(msg *plugin.QueryContractUI) {
	defer func() { s.done(plugin.MessageQueryContractUI, msg.Result) }()

	if !s.ctx.valid {
		msg.Result = plugin.ResultFallback
		return
	}

	switch msg.ScreenIndex {
	case ScreenAmount:
		amount, err := format.Amount(s.tx.Value, format.WeiToEther, s.plugin.network.Ticker)
		if err != nil {
			s.logger.Debug("could not format amount", zap.Error(err))
			msg.Result = plugin.ResultError
			return
		}
		msg.Title = TitleAmount
		msg.Msg = amount
		msg.Result = plugin.ResultOK
	case ScreenValidator:
		msg.Title = TitleValidator
		msg.Msg = s.ctx.displayPublicKey
		msg.Result = plugin.ResultOK
	default:
		s.logger.Debug("unknown screen", zap.Uint8("screen_index", msg.ScreenIndex))
	}
}

func formatSeen(seen uint16) string {
	b := make([]byte, len(depositLayout))
	for k := range depositLayout {
		b[k] = '0'
		if seen&(1<<k) != 0 {
			b[k] = '1'
		}
	}
	return string(b)
}
