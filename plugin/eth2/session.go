package eth2

import (
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
)

// Session reviews a single transaction. It is not safe for concurrent use;
// the host delivers one message at a time.
type Session struct {
	plugin *Plugin
	logger *zap.Logger
	tx     *plugin.TxContent
	ctx    *Context
}

var _ plugin.Handler = (*Session)(nil)

// Context exposes the validation state, mainly for tests and diagnostics.
func (s *Session) Context() *Context {
	return s.ctx
}

func (s *Session) invalidate(logger *zap.Logger, reason InvalidReason, zapFields ...zap.Field) {
	if !s.ctx.invalidate(reason) {
		logger.Debug("transaction already invalid", append(zapFields, fields.Reason(reason))...)
		return
	}
	logger.Debug("transaction invalidated", append(zapFields, fields.Reason(reason))...)
	s.plugin.metrics.Invalidated(reason.String())
}

func (s *Session) done(msgType plugin.MessageType, result plugin.Result) {
	s.plugin.metrics.MessageHandled(msgType, result)
}

// InitContract checks that the transaction is sent to the deposit contract.
func (s *Session) InitContract(msg *plugin.InitContract) {
	defer func() { s.done(plugin.MessageInitContract, msg.Result) }()

	rendered, ok := isDepositContract(s.plugin.renderAddress, s.tx.Destination)
	if !ok {
		s.invalidate(s.logger, ReasonDestinationMismatch,
			fields.Contract(DepositContractAddress),
			zap.String("destination", rendered))
		msg.Result = plugin.ResultError
		return
	}

	s.logger.Debug("deposit contract call", fields.Selector(msg.Selector[:]))
	msg.Result = plugin.ResultOK
}

// QueryContractID names the plugin.
func (s *Session) QueryContractID(msg *plugin.QueryContractID) {
	msg.Name = PluginName
	msg.Version = PluginVersion
	msg.Result = plugin.ResultOK
	s.done(plugin.MessageQueryContractID, msg.Result)
}
