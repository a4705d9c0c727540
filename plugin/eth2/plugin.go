// Package eth2 reviews calls to the beacon chain deposit contract.
//
// The handler validates the call data chunk by chunk against the fixed ABI
// layout of deposit(bytes,bytes,bytes,bytes32), keeps the deposit key for
// display, and checks that the withdrawal credentials commit to a key the
// device derives. Anything unexpected invalidates the transaction; the host
// learns about it at Finalize and falls back to its generic review.
package eth2

import (
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/keys"
	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
	"github.com/ssvlabs/eth2-deposit-plugin/monitoring/metrics"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/format"
)

const (
	PluginName    = "ETH2"
	PluginVersion = "Deposit"

	NumScreens = 2
)

// Plugin holds the dependencies shared by every transaction's Session.
type Plugin struct {
	logger        *zap.Logger
	metrics       metrics.PluginMetrics
	network       networkconfig.NetworkConfig
	verifier      *WithdrawalVerifier
	renderAddress func(common.Address) string
}

// Option configures a Plugin.
type Option func(*Plugin)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

func WithMetrics(m metrics.PluginMetrics) Option {
	return func(p *Plugin) {
		p.metrics = m
	}
}

// WithNetwork sets the chain whose ticker is used to render amounts.
func WithNetwork(network networkconfig.NetworkConfig) Option {
	return func(p *Plugin) {
		p.network = network
	}
}

// WithAddressRenderer replaces format.Address for rendering addresses.
func WithAddressRenderer(render func(common.Address) string) Option {
	return func(p *Plugin) {
		p.renderAddress = render
	}
}

// New returns a deposit plugin deriving withdrawal keys with deriver.
func New(deriver keys.Deriver, hasher keys.Hasher, opts ...Option) *Plugin {
	p := &Plugin{
		logger:        zap.NewNop(),
		metrics:       metrics.NopMetrics{},
		network:       networkconfig.Mainnet,
		verifier:      NewWithdrawalVerifier(deriver, hasher),
		renderAddress: format.Address,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.Named(logging.NameEth2Plugin)
	return p
}

// NewHandler starts reviewing tx.
func (p *Plugin) NewHandler(tx *plugin.TxContent) plugin.Handler {
	return p.NewSession(tx)
}

// NewSession starts reviewing tx.
func (p *Plugin) NewSession(tx *plugin.TxContent) *Session {
	return &Session{
		plugin: p,
		logger: p.logger.With(fields.WithdrawalIndex(tx.WithdrawalIndex)),
		tx:     tx,
		ctx:    newContext(),
	}
}
