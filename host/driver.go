// Package host drives contract-call plugins the way a signing flow does: it
// picks a plugin by function selector, streams the call data to it in 32-byte
// chunks and turns the plugin's answers into review screens. When a plugin
// declines, the transaction gets the generic review.
package host

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ssvlabs/eth2-deposit-plugin/logging"
	"github.com/ssvlabs/eth2-deposit-plugin/logging/fields"
	"github.com/ssvlabs/eth2-deposit-plugin/networkconfig"
	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
	"github.com/ssvlabs/eth2-deposit-plugin/utils/format"
)

var (
	ErrNoDestination     = errors.New("transaction has no destination")
	ErrMalformedCallData = errors.New("call data is not a selector followed by 32-byte words")
)

// Generic screen titles.
const (
	TitleAddress = "Address"
	TitleAmount  = "Amount"
	TitleData    = "Data"

	ContractDataPresent = "Present"
)

// Screen is one page of a review.
type Screen struct {
	Title string
	Msg   string
}

// Review is what the user is shown before signing.
type Review struct {
	// Plugin is "name version" of the plugin that rendered the screens, empty
	// for the generic review.
	Plugin string
	// Fallback is set when a plugin handled the selector but declined.
	Fallback bool
	Screens  []Screen
}

// Generic reports whether the review uses the generic screens.
func (r *Review) Generic() bool {
	return r.Plugin == ""
}

// Driver dispatches transactions to registered plugins.
type Driver struct {
	logger  *zap.Logger
	network networkconfig.NetworkConfig
	plugins map[[plugin.SelectorLength]byte]plugin.Plugin
}

func NewDriver(logger *zap.Logger, network networkconfig.NetworkConfig) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		logger:  logger.Named(logging.NameHost),
		network: network,
		plugins: make(map[[plugin.SelectorLength]byte]plugin.Plugin),
	}
}

// Register routes calls with selector to p.
func (d *Driver) Register(selector [plugin.SelectorLength]byte, p plugin.Plugin) {
	d.plugins[selector] = p
}

// Review runs tx through the plugin registered for its selector.
func (d *Driver) Review(tx *Transaction) (*Review, error) {
	if tx.To == nil {
		return nil, ErrNoDestination
	}

	logger := d.logger.With(fields.Address(*tx.To), fields.CallDataSize(len(tx.Data)))

	if len(tx.Data) < plugin.SelectorLength {
		logger.Debug("no selector, generic review")
		return d.genericReview(tx, false)
	}

	var selector [plugin.SelectorLength]byte
	copy(selector[:], tx.Data)
	p, ok := d.plugins[selector]
	if !ok {
		logger.Debug("no plugin for selector", fields.Selector(selector[:]))
		return d.genericReview(tx, false)
	}

	if (len(tx.Data)-plugin.SelectorLength)%plugin.ParameterLength != 0 {
		return nil, errors.Wrapf(ErrMalformedCallData, "got %d bytes", len(tx.Data))
	}

	review, err := d.runPlugin(logger, p, selector, tx)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return d.genericReview(tx, true)
	}
	return review, nil
}

// runPlugin returns a nil review when the plugin declines the transaction.
func (d *Driver) runPlugin(logger *zap.Logger, p plugin.Plugin, selector [plugin.SelectorLength]byte, tx *Transaction) (*Review, error) {
	h := p.NewHandler(&plugin.TxContent{
		Destination:     *tx.To,
		Value:           tx.Value,
		WithdrawalIndex: tx.WithdrawalIndex,
	})

	initMsg := &plugin.InitContract{Selector: selector}
	h.InitContract(initMsg)
	if !d.accepted(logger, plugin.MessageInitContract, initMsg.Result) {
		return nil, nil
	}

	for offset := plugin.SelectorLength; offset < len(tx.Data); offset += plugin.ParameterLength {
		msg := &plugin.ProvideParameter{Offset: uint32(offset)} // #nosec G115 -- call data is far below 4GiB
		copy(msg.Parameter[:], tx.Data[offset:offset+plugin.ParameterLength])
		h.ProvideParameter(msg)
		if !d.accepted(logger, plugin.MessageProvideParameter, msg.Result) {
			return nil, nil
		}
	}

	finalize := &plugin.Finalize{}
	h.Finalize(finalize)
	if !d.accepted(logger, plugin.MessageFinalize, finalize.Result) {
		return nil, nil
	}

	id := &plugin.QueryContractID{}
	h.QueryContractID(id)
	if !d.accepted(logger, plugin.MessageQueryContractID, id.Result) {
		return nil, nil
	}

	review := &Review{
		Plugin:  id.Name + " " + id.Version,
		Screens: make([]Screen, 0, finalize.NumScreens),
	}
	for i := uint8(0); i < finalize.NumScreens; i++ {
		ui := &plugin.QueryContractUI{ScreenIndex: i}
		h.QueryContractUI(ui)
		if !d.accepted(logger, plugin.MessageQueryContractUI, ui.Result) {
			return nil, nil
		}
		review.Screens = append(review.Screens, Screen{Title: ui.Title, Msg: ui.Msg})
	}

	logger.Debug("plugin review", zap.String("plugin", review.Plugin), fields.Screens(finalize.NumScreens))
	return review, nil
}

func (d *Driver) accepted(logger *zap.Logger, msg plugin.MessageType, result plugin.Result) bool {
	if result == plugin.ResultOK {
		return true
	}
	logger.Debug("plugin declined", fields.Message(msg), fields.Result(result))
	return false
}

func (d *Driver) genericReview(tx *Transaction, fallback bool) (*Review, error) {
	amount, err := format.Amount(tx.Value, d.network.Decimals, d.network.Ticker)
	if err != nil {
		return nil, errors.Wrap(err, "could not format amount")
	}

	screens := []Screen{
		{Title: TitleAmount, Msg: amount},
		{Title: TitleAddress, Msg: format.Address(*tx.To)},
	}
	if len(tx.Data) > 0 {
		screens = append(screens, Screen{Title: TitleData, Msg: ContractDataPresent})
	}
	return &Review{
		Fallback: fallback,
		Screens:  screens,
	}, nil
}
