package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
)

// PluginMetrics records how a plugin answered the host's messages.
type PluginMetrics interface {
	MessageHandled(msg plugin.MessageType, result plugin.Result)
	Invalidated(reason string)
}

type pluginMetrics struct {
	messages      *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewPluginMetrics registers the plugin collectors with reg.
func NewPluginMetrics(reg prometheus.Registerer) PluginMetrics {
	factory := promauto.With(reg)
	return &pluginMetrics{
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eth2_deposit_plugin_messages_total",
			Help: "Plugin messages handled, by message and result",
		}, []string{"message", "result"}),
		invalidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eth2_deposit_plugin_invalidations_total",
			Help: "Transactions invalidated, by reason",
		}, []string{"reason"}),
	}
}

func (m *pluginMetrics) MessageHandled(msg plugin.MessageType, result plugin.Result) {
	m.messages.WithLabelValues(msg.String(), result.String()).Inc()
}

func (m *pluginMetrics) Invalidated(reason string) {
	m.invalidations.WithLabelValues(reason).Inc()
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) MessageHandled(plugin.MessageType, plugin.Result) {}

func (NopMetrics) Invalidated(string) {}
