package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ssvlabs/eth2-deposit-plugin/plugin"
)

func TestPluginMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPluginMetrics(reg).(*pluginMetrics)

	m.MessageHandled(plugin.MessageProvideParameter, plugin.ResultOK)
	m.MessageHandled(plugin.MessageProvideParameter, plugin.ResultOK)
	m.MessageHandled(plugin.MessageFinalize, plugin.ResultFallback)
	m.Invalidated("head_mismatch")

	require.Equal(t, 2.0, testutil.ToFloat64(m.messages.WithLabelValues("provide_parameter", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.messages.WithLabelValues("finalize", "fallback")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.invalidations.WithLabelValues("head_mismatch")))

	// registering twice on the same registry must fail
	require.Panics(t, func() { NewPluginMetrics(reg) })
}

func TestNopMetrics(t *testing.T) {
	var m PluginMetrics = NopMetrics{}
	m.MessageHandled(plugin.MessageInitContract, plugin.ResultError)
	m.Invalidated("anything")
}
