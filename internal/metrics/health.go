package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	healthProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "health",
		Name:      "probes_total",
		Help:      "Count of node liveness probes.",
	}, []string{"coin", "network", "status"})
	healthNodeTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "health",
		Name:      "node_tip_height",
		Help:      "Best block height seen by the last successful probe.",
	}, []string{"coin", "network"})
	healthServing = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "health",
		Name:      "serving",
		Help:      "1 while the node answers probes, 0 otherwise.",
	}, []string{"coin", "network"})
)

// Health tracks node liveness as seen by the health monitor.
type Health struct {
	coin    string
	network string
}

func NewHealth(coin model.Coin, network model.Network) *Health {
	return &Health{coin: orUnknown(string(coin)), network: orUnknown(string(network))}
}

// ObserveProbe records one probe; height is ignored when err is set.
func (m Health) ObserveProbe(height uint32, err error) {
	healthProbesTotal.WithLabelValues(m.coin, m.network, status(err)).Inc()
	if err != nil {
		healthServing.WithLabelValues(m.coin, m.network).Set(0)
		return
	}
	healthServing.WithLabelValues(m.coin, m.network).Set(1)
	healthNodeTipHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
}
