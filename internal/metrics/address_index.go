package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	addressIndexRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "address_index",
		Name:      "operations_total",
		Help:      "Count of address index lookups.",
	}, []string{"operation", "coin", "network", "status"})
	addressIndexRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "address_index",
		Name:      "operation_duration_seconds",
		Help:      "Duration of address index lookups.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "coin", "network", "status"})
)

// AddressIndex tracks metrics for ClickHouse address index lookups.
type AddressIndex struct{}

func NewAddressIndex() *AddressIndex {
	return &AddressIndex{}
}

// Observe records duration and status of an index lookup.
func (m AddressIndex) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	s := status(err)
	c, n := orUnknown(string(coin)), orUnknown(string(network))

	addressIndexRequestsTotal.WithLabelValues(operation, c, n, s).Inc()
	addressIndexRequestDuration.WithLabelValues(operation, c, n, s).Observe(time.Since(started).Seconds())
}
