package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_api",
		Name:      "requests_total",
		Help:      "Count of HTTP API requests by route and response code.",
	}, []string{"route", "method", "code"})
	httpAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_api",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// HTTPAPI tracks metrics for the REST surface. Routes are labelled by pattern, not
// by concrete path, to keep cardinality bounded.
type HTTPAPI struct{}

func NewHTTPAPI() *HTTPAPI {
	return &HTTPAPI{}
}

func (m HTTPAPI) Observe(route, method string, code int, started time.Time) {
	httpAPIRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpAPIRequestDuration.WithLabelValues(route, method).Observe(time.Since(started).Seconds())
}
