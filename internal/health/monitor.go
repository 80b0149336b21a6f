// Package health turns periodic chain node probes into gRPC health status.
package health

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-query/internal/clock"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service reported alongside the server-wide "" entry.
const ServiceName = "blockinsight7000.query"

var services = []string{"", ServiceName}

// Monitor probes the node tip height and reports SERVING while the node answers.
type Monitor struct {
	tips     TipReader
	status   StatusSetter
	metrics  Metrics
	interval time.Duration
	logger   *zap.Logger

	serving *bool
}

func NewMonitor(tips TipReader, status StatusSetter, metrics Metrics, interval time.Duration, logger *zap.Logger) *Monitor {
	return &Monitor{
		tips:     tips,
		status:   status,
		metrics:  metrics,
		interval: interval,
		logger:   logger.Named("health"),
	}
}

// Run probes until ctx is canceled. Run is not safe for concurrent use with Probe.
func (m *Monitor) Run(ctx context.Context) error {
	err := clock.Every(ctx, m.interval, m.Probe)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Probe checks the node once, bounded by the probe interval, and publishes the result.
func (m *Monitor) Probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	height, err := m.tips.GetTipHeight(probeCtx)
	if ctx.Err() != nil {
		return
	}
	m.metrics.ObserveProbe(height, err)

	serving := err == nil
	servingStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		servingStatus = healthpb.HealthCheckResponse_SERVING
	}
	for _, service := range services {
		m.status.SetServingStatus(service, servingStatus)
	}

	if m.serving != nil && *m.serving == serving {
		return
	}
	m.serving = &serving
	if serving {
		m.logger.Info("chain node is serving", zap.Uint32("tip_height", height))
		return
	}
	m.logger.Warn("chain node is not serving", zap.Error(err))
}
