package health

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TipReader interface {
		GetTipHeight(ctx context.Context) (uint32, error)
	}
	// StatusSetter is satisfied by *health.Server from google.golang.org/grpc/health.
	StatusSetter interface {
		SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
	}
	Metrics interface {
		ObserveProbe(height uint32, err error)
	}
)
