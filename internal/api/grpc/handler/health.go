package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

// ServiceName is the health service name reported for the REST API backend.
const ServiceName = "gocalendar"

const pingTimeout = 2 * time.Second

// Health answers grpc.health.v1 checks from the state of the database.
type Health struct {
	grpc_health_v1.UnimplementedHealthServer
	pinger model.Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Check reports SERVING when the database answers a ping.
// Both the empty service name and ServiceName are known.
func (h *Health) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database ping failed",
			"error", err.Error())
		return &grpc_health_v1.HealthCheckResponse{
			Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING,
		}, nil
	}

	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}
