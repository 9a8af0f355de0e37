package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/gocalendar/internal/api/grpc/handler"
	"github.com/dtroode/gocalendar/internal/api/grpc/middleware"
	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

// Router builds the operations gRPC server.
type Router struct {
	pinger model.Pinger
	logger *logger.Logger
}

// New creates new gRPC Router instance.
func New(pinger model.Pinger, logger *logger.Logger) *Router {
	return &Router{pinger: pinger, logger: logger}
}

// Register creates a gRPC server with logging and recovery interceptors,
// the health service and reflection.
func (r *Router) Register() *grpc.Server {
	interceptorLogger := middleware.InterceptorLogger(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(middleware.RecoveryHandler(r.logger))

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(interceptorLogger, middleware.LoggingOptions()...),
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(interceptorLogger, middleware.LoggingOptions()...),
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	grpc_health_v1.RegisterHealthServer(s, handler.NewHealth(r.pinger, r.logger))
	reflection.Register(s)

	return s
}
