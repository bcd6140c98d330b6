package router

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	bootstrap "github.com/tbeaudouin05/stripe-relay/api/bootstrap"
)

// ServiceName is the health-check name reported for the Stripe service.
const ServiceName = "stripe.relay"

// NewGRPCServer returns a gRPC server exposing health and reflection. Health reports
// NOT_SERVING until MarkServing is called.
func NewGRPCServer(logger *zap.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(unaryLogger(logger)))
	srv := grpc.NewServer(opts...)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return srv, hs
}

// MarkServing flips health to SERVING when the Stripe service is wired.
func MarkServing(hs *health.Server) bool {
	if bootstrap.GetStripeService() == nil {
		return false
	}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return true
}

func unaryLogger(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("grpc request",
			zap.String("method", info.FullMethod),
			zap.Stringer("code", status.Code(err)),
			zap.Duration("duration", time.Since(start)))
		return resp, err
	}
}
