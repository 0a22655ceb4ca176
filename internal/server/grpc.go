package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"shopcore/internal/metrics"
	"shopcore/internal/middleware"
)

// GRPCServer pairs a gRPC server with its health service.
type GRPCServer struct {
	*grpc.Server
	Health *health.Server
}

// NewGRPCServer wires the common interceptor chain and the standard health service.
func NewGRPCServer(log *slog.Logger, reg *metrics.Registry) *GRPCServer {
	interceptors := []grpc.UnaryServerInterceptor{
		middleware.UnaryRecover(log),
		middleware.UnaryLogging(log),
	}
	if reg != nil {
		interceptors = append(interceptors, reg.UnaryServerInterceptor())
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return &GRPCServer{Server: s, Health: hs}
}

// RunGRPC serves until ctx is done, then drains in-flight calls for at most stopTimeout.
func RunGRPC(ctx context.Context, log *slog.Logger, s *GRPCServer, addr string, stopTimeout time.Duration) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return ServeGRPC(ctx, log, s, lis, stopTimeout)
}

// ServeGRPC is RunGRPC on an existing listener. Health turns NOT_SERVING
// before in-flight calls are drained.
func ServeGRPC(ctx context.Context, log *slog.Logger, s *GRPCServer, lis net.Listener, stopTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("grpc starting", slog.String("addr", lis.Addr().String()))
		errCh <- s.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("grpc shutdown requested")
	s.Health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(stopTimeout):
		log.Warn("graceful stop timeout, forcing stop")
		s.Stop()
	case <-stopped:
	}
	return nil
}
