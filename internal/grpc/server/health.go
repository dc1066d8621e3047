// Package server runs the gRPC side of the site. It only carries the
// standard health service, which reports NOT_SERVING until the splash
// gate opens.
package server

import (
	"context"
	"errors"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"urmonov-web/internal/grpc/middleware"
	"urmonov-web/pkg/logger"
)

// ServiceName is the health service name of the website.
const ServiceName = "urmonov.web"

// Server wraps the grpc server and its health state.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// New builds the server. Both the overall status ("") and ServiceName start
// as NOT_SERVING.
func New() *Server {
	kasp := keepalive.ServerParameters{
		MaxConnectionIdle:     15 * time.Second, // idle client gets GOAWAY
		MaxConnectionAgeGrace: 5 * time.Second,
		Time:                  20 * time.Second,
		Timeout:               5 * time.Second,
	}
	kaep := keepalive.EnforcementPolicy{
		MinTime:             5 * time.Second,
		PermitWithoutStream: true,
	}

	g := grpc.NewServer(
		grpc.KeepaliveParams(kasp),
		grpc.KeepaliveEnforcementPolicy(kaep),
		grpc.ChainUnaryInterceptor(middleware.UnaryLogger),
		grpc.ChainStreamInterceptor(middleware.StreamLogger),
	)

	hs := health.NewServer()
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(g, hs)
	reflection.Register(g)

	return &Server{grpc: g, health: hs}
}

// ServeWhenReady flips both statuses to SERVING once ready is closed.
func (s *Server) ServeWhenReady(ctx context.Context, ready <-chan struct{}) {
	go func() {
		select {
		case <-ready:
			s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
			s.health.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
			logger.Info("gRPC health is SERVING")
		case <-ctx.Done():
		}
	}()
}

// Serve blocks until lis fails or ctx is cancelled. On cancel the health
// status goes to NOT_SERVING and the server stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		errCh <- s.grpc.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpc.GracefulStop()
		return nil
	}
}
