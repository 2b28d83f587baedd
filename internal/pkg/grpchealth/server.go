package grpchealth

import (
	"context"
	"fmt"
	"net"

	"dispatch/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName имя сервиса в grpc_health_v1, пустое имя отвечает за процесс целиком.
const ServiceName = "dispatch"

// Server отдает grpc_health_v1 для балансировщиков, которые не умеют HTTP проверки.
type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger) *Server {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: grpcServer,
		health: healthServer,
	}
}

// Serve блокируется до Stop.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting", logger.NewField("addr", lis.Addr().String()))

	if err := s.server.Serve(lis); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Drain переводит все сервисы в NOT_SERVING, соединения остаются открытыми.
func (s *Server) Drain() {
	s.health.Shutdown()
}

// Stop дожидается активных вызовов, пока не отменен ctx, затем закрывает все принудительно.
func (s *Server) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.server.GracefulStop()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("gRPC graceful stop timeout, forcing close")
		s.server.Stop()
	}
}
