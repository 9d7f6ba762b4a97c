// Package health serves the standard gRPC health-checking protocol so
// orchestrators can check the recognition service without speaking HTTP.
package health

import (
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RecognitionService is the service name reported next to the overall ("")
// status.
const RecognitionService = "shogi_insight.Recognition"

type Server struct {
	server *grpc.Server
	health *grpchealth.Server
	log    *zap.SugaredLogger
}

// NewServer starts in NOT_SERVING; call SetServing once the registry and
// stores are ready.
func NewServer(log *zap.SugaredLogger) *Server {
	s := &Server{
		server: grpc.NewServer(),
		health: grpchealth.NewServer(),
		log:    log,
	}
	healthpb.RegisterHealthServer(s.server, s.health)
	s.SetServing(false)
	return s
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(RecognitionService, status)
	s.log.Debugw("health status changed", "status", status.String())
}

// Serve blocks until Stop is called or lis fails.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Infof("gRPC health server is running on %s", lis.Addr())
	return s.server.Serve(lis)
}

// Stop reports NOT_SERVING to watchers, then drains in-flight checks.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
