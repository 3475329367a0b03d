package api

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/metrics"
)

// Server serves gRPC services on a unix socket
type Server struct {
	socketPath string
	grpc       *grpc.Server
	logger     zerolog.Logger
}

// NewServer creates a new gRPC server for socketPath. When inject is non-nil
// it runs on every request after logging.
func NewServer(socketPath string, inject InjectFunc) *Server {
	interceptors := []grpc.UnaryServerInterceptor{LoggingInterceptor()}
	if inject != nil {
		interceptors = append(interceptors, InjectInterceptor(inject))
	}

	return &Server{
		socketPath: socketPath,
		grpc:       grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...)),
		logger:     log.WithComponent("grpc"),
	}
}

// GRPCServer returns the underlying server so services can be registered on
// it before Start.
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc
}

// Start binds the socket and serves until Stop is called. A stale socket file
// left by a previous run is removed first.
func (s *Server) Start() error {
	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0o755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}
	if err := os.Remove(s.socketPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove stale socket %s: %w", s.socketPath, err)
	}

	lis, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.socketPath, err)
	}

	s.logger.Info().Str("socket", s.socketPath).Msg("gRPC server listening")
	metrics.UpdateComponent(metrics.ComponentGRPC, true, "")

	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		metrics.UpdateComponent(metrics.ComponentGRPC, false, err.Error())
		return err
	}
	return nil
}

// Stop gracefully stops the gRPC server and removes the socket file
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	metrics.UpdateComponent(metrics.ComponentGRPC, false, "stopped")

	s.logger.Info().Str("socket", s.socketPath).Msg("Cleaning up socket file")
	if err := os.Remove(s.socketPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn().Err(err).Msg("Failed to remove socket file")
	}
}
