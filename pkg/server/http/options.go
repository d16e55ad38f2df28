package http_server

import (
	"context"
	"net"
	"time"
)

const (
	_defaultAddr    = ":5000"
	_defaultTimeout = 5 * time.Second
)

// Option -.
type Option func(*Server)

// Port -.
func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

// Timeout -.
func Timeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// HealthCheck sets the upstream probe consulted by the health endpoint.
// Without one the endpoint only reports process liveness.
func HealthCheck(check func(context.Context) error) Option {
	return func(s *Server) {
		s.healthCheck = check
	}
}
