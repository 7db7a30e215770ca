package main

import (
	"context"
	"sync"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/PaulBabatuyi/portfolio/internal/adminrpc"
	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/middleware"
	v1 "github.com/PaulBabatuyi/portfolio/proto/portfolio/admin/v1"
)

// Server implements the admin inbox service.
type Server struct {
	v1.UnimplementedInboxServer
	users        userStore
	msgs         messageStore
	testimonials testimonialStore
	auth         *auth.JWTManager
	hub          *ConnectionHub
	clock        clock.Clock
	logger       lager.Logger

	done     chan struct{}
	doneOnce sync.Once
}

func newServer(users userStore, msgs messageStore, testimonials testimonialStore, authMgr *auth.JWTManager, hub *ConnectionHub, clk clock.Clock, logger lager.Logger) *Server {
	return &Server{
		users:        users,
		msgs:         msgs,
		testimonials: testimonials,
		auth:         authMgr,
		hub:          hub,
		clock:        clk,
		logger:       logger.Session("inbox"),
		done:         make(chan struct{}),
	}
}

// Shutdown ends every open WatchInbox stream. Call it before stopping the
// gRPC server, whose GracefulStop waits for running streams.
func (s *Server) Shutdown() {
	s.doneOnce.Do(func() { close(s.done) })
}

// newGRPCServer builds a gRPC server with the login throttle, auth and
// request validation interceptors, the inbox service and the standard health
// service.
func newGRPCServer(srv *Server, throttle *middleware.LimiterStore, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	limited := map[string]bool{v1.Inbox_Login_FullMethodName: true}

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			middleware.RateLimitUnaryInterceptor(throttle, limited),
			authUnaryInterceptor(srv.auth),
			adminrpc.ValidateUnaryInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			authStreamInterceptor(srv.auth),
			adminrpc.ValidateStreamInterceptor(),
		),
	)
	gs := grpc.NewServer(opts...)

	v1.RegisterInboxServer(gs, srv)
	hs := health.NewServer()
	hs.SetServingStatus(adminrpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	return gs, hs
}

// stopGRPC drains gs, falling back to a hard stop once ctx expires. It
// reports whether the drain finished in time.
func stopGRPC(ctx context.Context, gs *grpc.Server) bool {
	drained := make(chan struct{})
	go func() {
		gs.GracefulStop()
		close(drained)
	}()

	select {
	case <-drained:
		return true
	case <-ctx.Done():
		gs.Stop()
		<-drained
		return false
	}
}
