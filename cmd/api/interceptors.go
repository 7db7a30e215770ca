package main

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/PaulBabatuyi/portfolio/internal/auth"
	v1 "github.com/PaulBabatuyi/portfolio/proto/portfolio/admin/v1"
)

// methods that don't require authentication
var unauthenticatedMethods = map[string]bool{
	v1.Inbox_Login_FullMethodName: true,
}

// authenticateContext verifies the bearer token in the call metadata and
// requires the admin role.
func authenticateContext(ctx context.Context, j *auth.JWTManager) (*auth.Claims, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing metadata")
	}
	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return nil, status.Errorf(codes.Unauthenticated, "missing authorization header")
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer"))
	if token == "" {
		return nil, status.Errorf(codes.Unauthenticated, "invalid token")
	}

	claims, err := j.VerifyToken(token)
	if err != nil {
		return nil, status.Errorf(codes.Unauthenticated, "unauthenticated: %v", err)
	}
	if !claims.IsAdmin() {
		return nil, status.Errorf(codes.PermissionDenied, "admin role required")
	}
	return claims, nil
}

func authUnaryInterceptor(j *auth.JWTManager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if unauthenticatedMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		claims, err := authenticateContext(ctx, j)
		if err != nil {
			return nil, err
		}
		return handler(auth.WithClaims(ctx, claims), req)
	}
}

// authStreamInterceptor is the stream equivalent of authUnaryInterceptor.
func authStreamInterceptor(j *auth.JWTManager) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if unauthenticatedMethods[info.FullMethod] {
			return handler(srv, ss)
		}
		claims, err := authenticateContext(ss.Context(), j)
		if err != nil {
			return err
		}
		return handler(srv, claimsServerStream{ServerStream: ss, ctx: auth.WithClaims(ss.Context(), claims)})
	}
}

// claimsServerStream overrides Context() so handlers see the verified claims.
type claimsServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s claimsServerStream) Context() context.Context { return s.ctx }
