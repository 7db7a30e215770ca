package adminrpc

import (
	"context"
	"errors"

	"buf.build/go/protovalidate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// Check validates req against the rules in its descriptor. Rule violations
// map to InvalidArgument.
func Check(req any) error {
	msg, ok := req.(proto.Message)
	if !ok {
		return nil
	}
	err := protovalidate.Validate(msg)
	if err == nil {
		return nil
	}
	var verr *protovalidate.ValidationError
	if errors.As(err, &verr) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Errorf(codes.Internal, "validate request: %v", err)
}

// ValidateUnaryInterceptor rejects invalid unary requests before the handler
// runs.
func ValidateUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if err := Check(req); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// ValidateStreamInterceptor validates every message a stream handler
// receives.
func ValidateStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return handler(srv, validatingStream{ss})
	}
}

type validatingStream struct {
	grpc.ServerStream
}

func (s validatingStream) RecvMsg(m interface{}) error {
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	return Check(m)
}
