package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/PaulBabatuyi/portfolio/internal/adminrpc"
	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/normalize"
	v1 "github.com/PaulBabatuyi/portfolio/proto/portfolio/admin/v1"
)

const (
	defaultListLimit = 50
	watchQueueSize   = 32
)

var (
	errStreamBehind = errors.New("inbox stream fell behind")
	errShuttingDown = errors.New("server shutting down")
)

// Login authenticates an admin and returns a JWT token.
func (s *Server) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, normalize.Email(req.GetEmail()))
	if errors.Is(err, data.ErrNotFound) {
		return nil, status.Errorf(codes.Unauthenticated, "invalid credentials")
	}
	if err != nil {
		s.logger.Error("login-lookup-failed", err)
		return nil, status.Errorf(codes.Internal, "failed to look up user")
	}

	if err := auth.CheckPassword(user.Password, req.GetPassword()); err != nil || user.Role != auth.RoleAdmin {
		return nil, status.Errorf(codes.Unauthenticated, "invalid credentials")
	}

	token, expiresAt, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate token: %v", err)
	}

	return &v1.LoginResponse{
		Token:     token,
		UserId:    user.ID.Hex(),
		ExpiresAt: timestamppb.New(expiresAt),
	}, nil
}

// ListMessages streams the most recent contact messages, newest first.
func (s *Server) ListMessages(req *v1.ListMessagesRequest, stream grpc.ServerStreamingServer[v1.Message]) error {
	limit := int64(req.GetLimit())
	if limit <= 0 {
		limit = defaultListLimit
	}
	msgs, err := s.msgs.ListMessages(stream.Context(), limit, req.GetUnreadOnly())
	if err != nil {
		return status.Errorf(codes.Internal, "failed to read messages: %v", err)
	}

	for _, m := range msgs {
		if err := stream.Send(adminrpc.Message(m)); err != nil {
			return status.Errorf(codes.Internal, "failed to send message: %v", err)
		}
	}
	return nil
}

// queuedSender decouples hub broadcasts from the gRPC stream, which must
// only be written by its own goroutine.
type queuedSender struct {
	events  chan *v1.InboxEvent
	dropped chan struct{}
	once    sync.Once
}

func newQueuedSender() *queuedSender {
	return &queuedSender{
		events:  make(chan *v1.InboxEvent, watchQueueSize),
		dropped: make(chan struct{}),
	}
}

func (q *queuedSender) Send(ev *v1.InboxEvent) error {
	select {
	case q.events <- ev:
		return nil
	default:
		q.once.Do(func() { close(q.dropped) })
		return errStreamBehind
	}
}

// WatchInbox pushes an event for every new message or testimonial until the
// client goes away or the server shuts down.
func (s *Server) WatchInbox(_ *v1.WatchInboxRequest, stream grpc.ServerStreamingServer[v1.InboxEvent]) error {
	claims, ok := auth.ClaimsFromContext(stream.Context())
	if !ok {
		return status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	q := newQueuedSender()
	connID := s.hub.Register(claims.Email, q)
	defer s.hub.Unregister(claims.Email, connID)

	logger := s.logger.Session("watch", lager.Data{"email": claims.Email, "conn": connID})
	logger.Info("started")
	defer logger.Info("finished")

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case <-s.done:
			return status.Error(codes.Unavailable, errShuttingDown.Error())
		case <-q.dropped:
			return status.Error(codes.ResourceExhausted, errStreamBehind.Error())
		case ev := <-q.events:
			if err := stream.Send(ev); err != nil {
				return status.Errorf(codes.Internal, "failed to send event: %v", err)
			}
		}
	}
}

// SetTestimonialApproval publishes or hides a testimonial and echoes the
// change to the caller's other inbox streams.
func (s *Server) SetTestimonialApproval(ctx context.Context, req *v1.SetTestimonialApprovalRequest) (*v1.Testimonial, error) {
	id, err := data.ParseID(req.GetId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	t, err := s.testimonials.SetApproval(ctx, id, req.GetApproved())
	if errors.Is(err, data.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "testimonial not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to update testimonial: %v", err)
	}
	s.logger.Info("testimonial-approval", lager.Data{"id": id.Hex(), "approved": req.GetApproved()})

	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		notifyApproval(s.hub, claims.Email, t, s.clock.Now(), s.logger)
	}
	return adminrpc.Testimonial(t), nil
}

// notifyApproval sends an approval change to the streams of the admin who
// made it.
func notifyApproval(hub *ConnectionHub, email string, t *data.Testimonial, at time.Time, logger lager.Logger) {
	err := hub.SendToUser(email, adminrpc.TestimonialUpdatedEvent(t, at))
	if err != nil && !errors.Is(err, errNotWatching) {
		logger.Info("approval-echo-failed", lager.Data{"email": email, "error": err.Error()})
	}
}
