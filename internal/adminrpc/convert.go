// Package adminrpc maps portfolio records onto the admin inbox protobuf
// types and enforces the protovalidate rules declared on inbox requests.
package adminrpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/PaulBabatuyi/portfolio/internal/data"
	v1 "github.com/PaulBabatuyi/portfolio/proto/portfolio/admin/v1"
)

// ServiceName is the fully qualified inbox service, also used as its
// health check name.
const ServiceName = "portfolio.admin.v1.Inbox"

func Message(m *data.Message) *v1.Message {
	return &v1.Message{
		Id:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: timestamppb.New(m.CreatedAt),
	}
}

func Testimonial(t *data.Testimonial) *v1.Testimonial {
	return &v1.Testimonial{
		Id:        t.ID.Hex(),
		Name:      t.Name,
		Role:      t.Role,
		Company:   t.Company,
		Content:   t.Content,
		Rating:    int32(t.Rating),
		Approved:  t.Approved,
		CreatedAt: timestamppb.New(t.CreatedAt),
	}
}

// MessageEvent announces a new contact message.
func MessageEvent(m *data.Message) *v1.InboxEvent {
	return &v1.InboxEvent{
		Kind:    v1.EventKind_EVENT_KIND_MESSAGE,
		Message: Message(m),
		At:      timestamppb.New(m.CreatedAt),
	}
}

// TestimonialEvent announces a testimonial waiting for approval.
func TestimonialEvent(t *data.Testimonial) *v1.InboxEvent {
	return &v1.InboxEvent{
		Kind:        v1.EventKind_EVENT_KIND_TESTIMONIAL,
		Testimonial: Testimonial(t),
		At:          timestamppb.New(t.CreatedAt),
	}
}

// TestimonialUpdatedEvent reports an approval change made at at.
func TestimonialUpdatedEvent(t *data.Testimonial, at time.Time) *v1.InboxEvent {
	return &v1.InboxEvent{
		Kind:        v1.EventKind_EVENT_KIND_TESTIMONIAL_UPDATED,
		Testimonial: Testimonial(t),
		At:          timestamppb.New(at),
	}
}
