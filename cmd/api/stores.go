package main

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/ratelimit"
	"github.com/PaulBabatuyi/portfolio/internal/storage"
)

// The handlers depend on these narrow views of the data and storage
// packages so tests can substitute in-memory fakes.

type userStore interface {
	GetUserByEmail(ctx context.Context, email string) (*data.User, error)
	GetUserByID(ctx context.Context, id bson.ObjectID) (*data.User, error)
}

type messageStore interface {
	SaveMessage(ctx context.Context, msg *data.Message) (*data.Message, error)
	ListMessages(ctx context.Context, limit int64, unreadOnly bool) ([]*data.Message, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id bson.ObjectID, read bool) error
	DeleteMessage(ctx context.Context, id bson.ObjectID) error
}

type testimonialStore interface {
	SaveTestimonial(ctx context.Context, t *data.Testimonial) (*data.Testimonial, error)
	ListApproved(ctx context.Context, limit int64) ([]*data.Testimonial, error)
	ListAll(ctx context.Context, limit int64) ([]*data.Testimonial, error)
	SetApproval(ctx context.Context, id bson.ObjectID, approved bool) (*data.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id bson.ObjectID) error
}

type contentStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id bson.ObjectID) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id bson.ObjectID, item *T) error
	Delete(ctx context.Context, id bson.ObjectID) (*T, error)
}

type resumeStore interface {
	Create(ctx context.Context, r *data.Resume) (*data.Resume, error)
	List(ctx context.Context) ([]*data.Resume, error)
	Active(ctx context.Context, language string) (*data.Resume, error)
	Activate(ctx context.Context, id bson.ObjectID) (*data.Resume, error)
	Delete(ctx context.Context, id bson.ObjectID) (*data.Resume, error)
}

type contactStore interface {
	Get(ctx context.Context) (*data.ContactInfo, error)
	Upsert(ctx context.Context, info *data.ContactInfo) (*data.ContactInfo, error)
}

type objectStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (storage.Object, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type notifier interface {
	NotifyNewMessage(msg *data.Message)
	NotifyNewTestimonial(t *data.Testimonial)
}

type submissionLimiter interface {
	CheckRateLimit(identifier string) ratelimit.Result
	CheckDailyRateLimit(identifier string, maxPerDay int) ratelimit.Result
}

type contentStores struct {
	projects   contentStore[data.Project]
	skills     contentStore[data.Skill]
	experience contentStore[data.Experience]
	education  contentStore[data.Education]
	hobbies    contentStore[data.Hobby]
}
