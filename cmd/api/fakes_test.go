package main

import (
	"context"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/contentcache"
	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/metrics"
	"github.com/PaulBabatuyi/portfolio/internal/middleware"
	"github.com/PaulBabatuyi/portfolio/internal/ratelimit"
	"github.com/PaulBabatuyi/portfolio/internal/storage"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "correct horse battery"
)

type memUsers struct {
	users []*data.User
}

func (f *memUsers) GetUserByEmail(ctx context.Context, email string) (*data.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, data.ErrNotFound
}

func (f *memUsers) GetUserByID(ctx context.Context, id bson.ObjectID) (*data.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, data.ErrNotFound
}

type memMessages struct {
	mu   sync.Mutex
	msgs []*data.Message
}

func (f *memMessages) SaveMessage(ctx context.Context, msg *data.Message) (*data.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *msg
	saved.ID = bson.NewObjectID()
	saved.CreatedAt = time.Now()
	f.msgs = append(f.msgs, &saved)
	return &saved, nil
}

func (f *memMessages) ListMessages(ctx context.Context, limit int64, unreadOnly bool) ([]*data.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*data.Message, 0, len(f.msgs))
	for i := len(f.msgs) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if unreadOnly && f.msgs[i].Read {
			continue
		}
		out = append(out, f.msgs[i])
	}
	return out, nil
}

func (f *memMessages) CountUnread(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, m := range f.msgs {
		if !m.Read {
			n++
		}
	}
	return n, nil
}

func (f *memMessages) MarkRead(ctx context.Context, id bson.ObjectID, read bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.msgs {
		if m.ID == id {
			m.Read = read
			return nil
		}
	}
	return data.ErrNotFound
}

func (f *memMessages) DeleteMessage(ctx context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.msgs {
		if m.ID == id {
			f.msgs = append(f.msgs[:i], f.msgs[i+1:]...)
			return nil
		}
	}
	return data.ErrNotFound
}

func (f *memMessages) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

type memTestimonials struct {
	mu    sync.Mutex
	items []*data.Testimonial
}

func (f *memTestimonials) SaveTestimonial(ctx context.Context, t *data.Testimonial) (*data.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *t
	saved.ID = bson.NewObjectID()
	saved.Approved = false
	saved.CreatedAt = time.Now()
	f.items = append(f.items, &saved)
	return &saved, nil
}

func (f *memTestimonials) ListApproved(ctx context.Context, limit int64) ([]*data.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*data.Testimonial
	for _, t := range f.items {
		if t.Approved {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *memTestimonials) ListAll(ctx context.Context, limit int64) ([]*data.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*data.Testimonial(nil), f.items...), nil
}

func (f *memTestimonials) SetApproval(ctx context.Context, id bson.ObjectID, approved bool) (*data.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.items {
		if t.ID == id {
			t.Approved = approved
			return t, nil
		}
	}
	return nil, data.ErrNotFound
}

func (f *memTestimonials) DeleteTestimonial(ctx context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.items {
		if t.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return data.ErrNotFound
}

// memContent keeps entries in insertion order; ids[i] belongs to items[i].
type memContent[T any] struct {
	mu    sync.Mutex
	ids   []bson.ObjectID
	items []T
	lists int
}

func (f *memContent[T]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	return append([]T(nil), f.items...), nil
}

func (f *memContent[T]) index(id bson.ObjectID) int {
	for i, existing := range f.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

func (f *memContent[T]) Get(ctx context.Context, id bson.ObjectID) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.index(id); i >= 0 {
		item := f.items[i]
		return &item, nil
	}
	return nil, data.ErrNotFound
}

func (f *memContent[T]) Create(ctx context.Context, item *T) error {
	if v, ok := any(item).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, bson.NewObjectID())
	f.items = append(f.items, *item)
	return nil
}

func (f *memContent[T]) Update(ctx context.Context, id bson.ObjectID, item *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.index(id); i >= 0 {
		f.items[i] = *item
		return nil
	}
	return data.ErrNotFound
}

func (f *memContent[T]) Delete(ctx context.Context, id bson.ObjectID) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.index(id); i >= 0 {
		item := f.items[i]
		f.ids = append(f.ids[:i], f.ids[i+1:]...)
		f.items = append(f.items[:i], f.items[i+1:]...)
		return &item, nil
	}
	return nil, data.ErrNotFound
}

type memResumes struct {
	mu    sync.Mutex
	items []*data.Resume
}

func (f *memResumes) Create(ctx context.Context, r *data.Resume) (*data.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *r
	saved.ID = bson.NewObjectID()
	f.items = append(f.items, &saved)
	return &saved, nil
}

func (f *memResumes) List(ctx context.Context) ([]*data.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*data.Resume(nil), f.items...), nil
}

func (f *memResumes) Active(ctx context.Context, language string) (*data.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.items {
		if r.Language == language && r.Active {
			return r, nil
		}
	}
	return nil, data.ErrNotFound
}

func (f *memResumes) Activate(ctx context.Context, id bson.ObjectID) (*data.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var target *data.Resume
	for _, r := range f.items {
		if r.ID == id {
			target = r
		}
	}
	if target == nil {
		return nil, data.ErrNotFound
	}
	for _, r := range f.items {
		if r.Language == target.Language {
			r.Active = r.ID == id
		}
	}
	return target, nil
}

func (f *memResumes) Delete(ctx context.Context, id bson.ObjectID) (*data.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.items {
		if r.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return r, nil
		}
	}
	return nil, data.ErrNotFound
}

type memContact struct {
	info *data.ContactInfo
}

func (f *memContact) Get(ctx context.Context) (*data.ContactInfo, error) {
	if f.info == nil {
		return nil, data.ErrNotFound
	}
	return f.info, nil
}

func (f *memContact) Upsert(ctx context.Context, info *data.ContactInfo) (*data.ContactInfo, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	saved := *info
	f.info = &saved
	return &saved, nil
}

type fakeObjects struct {
	mu       sync.Mutex
	uploaded map[string][]byte
	deleted  []string
}

func (f *fakeObjects) Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (storage.Object, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return storage.Object{}, err
	}
	key := storage.ObjectKey(folder, contentType)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded[key] = b
	return storage.Object{Key: key, URL: "https://cdn.example.com/" + key, Size: int64(len(b)), ContentType: contentType}, nil
}

func (f *fakeObjects) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	delete(f.uploaded, key)
	return nil
}

func (f *fakeObjects) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "https://cdn.example.com/" + key + "?signed=1", nil
}

func (f *fakeObjects) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for k := range f.uploaded {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type fakeNotifier struct {
	mu           sync.Mutex
	messages     int
	testimonials int
}

func (f *fakeNotifier) NotifyNewMessage(*data.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages++
}

func (f *fakeNotifier) NotifyNewTestimonial(*data.Testimonial) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.testimonials++
}

type fakeVerifier struct {
	ok     bool
	err    error
	tokens []string
}

func (f *fakeVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	f.tokens = append(f.tokens, token)
	return f.ok, f.err
}

// fixture bundles an application wired to in-memory collaborators.
type fixture struct {
	app          *application
	clock        *fakeclock.FakeClock
	logger       *lagertest.TestLogger
	admin        *data.User
	users        *memUsers
	messages     *memMessages
	testimonials *memTestimonials
	projects     *memContent[data.Project]
	resumes      *memResumes
	contact      *memContact
	objects      *fakeObjects
	notifier     *fakeNotifier
	verifier     *fakeVerifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	admin := &data.User{ID: bson.NewObjectID(), Email: adminEmail, Password: hash, Role: auth.RoleAdmin}
	visitorHash, err := auth.HashPassword("visitor password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	visitor := &data.User{ID: bson.NewObjectID(), Email: "visitor@example.com", Password: visitorHash, Role: "user"}

	clk := fakeclock.NewFakeClock(time.Unix(1_700_000_000, 0))
	logger := lagertest.NewTestLogger("api")
	limiter := ratelimit.NewLimiter(clk, logger)
	loginThrottle := middleware.NewLimiterStore(5, 5, 0, clk, logger)
	t.Cleanup(loginThrottle.Stop)

	f := &fixture{
		clock:        clk,
		logger:       logger,
		admin:        admin,
		users:        &memUsers{users: []*data.User{admin, visitor}},
		messages:     &memMessages{},
		testimonials: &memTestimonials{},
		projects:     &memContent[data.Project]{},
		resumes:      &memResumes{},
		contact:      &memContact{},
		objects:      &fakeObjects{},
		notifier:     &fakeNotifier{},
		verifier:     &fakeVerifier{ok: true},
	}

	f.app = &application{
		logger:       logger,
		clock:        clk,
		jwt:          auth.NewJWTManager("test-secret", time.Hour),
		loginLimiter: loginThrottle,
		limiter:      limiter,
		verifier:     f.verifier,
		notifier:     f.notifier,
		hub:          NewConnectionHub(),
		metrics:      metrics.New(false, logger),
		cache:        contentcache.New(time.Minute, logger),
		users:        f.users,
		messages:     f.messages,
		testimonials: f.testimonials,
		resumes:      f.resumes,
		contact:      f.contact,
		objects:      f.objects,
		content: contentStores{
			projects:   f.projects,
			skills:     &memContent[data.Skill]{},
			experience: &memContent[data.Experience]{},
			education:  &memContent[data.Education]{},
			hobbies:    &memContent[data.Hobby]{},
		},
	}
	return f
}

func (f *fixture) token(t *testing.T, role string) string {
	t.Helper()
	token, _, err := f.app.jwt.GenerateToken(f.admin.ID, f.admin.Email, role)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return token
}
