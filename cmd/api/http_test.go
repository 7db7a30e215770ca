package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/ratelimit"
	v1 "github.com/PaulBabatuyi/portfolio/proto/portfolio/admin/v1"
)

const validMessage = `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello, I would like to talk.","turnstileToken":"tok"}`

func doRequest(h http.Handler, method, path, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, m := range mutate {
		m(req)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func fromIP(ip string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("X-Forwarded-For", ip) }
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
}

func TestSubmitMessage(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()

	events := &fakeSender{}
	f.app.hub.Register(adminEmail, events)

	rr := doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.5"))
	g.Expect(rr.Code).To(Equal(http.StatusCreated), rr.Body.String())

	g.Expect(f.messages.count()).To(Equal(1))
	g.Expect(f.messages.msgs[0].ClientIP).To(Equal("203.0.113.5"))
	g.Expect(f.notifier.messages).To(Equal(1))
	g.Expect(events.last).NotTo(BeNil())
	g.Expect(events.last.GetMessage().GetName()).To(Equal("Ada"))
	g.Expect(f.verifier.tokens).To(Equal([]string{"tok"}))
}

func TestSubmitMessageRateLimited(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()

	for i := 0; i < ratelimit.ShortWindowMax; i++ {
		rr := doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.5"))
		g.Expect(rr.Code).To(Equal(http.StatusCreated))
		f.clock.Increment(time.Minute)
	}

	rr := doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.5"))
	g.Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	// the oldest accepted request was 3 minutes ago
	g.Expect(rr.Header().Get("Retry-After")).To(Equal("720"))

	var body errorResponse
	decodeBody(t, rr, &body)
	g.Expect(body.RetryAfterSeconds).To(Equal(720))
	g.Expect(body.Error).NotTo(BeEmpty())
	g.Expect(f.messages.count()).To(Equal(ratelimit.ShortWindowMax))

	// other clients are unaffected
	rr = doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.6"))
	g.Expect(rr.Code).To(Equal(http.StatusCreated))

	// the window slides
	f.clock.Increment(12 * time.Minute)
	rr = doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.5"))
	g.Expect(rr.Code).To(Equal(http.StatusCreated))
}

func TestSubmitMessageCaptchaRunsBeforeLimiter(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()
	f.verifier.ok = false

	for i := 0; i < 5; i++ {
		rr := doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.5"))
		g.Expect(rr.Code).To(Equal(http.StatusBadRequest))
	}
	g.Expect(f.app.limiter.(*ratelimit.Limiter).Short().Len()).To(Equal(0))

	f.verifier.ok, f.verifier.err = false, errors.New("cloudflare down")
	rr := doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.5"))
	g.Expect(rr.Code).To(Equal(http.StatusServiceUnavailable))
}

func TestSubmitMessageValidation(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()

	rr := doRequest(h, http.MethodPost, "/api/messages", `{"name":"","email":"nope","message":"short"}`)
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))

	var body errorResponse
	decodeBody(t, rr, &body)
	g.Expect(body.Fields).To(HaveKey("name"))
	g.Expect(body.Fields).To(HaveKey("email"))
	g.Expect(body.Fields).To(HaveKey("body"))
	g.Expect(f.messages.count()).To(BeZero())

	rr = doRequest(h, http.MethodPost, "/api/messages", `{not json`)
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func TestSubmitTestimonialDailyLimit(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()
	body := `{"name":"Grace","role":"CTO","company":"Navy","content":"A pleasure to work with.","rating":5,"turnstileToken":"tok"}`

	for i := 0; i < ratelimit.DefaultMaxPerDay; i++ {
		rr := doRequest(h, http.MethodPost, "/api/testimonials", body, fromIP("198.51.100.7"))
		g.Expect(rr.Code).To(Equal(http.StatusCreated))
	}
	rr := doRequest(h, http.MethodPost, "/api/testimonials", body, fromIP("198.51.100.7"))
	g.Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	g.Expect(rr.Header().Get("Retry-After")).To(Equal("86400"))

	// the daily store is independent of the short window
	rr = doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("198.51.100.7"))
	g.Expect(rr.Code).To(Equal(http.StatusCreated))

	// new testimonials are pending and hidden from the public list
	rr = doRequest(h, http.MethodGet, "/api/testimonials", "")
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(strings.TrimSpace(rr.Body.String())).To(Equal("[]"))
	g.Expect(f.notifier.testimonials).To(Equal(ratelimit.DefaultMaxPerDay))
}

func TestPublicContentIsCachedUntilAdminWrite(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()
	token := f.token(t, auth.RoleAdmin)

	for i := 0; i < 3; i++ {
		rr := doRequest(h, http.MethodGet, "/api/projects", "")
		g.Expect(rr.Code).To(Equal(http.StatusOK))
		g.Expect(strings.TrimSpace(rr.Body.String())).To(Equal("[]"))
	}
	g.Expect(f.projects.lists).To(Equal(1))

	rr := doRequest(h, http.MethodPost, "/api/admin/projects", `{"title":{"en":"Portfolio","fr":"Portfolio"},"imageKey":"images/p.png"}`, bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusCreated), rr.Body.String())

	rr = doRequest(h, http.MethodGet, "/api/projects", "")
	g.Expect(rr.Body.String()).To(ContainSubstring("Portfolio"))
	g.Expect(f.projects.lists).To(Equal(2))

	rr = doRequest(h, http.MethodPost, "/api/admin/projects", `{}`, bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))

	rr = doRequest(h, http.MethodDelete, "/api/admin/projects/"+f.projects.ids[0].Hex(), "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusNoContent))
	g.Expect(f.objects.deleted).To(Equal([]string{"images/p.png"}))

	rr = doRequest(h, http.MethodDelete, "/api/admin/projects/not-an-id", "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()

	rr := doRequest(h, http.MethodGet, "/api/admin/messages", "")
	g.Expect(rr.Code).To(Equal(http.StatusUnauthorized))

	rr = doRequest(h, http.MethodGet, "/api/admin/messages", "", bearer(f.token(t, "user")))
	g.Expect(rr.Code).To(Equal(http.StatusUnauthorized))

	rr = doRequest(h, http.MethodGet, "/api/admin/messages", "", bearer(f.token(t, auth.RoleAdmin)))
	g.Expect(rr.Code).To(Equal(http.StatusOK))
}

func TestLoginFlow(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()

	rr := doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"Admin@Example.com","password":"`+adminPassword+`"}`)
	g.Expect(rr.Code).To(Equal(http.StatusOK), rr.Body.String())

	var out loginOutput
	decodeBody(t, rr, &out)
	g.Expect(out.Token).NotTo(BeEmpty())
	g.Expect(out.User.Email).To(Equal(adminEmail))
	g.Expect(rr.Body.String()).NotTo(ContainSubstring("$2a$"))

	cookies := rr.Result().Cookies()
	g.Expect(cookies).To(HaveLen(1))
	g.Expect(cookies[0].Name).To(Equal(auth.CookieName))
	g.Expect(cookies[0].HttpOnly).To(BeTrue())

	rr = doRequest(h, http.MethodGet, "/api/auth/me", "", func(r *http.Request) { r.AddCookie(cookies[0]) })
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(rr.Body.String()).To(ContainSubstring(adminEmail))

	rr = doRequest(h, http.MethodPost, "/api/auth/logout", "")
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(rr.Result().Cookies()[0].MaxAge).To(BeNumerically("<", 0))
}

func TestLoginRejectsAndThrottles(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()

	rr := doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"visitor@example.com","password":"visitor password"}`, fromIP("192.0.2.9"))
	g.Expect(rr.Code).To(Equal(http.StatusUnauthorized))

	rr = doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"x"}`, fromIP("192.0.2.9"))
	g.Expect(rr.Code).To(Equal(http.StatusUnauthorized))

	for i := 0; i < 3; i++ {
		rr = doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"wrong"}`, fromIP("192.0.2.9"))
		g.Expect(rr.Code).To(Equal(http.StatusUnauthorized))
	}

	rr = doRequest(h, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"`+adminPassword+`"}`, fromIP("192.0.2.9"))
	g.Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	g.Expect(rr.Header().Get("Retry-After")).NotTo(BeEmpty())
}

func TestAdminMessagesAndTestimonials(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()
	token := f.token(t, auth.RoleAdmin)

	msg, _ := f.messages.SaveMessage(context.Background(), &data.Message{Name: "Ada"})
	rr := doRequest(h, http.MethodGet, "/api/admin/messages/unread", "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(rr.Body.String()).To(MatchJSON(`{"unread":1}`))

	rr = doRequest(h, http.MethodPatch, "/api/admin/messages/"+msg.ID.Hex(), `{"read":true}`, bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(f.messages.msgs[0].Read).To(BeTrue())

	rr = doRequest(h, http.MethodGet, "/api/admin/messages/unread", "", bearer(token))
	g.Expect(rr.Body.String()).To(MatchJSON(`{"unread":0}`))

	rr = doRequest(h, http.MethodGet, "/api/admin/messages?unread=true", "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(rr.Body.String()).NotTo(ContainSubstring("Ada"))

	rr = doRequest(h, http.MethodPatch, "/api/admin/messages/"+msg.ID.Hex(), `{}`, bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))

	rr = doRequest(h, http.MethodDelete, "/api/admin/messages/"+msg.ID.Hex(), "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusNoContent))
	rr = doRequest(h, http.MethodDelete, "/api/admin/messages/"+msg.ID.Hex(), "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusNotFound))

	events := &fakeSender{}
	f.app.hub.Register(adminEmail, events)

	tm, _ := f.testimonials.SaveTestimonial(context.Background(), &data.Testimonial{Name: "Grace", Content: "Great work overall", Rating: 5})
	rr = doRequest(h, http.MethodPatch, "/api/admin/testimonials/"+tm.ID.Hex(), `{"approved":true}`, bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(events.last.GetKind()).To(Equal(v1.EventKind_EVENT_KIND_TESTIMONIAL_UPDATED))
	g.Expect(events.last.GetAt().AsTime()).To(BeTemporally("==", f.clock.Now()))

	rr = doRequest(h, http.MethodGet, "/api/testimonials", "")
	g.Expect(rr.Body.String()).To(ContainSubstring("Grace"))
}

func TestContactInfo(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()
	token := f.token(t, auth.RoleAdmin)

	rr := doRequest(h, http.MethodGet, "/api/contact-info", "")
	g.Expect(rr.Code).To(Equal(http.StatusOK))

	rr = doRequest(h, http.MethodPut, "/api/admin/contact-info", `{"email":"me@example.com","github":"https://github.com/me"}`, bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusOK), rr.Body.String())

	rr = doRequest(h, http.MethodGet, "/api/contact-info", "")
	g.Expect(rr.Body.String()).To(ContainSubstring("me@example.com"))
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return mw.FormDataContentType(), &buf
}

func upload(h http.Handler, path, token, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUploads(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()
	token := f.token(t, auth.RoleAdmin)

	ct, body := multipartBody(t, map[string]string{"kind": "image"}, "photo.png", pngHeader)
	rr := upload(h, "/api/admin/uploads", token, ct, body)
	g.Expect(rr.Code).To(Equal(http.StatusCreated), rr.Body.String())
	g.Expect(f.objects.keys()).To(HaveLen(1))
	g.Expect(f.objects.keys()[0]).To(HavePrefix("images/"))
	g.Expect(f.objects.keys()[0]).To(HaveSuffix(".png"))

	// name says jpg, bytes are png
	ct, body = multipartBody(t, map[string]string{"kind": "image"}, "photo.jpg", pngHeader)
	rr = upload(h, "/api/admin/uploads", token, ct, body)
	g.Expect(rr.Code).To(Equal(http.StatusCreated), rr.Body.String())
	var obj struct {
		Key string `json:"key"`
	}
	decodeBody(t, rr, &obj)
	g.Expect(obj.Key).To(HaveSuffix(".png"))

	// declared name says png, content is plain text
	ct, body = multipartBody(t, map[string]string{"kind": "image"}, "fake.png", []byte("just some text"))
	rr = upload(h, "/api/admin/uploads", token, ct, body)
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))

	rr = doRequest(h, http.MethodGet, "/api/admin/uploads/presign?key=images/x.png", "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	var link struct {
		URL       string    `json:"url"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
	decodeBody(t, rr, &link)
	g.Expect(link.URL).To(ContainSubstring("signed=1"))
	g.Expect(link.ExpiresAt).To(BeTemporally("==", f.clock.Now().Add(presignTTL)))

	rr = doRequest(h, http.MethodDelete, "/api/admin/uploads", "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func TestResumes(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()
	token := f.token(t, auth.RoleAdmin)

	ct, body := multipartBody(t, map[string]string{"language": "en"}, "cv.pdf", []byte("%PDF-1.4\n%test resume"))
	rr := upload(h, "/api/admin/resumes", token, ct, body)
	g.Expect(rr.Code).To(Equal(http.StatusCreated), rr.Body.String())

	var resume data.Resume
	decodeBody(t, rr, &resume)
	g.Expect(resume.FileKey).To(HavePrefix("resumes/"))

	ct, body = multipartBody(t, map[string]string{"language": "de"}, "cv.pdf", []byte("%PDF-1.4\n"))
	rr = upload(h, "/api/admin/resumes", token, ct, body)
	g.Expect(rr.Code).To(Equal(http.StatusBadRequest))

	rr = doRequest(h, http.MethodGet, "/api/resume?lang=en", "")
	g.Expect(rr.Code).To(Equal(http.StatusNotFound))

	rr = doRequest(h, http.MethodPatch, "/api/admin/resumes/"+resume.ID.Hex()+"/activate", "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusOK))

	rr = doRequest(h, http.MethodGet, "/api/resume?lang=en", "")
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	rr = doRequest(h, http.MethodGet, "/api/resume?lang=en&download=1", "")
	g.Expect(rr.Code).To(Equal(http.StatusFound))

	rr = doRequest(h, http.MethodDelete, "/api/admin/resumes/"+resume.ID.Hex(), "", bearer(token))
	g.Expect(rr.Code).To(Equal(http.StatusNoContent))
	g.Expect(f.objects.deleted).To(ContainElement(resume.FileKey))
}

func TestHealthAndMetrics(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(t)
	h := f.app.routes()

	rr := doRequest(h, http.MethodGet, "/api/health", "")
	g.Expect(rr.Code).To(Equal(http.StatusOK))

	doRequest(h, http.MethodPost, "/api/messages", validMessage, fromIP("203.0.113.5"))
	rr = doRequest(h, http.MethodGet, "/metrics", "")
	g.Expect(rr.Code).To(Equal(http.StatusOK))
	g.Expect(rr.Body.String()).To(ContainSubstring(`portfolio_ratelimit_decisions_total{limiter="short",outcome="allowed"} 1`))
	g.Expect(rr.Body.String()).To(ContainSubstring(`portfolio_submissions_total{kind="message"} 1`))
}
