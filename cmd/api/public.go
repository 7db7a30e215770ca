package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/PaulBabatuyi/portfolio/internal/adminrpc"
	"github.com/PaulBabatuyi/portfolio/internal/contentcache"
	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/ratelimit"
)

const publicTestimonialsLimit = 50

// listContent serves a public content section from the cache.
func listContent[T any](app *application, section string, store contentStore[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := contentcache.Get(r.Context(), app.cache, section, store.List)
		if err != nil {
			app.handleError(w, r, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

type messageInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken"`
}

type testimonialInput struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Company        string `json:"company"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
	TurnstileToken string `json:"turnstileToken"`
}

// verifyCaptcha writes the rejection itself and reports whether the
// request may continue.
func (app *application) verifyCaptcha(w http.ResponseWriter, r *http.Request, token, client string) bool {
	ok, err := app.verifier.Verify(r.Context(), token, client)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "captcha verification unavailable")
		return false
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "captcha verification failed")
		return false
	}
	return true
}

func (app *application) submitMessage(w http.ResponseWriter, r *http.Request) {
	logger := app.logger.Session("submit-message")

	var in messageInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client := ratelimit.ClientIdentifier(r)
	if !app.verifyCaptcha(w, r, in.TurnstileToken, client) {
		return
	}

	res := app.limiter.CheckRateLimit(ratelimit.Key("messages", client))
	app.metrics.ObserveDecision("short", res.Allowed)
	if !res.Allowed {
		logger.Info("rate-limited", lager.Data{"client": client, "retry-after": res.RetryAfterSeconds})
		writeRateLimited(w, res)
		return
	}

	msg, err := data.NewMessage(in.Name, in.Email, in.Subject, in.Message, client)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	saved, err := app.messages.SaveMessage(r.Context(), msg)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	app.metrics.ObserveSubmission("message")
	app.notifier.NotifyNewMessage(saved)
	app.hub.Broadcast(adminrpc.MessageEvent(saved))
	logger.Info("saved", lager.Data{"id": saved.ID.Hex()})

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": saved.ID})
}

func (app *application) submitTestimonial(w http.ResponseWriter, r *http.Request) {
	logger := app.logger.Session("submit-testimonial")

	var in testimonialInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client := ratelimit.ClientIdentifier(r)
	if !app.verifyCaptcha(w, r, in.TurnstileToken, client) {
		return
	}

	res := app.limiter.CheckDailyRateLimit(ratelimit.Key("testimonials", client), ratelimit.DefaultMaxPerDay)
	app.metrics.ObserveDecision("daily", res.Allowed)
	if !res.Allowed {
		logger.Info("rate-limited", lager.Data{"client": client, "retry-after": res.RetryAfterSeconds})
		writeRateLimited(w, res)
		return
	}

	t, err := data.NewTestimonial(in.Name, in.Role, in.Company, in.Content, in.Rating, client)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	saved, err := app.testimonials.SaveTestimonial(r.Context(), t)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	app.metrics.ObserveSubmission("testimonial")
	app.notifier.NotifyNewTestimonial(saved)
	app.hub.Broadcast(adminrpc.TestimonialEvent(saved))
	logger.Info("saved", lager.Data{"id": saved.ID.Hex()})

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": saved.ID})
}

func (app *application) listApprovedTestimonials(w http.ResponseWriter, r *http.Request) {
	list, err := app.testimonials.ListApproved(r.Context(), publicTestimonialsLimit)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if list == nil {
		list = []*data.Testimonial{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (app *application) getContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := contentcache.Get(r.Context(), app.cache, "contact-info", func(ctx context.Context) (*data.ContactInfo, error) {
		info, err := app.contact.Get(ctx)
		if errors.Is(err, data.ErrNotFound) {
			return &data.ContactInfo{}, nil
		}
		return info, err
	})
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// getActiveResume redirects to the active resume for ?lang (default en).
func (app *application) getActiveResume(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = "en"
	}
	if !data.ResumeLanguages[lang] {
		writeError(w, http.StatusBadRequest, "unsupported language")
		return
	}

	resume, err := app.resumes.Active(r.Context(), lang)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	if r.URL.Query().Get("download") == "1" {
		link, err := app.objects.PresignGet(r.Context(), resume.FileKey, 10*time.Minute)
		if err != nil {
			app.handleError(w, r, err)
			return
		}
		http.Redirect(w, r, link, http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}
