package main

import (
	"context"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/captcha"
	"github.com/PaulBabatuyi/portfolio/internal/contentcache"
	"github.com/PaulBabatuyi/portfolio/internal/metrics"
	"github.com/PaulBabatuyi/portfolio/internal/middleware"
)

// application carries the dependencies of the HTTP handlers.
type application struct {
	logger       lager.Logger
	clock        clock.Clock
	jwt          *auth.JWTManager
	cookieSecure bool
	loginLimiter *middleware.LimiterStore
	limiter      submissionLimiter
	verifier     captcha.Verifier
	notifier     notifier
	hub          *ConnectionHub
	metrics      *metrics.Metrics
	cache        *contentcache.Cache
	ping         func(context.Context) error

	users        userStore
	messages     messageStore
	testimonials testimonialStore
	resumes      resumeStore
	contact      contactStore
	objects      objectStore
	content      contentStores
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(app.metrics.Middleware)

	r.Get("/metrics", app.metrics.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.health)

		r.Get("/projects", listContent(app, "projects", app.content.projects))
		r.Get("/skills", listContent(app, "skills", app.content.skills))
		r.Get("/experience", listContent(app, "experience", app.content.experience))
		r.Get("/education", listContent(app, "education", app.content.education))
		r.Get("/hobbies", listContent(app, "hobbies", app.content.hobbies))
		r.Get("/testimonials", app.listApprovedTestimonials)
		r.Post("/testimonials", app.submitTestimonial)
		r.Post("/messages", app.submitMessage)
		r.Get("/contact-info", app.getContactInfo)
		r.Get("/resume", app.getActiveResume)

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimitHTTP(app.loginLimiter, "login")).Post("/login", app.login)
			r.Post("/logout", app.logout)
			r.With(auth.RequireAdmin(app.jwt, app.logger)).Get("/me", app.me)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin(app.jwt, app.logger))

			r.Route("/projects", contentAdminRoutes(app, "projects", app.content.projects))
			r.Route("/skills", contentAdminRoutes(app, "skills", app.content.skills))
			r.Route("/experience", contentAdminRoutes(app, "experience", app.content.experience))
			r.Route("/education", contentAdminRoutes(app, "education", app.content.education))
			r.Route("/hobbies", contentAdminRoutes(app, "hobbies", app.content.hobbies))

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", app.adminListMessages)
				r.Get("/unread", app.adminUnreadCount)
				r.Patch("/{id}", app.adminMarkMessage)
				r.Delete("/{id}", app.adminDeleteMessage)
			})
			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", app.adminListTestimonials)
				r.Patch("/{id}", app.adminSetApproval)
				r.Delete("/{id}", app.adminDeleteTestimonial)
			})
			r.Put("/contact-info", app.adminPutContactInfo)

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/", app.adminUpload)
				r.Delete("/", app.adminDeleteUpload)
				r.Get("/presign", app.adminPresign)
			})
			r.Route("/resumes", func(r chi.Router) {
				r.Get("/", app.adminListResumes)
				r.Post("/", app.adminUploadResume)
				r.Patch("/{id}/activate", app.adminActivateResume)
				r.Delete("/{id}", app.adminDeleteResume)
			})
		})
	})

	return r
}

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if app.ping != nil {
		if err := app.ping(ctx); err != nil {
			app.logger.Error("health-check-failed", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
