package main

import (
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/go-chi/chi/v5"

	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/data"
)

const adminListLimit = 500

// storedObject is implemented by content entries that reference a file in
// object storage.
type storedObject interface {
	StoredObject() string
}

// contentAdminRoutes mounts the CRUD endpoints of one content section.
// Every write drops the section from the public cache.
func contentAdminRoutes[T any](app *application, section string, store contentStore[T]) func(chi.Router) {
	logger := app.logger.Session("admin-content", lager.Data{"section": section})

	return func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			items, err := store.List(r.Context())
			if err != nil {
				app.handleError(w, r, err)
				return
			}
			if items == nil {
				items = []T{}
			}
			writeJSON(w, http.StatusOK, items)
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			item := new(T)
			if err := decodeJSON(w, r, item); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if err := store.Create(r.Context(), item); err != nil {
				app.handleError(w, r, err)
				return
			}
			app.cache.Invalidate(section)
			logger.Info("created")
			writeJSON(w, http.StatusCreated, item)
		})

		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := data.ParseID(chi.URLParam(r, "id"))
			if err != nil {
				app.handleError(w, r, err)
				return
			}
			item, err := store.Get(r.Context(), id)
			if err != nil {
				app.handleError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, item)
		})

		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := data.ParseID(chi.URLParam(r, "id"))
			if err != nil {
				app.handleError(w, r, err)
				return
			}
			item := new(T)
			if err := decodeJSON(w, r, item); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if err := store.Update(r.Context(), id, item); err != nil {
				app.handleError(w, r, err)
				return
			}
			app.cache.Invalidate(section)
			updated, err := store.Get(r.Context(), id)
			if err != nil {
				app.handleError(w, r, err)
				return
			}
			logger.Info("updated", lager.Data{"id": id.Hex()})
			writeJSON(w, http.StatusOK, updated)
		})

		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := data.ParseID(chi.URLParam(r, "id"))
			if err != nil {
				app.handleError(w, r, err)
				return
			}
			deleted, err := store.Delete(r.Context(), id)
			if err != nil {
				app.handleError(w, r, err)
				return
			}
			app.cache.Invalidate(section)
			if so, ok := any(deleted).(storedObject); ok && so.StoredObject() != "" {
				if err := app.objects.Delete(r.Context(), so.StoredObject()); err != nil {
					logger.Error("delete-object-failed", err, lager.Data{"key": so.StoredObject()})
				}
			}
			logger.Info("deleted", lager.Data{"id": id.Hex()})
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func (app *application) adminListMessages(w http.ResponseWriter, r *http.Request) {
	limit := int64(adminListLimit)
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && v > 0 && v < limit {
		limit = v
	}
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
	msgs, err := app.messages.ListMessages(r.Context(), limit, unreadOnly)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if msgs == nil {
		msgs = []*data.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (app *application) adminUnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := app.messages.CountUnread(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"unread": n})
}

func (app *application) adminMarkMessage(w http.ResponseWriter, r *http.Request) {
	id, err := data.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	var in struct {
		Read *bool `json:"read"`
	}
	if err := decodeJSON(w, r, &in); err != nil || in.Read == nil {
		writeError(w, http.StatusBadRequest, "read is required")
		return
	}
	if err := app.messages.MarkRead(r.Context(), id, *in.Read); err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (app *application) adminDeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := data.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if err := app.messages.DeleteMessage(r.Context(), id); err != nil {
		app.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) adminListTestimonials(w http.ResponseWriter, r *http.Request) {
	list, err := app.testimonials.ListAll(r.Context(), adminListLimit)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if list == nil {
		list = []*data.Testimonial{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (app *application) adminSetApproval(w http.ResponseWriter, r *http.Request) {
	id, err := data.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	var in struct {
		Approved *bool `json:"approved"`
	}
	if err := decodeJSON(w, r, &in); err != nil || in.Approved == nil {
		writeError(w, http.StatusBadRequest, "approved is required")
		return
	}
	t, err := app.testimonials.SetApproval(r.Context(), id, *in.Approved)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		notifyApproval(app.hub, claims.Email, t, app.clock.Now(), app.logger)
	}
	writeJSON(w, http.StatusOK, t)
}

func (app *application) adminDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := data.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if err := app.testimonials.DeleteTestimonial(r.Context(), id); err != nil {
		app.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) adminPutContactInfo(w http.ResponseWriter, r *http.Request) {
	var in data.ContactInfo
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	info, err := app.contact.Upsert(r.Context(), &in)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.cache.Invalidate("contact-info")
	writeJSON(w, http.StatusOK, info)
}
