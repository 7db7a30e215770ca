package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"

	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/ratelimit"
	"github.com/PaulBabatuyi/portfolio/internal/storage"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error             string            `json:"error"`
	Fields            map[string]string `json:"fields,omitempty"`
	RetryAfterSeconds int               `json:"retryAfterSeconds,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

// writeRateLimited answers a rejected submission with 429 and a
// Retry-After hint.
func writeRateLimited(w http.ResponseWriter, res ratelimit.Result) {
	retry := res.RetryAfterSeconds
	if retry <= 0 {
		retry = 60
	}
	w.Header().Set("Retry-After", strconv.Itoa(retry))
	writeJSON(w, http.StatusTooManyRequests, errorResponse{
		Error:             "Too many requests. Please try again later.",
		RetryAfterSeconds: retry,
	})
}

// handleError maps store and storage errors to HTTP responses.
func (app *application) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *data.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, data.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid id")
	case errors.Is(err, data.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, data.ErrDuplicate):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, storage.ErrInvalidFile):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		app.logger.Error("request-failed", err, lager.Data{"method": r.Method, "path": r.URL.Path})
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
