package main

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/go-chi/chi/v5"

	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/storage"
)

const (
	maxMultipartMemory = 1 << 20
	presignTTL         = 15 * time.Minute
)

// parseUpload reads a size-capped multipart body.
func parseUpload(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxDocumentSize+maxMultipartMemory)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidFile, err)
	}
	return nil
}

// openUpload opens the "file" part, sniffs its real content type and
// validates it against kind.
func openUpload(r *http.Request, kind storage.Kind) (multipart.File, *multipart.FileHeader, string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: missing file", storage.ErrInvalidFile)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		file.Close()
		return nil, nil, "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, nil, "", err
	}
	contentType := http.DetectContentType(head[:n])

	if err := storage.ValidateFile(kind, contentType, header.Size); err != nil {
		file.Close()
		return nil, nil, "", err
	}
	return file, header, contentType, nil
}

func (app *application) adminUpload(w http.ResponseWriter, r *http.Request) {
	if err := parseUpload(w, r); err != nil {
		app.handleError(w, r, err)
		return
	}
	kind, err := storage.ParseKind(r.FormValue("kind"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	file, header, contentType, err := openUpload(r, kind)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	defer file.Close()

	obj, err := app.objects.Upload(r.Context(), kind.Folder(), header.Filename, contentType, header.Size, file)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, obj)
}

func (app *application) adminDeleteUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}
	if err := app.objects.Delete(r.Context(), key); err != nil {
		app.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) adminPresign(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}
	link, err := app.objects.PresignGet(r.Context(), key, presignTTL)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"url": link, "expiresAt": app.clock.Now().Add(presignTTL)})
}

func (app *application) adminListResumes(w http.ResponseWriter, r *http.Request) {
	list, err := app.resumes.List(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if list == nil {
		list = []*data.Resume{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (app *application) adminUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := parseUpload(w, r); err != nil {
		app.handleError(w, r, err)
		return
	}
	lang := r.FormValue("language")
	if !data.ResumeLanguages[lang] {
		writeError(w, http.StatusBadRequest, "language must be en or fr")
		return
	}
	file, header, contentType, err := openUpload(r, storage.KindDocument)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	defer file.Close()

	obj, err := app.objects.Upload(r.Context(), "resumes", header.Filename, contentType, header.Size, file)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	resume, err := app.resumes.Create(r.Context(), &data.Resume{
		Language: lang,
		FileName: header.Filename,
		FileKey:  obj.Key,
		URL:      obj.URL,
		Size:     obj.Size,
	})
	if err != nil {
		if derr := app.objects.Delete(r.Context(), obj.Key); derr != nil {
			app.logger.Error("orphaned-resume-object", derr, lager.Data{"key": obj.Key})
		}
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resume)
}

func (app *application) adminActivateResume(w http.ResponseWriter, r *http.Request) {
	id, err := data.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	resume, err := app.resumes.Activate(r.Context(), id)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

func (app *application) adminDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := data.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	resume, err := app.resumes.Delete(r.Context(), id)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if err := app.objects.Delete(r.Context(), resume.FileKey); err != nil {
		app.logger.Error("delete-resume-object-failed", err, lager.Data{"key": resume.FileKey})
	}
	w.WriteHeader(http.StatusNoContent)
}
