// Package content holds the pieces shared by the resource handlers: stored
// file bookkeeping, id list bodies and the mapping of request errors to
// responses.
package content

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/form"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/media"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type FileSaver interface {
	Save(ctx context.Context, resource string, fh *multipart.FileHeader, accept []string) (string, error)
}

type FileRemover interface {
	Remove(url string) error
}

type FileStore interface {
	FileSaver
	FileRemover
}

// FileError reports which column an upload was rejected for.
type FileError struct {
	Field string
	Err   error
}

func (e *FileError) Error() string {
	return "field " + e.Field + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// SaveFiles stores the uploaded files and sets their URLs on the record.
// On failure the files already stored by this call are removed again.
func SaveFiles(ctx context.Context, log *slog.Logger, store FileStore, schema *catalog.Schema, values *form.Values) ([]string, error) {
	var saved []string
	for _, name := range schema.FileColumns() {
		fh, ok := values.Files[name]
		if !ok {
			continue
		}

		col, _ := schema.Column(name)
		url, err := store.Save(ctx, schema.Name, fh, col.Accept)
		if err != nil {
			RemoveFiles(log, store, saved...)
			return nil, &FileError{Field: name, Err: err}
		}

		values.Record[name] = url
		saved = append(saved, url)
	}
	return saved, nil
}

// RemoveFiles deletes stored files. Failures are logged and otherwise
// ignored, the record change they belong to has already happened.
func RemoveFiles(log *slog.Logger, store FileRemover, urls ...string) {
	for _, url := range urls {
		if err := store.Remove(url); err != nil {
			log.Warn("failed to remove file", slog.String("url", url), sl.Err(err))
		}
	}
}

// Files returns the file URLs referenced by the record.
func Files(schema *catalog.Schema, records ...model.Record) []string {
	var urls []string
	for _, rec := range records {
		for _, name := range schema.FileColumns() {
			if url := rec.String(name); url != "" {
				urls = append(urls, url)
			}
		}
	}
	return urls
}

// ReplacedFiles returns the file URLs of prev that cur no longer references.
func ReplacedFiles(schema *catalog.Schema, prev, cur model.Record) []string {
	var urls []string
	for _, name := range schema.FileColumns() {
		old := prev.String(name)
		if old != "" && old != cur.String(name) {
			urls = append(urls, old)
		}
	}
	return urls
}

// DecodeError renders the response for a failed form decode or upload.
func DecodeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		fieldErrs form.Errors
		fileErr   *FileError
	)

	switch {
	case errors.As(err, &fieldErrs):
		log.Info("invalid request", slog.String("reason", fieldErrs.Error()))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(fieldErrs.Error()))
	case errors.Is(err, form.ErrUnsupportedContentType):
		log.Info("unsupported content type", slog.String("content_type", r.Header.Get("Content-Type")))
		render.Status(r, http.StatusUnsupportedMediaType)
		render.JSON(w, r, response.Error(form.ErrUnsupportedContentType.Error()))
	case errors.Is(err, form.ErrTooLarge):
		log.Info("request body too large")
		render.Status(r, http.StatusRequestEntityTooLarge)
		render.JSON(w, r, response.Error(response.ErrTooLarge.Error()))
	case errors.Is(err, form.ErrMalformed):
		log.Info("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(form.ErrMalformed.Error()))
	case errors.As(err, &fileErr):
		status, msg := fileStatus(fileErr)
		if status == http.StatusInternalServerError {
			log.Error("failed to store file", sl.Err(err))
		} else {
			log.Info("file rejected", sl.Err(err))
		}
		render.Status(r, status)
		render.JSON(w, r, response.Error(msg))
	default:
		log.Error("internal error", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
	}
}

func fileStatus(err *FileError) (int, string) {
	for _, e := range []struct {
		sentinel error
		status   int
	}{
		{media.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{media.ErrUnsupportedFormat, http.StatusUnsupportedMediaType},
		{media.ErrEmptyFile, http.StatusBadRequest},
	} {
		if errors.Is(err, e.sentinel) {
			return e.status, "field " + err.Field + ": " + e.sentinel.Error()
		}
	}
	return http.StatusInternalServerError, response.ErrServerInternal.Error()
}

type IDsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,unique,dive,gt=0"`
}

// NewValidate returns a validator that reports fields by their JSON names.
func NewValidate() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// DecodeIDs reads and validates an {"ids": [...]} body. It renders the error
// response itself and reports whether the handler may go on.
func DecodeIDs(w http.ResponseWriter, r *http.Request, log *slog.Logger, validate *validator.Validate) ([]int64, bool) {
	var req IDsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Info("request body too large")
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error(response.ErrTooLarge.Error()))
			return nil, false
		}
		log.Info("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(form.ErrMalformed.Error()))
		return nil, false
	}

	if err := validate.Struct(req); err != nil {
		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			log.Error("failed to validate request", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return nil, false
		}
		log.Info("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErr))
		return nil, false
	}

	return req.IDs, true
}
