// Package form turns admin form submissions into column values of a schema.
package form

import (
	"errors"
	"fmt"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrTooLarge               = errors.New("request body too large")
	ErrMalformed              = errors.New("malformed request body")
)

type FieldError struct {
	Field string
	Tag   string
	Param string
}

type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = response.FieldMessage(fe.Field, fe.Tag, fe.Param)
	}
	return strings.Join(msgs, ", ")
}

type Values struct {
	Record model.Record
	Files  map[string]*multipart.FileHeader

	upload *multipart.Form
}

// Close removes the temporary files a multipart upload spilled to disk.
// Forms parsed on a request copy are not cleaned up by net/http.
func (v *Values) Close() error {
	if v == nil || v.upload == nil {
		return nil
	}
	return v.upload.RemoveAll()
}

type Decoder struct {
	validate  *validator.Validate
	maxMemory int64
}

func NewDecoder(maxMemory int64) *Decoder {
	return &Decoder{
		validate:  validator.New(),
		maxMemory: maxMemory,
	}
}

// Decode reads the request body as multipart, urlencoded or JSON and
// converts every schema column found in it. With partial set, required
// columns are only checked when present.
func (d *Decoder) Decode(r *http.Request, schema *catalog.Schema, partial bool) (*Values, error) {
	const op = "http-server.form.Decode"

	raw, files, err := d.read(r)
	if err != nil {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	values := &Values{
		Record: model.Record{},
		Files:  map[string]*multipart.FileHeader{},
		upload: r.MultipartForm,
	}

	var errs Errors
	for _, col := range schema.Columns {
		if col.Kind == catalog.File {
			if fh, ok := files[col.Name]; ok {
				values.Files[col.Name] = fh
				continue
			}
		}

		v, present := raw[col.Name]
		if !present {
			if col.Required && !partial {
				errs = append(errs, FieldError{Field: col.Name, Tag: "required"})
			}
			continue
		}

		value, err := convert(col, v)
		if err != nil {
			errs = append(errs, FieldError{Field: col.Name, Tag: col.Kind.String()})
			continue
		}

		if fes := d.check(col, value); len(fes) > 0 {
			errs = append(errs, fes...)
			continue
		}

		values.Record[col.Name] = value
	}

	if len(errs) > 0 {
		_ = values.Close()
		return nil, errs
	}

	return values, nil
}

func (d *Decoder) read(r *http.Request) (map[string]any, map[string]*multipart.FileHeader, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType := ""
	if contentType != "" {
		var err error
		if mediaType, _, err = mime.ParseMediaType(contentType); err != nil {
			return nil, nil, ErrUnsupportedContentType
		}
	}

	raw := map[string]any{}
	files := map[string]*multipart.FileHeader{}

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(d.maxMemory); err != nil {
			return nil, nil, bodyError(err)
		}
		for k, vs := range r.MultipartForm.Value {
			if len(vs) > 0 {
				raw[k] = vs[0]
			}
		}
		for k, fhs := range r.MultipartForm.File {
			if len(fhs) > 0 {
				files[k] = fhs[0]
			}
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, nil, bodyError(err)
		}
		for k := range r.PostForm {
			raw[k] = r.PostForm.Get(k)
		}
	case "application/json", "":
		if err := render.DecodeJSON(r.Body, &raw); err != nil {
			return nil, nil, bodyError(err)
		}
	default:
		return nil, nil, ErrUnsupportedContentType
	}

	return raw, files, nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrTooLarge
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}

func (d *Decoder) check(col catalog.Column, value any) Errors {
	if value == nil {
		if col.Required {
			return Errors{{Field: col.Name, Tag: "required"}}
		}
		return nil
	}

	var tags []string
	if col.Required {
		tags = append(tags, "required")
	}
	if col.Rules != "" {
		if !col.Required {
			tags = append(tags, "omitempty")
		}
		tags = append(tags, col.Rules)
	}
	if len(tags) == 0 {
		return nil
	}

	err := d.validate.Var(value, strings.Join(tags, ","))
	if err == nil {
		return nil
	}

	var validateErr validator.ValidationErrors
	if !errors.As(err, &validateErr) {
		return Errors{{Field: col.Name}}
	}

	errs := make(Errors, 0, len(validateErr))
	for _, fe := range validateErr {
		errs = append(errs, FieldError{Field: col.Name, Tag: fe.ActualTag(), Param: fe.Param()})
	}
	return errs
}

// convert maps a raw form or JSON value onto the column kind. Empty values
// of non-text columns become NULL.
func convert(col catalog.Column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch col.Kind {
	case catalog.Text:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("not a string")
		}
		return strings.TrimSpace(s), nil
	case catalog.File:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("not a string")
		}
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		return s, nil
	case catalog.Bool:
		return parseBool(v)
	case catalog.Int:
		return parseInt(v)
	case catalog.Date:
		return parseDate(v)
	default:
		return nil, fmt.Errorf("unknown kind %s", col.Kind)
	}
}

func parseBool(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case float64:
		return t != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "on", "yes":
			return true, nil
		case "false", "0", "off", "no", "":
			return false, nil
		}
	}
	return nil, fmt.Errorf("not a boolean: %v", v)
}

func parseInt(v any) (any, error) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return nil, fmt.Errorf("not an integer: %v", t)
		}
		return int64(t), nil
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, fmt.Errorf("not an integer: %v", v)
}

func parseDate(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("not a date: %v", v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
