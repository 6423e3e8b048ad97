package validator

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Key string

const (
	ResourceKey = Key("resource schema key")
	RecordIDKey = Key("record id key")
	ListKey     = Key("list request key")
)

type Pagination struct {
	DefaultLimit int64
	MaxLimit     int64
}

// Resource resolves the {resource} URL parameter to its schema.
func Resource(log *slog.Logger, c *catalog.Catalog) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "http-server.middleware.validator.Resource"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("resource validator enabled", slog.Any("resources", c.Names()))

		fn := func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "resource")

			schema, ok := c.Lookup(name)
			if !ok {
				log.Info("unknown resource",
					slog.String("resource", name),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("unknown resource "+strconv.Quote(name)))
				return
			}

			ctx := context.WithValue(r.Context(), ResourceKey, schema)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// RecordID parses the {id} URL parameter. It has to run after routing, so
// mount it with chi's With.
func RecordID(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "http-server.middleware.validator.RecordID"

		log := log.With(
			slog.String("op", op),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			param := chi.URLParam(r, "id")

			id, err := strconv.ParseInt(param, 10, 64)
			if err != nil || id <= 0 {
				log.Info("bad record id",
					slog.String("id", param),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid id "+strconv.Quote(param)))
				return
			}

			ctx := context.WithValue(r.Context(), RecordIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// List parses the search, pagination, sorting and filter query parameters.
// It needs the schema, so it runs after Resource.
func List(log *slog.Logger, p Pagination) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "http-server.middleware.validator.List"

		log := log.With(
			slog.String("op", op),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			schema, ok := r.Context().Value(ResourceKey).(*catalog.Schema)
			if !ok {
				log.Error("resource is not resolved")
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
				return
			}

			req, msg := parseList(r, schema, p)
			if msg != "" {
				log.Info("bad list request",
					slog.String("reason", msg),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msg))
				return
			}

			ctx := context.WithValue(r.Context(), ListKey, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func parseList(r *http.Request, schema *catalog.Schema, p Pagination) (model.ListQuery, string) {
	query := r.URL.Query()

	req := model.ListQuery{
		Search: strings.TrimSpace(query.Get("search")),
		Page:   1,
		Limit:  p.DefaultLimit,
	}

	for _, param := range []string{"page", "limit"} {
		if !query.Has(param) {
			continue
		}
		num, err := strconv.ParseInt(query.Get(param), 10, 64)
		if err != nil || num < 1 {
			return req, param + " must be a positive integer"
		}
		if param == "page" {
			req.Page = num
			continue
		}
		if num > p.MaxLimit {
			return req, "limit must be at most " + strconv.FormatInt(p.MaxLimit, 10)
		}
		req.Limit = num
	}

	req.Sort, req.Desc = schema.DefaultSort()
	if query.Has("sort") {
		sort := query.Get("sort")
		if !schema.Sortable(sort) {
			return req, "cannot sort by " + strconv.Quote(sort)
		}
		req.Sort = sort
		req.Desc = sort != catalog.ColumnSortOrder && sort != catalog.ColumnID
	}

	switch strings.ToLower(query.Get("order")) {
	case "":
	case "asc":
		req.Desc = false
	case "desc":
		req.Desc = true
	default:
		return req, "order must be asc or desc"
	}

	if query.Has("active") && schema.HasActive() {
		active, err := strconv.ParseBool(query.Get("active"))
		if err != nil {
			return req, "active must be true or false"
		}
		req.Active = &active
	}

	return req, ""
}
