package validator

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type captured struct {
	schema *catalog.Schema
	id     int64
	list   model.ListQuery
}

func newRouter(got *captured) http.Handler {
	router := chi.NewRouter()
	router.Route("/api/{resource}", func(r chi.Router) {
		r.Use(Resource(discard, catalog.Default()))

		r.With(List(discard, Pagination{DefaultLimit: 10, MaxLimit: 50})).Get("/", func(w http.ResponseWriter, r *http.Request) {
			got.schema, _ = r.Context().Value(ResourceKey).(*catalog.Schema)
			got.list, _ = r.Context().Value(ListKey).(model.ListQuery)
		})
		r.With(RecordID(discard)).Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			got.schema, _ = r.Context().Value(ResourceKey).(*catalog.Schema)
			got.id, _ = r.Context().Value(RecordIDKey).(int64)
		})
	})
	return router
}

func serve(t *testing.T, target string) (*httptest.ResponseRecorder, *captured) {
	t.Helper()

	got := &captured{}
	rec := httptest.NewRecorder()
	newRouter(got).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec, got
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusError, resp.Status)
	return resp.Error
}

func TestResourceUnknown(t *testing.T) {
	rec, got := serve(t, "/api/users/")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `unknown resource "users"`, decodeError(t, rec))
	assert.Nil(t, got.schema)
}

func TestRecordID(t *testing.T) {
	rec, got := serve(t, "/api/blogs/17")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.schema)
	assert.Equal(t, "blogs", got.schema.Name)
	assert.Equal(t, int64(17), got.id)

	for _, bad := range []string{"abc", "0", "-3"} {
		rec, got = serve(t, "/api/blogs/"+bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
		assert.Zero(t, got.id)
	}
}

func TestListDefaults(t *testing.T) {
	_, got := serve(t, "/api/faqs/")
	assert.Equal(t, model.ListQuery{Page: 1, Limit: 10, Sort: "sort_order"}, got.list)

	_, got = serve(t, "/api/blogs/")
	assert.Equal(t, model.ListQuery{Page: 1, Limit: 10, Sort: "created_at", Desc: true}, got.list)
}

func TestListParams(t *testing.T) {
	_, got := serve(t, "/api/blogs/?search=+iso+&page=3&limit=50&sort=title&order=asc&active=false")

	active := false
	assert.Equal(t, model.ListQuery{
		Search: "iso",
		Page:   3,
		Limit:  50,
		Sort:   "title",
		Active: &active,
	}, got.list)

	_, got = serve(t, "/api/blogs/?sort=published_at")
	assert.Equal(t, "published_at", got.list.Sort)
	assert.True(t, got.list.Desc)
}

func TestListActiveIgnoredWithoutColumn(t *testing.T) {
	_, got := serve(t, "/api/applications/?active=yes-please")
	assert.Nil(t, got.list.Active)
}

func TestListBadParams(t *testing.T) {
	cases := map[string]string{
		"/api/blogs/?page=0":        "page must be a positive integer",
		"/api/blogs/?limit=many":    "limit must be a positive integer",
		"/api/blogs/?limit=51":      "limit must be at most 50",
		"/api/blogs/?sort=password": `cannot sort by "password"`,
		"/api/blogs/?sort=content":  `cannot sort by "content"`,
		"/api/blogs/?order=up":      "order must be asc or desc",
		"/api/blogs/?active=maybe":  "active must be true or false",
	}

	for target, msg := range cases {
		rec, _ := serve(t, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, msg, decodeError(t, rec), target)
	}
}
