package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/auth"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/repository/pgsql"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/form"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/metrics"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/media"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var faqRowColumns = []string{"id", "question", "answer", "is_active", "sort_order", "created_at", "updated_at"}

type testServer struct {
	handler http.Handler
	db      sqlmock.Sqlmock
	store   *media.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := media.New(t.TempDir(), "/uploads", 1<<20)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	authorizer, err := auth.New("admin", string(hash), "0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()

	handler := New(log, Config{
		Pagination:     validator.Pagination{DefaultLimit: 10, MaxLimit: 100},
		MaxBodySize:    2 << 20,
		AllowedOrigins: []string{"https://admin.example.com"},
		Requests:       1000,
		LoginRequests:  1000,
		Window:         time.Minute,
	}, Deps{
		Catalog:    catalog.Default(),
		Repository: pgsql.NewContentRepository(sqlx.NewDb(db, "postgres")),
		Media:      store,
		MediaURL:   "/uploads",
		Decoder:    form.NewDecoder(1 << 20),
		Authorizer: authorizer,
		Metrics:    metrics.New(reg),
		Gatherer:   reg,
	})

	return &testServer{handler: handler, db: sqlMock, store: store}
}

func (s *testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicReads(t *testing.T) {
	s := newTestServer(t)
	now := time.Now().UTC()

	s.db.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM faqs")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	s.db.ExpectQuery(regexp.QuoteMeta("FROM faqs ORDER BY sort_order ASC, id ASC LIMIT $1 OFFSET $2")).
		WithArgs(int64(10), int64(0)).
		WillReturnRows(sqlmock.NewRows(faqRowColumns).AddRow(int64(1), "Q", "A", true, int64(1), now, now))

	rec := s.do(http.MethodGet, "/api/faqs/", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total_items":1`)

	s.db.ExpectQuery(regexp.QuoteMeta("FROM faqs WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(faqRowColumns).AddRow(int64(1), "Q", "A", true, int64(1), now, now))

	rec = s.do(http.MethodGet, "/api/faqs/1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestRouting(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		method   string
		target   string
		wantCode int
	}{
		{http.MethodGet, "/api/users/", http.StatusNotFound},
		{http.MethodGet, "/api/faqs/abc", http.StatusBadRequest},
		{http.MethodGet, "/api/faqs/?sort=password", http.StatusBadRequest},
		{http.MethodPost, "/api/faqs/create", http.StatusUnauthorized},
		{http.MethodPut, "/api/faqs/update/1", http.StatusUnauthorized},
		{http.MethodDelete, "/api/faqs/delete/1", http.StatusUnauthorized},
		{http.MethodDelete, "/api/faqs/1", http.StatusUnauthorized},
		{http.MethodPatch, "/api/faqs/toggle-active/1", http.StatusUnauthorized},
		{http.MethodPost, "/api/faqs/delete-multiple", http.StatusUnauthorized},
		{http.MethodPut, "/api/faqs/reorder", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		rec := s.do(tc.method, tc.target, "", "")
		assert.Equal(t, tc.wantCode, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestAuthenticatedWrites(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)
	now := time.Now().UTC()

	s.db.ExpectQuery(regexp.QuoteMeta("INSERT INTO faqs (answer, question, sort_order)")).
		WithArgs("Yes", "Do you certify abroad?").
		WillReturnRows(sqlmock.NewRows(faqRowColumns).AddRow(int64(7), "Do you certify abroad?", "Yes", false, int64(4), now, now))

	rec := s.do(http.MethodPost, "/api/faqs/create", `{"question":"Do you certify abroad?","answer":"Yes"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":7`)

	s.db.ExpectQuery(regexp.QuoteMeta("UPDATE faqs SET is_active = NOT is_active")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))

	rec = s.do(http.MethodPatch, "/api/faqs/toggle-active/7", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"status":"OK","id":7,"field":"is_active","value":true}`, rec.Body.String())

	rec = s.do(http.MethodPatch, "/api/faqs/toggle-mobile/7", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/api/blogs/reorder", `{"ids":[1,2]}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestLoginRejected(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"guess"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/faqs/create", `{}`, "forged.token.value")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploads(t *testing.T) {
	s := newTestServer(t)

	dir := filepath.Join(s.store.Dir(), "banners")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.txt"), []byte("hero"), 0o644))

	rec := s.do(http.MethodGet, "/uploads/banners/hero.txt", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hero", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "default-src 'none'; sandbox", rec.Header().Get("Content-Security-Policy"))

	svg := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.svg"), []byte(svg), 0o644))

	rec = s.do(http.MethodGet, "/uploads/banners/logo.svg", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "sandbox")

	rec = s.do(http.MethodGet, "/uploads/banners/", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/faqs/create", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodGet, "/api/users/", "", "")

	rec := s.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `admin_panel_http_requests_total\{method="GET",route="/api/\{resource\}[^"]*",status="404"\} 1`, rec.Body.String())
}
