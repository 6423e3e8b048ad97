package delete_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	storage "github.com/debraj09/geemadhura-admin-panel-sub000/internal/database"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/delete"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/delete/mocks"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func request(schema *catalog.Schema, id int64) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	ctx := context.WithValue(req.Context(), validator.ResourceKey, schema)
	ctx = context.WithValue(ctx, validator.RecordIDKey, id)
	return req.WithContext(ctx)
}

func TestDeleteHandler(t *testing.T) {
	schema, ok := catalog.Default().Lookup("galleries")
	require.True(t, ok)

	store, err := media.New(t.TempDir(), "/uploads", 1<<20)
	require.NoError(t, err)

	photo := filepath.Join(store.Dir(), "galleries", "campus.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(photo), 0o755))
	require.NoError(t, os.WriteFile(photo, []byte("jpeg"), 0o644))

	deleter := mocks.NewRecordDeleter(t)
	deleter.On("DeleteRecord", mock.Anything, schema, int64(9)).
		Return(model.Record{"id": int64(9), "title": "Campus", "image": "/uploads/galleries/campus.jpg"}, nil).Once()

	rec := httptest.NewRecorder()
	delete.New(discard, store, deleter).ServeHTTP(rec, request(schema, 9))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","id":9}`, rec.Body.String())
	assert.NoFileExists(t, photo)
}

func TestDeleteHandlerErrors(t *testing.T) {
	schema, ok := catalog.Default().Lookup("faqs")
	require.True(t, ok)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("op: %w", storage.ErrRecordNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"status":"Error","error":"record not found"}`,
		},
		{
			name:     "failure",
			err:      errors.New("broken pipe"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"status":"Error","error":"internal server error"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := media.New(t.TempDir(), "/uploads", 1<<20)
			require.NoError(t, err)

			deleter := mocks.NewRecordDeleter(t)
			deleter.On("DeleteRecord", mock.Anything, schema, int64(2)).Return(nil, tc.err).Once()

			rec := httptest.NewRecorder()
			delete.New(discard, store, deleter).ServeHTTP(rec, request(schema, 2))

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}
