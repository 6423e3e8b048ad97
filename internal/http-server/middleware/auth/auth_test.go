package auth_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/auth"
	authmw "github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/auth"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/auth/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestAuthMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		verifyErr  error
		verifies   bool
		wantCode   int
		wantCalled bool
	}{
		{name: "valid", header: "Bearer good", verifies: true, wantCode: http.StatusNoContent, wantCalled: true},
		{name: "lowercase scheme", header: "bearer good", verifies: true, wantCode: http.StatusNoContent, wantCalled: true},
		{name: "missing", header: "", wantCode: http.StatusUnauthorized},
		{name: "basic", header: "Basic YWRtaW46cGFzcw==", wantCode: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantCode: http.StatusUnauthorized},
		{
			name:      "invalid",
			header:    "Bearer good",
			verifies:  true,
			verifyErr: fmt.Errorf("auth.Verify: %w", auth.ErrInvalidToken),
			wantCode:  http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := mocks.NewTokenVerifier(t)
			if tc.verifies {
				var claims *auth.Claims
				if tc.verifyErr == nil {
					claims = &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}}
				}
				verifier.On("Verify", "good").Return(claims, tc.verifyErr).Once()
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "admin", r.Context().Value(authmw.SubjectKey))
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/faqs/create", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := httptest.NewRecorder()
			authmw.New(discard, verifier)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantCalled, called)
			if tc.wantCode == http.StatusUnauthorized {
				assert.Equal(t, `Bearer realm="admin"`, rec.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"status":"Error","error":"unauthorized"}`, rec.Body.String())
			}
		})
	}
}
