package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/auth"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Key string

const SubjectKey = Key("token subject key")

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// New rejects requests without a valid "Authorization: Bearer <token>"
// header and stores the token subject in the request context.
func New(log *slog.Logger, verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		log.Info("auth middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			scheme, token, _ := strings.Cut(r.Header.Get("Authorization"), " ")
			if !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				log.Info("missing bearer token",
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				unauthorized(w, r)
				return
			}

			claims, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				log.Info("rejected token",
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err),
				)
				unauthorized(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(response.ErrUnauthorized.Error()))
}
