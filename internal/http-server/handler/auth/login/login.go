package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/auth"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Authenticator
type Authenticator interface {
	Login(username, password string) (string, time.Time, error)
}

type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func New(log *slog.Logger, authenticator Authenticator) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Auth.Login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Info("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		token, expiresAt, err := authenticator.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Warn("login failed", slog.String("username", req.Username))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(auth.ErrInvalidCredentials.Error()))
			} else {
				log.Error("internal error", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			}
			return
		}

		log.Info("admin logged in", slog.String("username", req.Username))
		render.JSON(w, r, Response{
			Response:  response.OK(),
			Token:     token,
			ExpiresAt: expiresAt.UTC(),
		})
	}
}
