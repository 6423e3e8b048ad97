package toggle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	storage "github.com/debraj09/geemadhura-admin-panel-sub000/internal/database"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=RecordToggler
type RecordToggler interface {
	ToggleRecord(ctx context.Context, schema *catalog.Schema, id int64, column string) (bool, error)
}

type Response struct {
	response.Response
	ID    int64  `json:"id"`
	Field string `json:"field"`
	Value bool   `json:"value"`
}

// New flips the boolean column named by the {toggle} URL parameter, e.g.
// PATCH /api/banners/toggle-mobile/3 flips show_on_mobile.
func New(log *slog.Logger, toggler RecordToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Content.Toggle.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schema, ok := r.Context().Value(validator.ResourceKey).(*catalog.Schema)
		if !ok {
			log.Error("failed to convert to schema")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		id, ok := r.Context().Value(validator.RecordIDKey).(int64)
		if !ok {
			log.Error("failed to convert to record id")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		name := chi.URLParam(r, "toggle")
		log = log.With(slog.String("resource", schema.Name), slog.Int64("id", id), slog.String("toggle", name))

		column, ok := schema.Toggle(name)
		if !ok {
			log.Info("unknown toggle")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown toggle "+strconv.Quote(name)))
			return
		}

		value, err := toggler.ToggleRecord(r.Context(), schema, id, column)
		if err != nil {
			if errors.Is(err, storage.ErrRecordNotFound) {
				log.Info("record not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(response.ErrRecordNotFound.Error()))
			} else {
				log.Error("internal error", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			}
			return
		}

		log.Info("record toggled", slog.Bool("value", value))
		render.JSON(w, r, Response{
			Response: response.OK(),
			ID:       id,
			Field:    column,
			Value:    value,
		})
	}
}
