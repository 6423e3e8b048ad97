package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	storage "github.com/debraj09/geemadhura-admin-panel-sub000/internal/database"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=RecordDeleter
type RecordDeleter interface {
	DeleteRecord(ctx context.Context, schema *catalog.Schema, id int64) (model.Record, error)
}

type Response struct {
	response.Response
	ID int64 `json:"id"`
}

func New(log *slog.Logger, files content.FileRemover, deleter RecordDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Content.Delete.New"

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

		log = log.With(slog.String("resource", schema.Name), slog.Int64("id", id))

		record, err := deleter.DeleteRecord(r.Context(), schema, id)
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

		content.RemoveFiles(log, files, content.Files(schema, record)...)

		log.Info("record deleted")
		render.JSON(w, r, Response{
			Response: response.OK(),
			ID:       id,
		})
	}
}
