package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	storage "github.com/debraj09/geemadhura-admin-panel-sub000/internal/database"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/form"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=RecordCreator
type RecordCreator interface {
	CreateRecord(ctx context.Context, schema *catalog.Schema, values model.Record) (model.Record, error)
}

type Response struct {
	response.Response
	ID   int64        `json:"id"`
	Item model.Record `json:"item"`
}

func New(log *slog.Logger, decoder *form.Decoder, files content.FileStore, creator RecordCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Content.Create.New"

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

		log = log.With(slog.String("resource", schema.Name))
		log.Info("creating record")

		values, err := decoder.Decode(r, schema, false)
		if err != nil {
			content.DecodeError(w, r, log, err)
			return
		}
		defer func() {
			if err := values.Close(); err != nil {
				log.Warn("failed to remove upload temp files", sl.Err(err))
			}
		}()

		saved, err := content.SaveFiles(r.Context(), log, files, schema, values)
		if err != nil {
			content.DecodeError(w, r, log, err)
			return
		}

		log.Debug("request decoded", slog.Any("values", values.Record), slog.Any("files", saved))

		record, err := creator.CreateRecord(r.Context(), schema, values.Record)
		if err != nil {
			content.RemoveFiles(log, files, saved...)

			if errors.Is(err, storage.ErrRecordExists) {
				log.Info("record already exists", sl.Err(err))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(response.ErrRecordExists.Error()))
			} else {
				log.Error("internal error", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			}
			return
		}

		log.Info("record created", slog.Int64("id", record.ID()))
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.Created(),
			ID:       record.ID(),
			Item:     record.Normalize(),
		})
	}
}
