package update

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

var ErrNothingToUpdate = errors.New("nothing to update")

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=RecordUpdater
type RecordUpdater interface {
	UpdateRecord(ctx context.Context, schema *catalog.Schema, id int64, values model.Record) (prev, cur model.Record, err error)
}

type Response struct {
	response.Response
	Item model.Record `json:"item"`
}

// New updates only the columns present in the request. Files replaced by
// new uploads are removed once the update is committed.
func New(log *slog.Logger, decoder *form.Decoder, files content.FileStore, updater RecordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Content.Update.New"

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
		log.Info("updating record")

		values, err := decoder.Decode(r, schema, true)
		if err != nil {
			content.DecodeError(w, r, log, err)
			return
		}
		defer func() {
			if err := values.Close(); err != nil {
				log.Warn("failed to remove upload temp files", sl.Err(err))
			}
		}()

		if len(values.Record) == 0 && len(values.Files) == 0 {
			log.Info("empty update")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(ErrNothingToUpdate.Error()))
			return
		}

		saved, err := content.SaveFiles(r.Context(), log, files, schema, values)
		if err != nil {
			content.DecodeError(w, r, log, err)
			return
		}

		log.Debug("request decoded", slog.Any("values", values.Record))

		prev, cur, err := updater.UpdateRecord(r.Context(), schema, id, values.Record)
		if err != nil {
			content.RemoveFiles(log, files, saved...)

			switch {
			case errors.Is(err, storage.ErrRecordNotFound):
				log.Info("record not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(response.ErrRecordNotFound.Error()))
			case errors.Is(err, storage.ErrRecordExists):
				log.Info("record already exists", sl.Err(err))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(response.ErrRecordExists.Error()))
			default:
				log.Error("internal error", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			}
			return
		}

		content.RemoveFiles(log, files, content.ReplacedFiles(schema, prev, cur)...)

		log.Info("record updated")
		render.JSON(w, r, Response{
			Response: response.OK(),
			Item:     cur.Normalize(),
		})
	}
}
