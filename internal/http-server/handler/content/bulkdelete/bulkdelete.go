package bulkdelete

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

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=RecordsDeleter
type RecordsDeleter interface {
	DeleteRecords(ctx context.Context, schema *catalog.Schema, ids []int64) ([]model.Record, error)
}

type Response struct {
	response.Response
	Deleted int     `json:"deleted"`
	IDs     []int64 `json:"ids"`
}

// New deletes every listed record that exists. Unknown ids are skipped, the
// request only fails with 404 when none of them matched.
func New(log *slog.Logger, files content.FileRemover, deleter RecordsDeleter) http.HandlerFunc {
	validate := content.NewValidate()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Content.BulkDelete.New"

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

		ids, ok := content.DecodeIDs(w, r, log, validate)
		if !ok {
			return
		}

		log.Info("deleting records", slog.Any("ids", ids))

		records, err := deleter.DeleteRecords(r.Context(), schema, ids)
		if err != nil {
			if errors.Is(err, storage.ErrRecordNotFound) {
				log.Info("records not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(response.ErrRecordNotFound.Error()))
			} else {
				log.Error("internal error", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			}
			return
		}

		content.RemoveFiles(log, files, content.Files(schema, records...)...)

		deleted := make([]int64, len(records))
		for i, rec := range records {
			deleted[i] = rec.ID()
		}

		log.Info("records deleted", slog.Int("count", len(deleted)))
		render.JSON(w, r, Response{
			Response: response.OK(),
			Deleted:  len(deleted),
			IDs:      deleted,
		})
	}
}
