package reorder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	storage "github.com/debraj09/geemadhura-admin-panel-sub000/internal/database"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

var ErrNotOrderable = errors.New("resource cannot be reordered")

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=RecordsReorderer
type RecordsReorderer interface {
	ReorderRecords(ctx context.Context, schema *catalog.Schema, ids []int64) error
}

// New assigns sort positions 1..n to the ids in request order. Records left
// out of the list are placed after them.
func New(log *slog.Logger, reorderer RecordsReorderer) http.HandlerFunc {
	validate := content.NewValidate()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Content.Reorder.New"

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

		if !schema.Orderable {
			log.Info("resource is not orderable")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(ErrNotOrderable.Error()))
			return
		}

		ids, ok := content.DecodeIDs(w, r, log, validate)
		if !ok {
			return
		}

		if err := reorderer.ReorderRecords(r.Context(), schema, ids); err != nil {
			if errors.Is(err, storage.ErrRecordNotFound) {
				log.Info("record not found", sl.Err(err))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(response.ErrRecordNotFound.Error()))
			} else {
				log.Error("internal error", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			}
			return
		}

		log.Info("records reordered", slog.Any("ids", ids))
		render.JSON(w, r, response.OK())
	}
}
