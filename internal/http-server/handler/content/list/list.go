package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/api/response"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=RecordsProvider
type RecordsProvider interface {
	Records(ctx context.Context, schema *catalog.Schema, query model.ListQuery) ([]model.Record, int64, error)
}

type Pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int64 `json:"total_pages"`
	CurrentPage  int64 `json:"current_page"`
	ItemsPerPage int64 `json:"items_per_page"`
}

type Response struct {
	response.Response
	Items      []model.Record `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

func New(log *slog.Logger, provider RecordsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Content.List.New"

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

		req, ok := r.Context().Value(validator.ListKey).(model.ListQuery)
		if !ok {
			log.Error("failed to convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		log = log.With(slog.String("resource", schema.Name))
		log.Debug("listing records", slog.String("request", req.String()))

		records, total, err := provider.Records(r.Context(), schema, req)
		if err != nil {
			log.Error("internal error", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		if records == nil {
			records = []model.Record{}
		}
		for _, rec := range records {
			rec.Normalize()
		}

		log.Info("records listed", slog.Int("count", len(records)), slog.Int64("total", total))
		render.JSON(w, r, Response{
			Response: response.OK(),
			Items:    records,
			Pagination: Pagination{
				TotalItems:   total,
				TotalPages:   totalPages(total, req.Limit),
				CurrentPage:  req.Page,
				ItemsPerPage: req.Limit,
			},
		})
	}
}

func totalPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
