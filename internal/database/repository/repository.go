package repository

import (
	"context"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
)

type ContentRepository interface {
	Records(ctx context.Context, schema *catalog.Schema, query model.ListQuery) ([]model.Record, int64, error)
	Record(ctx context.Context, schema *catalog.Schema, id int64) (model.Record, error)
	CreateRecord(ctx context.Context, schema *catalog.Schema, values model.Record) (model.Record, error)
	UpdateRecord(ctx context.Context, schema *catalog.Schema, id int64, values model.Record) (prev, cur model.Record, err error)
	DeleteRecord(ctx context.Context, schema *catalog.Schema, id int64) (model.Record, error)
	DeleteRecords(ctx context.Context, schema *catalog.Schema, ids []int64) ([]model.Record, error)
	ToggleRecord(ctx context.Context, schema *catalog.Schema, id int64, column string) (bool, error)
	ReorderRecords(ctx context.Context, schema *catalog.Schema, ids []int64) error
}
