package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	storage "github.com/debraj09/geemadhura-admin-panel-sub000/internal/database"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var _ repository.ContentRepository = (*ContentRepository)(nil)

type ContentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (c *ContentRepository) Records(ctx context.Context, schema *catalog.Schema, q model.ListQuery) ([]model.Record, int64, error) {
	const op = "repository.pgsql.Records"

	listSQL, countSQL, countArgs, listArgs := listQuery(schema, q)

	var total int64
	if err := c.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := c.db.QueryxContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return records, total, nil
}

func (c *ContentRepository) Record(ctx context.Context, schema *catalog.Schema, id int64) (model.Record, error) {
	const op = "repository.pgsql.Record"

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectList(schema), schema.Table)

	record := model.Record{}
	if err := c.db.QueryRowxContext(ctx, query, id).MapScan(record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return record.Normalize(), nil
}

func (c *ContentRepository) CreateRecord(ctx context.Context, schema *catalog.Schema, values model.Record) (model.Record, error) {
	const op = "repository.pgsql.CreateRecord"

	query, args := insertQuery(schema, values)

	record := model.Record{}
	if err := c.db.QueryRowxContext(ctx, query, args...).MapScan(record); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return record.Normalize(), nil
}

// UpdateRecord applies values to the row and returns it as it was before
// and after the change. The row is locked for the duration of the update.
func (c *ContentRepository) UpdateRecord(ctx context.Context, schema *catalog.Schema, id int64, values model.Record) (model.Record, model.Record, error) {
	const op = "repository.pgsql.UpdateRecord"

	txx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	defer txx.Rollback()

	prev := model.Record{}
	err = txx.QueryRowxContext(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 FOR UPDATE", selectList(schema), schema.Table), id,
	).MapScan(prev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args := updateQuery(schema, id, values)

	cur := model.Record{}
	if err = txx.QueryRowxContext(ctx, query, args...).MapScan(cur); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	if err = txx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return prev.Normalize(), cur.Normalize(), nil
}

func (c *ContentRepository) DeleteRecord(ctx context.Context, schema *catalog.Schema, id int64) (model.Record, error) {
	const op = "repository.pgsql.DeleteRecord"

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", schema.Table, selectList(schema))

	record := model.Record{}
	if err := c.db.QueryRowxContext(ctx, query, id).MapScan(record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return record.Normalize(), nil
}

// DeleteRecords removes every existing row among ids and returns the removed
// rows. Unknown ids are skipped.
func (c *ContentRepository) DeleteRecords(ctx context.Context, schema *catalog.Schema, ids []int64) ([]model.Record, error) {
	const op = "repository.pgsql.DeleteRecords"

	query, args, err := sqlx.In(
		fmt.Sprintf("DELETE FROM %s WHERE id IN (?) RETURNING %s", schema.Table, selectList(schema)), ids,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := c.db.QueryxContext(ctx, c.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
	}

	return records, nil
}

func (c *ContentRepository) ToggleRecord(ctx context.Context, schema *catalog.Schema, id int64, column string) (bool, error) {
	const op = "repository.pgsql.ToggleRecord"

	if col, ok := schema.Column(column); !ok || col.Kind != catalog.Bool {
		return false, fmt.Errorf("%s: column %q is not a toggle of %s", op, column, schema.Name)
	}

	query := fmt.Sprintf("UPDATE %s SET %s = NOT %s, %s = NOW() WHERE id = $1 RETURNING %s",
		schema.Table, column, column, catalog.ColumnUpdatedAt, column,
	)

	var value bool
	if err := c.db.QueryRowxContext(ctx, query, id).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

// ReorderRecords gives ids[i] the sort position i+1. Rows left out of ids
// follow from n+1 on, keeping their relative order. Either every row moves
// or none does.
func (c *ContentRepository) ReorderRecords(ctx context.Context, schema *catalog.Schema, ids []int64) error {
	const op = "repository.pgsql.ReorderRecords"

	if !schema.Orderable {
		return fmt.Errorf("%s: %s cannot be reordered", op, schema.Name)
	}

	txx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer txx.Rollback()

	stmt, err := txx.PrepareContext(ctx, fmt.Sprintf("UPDATE %s SET %s = $1, %s = NOW() WHERE id = $2",
		schema.Table, catalog.ColumnSortOrder, catalog.ColumnUpdatedAt,
	))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	for i, id := range ids {
		res, err := stmt.ExecContext(ctx, i+1, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		rowsAffected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%s: id %d: %w", op, id, storage.ErrRecordNotFound)
		}
	}

	query, args, err := sqlx.In(fmt.Sprintf(`
		UPDATE %[1]s SET %[2]s = rest.pos, %[3]s = NOW()
		FROM (
			SELECT id, ? + ROW_NUMBER() OVER (ORDER BY %[2]s, id) AS pos
			FROM %[1]s WHERE id NOT IN (?)
		) rest
		WHERE %[1]s.id = rest.id`,
		schema.Table, catalog.ColumnSortOrder, catalog.ColumnUpdatedAt,
	), int64(len(ids)), ids)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = txx.ExecContext(ctx, txx.Rebind(query), args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = txx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanRecords(rows *sqlx.Rows) ([]model.Record, error) {
	records := make([]model.Record, 0)
	for rows.Next() {
		record := model.Record{}
		if err := rows.MapScan(record); err != nil {
			return nil, err
		}
		records = append(records, record.Normalize())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return storage.ErrRecordExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return storage.ErrRecordExists
	}

	return err
}
