package pgsql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/model"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func selectList(schema *catalog.Schema) string {
	return strings.Join(schema.SelectColumns(), ", ")
}

// listQuery builds the page query and the matching count query. The count
// query takes countArgs, the page query takes countArgs plus limit and offset.
func listQuery(schema *catalog.Schema, q model.ListQuery) (list, count string, countArgs, listArgs []any) {
	var where []string

	if q.Search != "" {
		if cols := schema.SearchColumns(); len(cols) > 0 {
			countArgs = append(countArgs, "%"+likeEscaper.Replace(q.Search)+"%")
			parts := make([]string, len(cols))
			for i, col := range cols {
				parts[i] = fmt.Sprintf("%s ILIKE $%d", col, len(countArgs))
			}
			where = append(where, "("+strings.Join(parts, " OR ")+")")
		}
	}

	if q.Active != nil && schema.HasActive() {
		countArgs = append(countArgs, *q.Active)
		where = append(where, fmt.Sprintf("%s = $%d", catalog.ColumnIsActive, len(countArgs)))
	}

	var whereSQL string
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	sortCol, desc := q.Sort, q.Desc
	if sortCol == "" || !schema.Sortable(sortCol) {
		sortCol, desc = schema.DefaultSort()
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	orderSQL := fmt.Sprintf("%s %s", sortCol, dir)
	if sortCol != catalog.ColumnID {
		orderSQL += fmt.Sprintf(", %s %s", catalog.ColumnID, dir)
	}

	count = fmt.Sprintf("SELECT COUNT(*) FROM %s%s", schema.Table, whereSQL)
	list = fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectList(schema), schema.Table, whereSQL, orderSQL, len(countArgs)+1, len(countArgs)+2,
	)

	listArgs = make([]any, 0, len(countArgs)+2)
	listArgs = append(listArgs, countArgs...)
	listArgs = append(listArgs, q.Limit, q.Offset())

	return list, count, countArgs, listArgs
}

// knownColumns returns the keys of values declared by the schema, sorted.
func knownColumns(schema *catalog.Schema, values model.Record) []string {
	cols := make([]string, 0, len(values))
	for col := range values {
		if _, ok := schema.Column(col); ok {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)
	return cols
}

func insertQuery(schema *catalog.Schema, values model.Record) (string, []any) {
	cols := knownColumns(schema, values)

	args := make([]any, 0, len(cols))
	placeholders := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		args = append(args, values[col])
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	if _, ok := values[catalog.ColumnSortOrder]; schema.Orderable && !ok {
		cols = append(cols, catalog.ColumnSortOrder)
		placeholders = append(placeholders, fmt.Sprintf(
			"(SELECT COALESCE(MAX(%s), 0) + 1 FROM %s)", catalog.ColumnSortOrder, schema.Table,
		))
	}

	if len(cols) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", schema.Table, selectList(schema)), nil
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		schema.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), selectList(schema),
	), args
}

func updateQuery(schema *catalog.Schema, id int64, values model.Record) (string, []any) {
	cols := knownColumns(schema, values)

	args := make([]any, 0, len(cols)+1)
	sets := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		args = append(args, values[col])
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	sets = append(sets, catalog.ColumnUpdatedAt+" = NOW()")
	args = append(args, id)

	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		schema.Table, strings.Join(sets, ", "), len(args), selectList(schema),
	), args
}
