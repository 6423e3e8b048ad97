package model

import (
	"fmt"
	"time"
)

// Record is a single row of a content table keyed by column name.
type Record map[string]any

func (r Record) ID() int64 {
	switch v := r["id"].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

// String returns the text value of a column, empty for NULL or non-text values.
func (r Record) String(column string) string {
	switch v := r[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Normalize converts driver values into JSON friendly ones.
func (r Record) Normalize() Record {
	for k, v := range r {
		switch t := v.(type) {
		case []byte:
			r[k] = string(t)
		case time.Time:
			r[k] = t.UTC()
		}
	}
	return r
}

type ListQuery struct {
	Search string
	Page   int64
	Limit  int64
	Sort   string
	Desc   bool
	Active *bool
}

func (q ListQuery) Offset() int64 {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

func (q ListQuery) String() string {
	active := "any"
	if q.Active != nil {
		active = fmt.Sprint(*q.Active)
	}
	return fmt.Sprintf("search=%q page=%d limit=%d sort=%s desc=%t active=%s", q.Search, q.Page, q.Limit, q.Sort, q.Desc, active)
}
