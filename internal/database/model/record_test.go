package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordID(t *testing.T) {
	assert.Equal(t, int64(7), Record{"id": int64(7)}.ID())
	assert.Equal(t, int64(7), Record{"id": 7}.ID())
	assert.Equal(t, int64(0), Record{"id": "7"}.ID())
	assert.Equal(t, int64(0), Record{}.ID())
}

func TestRecordNormalize(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

	r := Record{"title": []byte("hello"), "created_at": ts, "is_active": true}.Normalize()

	assert.Equal(t, "hello", r["title"])
	assert.Equal(t, time.UTC, r["created_at"].(time.Time).Location())
	assert.Equal(t, true, r["is_active"])
	assert.Equal(t, "hello", r.String("title"))
	assert.Equal(t, "", r.String("is_active"))
}

func TestListQueryOffset(t *testing.T) {
	assert.Equal(t, int64(0), ListQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, int64(20), ListQuery{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, int64(0), ListQuery{Page: 0, Limit: 10}.Offset())
}
