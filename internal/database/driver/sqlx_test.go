package driver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewSQLXDatabaseRetriesPing(t *testing.T) {
	db, mock, err := sqlmock.NewWithDSN("sqlx_retry", sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	cfg := &SQLXConfig{
		DriverName:      "sqlmock",
		DataSourceName:  "sqlx_retry",
		MaxOpenConns:    4,
		MaxIdleConns:    1,
		MaxLifetime:     time.Minute,
		ConnectAttempts: 3,
		ConnectBackoff:  time.Millisecond,
	}

	sqlxDB, err := cfg.NewSQLXDatabase(context.Background(), discard)
	require.NoError(t, err)
	assert.Equal(t, 4, sqlxDB.Stats().MaxOpenConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSQLXDatabaseGivesUp(t *testing.T) {
	db, mock, err := sqlmock.NewWithDSN("sqlx_unreachable", sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	cfg := &SQLXConfig{
		DriverName:      "sqlmock",
		DataSourceName:  "sqlx_unreachable",
		ConnectAttempts: 2,
		ConnectBackoff:  time.Millisecond,
	}

	_, err = cfg.NewSQLXDatabase(context.Background(), discard)
	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSQLXDatabaseUnknownDriver(t *testing.T) {
	cfg := &SQLXConfig{DriverName: "oracle", DataSourceName: "whatever"}

	_, err := cfg.NewSQLXDatabase(context.Background(), discard)
	assert.Error(t, err)
}
