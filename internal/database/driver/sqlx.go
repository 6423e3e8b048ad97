package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type SQLXConfig struct {
	DriverName     string
	DataSourceName string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	// ConnectAttempts bounds how many pings are tried before giving up.
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

func (c *SQLXConfig) NewSQLXDatabase(ctx context.Context, log *slog.Logger) (*sqlx.DB, error) {
	const op = "database.driver.sqlx.NewSQLXDatabase"

	log = log.With(
		slog.String("op", op),
		slog.String("driver", c.DriverName),
	)

	db, err := sqlx.Open(c.DriverName, c.DataSourceName)
	if err != nil {
		log.Error("failed to open database", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(
		"database parameters",
		slog.Int("max number of open connections", c.MaxOpenConns),
		slog.Int("max number of idle connections", c.MaxIdleConns),
		slog.Duration("max lifetime of open connection", c.MaxLifetime),
	)

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.MaxLifetime)

	if err = c.ping(ctx, log, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return db, nil
}

// ping retries with a doubling delay so the service survives a database
// that starts after it.
func (c *SQLXConfig) ping(ctx context.Context, log *slog.Logger, db *sqlx.DB) error {
	attempts := c.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := c.ConnectBackoff

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		log.Warn("failed to ping database", slog.Int("attempt", attempt), sl.Err(err))
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	log.Error("database is unreachable", slog.Int("attempts", attempts), sl.Err(err))
	return err
}
