package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func setSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoad(t *testing.T) {
	setSecrets(t)

	path := writeConfig(t, `
env: "dev"
http_server:
  address: "0.0.0.0:8080"
  allowed_origins: ["https://admin.example.com"]
postgres_server:
  host: "db"
  driver_name: "pgx"
media:
  dir: "/var/lib/admin/uploads"
pagination:
  default_limit: 20
  max_limit: 50
`)

	cfg, scr, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, []string{"https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "/var/lib/admin/uploads", cfg.Dir)
	assert.Equal(t, "/uploads", cfg.PublicURL)
	assert.Equal(t, int64(20), cfg.DefaultLimit)
	assert.Equal(t, int64(50), cfg.MaxLimit)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Minute, cfg.Window)

	assert.Equal(t, "postgres", scr.PostgresPassword)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", scr.JWTSecret)

	assert.Equal(t, "postgres://postgres:pw@db:5432/postgres?sslmode=disable", cfg.DataSourceName("pw"))
}

func TestLoadErrors(t *testing.T) {
	setSecrets(t)

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, _, err = Load(writeConfig(t, "postgres_server:\n  driver_name: mysql\n"))
	assert.ErrorContains(t, err, "unsupported driver_name")

	_, _, err = Load(writeConfig(t, "pagination:\n  default_limit: 200\n  max_limit: 100\n"))
	assert.ErrorContains(t, err, "pagination")

	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	_, _, err = Load(writeConfig(t, "env: local\n"))
	assert.ErrorContains(t, err, "secret")
}

func TestDataSourceNameLibPQ(t *testing.T) {
	p := PostgresServer{Host: "localhost", Port: 5432, Username: "admin", DBname: "content", SSLmode: "disable", DriverName: "postgres"}

	assert.Equal(t, "host=localhost port=5432 user=admin password=pw dbname=content sslmode=disable", p.DataSourceName("pw"))
}
