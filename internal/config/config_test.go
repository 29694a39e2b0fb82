package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Отсутствующий файл не является ошибкой, действуют значения по умолчанию
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "strict", cfg.Booking.ConflictMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[database]
host = "db.internal"
port = 5433
dbname = "hotel"

[booking]
conflict_mode = "best-effort"

[metrics]
enabled = true
service_name = "hotel-test"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "best-effort", cfg.Booking.ConflictMode)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_PASSWORD", "secret")

	path := writeConfig(t, `
[database]
host = "file-host"
port = 5432
dbname = "hotel"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Переменные окружения перекрывают файл
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestInvalidConflictMode(t *testing.T) {
	path := writeConfig(t, `
[booking]
conflict_mode = "optimistic"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=db sslmode=disable", d.DSN())
}
