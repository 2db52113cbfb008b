package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "DB_HOST", "DB_NAME", "DB_MAX_OPEN_CONNS", "CATALOG_SYNC_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "event_catalog", cfg.DBName)
	assert.Equal(t, 25, cfg.DBPool.MaxOpenConns)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.SyncEnabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "2")
	t.Setenv("CATALOG_SYNC_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, 5, cfg.DBPool.MaxOpenConns)
	assert.Equal(t, 2*time.Minute, cfg.DBPool.ConnMaxLifetime)
	assert.True(t, cfg.SyncEnabled)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("CATALOG_SYNC_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 10, cfg.DBPool.MaxIdleConns)
	assert.False(t, cfg.SyncEnabled)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "h", DBPort: "1", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "require",
	}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=require", cfg.DSN())
}
