package config

import (
	"testing"
	"time"
)

func TestLoadDatabaseDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("expected 25 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxIdleTime != 5*time.Minute {
		t.Errorf("expected 5m conn max idle time, got %v", cfg.Database.ConnMaxIdleTime)
	}
	if cfg.Database.LogQueries {
		t.Error("query logging must default to off")
	}
}

func TestLoadDatabaseOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "90s")
	t.Setenv("DB_LOG_QUERIES", "true")

	cfg := Load()

	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("expected 50 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxIdleTime != 90*time.Second {
		t.Errorf("expected 90s conn max idle time, got %v", cfg.Database.ConnMaxIdleTime)
	}
	if !cfg.Database.LogQueries {
		t.Error("expected query logging enabled")
	}
}
