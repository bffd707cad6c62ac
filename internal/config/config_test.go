package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("expected SERVER_PORT default '8080', got '%s'", cfg.ServerPort)
	}

	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected REDIS_ADDR default 'localhost:6379', got '%s'", cfg.RedisAddr)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected LOG_LEVEL default 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.JWTSecret != "changeme" {
		t.Errorf("expected JWT_SECRET default 'changeme', got '%s'", cfg.JWTSecret)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Clearenv()
	os.Setenv("DATABASE_URL", "postgres://x:y@db:5432/agenda?sslmode=disable")
	os.Setenv("JWT_SECRET", "super-secret")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Clearenv()

	cfg := Load()

	if cfg.DBUrl != "postgres://x:y@db:5432/agenda?sslmode=disable" {
		t.Errorf("unexpected DBUrl: %s", cfg.DBUrl)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Errorf("unexpected JWTSecret: %s", cfg.JWTSecret)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("unexpected ServerPort: %s", cfg.ServerPort)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("unexpected Addr(): %s", cfg.Addr())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}
