package config

import "testing"

func TestLoadConfigDefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")

	cfg, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 42 {
		t.Errorf("Database.MaxOpenConns = %d, want 42", cfg.Database.MaxOpenConns)
	}
	if cfg.Session.Secret != "test-secret" {
		t.Errorf("Session.Secret = %q", cfg.Session.Secret)
	}
	// Untouched fields keep their defaults.
	if cfg.Database.Host != "localhost" || cfg.Logging.Level != "info" {
		t.Errorf("defaults not applied: host=%q level=%q", cfg.Database.Host, cfg.Logging.Level)
	}
}

func TestLoadConfigRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := LoadConfig("does-not-exist.yaml"); err == nil {
		t.Fatal("LoadConfig() succeeded without a session secret")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "discipline"

	want := "postgres://app:pw@localhost:5432/discipline?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
