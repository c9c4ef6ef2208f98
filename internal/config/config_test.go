package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FIEFFORGE_ADDR", ":9090")
	t.Setenv("FIEFFORGE_ADMIN_TOKEN", "hunter2")
	t.Setenv("FIEFFORGE_RAND_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr = %q, want :9090", cfg.Addr)
	}
	if cfg.AdminToken != "hunter2" {
		t.Fatalf("admin token = %q", cfg.AdminToken)
	}
	if cfg.RandSeed != 42 {
		t.Fatalf("rand seed = %d, want 42", cfg.RandSeed)
	}
}
