package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Engine != "docker" {
		t.Errorf("Engine = %q, want %q", cfg.Engine, "docker")
	}
	if cfg.PG.Image != "postgres:16-alpine" {
		t.Errorf("PG.Image = %q, want %q", cfg.PG.Image, "postgres:16-alpine")
	}
	if cfg.PG.Port != 5432 {
		t.Errorf("PG.Port = %d, want 5432", cfg.PG.Port)
	}
	if cfg.MySQL.Port != 3306 {
		t.Errorf("MySQL.Port = %d, want 3306", cfg.MySQL.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	content := `
engine: podman
pg:
  image: postgres:17
  password: hunter2
`
	dir := filepath.Join(home, ".dbup")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine != "podman" {
		t.Errorf("Engine = %q, want %q", cfg.Engine, "podman")
	}
	if cfg.PG.Image != "postgres:17" {
		t.Errorf("PG.Image = %q, want %q", cfg.PG.Image, "postgres:17")
	}
	if cfg.PG.Password != "hunter2" {
		t.Errorf("PG.Password = %q, want %q", cfg.PG.Password, "hunter2")
	}
	// Settings the file leaves out keep their defaults.
	if cfg.MySQL.Image != "mysql:8.0" {
		t.Errorf("MySQL.Image = %q, want default", cfg.MySQL.Image)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load should not error when config is missing: %v", err)
	}
	if cfg.Engine != "docker" {
		t.Errorf("Engine = %q, want default", cfg.Engine)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DBUP_ENGINE", "podman")
	t.Setenv("DBUP_PG_PASSWORD", "s3cret")
	t.Setenv("DBUP_PG_PORT", "15432")
	t.Setenv("DBUP_MYSQL_IMAGE", "mysql:9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine != "podman" {
		t.Errorf("Engine = %q, want %q", cfg.Engine, "podman")
	}
	if cfg.PG.Password != "s3cret" {
		t.Errorf("PG.Password = %q, want %q", cfg.PG.Password, "s3cret")
	}
	if cfg.PG.Port != 15432 {
		t.Errorf("PG.Port = %d, want 15432", cfg.PG.Port)
	}
	if cfg.MySQL.Image != "mysql:9" {
		t.Errorf("MySQL.Image = %q, want %q", cfg.MySQL.Image, "mysql:9")
	}
}

func TestLoadBadPortIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DBUP_PG_PORT", "not-a-port")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PG.Port != 5432 {
		t.Errorf("PG.Port = %d, want default 5432", cfg.PG.Port)
	}
}
