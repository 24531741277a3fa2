// Package config loads dbup settings from ~/.dbup/config.yaml and the
// environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds global dbup settings.
type Config struct {
	// Engine is the container engine binary ("docker", "podman", ...).
	Engine string         `yaml:"engine"`
	PG     DatabaseConfig `yaml:"pg"`
	MySQL  DatabaseConfig `yaml:"mysql"`
}

// DatabaseConfig holds per-database launch defaults.
type DatabaseConfig struct {
	Image    string `yaml:"image"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     int    `yaml:"port"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Engine: "docker",
		PG: DatabaseConfig{
			Image:    "postgres:16-alpine",
			User:     "postgres",
			Password: "postgres",
			Port:     5432,
		},
		MySQL: DatabaseConfig{
			Image:    "mysql:8.0",
			User:     "root",
			Password: "mysql",
			Port:     3306,
		},
	}
}

// Load reads ~/.dbup/config.yaml and applies environment overrides.
// A .env file in the working directory is loaded first, so credentials can
// live there instead of the shell environment. All failures fall back to
// defaults; a missing config is not an error.
func Load() (*Config, error) {
	cfg := Default()

	// Best effort; absence of a .env file is the common case.
	_ = godotenv.Load()

	if data, err := os.ReadFile(filepath.Join(Dir(), "config.yaml")); err == nil {
		_ = yaml.Unmarshal(data, cfg) // Ignore unmarshal errors, use defaults
	}

	if v := os.Getenv("DBUP_ENGINE"); v != "" {
		cfg.Engine = v
	}
	applyEnv(&cfg.PG, "DBUP_PG")
	applyEnv(&cfg.MySQL, "DBUP_MYSQL")

	return cfg, nil
}

func applyEnv(db *DatabaseConfig, prefix string) {
	if v := os.Getenv(prefix + "_IMAGE"); v != "" {
		db.Image = v
	}
	if v := os.Getenv(prefix + "_USER"); v != "" {
		db.User = v
	}
	if v := os.Getenv(prefix + "_PASSWORD"); v != "" {
		db.Password = v
	}
	if v := os.Getenv(prefix + "_DBNAME"); v != "" {
		db.DBName = v
	}
	if v := os.Getenv(prefix + "_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			db.Port = port
		}
	}
}

// Dir returns the path to ~/.dbup.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dbup")
	}
	return filepath.Join(homeDir, ".dbup")
}
