package config

import (
	"log/slog"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("ENVIRONMENT", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("SEED_DEMO_DATA", "")
		t.Setenv("KAFKA_BROKERS", "")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Port != "3000" {
			t.Errorf("Expected default port 3000, got %s", cfg.Port)
		}
		if cfg.Environment != "development" {
			t.Errorf("Expected development environment, got %s", cfg.Environment)
		}
		if cfg.LogLevel != slog.LevelInfo {
			t.Errorf("Expected info level, got %v", cfg.LogLevel)
		}
		if !cfg.SeedDemoData {
			t.Error("Expected demo data seeding on by default")
		}
		if len(cfg.KafkaBrokers) != 0 {
			t.Errorf("Expected no brokers, got %v", cfg.KafkaBrokers)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("SEED_DEMO_DATA", "false")
		t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("Expected port 8080, got %s", cfg.Port)
		}
		if cfg.LogLevel != slog.LevelDebug {
			t.Errorf("Expected debug level, got %v", cfg.LogLevel)
		}
		if cfg.SeedDemoData {
			t.Error("Expected demo data seeding off")
		}
		want := []string{"broker-1:9092", "broker-2:9092"}
		if len(cfg.KafkaBrokers) != len(want) || cfg.KafkaBrokers[0] != want[0] || cfg.KafkaBrokers[1] != want[1] {
			t.Errorf("Expected brokers %v, got %v", want, cfg.KafkaBrokers)
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		if _, err := LoadConfig(); err == nil {
			t.Error("Expected error for invalid LOG_LEVEL")
		}
	})

	t.Run("invalid seed flag", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("SEED_DEMO_DATA", "maybe")
		if _, err := LoadConfig(); err == nil {
			t.Error("Expected error for invalid SEED_DEMO_DATA")
		}
	})
}
