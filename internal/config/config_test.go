package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DATA_FILE", "LOG_LEVEL", "DB_STRING", "KAFKA_BROKERS", "KAFKA_TOPIC"} {
		// t.Setenv registers the restore, Unsetenv clears it for the test body
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.HTTP_PORT != "8080" {
		t.Errorf("HTTP_PORT = %q, want 8080", cfg.HTTP_PORT)
	}
	if cfg.DATA_FILE != "pizzas.json" {
		t.Errorf("DATA_FILE = %q, want pizzas.json", cfg.DATA_FILE)
	}
	if cfg.LOG_LEVEL != "info" {
		t.Errorf("LOG_LEVEL = %q, want info", cfg.LOG_LEVEL)
	}
	if cfg.KAFKA_TOPIC != "pizza-order-events" {
		t.Errorf("KAFKA_TOPIC = %q, want pizza-order-events", cfg.KAFKA_TOPIC)
	}
	if cfg.DB_STRING != "" || cfg.KAFKA_BROKERS != "" {
		t.Errorf("optional settings should default to empty, got DB_STRING=%q KAFKA_BROKERS=%q", cfg.DB_STRING, cfg.KAFKA_BROKERS)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_FILE", "/var/lib/pizzas/orders.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.HTTP_PORT != "9090" {
		t.Errorf("HTTP_PORT = %q, want 9090", cfg.HTTP_PORT)
	}
	if cfg.DATA_FILE != "/var/lib/pizzas/orders.json" {
		t.Errorf("DATA_FILE = %q, want /var/lib/pizzas/orders.json", cfg.DATA_FILE)
	}
	if cfg.LOG_LEVEL != "debug" {
		t.Errorf("LOG_LEVEL = %q, want debug", cfg.LOG_LEVEL)
	}
	if cfg.KAFKA_BROKERS != "broker-1:9092,broker-2:9092" {
		t.Errorf("KAFKA_BROKERS = %q", cfg.KAFKA_BROKERS)
	}
}
