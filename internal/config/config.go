package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	HTTP_PORT     string `env:"HTTP_PORT" envDefault:"8080"`
	DATA_FILE     string `env:"DATA_FILE" envDefault:"pizzas.json"`
	LOG_LEVEL     string `env:"LOG_LEVEL" envDefault:"info"`
	DB_STRING     string `env:"DB_STRING"`
	KAFKA_BROKERS string `env:"KAFKA_BROKERS"`
	KAFKA_TOPIC   string `env:"KAFKA_TOPIC" envDefault:"pizza-order-events"`
}

// LoadConfig reads settings from the environment. DB_STRING and
// KAFKA_BROKERS are optional: empty keeps the file store and disables
// event publishing.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
