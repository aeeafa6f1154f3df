package cmd

import (
	"github.com/caarlos0/env/v6"
)

// Config holds process configuration, populated from the environment.
// Defaults: port 4000, static assets from ./public, stats logged once
// a minute.
type Config struct {
	HTTPPort        string `env:"HTTP_PORT" envDefault:"4000"`
	StaticDir       string `env:"STATIC_DIR" envDefault:"public"`
	EventBufferSize int    `env:"EVENT_BUFFER_SIZE" envDefault:"64"`
	StatsSchedule   string `env:"STATS_SCHEDULE" envDefault:"0 * * * * *"`
	DevMode         bool   `env:"DEV_MODE" envDefault:"false"`
}

// ParseConfig reads the configuration from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
