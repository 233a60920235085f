package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Addr         string        `env:"CHESSMATE_ADDR" envDefault:":3000"`
	AllowOrigins string        `env:"CHESSMATE_ALLOW_ORIGINS" envDefault:"http://localhost:5173"`
	ClockTime    time.Duration `env:"CHESSMATE_CLOCK_TIME" envDefault:"10m"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
