package config

import "time"

type Health struct {
	Threshold    int           `env:"HEALTH_THRESHOLD" envDefault:"70"`
	MaxStaleness time.Duration `env:"HEALTH_MAX_STALENESS" envDefault:"168h"`
}
