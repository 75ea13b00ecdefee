package config

import "time"

type Monitor struct {
	PollInterval  time.Duration `env:"MONITOR_POLL_INTERVAL" envDefault:"30s"`
	ProbeAddress  string        `env:"MONITOR_PROBE_ADDRESS" envDefault:":8081"`
	MetricAddress string        `env:"MONITOR_METRIC_ADDRESS" envDefault:":9090"`
}
