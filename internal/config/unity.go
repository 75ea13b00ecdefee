package config

import "time"

// Unity holds Unity Cloud Services coordinates. Project and
// environment are always required; the token may be absent, in which
// case sync calls go out unauthenticated and report AuthRequired.
// There are deliberately no compiled-in defaults for any of them.
type Unity struct {
	ProjectID string `env:"UNITY_PROJECT_ID,required"`
	EnvID     string `env:"UNITY_ENV_ID,required"`
	APIToken  string `env:"UNITY_API_TOKEN" json:"-"`

	BaseURL        string        `env:"UNITY_API_BASE_URL" envDefault:"https://services.api.unity.com"`
	RequestTimeout time.Duration `env:"UNITY_REQUEST_TIMEOUT" envDefault:"15s"`
	RequestDelay   time.Duration `env:"UNITY_REQUEST_DELAY" envDefault:"250ms"`
	MaxRetries     uint          `env:"UNITY_MAX_RETRIES" envDefault:"3"`
}
