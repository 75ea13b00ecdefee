package config

type Economy struct {
	OutputDir     string `env:"ECONOMY_OUTPUT_DIR" envDefault:"economy"`
	ReportsDir    string `env:"ECONOMY_REPORTS_DIR" envDefault:"reports"`
	TemplatesPath string `env:"ECONOMY_TEMPLATES_PATH"`
	Version       string `env:"ECONOMY_VERSION" envDefault:"1.0"`

	SyncEnabled bool `env:"ECONOMY_SYNC_ENABLED" envDefault:"false"`
}
