package exact

import (
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config controls how ground-truth generation schedules its work.
type Config struct {
	// Workers is the number of concurrent query workers. Zero or a negative
	// value means one worker per logical CPU.
	Workers int `envconfig:"WORKERS" default:"0"`

	// ShowProgress renders a progress bar while queries are processed.
	ShowProgress bool `envconfig:"PROGRESS" default:"false"`
}

// ConfigFromEnv builds a Config from ANN_DATASET_* environment variables,
// falling back to defaults for anything unset or unparsable.
func ConfigFromEnv() Config {
	var cfg Config
	if err := envconfig.Process("ann_dataset", &cfg); err != nil {
		log.Warn().Err(err).Msg("Failed to process environment configuration, using defaults")
		return Config{}
	}
	return cfg
}

// workerCount resolves the effective number of workers.
func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
