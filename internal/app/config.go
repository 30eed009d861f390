package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Root      string // directory holding opendm/
	Output    string // optional destination file
	Canonical bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("a source root is required: pass --root or ROOT")
	}
	return &cfg, nil
}
