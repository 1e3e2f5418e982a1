package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// FramesPath points at a frame document file or a directory of them.
	FramesPath string
	// ComponentsPath points at the component library file or directory. It
	// may be empty; documents that reference no components need no library.
	ComponentsPath string
	// OutPath is where the export document is written. Empty means stdout.
	OutPath string

	LogFormat string
	LogLevel  string

	// Seed fixes the procedural generators' random source when nonzero.
	// Zero keeps the reference behavior of differing per render.
	Seed int64
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FramesPath == "" {
		return nil, errors.New("FramesPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
