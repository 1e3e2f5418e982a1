package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/wireframego/internal/ctxlog"
	"github.com/vk/wireframego/internal/hcl"
	"github.com/vk/wireframego/internal/spec"
)

// App encapsulates the render pipeline's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config

	library *spec.Library
	frames  []*spec.Node
}

// NewApp is the constructor for the main application. It loads all documents
// up front and returns a fully initialized App instance with its own isolated
// logger. A failure to load documents is a fatal startup error and panics;
// the CLI entrypoint recovers and reports it.
func NewApp(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	loader := hcl.NewLoader()

	library := spec.NewLibrary()
	if config.ComponentsPath != "" {
		var err error
		library, err = loader.LoadLibrary(ctx, config.ComponentsPath)
		if err != nil {
			panic(fmt.Errorf("failed to load component library: %w", err))
		}
	}
	logger.Debug("Component library ready.", "components", library.Len())

	frames, err := loader.LoadFrames(ctx, config.FramesPath)
	if err != nil {
		panic(fmt.Errorf("failed to load frame documents: %w", err))
	}
	logger.Debug("Frame documents ready.", "frames", len(frames))

	return &App{
		outW:    outW,
		errW:    errW,
		logger:  logger,
		config:  config,
		library: library,
		frames:  frames,
	}
}
