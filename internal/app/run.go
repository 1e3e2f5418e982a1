package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/vk/wireframego/internal/collapse"
	"github.com/vk/wireframego/internal/ctxlog"
	"github.com/vk/wireframego/internal/export"
	"github.com/vk/wireframego/internal/resolver"
)

// Run executes the render pipeline: resolve, analyze, export.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	opts := []resolver.Option{}
	if a.config.Seed != 0 {
		opts = append(opts, resolver.WithRand(rand.New(rand.NewSource(a.config.Seed))))
		a.logger.Debug("Using seeded random source.", "seed", a.config.Seed)
	}

	res := resolver.New(a.library, opts...)
	nodes, diags := res.Resolve(ctx, a.frames)
	a.logger.Info("Documents resolved.", "frames", len(nodes), "diagnostics", len(diags))

	table := collapse.Analyze(nodes...)
	a.logger.Debug("Border-collapse analysis complete.", "nodes", len(table))

	doc := export.Build(nodes, table)

	out := a.outW
	if a.config.OutPath != "" {
		f, err := os.Create(a.config.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := doc.WriteJSON(out); err != nil {
		return fmt.Errorf("failed to write export document: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
