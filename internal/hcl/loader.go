package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/wireframego/internal/ctxlog"
	"github.com/vk/wireframego/internal/fsutil"
	"github.com/vk/wireframego/internal/spec"
)

// Loader parses wireframe documents from .hcl files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a loader with a fresh parser cache.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadLibrary reads every .hcl file under the given paths and aggregates all
// component definitions into one library. Users split libraries across many
// files; collecting them into a single view lets any document reference any
// component.
func (l *Loader) LoadLibrary(ctx context.Context, paths ...string) (*spec.Library, error) {
	logger := ctxlog.FromContext(ctx)
	lib := spec.NewLibrary()

	for _, path := range paths {
		files, err := fsutil.FindDocFiles(path)
		if err != nil {
			return nil, fmt.Errorf("failed to discover component files in %s: %w", path, err)
		}
		for _, file := range files {
			body, err := l.parseFile(file)
			if err != nil {
				return nil, err
			}
			count := 0
			for _, block := range body.Blocks {
				if block.Type != "component" || len(block.Labels) != 1 {
					logger.Warn("Skipping non-component block in library document.", "file", file, "block", block.Type)
					continue
				}
				lib.Add(translateComponent(ctx, block))
				count++
			}
			logger.Debug("Loaded component file.", "file", file, "components", count)
		}
	}

	logger.Debug("Component library loaded.", "components", lib.Len())
	return lib, nil
}

// LoadFrames reads every .hcl file under the given paths and returns the
// top-level frame list, in file-then-document order.
func (l *Loader) LoadFrames(ctx context.Context, paths ...string) ([]*spec.Node, error) {
	logger := ctxlog.FromContext(ctx)
	var frames []*spec.Node

	for _, path := range paths {
		files, err := fsutil.FindDocFiles(path)
		if err != nil {
			return nil, fmt.Errorf("failed to discover frame files in %s: %w", path, err)
		}
		for _, file := range files {
			body, err := l.parseFile(file)
			if err != nil {
				return nil, err
			}
			for _, block := range body.Blocks {
				frames = append(frames, translateBlock(ctx, block))
			}
			logger.Debug("Loaded frame file.", "file", file)
		}
	}

	logger.Debug("Frame documents loaded.", "frames", len(frames))
	return frames, nil
}

// ParseLibrary loads a component library from in-memory source, for tests and
// embedded documents. The filename only labels diagnostics.
func (l *Loader) ParseLibrary(ctx context.Context, filename string, src []byte) (*spec.Library, error) {
	body, err := l.parseSource(filename, src)
	if err != nil {
		return nil, err
	}
	lib := spec.NewLibrary()
	for _, block := range body.Blocks {
		if block.Type != "component" || len(block.Labels) != 1 {
			ctxlog.FromContext(ctx).Warn("Skipping non-component block in library document.", "file", filename, "block", block.Type)
			continue
		}
		lib.Add(translateComponent(ctx, block))
	}
	return lib, nil
}

// ParseFrames loads frame documents from in-memory source.
func (l *Loader) ParseFrames(ctx context.Context, filename string, src []byte) ([]*spec.Node, error) {
	body, err := l.parseSource(filename, src)
	if err != nil {
		return nil, err
	}
	frames := make([]*spec.Node, 0, len(body.Blocks))
	for _, block := range body.Blocks {
		frames = append(frames, translateBlock(ctx, block))
	}
	return frames, nil
}

// parseFile parses one file and returns its syntax body.
func (l *Loader) parseFile(path string) (*hclsyntax.Body, error) {
	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse document %s: %s", path, diags.Error())
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("document %s is not native HCL syntax", path)
	}
	return body, nil
}

// parseSource parses in-memory source and returns its syntax body.
func (l *Loader) parseSource(filename string, src []byte) (*hclsyntax.Body, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse document %s: %s", filename, diags.Error())
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("document %s is not native HCL syntax", filename)
	}
	return body, nil
}
