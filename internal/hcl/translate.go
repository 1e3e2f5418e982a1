package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wireframego/internal/ctxlog"
	"github.com/vk/wireframego/internal/spec"
)

// translateComponent converts a `component "Name" { variant "x" {...} }`
// block into a library component. Blocks other than variants are ignored with
// a warning; a component with no variant blocks is still registered so that
// instances of it degrade to the missing-variant fallback instead of the
// harsher unknown-component placeholder.
func translateComponent(ctx context.Context, block *hclsyntax.Block) *spec.Component {
	logger := ctxlog.FromContext(ctx)
	comp := &spec.Component{
		Name:     block.Labels[0],
		Variants: make(map[string]*spec.Variant),
	}

	for _, child := range block.Body.Blocks {
		if child.Type != "variant" || len(child.Labels) != 1 {
			logger.Warn("Skipping non-variant block inside component.", "component", comp.Name, "block", child.Type)
			continue
		}
		variant := &spec.Variant{Name: child.Labels[0]}
		for _, node := range child.Body.Blocks {
			variant.Nodes = append(variant.Nodes, translateBlock(ctx, node))
		}
		comp.Variants[variant.Name] = variant
	}
	return comp
}

// translateBlock converts one document block into a spec node, classifying
// its tag once so downstream code never probes raw keys.
func translateBlock(ctx context.Context, block *hclsyntax.Block) *spec.Node {
	logger := ctxlog.FromContext(ctx)
	node := &spec.Node{
		Kind:  spec.KindForTag(block.Type),
		Props: make(map[string]cty.Value, len(block.Body.Attributes)),
	}

	switch node.Kind {
	case spec.KindComponent:
		node.Component = block.Type
		if len(block.Labels) > 0 {
			node.Label = block.Labels[0]
		}
	case spec.KindEach:
		if len(block.Labels) > 0 {
			node.Source = block.Labels[0]
		} else {
			logger.Warn("Each block is missing its source label.", "file", block.TypeRange.Filename)
		}
	case spec.KindUnknown:
		logger.Warn("Unknown node tag in document.", "tag", block.Type, "file", block.TypeRange.Filename)
	default:
		if len(block.Labels) > 0 {
			node.Label = block.Labels[0]
		}
	}

	// Attributes evaluate as literals only. A reference to something outside
	// the document is a malformed property: drop it and keep going rather
	// than failing the document.
	for name, attr := range block.Body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			logger.Warn("Dropping property that does not evaluate as a literal.",
				"property", name, "tag", block.Type, "error", diags.Error())
			continue
		}
		node.Props[name] = val
	}

	for _, child := range block.Body.Blocks {
		node.Children = append(node.Children, translateBlock(ctx, child))
	}
	return node
}
