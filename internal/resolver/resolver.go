package resolver

import (
	"context"
	"math/rand"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wireframego/internal/ctxlog"
	"github.com/vk/wireframego/internal/procgen"
	"github.com/vk/wireframego/internal/resolved"
	"github.com/vk/wireframego/internal/spec"
	"github.com/vk/wireframego/internal/template"
)

// defaultMaxDepth bounds nested component expansion. Component definitions
// that reference themselves, directly or transitively, would otherwise
// recurse without limit; past the bound an instance degrades to its
// placeholder instead.
const defaultMaxDepth = 32

// Resolver expands documents against one component library. It holds no
// per-request state, so a single Resolver may serve many Resolve calls.
type Resolver struct {
	lib      *spec.Library
	rand     *rand.Rand
	maxDepth int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRand injects the random source used by the procedural generators.
// Tests pass a seeded source for reproducible output; the default matches
// the reference behavior of differing per render.
func WithRand(r *rand.Rand) Option {
	return func(res *Resolver) { res.rand = r }
}

// WithMaxDepth overrides the component expansion depth bound.
func WithMaxDepth(depth int) Option {
	return func(res *Resolver) {
		if depth > 0 {
			res.maxDepth = depth
		}
	}
}

// New creates a resolver over the given library.
func New(lib *spec.Library, opts ...Option) *Resolver {
	r := &Resolver{
		lib:      lib,
		rand:     procgen.NewRand(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// scope is the property environment a node resolves under: the instantiating
// component instance's own properties plus its literal children, which slot
// markers project.
type scope struct {
	props    map[string]cty.Value
	children []*spec.Node
}

// Resolve expands the given frame list into resolved trees. The returned
// diagnostics are warnings only; resolution itself never fails.
func (r *Resolver) Resolve(ctx context.Context, frames []*spec.Node) ([]*resolved.Node, hcl.Diagnostics) {
	run := &run{Resolver: r, ctx: ctx}

	var out []*resolved.Node
	for _, frame := range frames {
		out = append(out, run.resolveNode(frame, scope{}, 0)...)
	}

	if len(run.diags) > 0 {
		ctxlog.FromContext(ctx).Warn("Resolution completed with diagnostics.", "count", len(run.diags))
	}
	return out, run.diags
}

// run carries the per-request diagnostic accumulator.
type run struct {
	*Resolver
	ctx   context.Context
	diags hcl.Diagnostics
}

// warn records a non-fatal diagnostic and logs it.
func (r *run) warn(summary, detail string) {
	r.diags = append(r.diags, &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  summary,
		Detail:   detail,
	})
	ctxlog.FromContext(r.ctx).Warn(summary, "detail", detail)
}

// resolveNode dispatches on the node kind decided at decode time. It returns
// a slice because component expansion may produce several nodes (or none).
func (r *run) resolveNode(n *spec.Node, sc scope, depth int) []*resolved.Node {
	switch n.Kind {
	case spec.KindComponent:
		return r.expandComponent(n, depth)
	case spec.KindEach, spec.KindSlot:
		// Only meaningful in child position; resolveChildren intercepts them
		// before they ever reach here.
		r.warn("Misplaced child marker.",
			"An 'each' or 'slot' block appeared outside a children position and was ignored.")
		return nil
	case spec.KindUnknown:
		r.warn("Unknown node shape.",
			"A node matched neither a primitive tag nor a component reference; an empty box was emitted in its place.")
		return []*resolved.Node{emptyBox()}
	default:
		return []*resolved.Node{r.buildPrimitive(n, sc, depth)}
	}
}

// resolveChildren resolves a node's child list, expanding each-blocks and
// projecting slot markers in place.
func (r *run) resolveChildren(n *spec.Node, sc scope, depth int) []*resolved.Node {
	var out []*resolved.Node
	for _, child := range n.Children {
		switch child.Kind {
		case spec.KindEach:
			out = append(out, r.expandEach(child, sc, depth)...)
		case spec.KindSlot:
			out = append(out, r.projectChildren(sc, depth)...)
		default:
			out = append(out, r.resolveNode(child, sc, depth)...)
		}
	}
	return out
}

// substituteNode returns a deep copy of the template node with every property
// and label substituted against the given scope properties. The original —
// typically a shared library template — is never touched.
func substituteNode(n *spec.Node, props map[string]cty.Value) *spec.Node {
	out := n.Clone()
	substituteInPlace(out, props)
	return out
}

func substituteInPlace(n *spec.Node, props map[string]cty.Value) {
	n.Label = template.String(n.Label, props)
	for name, v := range n.Props {
		n.Props[name] = template.Substitute(v, props)
	}
	for _, child := range n.Children {
		substituteInPlace(child, props)
	}
}
