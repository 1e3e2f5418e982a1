package resolver

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/vk/wireframego/internal/resolved"
	"github.com/vk/wireframego/internal/spec"
	"github.com/vk/wireframego/internal/template"
)

// expandComponent resolves one component instance: variant lookup, template
// deep copy, substitution with the instance's own properties, then recursive
// resolution with those properties as the new scope so nested each/slot
// blocks see the instantiating call's arrays and children.
func (r *run) expandComponent(n *spec.Node, depth int) []*resolved.Node {
	if depth >= r.maxDepth {
		r.warn("Component expansion too deep.",
			fmt.Sprintf("Expanding %q exceeded the depth bound of %d; the component likely references itself. A placeholder was emitted.", n.Component, r.maxDepth))
		return []*resolved.Node{placeholderBox(n.Component)}
	}

	comp, ok := r.lib.Lookup(n.Component)
	if !ok {
		detail := fmt.Sprintf("No component named %q is defined in the library.", n.Component)
		if s := suggestName(n.Component, r.lib.Names()); s != "" {
			detail += fmt.Sprintf(" Did you mean %q?", s)
		}
		r.warn("Unknown component.", detail)
		return []*resolved.Node{placeholderBox(n.Component)}
	}

	variantName := strings.TrimSpace(template.Stringify(n.Prop("variant")))
	if variantName == "" {
		variantName = spec.DefaultVariant
	}
	variant, ok := comp.Variant(variantName)
	if !ok {
		r.warn("Unknown variant.",
			fmt.Sprintf("Component %q has no variant %q; an empty box was emitted.", n.Component, variantName))
		return []*resolved.Node{emptyBox()}
	}

	instScope := scope{props: n.Props, children: n.Children}

	var out []*resolved.Node
	for _, tmpl := range variant.Nodes {
		subbed := substituteNode(tmpl, n.Props)
		out = append(out, r.resolveNode(subbed, instScope, depth+1)...)
	}

	// A link rides on the first resolved node, and only when that node is a
	// box; anything else silently drops it.
	if link := template.Stringify(n.Prop("link")); link != "" && len(out) > 0 && out[0].Kind == resolved.KindBox {
		out[0].Link = link
	}
	return out
}

// projectChildren resolves the instantiating caller's literal children in
// place of a slot marker. Projection is single level: a slot appearing among
// the projected children themselves would re-project the same list forever,
// so it is skipped with a diagnostic.
func (r *run) projectChildren(sc scope, depth int) []*resolved.Node {
	var out []*resolved.Node
	for _, child := range sc.children {
		if child.Kind == spec.KindSlot {
			r.warn("Nested slot ignored.",
				"A slot block inside projected children would recurse into its own projection and was skipped.")
			continue
		}
		out = append(out, r.resolveNode(child, sc, depth)...)
	}
	return out
}

// placeholderBox is the dashed-outline stand-in for an unknown component,
// labelled with the name that failed to resolve.
func placeholderBox(name string) *resolved.Node {
	return &resolved.Node{
		Kind:  resolved.KindBox,
		Style: resolved.Style{Outline: resolved.OutlineDashed},
		Children: []*resolved.Node{
			{Kind: resolved.KindText, Text: "[" + name + "]"},
		},
	}
}

// emptyBox is the quiet fallback for unknown shapes and missing variants.
func emptyBox() *resolved.Node {
	return &resolved.Node{Kind: resolved.KindBox}
}

// suggestName returns the closest known name within a small edit distance,
// or empty when nothing is close enough to be a plausible typo.
func suggestName(want string, known []string) string {
	for _, name := range known {
		if levenshtein.Distance(strings.ToLower(want), strings.ToLower(name), nil) < 3 {
			return name
		}
	}
	return ""
}
