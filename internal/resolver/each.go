package resolver

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wireframego/internal/resolved"
	"github.com/vk/wireframego/internal/spec"
)

// expandEach repeats the block's template once per item of the named scope
// array. A missing or non-array source expands to nothing, with a diagnostic.
// Items are exposed to the template as {{item}} / {{item.field}}; bare string
// items are normalized to a one-field {label: item} record first.
func (r *run) expandEach(each *spec.Node, sc scope, depth int) []*resolved.Node {
	if each.Source == "" {
		r.warn("Each block without a source.",
			"The each block names no source array property and expanded to nothing.")
		return nil
	}

	src, ok := sc.props[each.Source]
	if !ok {
		r.warn("Each source not in scope.",
			fmt.Sprintf("Property %q is not present on the instantiating scope; the each block expanded to nothing.", each.Source))
		return nil
	}
	if src.IsNull() || !isArray(src.Type()) {
		r.warn("Each source is not an array.",
			fmt.Sprintf("Property %q is not an array value; the each block expanded to nothing.", each.Source))
		return nil
	}

	var out []*resolved.Node
	for it := src.ElementIterator(); it.Next(); {
		_, item := it.Element()

		childProps := make(map[string]cty.Value, len(sc.props)+1)
		for name, v := range sc.props {
			childProps[name] = v
		}
		childProps["item"] = normalizeItem(item)
		childScope := scope{props: childProps, children: sc.children}

		for _, tmpl := range each.Children {
			subbed := substituteNode(tmpl, childProps)
			// resolveNode returns a slice, which flattens any multi-node
			// expansion one level, per the each contract.
			out = append(out, r.resolveNode(subbed, childScope, depth)...)
		}
	}
	return out
}

// isArray reports whether a value type is a sequence: mappings and scalars
// are not valid each sources.
func isArray(ty cty.Type) bool {
	return ty.IsListType() || ty.IsSetType() || ty.IsTupleType()
}

// normalizeItem lifts bare strings into {label: item} so templates can always
// address {{item.label}}.
func normalizeItem(item cty.Value) cty.Value {
	if !item.IsNull() && item.Type() == cty.String {
		return cty.ObjectVal(map[string]cty.Value{"label": item})
	}
	return item
}
