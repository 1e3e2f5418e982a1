package template

import (
	"regexp"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// placeholderPattern matches {{name}} and {{name.field}}. Names follow
// identifier rules; whitespace inside the braces is not part of the syntax.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_-]*)(?:\.([A-Za-z_][A-Za-z0-9_-]*))?\}\}`)

// Substitute returns a copy of v in which every string, at any nesting depth,
// has its placeholders replaced from scope. Non-string leaves pass through
// unchanged.
func Substitute(v cty.Value, scope map[string]cty.Value) cty.Value {
	if v == cty.NilVal || v.IsNull() || !v.IsWhollyKnown() {
		return v
	}
	// The transform callback never returns an error, so neither does Transform.
	out, _ := cty.Transform(v, func(_ cty.Path, leaf cty.Value) (cty.Value, error) {
		if leaf.IsNull() || leaf.Type() != cty.String {
			return leaf, nil
		}
		return cty.StringVal(String(leaf.AsString(), scope)), nil
	})
	return out
}

// String substitutes placeholders in a single string.
func String(s string, scope map[string]cty.Value) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		name, field := groups[1], groups[2]

		val, ok := scope[name]
		if !ok || val == cty.NilVal {
			// Unresolved placeholders stay verbatim. A later expansion with a
			// richer scope may still resolve them.
			return match
		}
		if field != "" {
			return fieldString(val, field)
		}
		return Stringify(val)
	})
}

// fieldString resolves {{name.field}}: field access applies only when the
// scope value is a mapping, otherwise the placeholder yields an empty string.
func fieldString(val cty.Value, field string) string {
	if val.IsNull() {
		return ""
	}
	ty := val.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(field) {
			return ""
		}
		return Stringify(val.GetAttr(field))
	case ty.IsMapType():
		key := cty.StringVal(field)
		if !val.HasIndex(key).True() {
			return ""
		}
		return Stringify(val.Index(key))
	default:
		return ""
	}
}

// Stringify converts a scope value to its string form. Values with no string
// conversion (objects, lists) yield an empty string rather than an error,
// consistent with the substitutor's degrade-quietly policy.
func Stringify(v cty.Value) string {
	if v == cty.NilVal || v.IsNull() {
		return ""
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil || s.IsNull() {
		return ""
	}
	return s.AsString()
}
