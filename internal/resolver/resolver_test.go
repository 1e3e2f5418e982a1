package resolver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wireframego/internal/resolved"
	"github.com/vk/wireframego/internal/spec"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func newLibrary(components ...*spec.Component) *spec.Library {
	lib := spec.NewLibrary()
	for _, c := range components {
		lib.Add(c)
	}
	return lib
}

func component(name string, variants ...*spec.Variant) *spec.Component {
	c := &spec.Component{Name: name, Variants: make(map[string]*spec.Variant)}
	for _, v := range variants {
		c.Variants[v.Name] = v
	}
	return c
}

func variant(name string, nodes ...*spec.Node) *spec.Variant {
	return &spec.Variant{Name: name, Nodes: nodes}
}

func textNode(content string) *spec.Node {
	return &spec.Node{
		Kind:  spec.KindText,
		Props: map[string]cty.Value{"content": cty.StringVal(content)},
	}
}

// buttonLibrary is the canonical one-component library: a Button whose default
// variant is a box wrapping its label text.
func buttonLibrary() *spec.Library {
	return newLibrary(component("Button", variant(spec.DefaultVariant, &spec.Node{
		Kind:     spec.KindBox,
		Props:    map[string]cty.Value{"outline": cty.StringVal("thin")},
		Children: []*spec.Node{textNode("{{label}}")},
	})))
}

func resolve(t *testing.T, lib *spec.Library, frames ...*spec.Node) ([]*resolved.Node, int) {
	t.Helper()
	nodes, diags := New(lib, WithRand(testRand())).Resolve(context.Background(), frames)
	return nodes, len(diags)
}

func TestResolve_ComponentSubstitutesProps(t *testing.T) {
	instance := &spec.Node{
		Kind:      spec.KindComponent,
		Component: "Button",
		Props:     map[string]cty.Value{"label": cty.StringVal("Save")},
	}
	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{instance}}

	nodes, diagCount := resolve(t, buttonLibrary(), frame)

	require.Len(t, nodes, 1)
	assert.Zero(t, diagCount)

	box := nodes[0].Children[0]
	require.Equal(t, resolved.KindBox, box.Kind)
	require.Len(t, box.Children, 1)
	assert.Equal(t, resolved.KindText, box.Children[0].Kind)
	assert.Equal(t, "Save", box.Children[0].Text)
}

func TestResolve_UnknownComponentEmitsPlaceholder(t *testing.T) {
	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{Kind: spec.KindComponent, Component: "Buton"},
	}}

	nodes, diags := New(buttonLibrary(), WithRand(testRand())).Resolve(context.Background(), []*spec.Node{frame})

	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)

	placeholder := nodes[0].Children[0]
	assert.Equal(t, resolved.KindBox, placeholder.Kind)
	assert.Equal(t, resolved.OutlineDashed, placeholder.Style.Outline)
	require.Len(t, placeholder.Children, 1)
	assert.Equal(t, "[Buton]", placeholder.Children[0].Text)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Detail, `Did you mean "Button"?`)
}

func TestResolve_UnknownVariantEmitsEmptyBox(t *testing.T) {
	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{
			Kind:      spec.KindComponent,
			Component: "Button",
			Props:     map[string]cty.Value{"variant": cty.StringVal("ghost")},
		},
	}}

	nodes, diagCount := resolve(t, buttonLibrary(), frame)

	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)
	box := nodes[0].Children[0]
	assert.Equal(t, resolved.KindBox, box.Kind)
	assert.Empty(t, box.Children)
	assert.Equal(t, 1, diagCount)
}

func TestResolve_VariantNameTrimmedAndDefaulted(t *testing.T) {
	lib := newLibrary(component("Pill",
		variant(spec.DefaultVariant, textNode("default")),
		variant("compact", textNode("compact")),
	))

	testCases := []struct {
		name     string
		variant  cty.Value
		expected string
	}{
		{"absent picks default", cty.NilVal, "default"},
		{"whitespace picks default", cty.StringVal("   "), "default"},
		{"padded name is trimmed", cty.StringVal(" compact "), "compact"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			props := map[string]cty.Value{}
			if tc.variant != cty.NilVal {
				props["variant"] = tc.variant
			}
			frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
				{Kind: spec.KindComponent, Component: "Pill", Props: props},
			}}

			nodes, diagCount := resolve(t, lib, frame)
			require.Len(t, nodes, 1)
			require.Len(t, nodes[0].Children, 1)
			assert.Equal(t, tc.expected, nodes[0].Children[0].Text)
			assert.Zero(t, diagCount)
		})
	}
}

func TestResolve_EachExpansion(t *testing.T) {
	lib := newLibrary(component("List", variant(spec.DefaultVariant, &spec.Node{
		Kind: spec.KindBox,
		Children: []*spec.Node{
			{Kind: spec.KindEach, Source: "items", Children: []*spec.Node{textNode("{{item.label}}")}},
		},
	})))

	testCases := []struct {
		name     string
		items    cty.Value
		expected []string
	}{
		{
			"empty array expands to nothing",
			cty.ListValEmpty(cty.String),
			nil,
		},
		{
			"bare strings are lifted to records",
			cty.ListVal([]cty.Value{cty.StringVal("one"), cty.StringVal("two"), cty.StringVal("three")}),
			[]string{"one", "two", "three"},
		},
		{
			"record items expose their fields",
			cty.TupleVal([]cty.Value{
				cty.ObjectVal(map[string]cty.Value{"label": cty.StringVal("alpha")}),
				cty.ObjectVal(map[string]cty.Value{"label": cty.StringVal("beta")}),
			}),
			[]string{"alpha", "beta"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
				{
					Kind:      spec.KindComponent,
					Component: "List",
					Props:     map[string]cty.Value{"items": tc.items},
				},
			}}

			nodes, diagCount := resolve(t, lib, frame)
			require.Len(t, nodes, 1)
			require.Len(t, nodes[0].Children, 1)

			box := nodes[0].Children[0]
			require.Len(t, box.Children, len(tc.expected))
			for i, want := range tc.expected {
				assert.Equal(t, want, box.Children[i].Text)
			}
			assert.Zero(t, diagCount)
		})
	}
}

func TestResolve_EachDegenerateSources(t *testing.T) {
	template := &spec.Node{
		Kind: spec.KindBox,
		Children: []*spec.Node{
			{Kind: spec.KindEach, Source: "items", Children: []*spec.Node{textNode("x")}},
		},
	}
	lib := newLibrary(component("List", variant(spec.DefaultVariant, template)))

	testCases := []struct {
		name  string
		props map[string]cty.Value
	}{
		{"missing source", nil},
		{"scalar source", map[string]cty.Value{"items": cty.StringVal("not-a-list")}},
		{"null source", map[string]cty.Value{"items": cty.NullVal(cty.List(cty.String))}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
				{Kind: spec.KindComponent, Component: "List", Props: tc.props},
			}}

			nodes, diagCount := resolve(t, lib, frame)
			require.Len(t, nodes, 1)
			require.Len(t, nodes[0].Children, 1)
			assert.Empty(t, nodes[0].Children[0].Children)
			assert.Equal(t, 1, diagCount)
		})
	}
}

func TestResolve_SlotProjectsInstanceChildren(t *testing.T) {
	lib := newLibrary(component("Card", variant(spec.DefaultVariant, &spec.Node{
		Kind: spec.KindBox,
		Children: []*spec.Node{
			textNode("header"),
			{Kind: spec.KindSlot},
		},
	})))

	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{
			Kind:      spec.KindComponent,
			Component: "Card",
			Children:  []*spec.Node{textNode("body one"), textNode("body two")},
		},
	}}

	nodes, diagCount := resolve(t, lib, frame)

	require.Len(t, nodes, 1)
	card := nodes[0].Children[0]
	require.Len(t, card.Children, 3)
	assert.Equal(t, "header", card.Children[0].Text)
	assert.Equal(t, "body one", card.Children[1].Text)
	assert.Equal(t, "body two", card.Children[2].Text)
	assert.Zero(t, diagCount)
}

func TestResolve_NestedSlotInProjectionSkipped(t *testing.T) {
	lib := newLibrary(component("Card", variant(spec.DefaultVariant, &spec.Node{
		Kind:     spec.KindBox,
		Children: []*spec.Node{{Kind: spec.KindSlot}},
	})))

	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{
			Kind:      spec.KindComponent,
			Component: "Card",
			Children:  []*spec.Node{textNode("ok"), {Kind: spec.KindSlot}},
		},
	}}

	nodes, diagCount := resolve(t, lib, frame)

	require.Len(t, nodes, 1)
	card := nodes[0].Children[0]
	require.Len(t, card.Children, 1)
	assert.Equal(t, "ok", card.Children[0].Text)
	assert.Equal(t, 1, diagCount)
}

func TestResolve_LinkAttachesOnlyToBox(t *testing.T) {
	boxLib := newLibrary(component("Nav", variant(spec.DefaultVariant,
		&spec.Node{Kind: spec.KindBox})))
	textLib := newLibrary(component("Nav", variant(spec.DefaultVariant,
		textNode("plain"))))

	instance := func() *spec.Node {
		return &spec.Node{
			Kind:      spec.KindComponent,
			Component: "Nav",
			Props:     map[string]cty.Value{"link": cty.StringVal("settings")},
		}
	}

	nodes, _ := resolve(t, boxLib, &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{instance()}})
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "settings", nodes[0].Children[0].Link)

	nodes, _ = resolve(t, textLib, &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{instance()}})
	require.Len(t, nodes[0].Children, 1)
	assert.Empty(t, nodes[0].Children[0].Link, "a link never rides on a non-box root")
}

func TestResolve_SelfReferenceStopsAtDepthBound(t *testing.T) {
	lib := newLibrary(component("Loop", variant(spec.DefaultVariant, &spec.Node{
		Kind: spec.KindBox,
		Children: []*spec.Node{
			{Kind: spec.KindComponent, Component: "Loop"},
		},
	})))

	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{Kind: spec.KindComponent, Component: "Loop"},
	}}

	nodes, diags := New(lib, WithRand(testRand()), WithMaxDepth(5)).
		Resolve(context.Background(), []*spec.Node{frame})

	require.Len(t, nodes, 1)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Summary, "too deep")

	// The chain bottoms out in a placeholder instead of recursing forever.
	depth := 0
	for n := nodes[0].Children[0]; len(n.Children) > 0; n = n.Children[0] {
		depth++
		require.Less(t, depth, 20)
	}
}

func TestResolve_UnknownShapeFallsBackToEmptyBox(t *testing.T) {
	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{Kind: spec.KindUnknown},
	}}

	nodes, diagCount := resolve(t, spec.NewLibrary(), frame)

	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, resolved.KindBox, nodes[0].Children[0].Kind)
	assert.Equal(t, 1, diagCount)
}

func TestResolve_MisplacedEachAtTopLevelIgnored(t *testing.T) {
	nodes, diagCount := resolve(t, spec.NewLibrary(),
		&spec.Node{Kind: spec.KindEach, Source: "items"})

	assert.Empty(t, nodes)
	assert.Equal(t, 1, diagCount)
}

func TestResolve_PrimitiveDataGeneration(t *testing.T) {
	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{Kind: spec.KindMap, Props: map[string]cty.Value{"shape": cty.StringVal("loop")}},
		{Kind: spec.KindChart, Props: map[string]cty.Value{
			"fn":     cty.StringVal("sin"),
			"points": cty.NumberIntVal(17),
		}},
		{Kind: spec.KindGlobe, Props: map[string]cty.Value{"points": cty.NumberIntVal(12)}},
		{Kind: spec.KindCloud, Props: map[string]cty.Value{"count": cty.NumberIntVal(30)}},
	}}

	nodes, diagCount := resolve(t, spec.NewLibrary(), frame)

	require.Len(t, nodes, 1)
	kids := nodes[0].Children
	require.Len(t, kids, 4)

	assert.NotEmpty(t, kids[0].Path)
	assert.Len(t, kids[1].Series, 17)
	assert.Len(t, kids[2].Route, 12)
	assert.Len(t, kids[3].Cloud, 30)
	assert.Zero(t, diagCount)
}

func TestResolve_StyleExtraction(t *testing.T) {
	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{Kind: spec.KindBox, Props: map[string]cty.Value{
			"direction": cty.StringVal("row"),
			"gap":       cty.NumberIntVal(8),
			"grow":      cty.True,
			"outline":   cty.StringVal("thick"),
			"padding": cty.ObjectVal(map[string]cty.Value{
				"top":  cty.NumberIntVal(4),
				"left": cty.NumberIntVal(2),
			}),
		}},
		{Kind: spec.KindBox, Props: map[string]cty.Value{
			"padding": cty.NumberIntVal(6),
		}},
	}}

	nodes, _ := resolve(t, spec.NewLibrary(), frame)

	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 2)

	styled := nodes[0].Children[0].Style
	assert.Equal(t, resolved.Row, styled.Direction)
	assert.Equal(t, 8.0, styled.Gap)
	assert.True(t, styled.Grow)
	assert.Equal(t, resolved.OutlineThick, styled.Outline)
	assert.Equal(t, resolved.Edges{Top: 4, Left: 2}, styled.Padding)

	uniform := nodes[0].Children[1].Style
	assert.Equal(t, resolved.Column, uniform.Direction)
	assert.Equal(t, resolved.EdgeAll(6), uniform.Padding)
}

func TestResolve_LibraryTemplateNeverMutated(t *testing.T) {
	template := &spec.Node{
		Kind:     spec.KindBox,
		Children: []*spec.Node{textNode("{{label}}")},
	}
	lib := newLibrary(component("Button", variant(spec.DefaultVariant, template)))

	frame := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{
			Kind:      spec.KindComponent,
			Component: "Button",
			Props:     map[string]cty.Value{"label": cty.StringVal("first")},
		},
	}}

	resolve(t, lib, frame)

	// A second resolve must still see the raw placeholder in the template.
	frame2 := &spec.Node{Kind: spec.KindFrame, Children: []*spec.Node{
		{
			Kind:      spec.KindComponent,
			Component: "Button",
			Props:     map[string]cty.Value{"label": cty.StringVal("second")},
		},
	}}
	nodes, _ := resolve(t, lib, frame2)

	assert.Equal(t, "{{label}}", template.Children[0].Props["content"].AsString())
	assert.Equal(t, "second", nodes[0].Children[0].Children[0].Text)
}
