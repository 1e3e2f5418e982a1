package spec

import "sort"

// DefaultVariant is the variant the resolver selects when an instance names
// none.
const DefaultVariant = "default"

// Variant is one named alternative rendering of a component: an ordered
// sequence of node templates.
type Variant struct {
	Name  string
	Nodes []*Node
}

// Component is a named, reusable template with one or more variants.
type Component struct {
	Name     string
	Variants map[string]*Variant
}

// Variant returns the named variant. The name is looked up as given; callers
// are expected to have trimmed it.
func (c *Component) Variant(name string) (*Variant, bool) {
	v, ok := c.Variants[name]
	return v, ok
}

// Library is the loaded component library. It is immutable once loaded and is
// shared read-only by every resolution pass.
type Library struct {
	components map[string]*Component
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{components: make(map[string]*Component)}
}

// Add registers a component. A repeated name replaces the earlier definition,
// matching last-writer-wins document semantics.
func (l *Library) Add(c *Component) {
	l.components[c.Name] = c
}

// Lookup returns the named component.
func (l *Library) Lookup(name string) (*Component, bool) {
	c, ok := l.components[name]
	return c, ok
}

// Len returns the number of registered components.
func (l *Library) Len() int {
	return len(l.components)
}

// Names returns all component names in sorted order, for diagnostics and
// suggestion ranking.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.components))
	for name := range l.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
