// Package resolved defines the output model of resolution: a tree of concrete
// primitive nodes with every component reference expanded, every template
// substituted, and every procedural series pre-computed.
//
// A resolved tree is freshly allocated per render request, owned exclusively
// by its root, and discarded once the presentation layer has consumed it.
package resolved
