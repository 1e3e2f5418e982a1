// Package spec defines the format-agnostic model for wireframe documents: the
// node tree decoded from a document, and the component library the resolver
// expands instances against.
//
// The model is deliberately decoupled from any concrete serialization. A
// loader (such as internal/hcl) translates its own syntax tree into these
// types; everything downstream of the loader works only with this package.
package spec
