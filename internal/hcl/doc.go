// Package hcl is the HCL-specific document loader. It parses wireframe
// documents — a component library and frame documents — and translates their
// syntax trees into the format-agnostic model of internal/spec.
//
// The engine is agnostic to the serialization; only this package knows HCL.
// Attribute values are evaluated as literals (no eval context), which keeps
// {{name}} placeholders inert plain text inside strings for the template
// substitutor to handle later.
package hcl
