// Package resolver expands a wireframe document tree into concrete primitive
// nodes: component instances are looked up in the library and their variant
// templates substituted and recursively resolved, each-blocks repeat their
// template per scope item, slot markers project the instantiating caller's
// children, and data-bearing primitives get their procedural series computed.
//
// Resolution never aborts on malformed content. Every failure mode degrades
// locally — a fallback box, an empty child list — and records a warning
// diagnostic, so the caller always receives a best-effort tree.
package resolver
