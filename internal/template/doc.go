// Package template implements {{name}} placeholder substitution over
// arbitrarily nested cty values.
//
// Substitution is pure: inputs are never mutated and a structurally identical
// value is returned. Placeholders whose name is absent from the scope are left
// verbatim, which makes substitution against a fully-resolved scope idempotent
// and allows staged substitution across nested component expansions.
package template
