// Package export serializes a resolved tree and its collapse-flag table into
// the JSON document consumed by presentation layers on the far side of a
// process boundary.
package export
